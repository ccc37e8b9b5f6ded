package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

type Audio struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"`
}

type AI struct {
	Enabled bool   `toml:"enabled"`
	Model   string `toml:"model"`
}

type Serve struct {
	Addr   string `toml:"addr"`
	TickHz int    `toml:"tick_hz"`
}

// Settings is everything the binaries read at startup. Keys missing from the
// file keep their defaults.
type Settings struct {
	Seed   uint64      `toml:"seed"`
	Tuning game.Tuning `toml:"tuning"`
	Audio  Audio       `toml:"audio"`
	AI     AI          `toml:"ai"`
	Serve  Serve       `toml:"serve"`
}

func Default() Settings {
	return Settings{
		Tuning: game.DefaultTuning(),
		Audio:  Audio{Volume: 0.6},
		AI:     AI{Enabled: true},
		Serve:  Serve{Addr: ":8080", TickHz: 60},
	}
}

func (s Settings) Validate() error {
	if err := s.Tuning.Validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0,1], got %g", s.Audio.Volume)
	}
	if s.Serve.TickHz < 1 || s.Serve.TickHz > 240 {
		return fmt.Errorf("serve tick rate must be within [1,240], got %d", s.Serve.TickHz)
	}
	return nil
}

// Load layers the TOML file at path over Default. An empty path or a missing
// file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, err
	}
	return decode(string(data), s)
}

func decode(data string, s Settings) (Settings, error) {
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("unknown settings key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func Write(w io.Writer, s Settings) error {
	return toml.NewEncoder(w).Encode(s)
}
