package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config is the AI state the player flips in game. It outlives the process
// through a Store.
type Config struct {
	AIEnabled bool   `json:"ai_enabled"`
	ModelID   string `json:"model_id,omitempty"`
}

func DefaultConfig() Config {
	return Config{AIEnabled: true, ModelID: DefaultModelID()}
}

var errNoStore = errors.New("no config directory for AI preferences")

// Store keeps a Config as JSON at Path. The zero Store loads defaults and
// refuses to save.
type Store struct {
	Path string
}

// UserStore puts the file under the OS config directory.
func UserStore() Store {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return Store{}
	}
	return Store{Path: filepath.Join(dir, "AzureGuardian", "ai.json")}
}

// Load overlays the saved file on DefaultConfig, so fields missing from an
// older file keep their defaults. A missing file is not an error; on any
// other failure the defaults come back with the error.
func (s Store) Load() (Config, error) {
	cfg := DefaultConfig()
	if s.Path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", s.Path, err)
	}
	cfg.ModelID = NormalizeModelID(cfg.ModelID)
	return cfg, nil
}

// Save replaces the file in one rename.
func (s Store) Save(cfg Config) error {
	if s.Path == "" {
		return errNoStore
	}
	cfg.ModelID = NormalizeModelID(cfg.ModelID)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
