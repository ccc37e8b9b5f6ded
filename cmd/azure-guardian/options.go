package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appengine-ltd/azure-guardian/internal/ai"
	"github.com/appengine-ltd/azure-guardian/internal/config"
	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/play"
	"github.com/appengine-ltd/azure-guardian/internal/sfx"
	"github.com/appengine-ltd/azure-guardian/internal/stream"
	"github.com/appengine-ltd/azure-guardian/internal/ui"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	printConfig bool
	tui         bool
	serve       bool
	addr        string
	configPath  string
	envFile     string
	seed        int64
	mute        bool
	noAI        bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("azure-guardian", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&o.printConfig, "print-config", false, "print the effective settings as TOML and exit")
	fs.BoolVar(&o.tui, "tui", false, "play in the terminal instead of a window")
	fs.BoolVar(&o.serve, "serve", false, "run a headless shift for websocket clients")
	fs.StringVar(&o.addr, "addr", "", "listen address for -serve (defaults to serve.addr in settings)")
	fs.StringVar(&o.configPath, "config", "azure-guardian.toml", "settings file")
	fs.StringVar(&o.envFile, "env", ".env", "dotenv file holding GEMINI_API_KEY")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.BoolVar(&o.mute, "mute", false, "start with sound off")
	fs.BoolVar(&o.noAI, "no-ai", false, "disable AI facts and recipes")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return o, nil
}

// loadSettings layers command line overrides on the settings file.
func loadSettings(o options) (config.Settings, error) {
	s, err := config.Load(o.configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load %s: %w", o.configPath, err)
	}
	if o.seed != 0 {
		s.Seed = uint64(o.seed)
	}
	if o.mute {
		s.Audio.Muted = true
	}
	if o.noAI {
		s.AI.Enabled = false
	}
	return s, nil
}

func seedFor(s uint64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return int64(s)
}

// playOptions builds the single-player setup. The returned func releases
// the audio device.
func playOptions(s config.Settings, logger *log.Logger) (play.Options, func()) {
	store := ai.UserStore()
	aiCfg, err := store.Load()
	if err != nil {
		logger.Printf("ai preferences: %v (using defaults)", err)
	}
	if !s.AI.Enabled {
		aiCfg.AIEnabled = false
	}
	if s.AI.Model != "" {
		aiCfg.ModelID = ai.NormalizeModelID(s.AI.Model)
	}

	sound := sfx.New(s.Audio.Volume, s.Audio.Muted, logger)
	return play.Options{
		Tuning:   s.Tuning,
		Seed:     seedFor(s.Seed),
		AIConfig: aiCfg,
		APIKey:   config.APIKey(),
		SaveAI:   store.Save,
		Sound:    sound,
		Logger:   logger,
	}, sound.Close
}

func serve(s config.Settings, addr string, logger *log.Logger) error {
	if addr == "" {
		addr = s.Serve.Addr
	}
	session, err := game.NewSession(s.Tuning, seedFor(s.Seed))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	hub := stream.NewHub(session, s.Serve.TickHz, logger)
	return stream.Serve(ctx, addr, hub, logger)
}

// run is shared by both builds. window is nil when the binary has no
// window client.
func run(o options, stdout, stderr io.Writer, window func(play.Options) error) error {
	if o.showVersion {
		fmt.Fprintf(stdout, "Azure Guardian %s (%s) %s\n", version, commit, date)
		return nil
	}
	if err := config.LoadEnv(o.envFile); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	s, err := loadSettings(o)
	if err != nil {
		return err
	}
	if o.printConfig {
		return config.Write(stdout, s)
	}

	logger := log.New(stderr, "azure-guardian ", log.LstdFlags)
	if o.serve {
		return serve(s, o.addr, logger)
	}

	if o.tui || window == nil {
		// The alt screen owns the terminal, so the terminal client logs nowhere.
		popts, release := playOptions(s, log.New(io.Discard, "", 0))
		defer release()
		return ui.NewApp(ui.AppConfig{Version: version, Commit: commit, BuildDate: date, Play: popts}).Run()
	}

	popts, release := playOptions(s, logger)
	defer release()
	return window(popts)
}
