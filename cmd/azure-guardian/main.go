//go:build cgo

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/azure-guardian/internal/gui"
	"github.com/appengine-ltd/azure-guardian/internal/play"
)

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	window := func(p play.Options) error {
		app := gui.NewApp(gui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Play:      p,
		})
		return app.Run()
	}
	if err := run(o, os.Stdout, os.Stderr, window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
