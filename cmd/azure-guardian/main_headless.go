//go:build !cgo
// +build !cgo

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
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

	if !o.tui && !o.serve && !o.showVersion && !o.printConfig {
		fmt.Fprintln(os.Stderr, "This build has no window client (cgo/raylib disabled); starting the terminal client.")
	}
	if err := run(o, os.Stdout, os.Stderr, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
