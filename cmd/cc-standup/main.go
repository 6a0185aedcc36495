package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/yurukusa/cc-standup/internal/cli"
	"github.com/yurukusa/cc-standup/internal/config"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config:  config.Load(),
		Version: version,
	}

	// Interactive mode needs a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
