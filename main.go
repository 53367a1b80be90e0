package main

import (
	"fmt"
	"os"

	"focus_timer/internal/cli"

	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
)

func main() {
	app := &cli.App{
		Clock: clockwork.NewRealClock(),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Getenv: os.Getenv,
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
