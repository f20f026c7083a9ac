package main

import (
	"os"

	"github.com/hbjs97/pyenv-venv/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.Execute(os.Args[1:]); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
