package main

import (
	"os"

	"github.com/osse101/cs2-crosshair/cmd/crosshair/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
