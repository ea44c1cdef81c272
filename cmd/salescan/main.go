package main

import (
	"os"

	"github.com/salescan-dev/salescan/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
