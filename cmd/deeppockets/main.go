package main

import (
	"os"

	"github.com/deeppockets-dev/deeppockets/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
