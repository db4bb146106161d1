package main

import (
	"os"

	"github.com/clubledger-dev/clubledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
