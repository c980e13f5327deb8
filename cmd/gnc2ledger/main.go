package main

import (
	"os"

	"github.com/gnc2ledger-dev/gnc2ledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
