package main

import (
	"os"

	"github.com/katalvlaran/latsym/cmd/latsym/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
