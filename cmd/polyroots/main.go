package main

import (
	"os"

	"polyroots/cmd/polyroots/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
