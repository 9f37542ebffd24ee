package main

import (
	"os"

	"chartleap/cmd/chartleap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
