package main

import (
	"os"

	"kurier/cmd/kurier/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
