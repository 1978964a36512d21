package main

import (
	"os"

	"cashbox/cmd/cashbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
