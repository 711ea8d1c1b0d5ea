package main

import (
	"os"

	"github.com/crimson-sun/vecname/cmd/vecname/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
