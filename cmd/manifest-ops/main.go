package main

import (
	"fmt"
	"os"

	"manifest-ops/cmd/manifest-ops/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
