package main

import (
	"os"

	"github.com/brettbedarf/docfs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
