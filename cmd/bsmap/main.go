package main

import (
	"os"

	"github.com/reoring/bsmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
