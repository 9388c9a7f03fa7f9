package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/bough/internal/cli"
)

// Build-time variables (set via ldflags).
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
