// Command kinoman is a conversational movie-recommendation agent over the
// IMDb Top 1000 dataset.
package main

import (
	"os"

	"github.com/custodia-labs/kinoman-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
