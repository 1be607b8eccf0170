// Package main is the entry point for the addnoise CLI.
//
// The CLI drives the file layer of the noise-adding tool: it validates an
// image/XML pair, derives the tagged output path, loads and writes images
// and can show an image in the terminal. Noise generation itself is left to
// the producer of the distorted image.
//
// Startup sequence:
//
// 1. Initialize logging
// 2. Load configuration (defaults when no config file exists)
// 3. Run the selected subcommand
package main

import (
	"os"

	"addnoise/internal/logging"
)

func main() {
	appLogger := logging.GetDefault()

	if err := NewRootCmd(appLogger).Execute(); err != nil {
		appLogger.Error("addnoise failed", "error", err)
		os.Exit(1)
	}
}
