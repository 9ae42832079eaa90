package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/ocrlayout/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "ocrlayout",
	Short: "Reconstruct tables and text from positioned OCR detections",
	Long: `ocrlayout turns a flat list of OCR detections (bounding box, text,
confidence) back into structured output: a table grid or spaced plain
text, chosen by a column-alignment heuristic.

Table cells can be post-processed with engineering-prefix aware rules:
threshold replacement, unit prefix conversion, and scientific or
engineering notation rendering.`,
	Version: version,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
