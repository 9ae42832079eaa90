package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/ocrlayout/internal/logger"
	"github.com/tsawler/ocrlayout/postprocess"
)

var settingsCmd = &cobra.Command{
	Use:   "settings-init [path]",
	Short: "Write a default post-processing settings file",
	Long: `Create a settings JSON file populated with the default values.

Edit the file to enable threshold replacement, unit prefix conversion,
notation rendering, or value/unit splitting, then pass it to the run
command with --settings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithComponent("settings")

		if err := postprocess.SaveSettings(args[0], postprocess.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to write settings file: %w", err)
		}
		log.Info().Str("file", args[0]).Msg("Settings file created")
		fmt.Printf("Wrote default settings to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
