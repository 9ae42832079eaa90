package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/ocrlayout"
	"github.com/tsawler/ocrlayout/internal/logger"
	"github.com/tsawler/ocrlayout/layout"
	"github.com/tsawler/ocrlayout/model"
	"github.com/tsawler/ocrlayout/postprocess"
)

var runCmd = &cobra.Command{
	Use:   "run [detections.json]",
	Short: "Reconstruct layout from a detections JSON file",
	Long: `Read OCR detections from a JSON file and reconstruct the layout.

The input is a JSON array of objects with "box", "text", and
"confidence" fields. A box is either four corner points
[[x1,y1],[x2,y2],[x3,y3],[x4,y4]] or a flat rectangle [x1,y1,x2,y2].

The layout mode is detected automatically unless --mode forces it.
Table output is post-processed using the settings file when one is
given.`,
	Example: `  # Auto-detect mode, print to stdout
  ocrlayout run detections.json

  # Force table mode and apply value post-processing
  ocrlayout run detections.json --mode table --settings settings.json

  # Render the table as Markdown
  ocrlayout run detections.json --format markdown

  # Keep only the value column for clipboard use
  ocrlayout run detections.json --settings settings.json --copy value_only`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("mode", "m", "auto", "Layout mode: auto, table, or text")
	runCmd.Flags().StringP("settings", "s", "", "Path to a post-processing settings JSON file")
	runCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	runCmd.Flags().StringP("format", "f", "tsv", "Table output format: tsv, markdown, html, or aligned")
	runCmd.Flags().String("copy", "", "Column selection: all, value_only, or unit_only")
	runCmd.Flags().Float64("space-width-ratio", layout.DefaultSpaceWidthRatio, "Gap-to-space ratio for text mode")
	runCmd.Flags().Bool("raw", false, "Print the raw reconstruction without post-processing")
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("run")

	modeFlag, _ := cmd.Flags().GetString("mode")
	settingsPath, _ := cmd.Flags().GetString("settings")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	copyFlag, _ := cmd.Flags().GetString("copy")
	spaceRatio, _ := cmd.Flags().GetFloat64("space-width-ratio")
	raw, _ := cmd.Flags().GetBool("raw")

	dets, err := loadDetections(args[0])
	if err != nil {
		return err
	}
	log.Info().Str("file", args[0]).Int("detections", len(dets)).Msg("Loaded detections")

	p := ocrlayout.NewPipeline(dets)
	p.SpaceWidthRatio = spaceRatio
	p.Progress = func(stage string, percent int) {
		log.Debug().Str("stage", stage).Int("percent", percent).Msg("Progress")
	}

	switch modeFlag {
	case "auto":
	case "table", "text":
		mode := layout.ParseMode(modeFlag)
		p.ForceMode = &mode
	default:
		return fmt.Errorf("unknown mode %q (want auto, table, or text)", modeFlag)
	}

	if settingsPath != "" {
		p.Settings = postprocess.LoadSettings(settingsPath)
		log.Info().Str("file", settingsPath).Msg("Loaded settings")
	}

	result, err := p.Run(context.Background())
	if err != nil {
		return err
	}
	log.Info().Str("mode", result.Mode.String()).Msg("Reconstruction complete")

	out := result.Processed
	if raw {
		out = result.Layout
	}

	if result.Mode == layout.ModeTable {
		if copyFlag != "" {
			strategy, err := postprocess.ParseCopyStrategy(copyFlag)
			if err != nil {
				return err
			}
			out = postprocess.SelectForCopy(out, strategy)
		}
		out, err = renderTable(out, format)
		if err != nil {
			return err
		}
	}

	return writeOutput(out, outputPath, log)
}

// loadDetections reads and parses a detections JSON file.
func loadDetections(path string) ([]model.Detection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read detections file: %w", err)
	}

	var dets []model.Detection
	if err := json.Unmarshal(data, &dets); err != nil {
		return nil, fmt.Errorf("failed to parse detections file: %w", err)
	}
	return dets, nil
}

// renderTable converts TSV output to the requested table format.
func renderTable(tsv, format string) (string, error) {
	if format == "tsv" {
		return tsv, nil
	}

	grid := model.GridFromTSV(tsv)
	switch format {
	case "markdown":
		return grid.ToMarkdown(), nil
	case "html":
		return grid.ToHTML()
	case "aligned":
		return grid.Aligned(), nil
	default:
		return "", fmt.Errorf("unknown format %q (want tsv, markdown, html, or aligned)", format)
	}
}

func writeOutput(out, outputPath string, log zerolog.Logger) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().Str("output_file", outputPath).Int("bytes", len(out)).Msg("Output written")
		return nil
	}
	fmt.Println(out)
	return nil
}
