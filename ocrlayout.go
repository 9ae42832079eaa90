// Package ocrlayout provides a fluent API for reconstructing structured
// output from positioned OCR detections.
//
// A flat, unordered set of detections (bounding box, text, confidence) is
// classified as a table or free text, reconstructed geometrically, and, for
// tables, post-processed cell by cell (engineering-prefix aware thresholds,
// unit conversion, notation rendering).
//
// Basic usage:
//
//	result := ocrlayout.FromDetections(dets).Reconstruct()
//	fmt.Println(result.Processed)
//
// With options:
//
//	settings := postprocess.LoadSettings("settings.json")
//	result := ocrlayout.FromDetections(dets).
//	    Table().
//	    WithSettings(settings).
//	    Reconstruct()
//
// For staged execution with progress reporting and cancellation, see
// [Pipeline]. The lower-level layout and postprocess packages are also
// available directly.
package ocrlayout

import (
	"github.com/tsawler/ocrlayout/layout"
	"github.com/tsawler/ocrlayout/model"
	"github.com/tsawler/ocrlayout/postprocess"
)

// Reconstructor accumulates configuration for one reconstruction call.
type Reconstructor struct {
	dets    []model.Detection
	options Options
}

// Result holds the output of one reconstruction.
type Result struct {
	// Mode is the detected (or forced) layout mode.
	Mode layout.Mode

	// Layout is the raw reconstruction: TSV for tables, spaced plain text
	// otherwise.
	Layout string

	// Processed is the display output: the post-processed grid for tables,
	// the spacing-repaired text otherwise.
	Processed string
}

// FromDetections starts a reconstruction over the given detections. The
// input order is irrelevant; detections are re-sorted internally and never
// mutated.
func FromDetections(dets []model.Detection) *Reconstructor {
	return &Reconstructor{
		dets:    dets,
		options: defaultOptions(),
	}
}

// Table forces table mode, skipping detection.
func (r *Reconstructor) Table() *Reconstructor {
	mode := layout.ModeTable
	r.options.forceMode = &mode
	return r
}

// Text forces text mode, skipping detection.
func (r *Reconstructor) Text() *Reconstructor {
	mode := layout.ModeText
	r.options.forceMode = &mode
	return r
}

// WithSettings enables cell post-processing for table output.
func (r *Reconstructor) WithSettings(s postprocess.Settings) *Reconstructor {
	r.options.settings = &s
	return r
}

// WithTableConfig overrides the table reconstruction tolerances.
func (r *Reconstructor) WithTableConfig(cfg layout.TableConfig) *Reconstructor {
	r.options.tableConfig = cfg
	return r
}

// SpaceWidthRatio overrides the text-mode spacing ratio.
func (r *Reconstructor) SpaceWidthRatio(ratio float64) *Reconstructor {
	r.options.spaceWidthRatio = ratio
	return r
}

// Mode returns the mode that Reconstruct will use: the forced mode if one
// was set, the detected mode otherwise.
func (r *Reconstructor) Mode() layout.Mode {
	if r.options.forceMode != nil {
		return *r.options.forceMode
	}
	return layout.DetectMode(r.dets, r.options.colThresholdRatio)
}

// Reconstruct runs detection, reconstruction, and post-processing and
// returns the result. It cannot fail: degenerate input degrades to empty
// output.
func (r *Reconstructor) Reconstruct() Result {
	mode := r.Mode()

	if mode == layout.ModeTable {
		raw := layout.ReconstructTable(r.dets, r.options.tableConfig)
		processed := raw
		if r.options.settings != nil {
			processed = postprocess.ProcessTSV(raw, *r.options.settings)
		}
		return Result{Mode: mode, Layout: raw, Processed: processed}
	}

	raw := layout.ReconstructText(r.dets, r.options.spaceWidthRatio)
	return Result{
		Mode:      mode,
		Layout:    raw,
		Processed: layout.ReconstructTextWithPostProcess(r.dets, r.options.spaceWidthRatio),
	}
}

// Grid reconstructs in table mode and returns the grid form, for callers
// that want Markdown, HTML, or aligned export instead of TSV.
func (r *Reconstructor) Grid() model.Grid {
	return layout.ReconstructTableGrid(r.dets, r.options.tableConfig)
}
