package ocrlayout

import (
	"context"

	"github.com/tsawler/ocrlayout/layout"
	"github.com/tsawler/ocrlayout/model"
	"github.com/tsawler/ocrlayout/postprocess"
)

// Stage names reported to progress callbacks.
const (
	StageDetect      = "detect"
	StageReconstruct = "reconstruct"
	StagePostprocess = "postprocess"
	StageDone        = "done"
)

// ProgressFunc receives stage-boundary progress updates. Implementations
// must be fast; the pipeline calls them synchronously.
type ProgressFunc func(stage string, percent int)

// Pipeline runs the full reconstruction flow with progress reporting and
// cooperative cancellation. Each stage is short and runs to completion;
// the context is checked only between stages, so there are no partial
// results. A UI caller typically runs the pipeline on a background
// goroutine and discards the result after cancellation.
type Pipeline struct {
	// Detections is the OCR input.
	Detections []model.Detection

	// ForceMode skips mode detection when non-nil.
	ForceMode *layout.Mode

	// Settings configures table cell post-processing.
	Settings postprocess.Settings

	// TableConfig holds the table reconstruction tolerances.
	TableConfig layout.TableConfig

	// SpaceWidthRatio is the text-mode spacing ratio.
	SpaceWidthRatio float64

	// Progress, when non-nil, receives stage-boundary updates.
	Progress ProgressFunc
}

// NewPipeline creates a pipeline with default tolerances and settings.
func NewPipeline(dets []model.Detection) *Pipeline {
	return &Pipeline{
		Detections:      dets,
		Settings:        postprocess.DefaultSettings(),
		TableConfig:     layout.DefaultTableConfig(),
		SpaceWidthRatio: layout.DefaultSpaceWidthRatio,
	}
}

func (p *Pipeline) report(stage string, percent int) {
	if p.Progress != nil {
		p.Progress(stage, percent)
	}
}

// Run executes detect, reconstruct, and postprocess in order. The only
// error it can return is the context's, when the caller cancels between
// stages.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p.report(StageDetect, 50)
	mode := layout.ModeText
	if p.ForceMode != nil {
		mode = *p.ForceMode
	} else {
		mode = layout.DetectMode(p.Detections, layout.DefaultColThresholdRatio)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p.report(StageReconstruct, 70)
	var raw string
	if mode == layout.ModeTable {
		raw = layout.ReconstructTable(p.Detections, p.TableConfig)
	} else {
		raw = layout.ReconstructTextWithPostProcess(p.Detections, p.SpaceWidthRatio)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p.report(StagePostprocess, 90)
	processed := raw
	if mode == layout.ModeTable {
		processed = postprocess.ProcessTSV(raw, p.Settings)
	}

	p.report(StageDone, 100)
	return Result{Mode: mode, Layout: raw, Processed: processed}, nil
}
