package ocrlayout

import (
	"github.com/tsawler/ocrlayout/layout"
	"github.com/tsawler/ocrlayout/postprocess"
)

// Options holds configuration for a reconstruction call.
type Options struct {
	// forceMode skips mode detection when non-nil.
	forceMode *layout.Mode

	// colThresholdRatio feeds mode detection.
	colThresholdRatio float64

	// spaceWidthRatio feeds text reconstruction.
	spaceWidthRatio float64

	// tableConfig feeds table reconstruction.
	tableConfig layout.TableConfig

	// settings enables table cell post-processing when non-nil.
	settings *postprocess.Settings
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() Options {
	return Options{
		forceMode:         nil,
		colThresholdRatio: layout.DefaultColThresholdRatio,
		spaceWidthRatio:   layout.DefaultSpaceWidthRatio,
		tableConfig:       layout.DefaultTableConfig(),
		settings:          nil,
	}
}
