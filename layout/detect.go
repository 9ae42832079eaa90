package layout

import (
	"math"

	"github.com/tsawler/ocrlayout/model"
)

// Mode classifies a detection set as tabular or free text.
type Mode int

const (
	// ModeText indicates free-flowing text.
	ModeText Mode = iota
	// ModeTable indicates tabular data.
	ModeTable
)

// String returns "text" or "table".
func (m Mode) String() string {
	if m == ModeTable {
		return "table"
	}
	return "text"
}

// ParseMode converts a string to a Mode. Anything other than "table" is text.
func ParseMode(s string) Mode {
	if s == "table" {
		return ModeTable
	}
	return ModeText
}

// DefaultColThresholdRatio is the fraction of the average character width
// within which two x-centers count as vertically aligned.
const DefaultColThresholdRatio = 0.7

// DetectMode reports whether the detections look like a table or plain text.
// Fewer than 3 detections are always text. Otherwise every unordered pair is
// checked for x-center alignment within avgCharWidth*colThresholdRatio; the
// set is a table when at least half the detections are part of some vertical
// alignment. The pair scan is O(n²), fine for screenshot-scale inputs.
func DetectMode(dets []model.Detection, colThresholdRatio float64) Mode {
	if len(dets) < 3 {
		return ModeText
	}

	items := newItems(dets)
	colThreshold := avgItemCharWidth(items) * colThresholdRatio

	aligned := make(map[int]struct{})
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if math.Abs(items[i].bbox.CenterX()-items[j].bbox.CenterX()) < colThreshold {
				aligned[i] = struct{}{}
				aligned[j] = struct{}{}
			}
		}
	}

	if float64(len(aligned)) >= float64(len(items))/2 && len(items) > 2 {
		return ModeTable
	}
	return ModeText
}
