package layout

import (
	"math"
	"sort"

	"github.com/tsawler/ocrlayout/model"
)

// TableConfig controls table reconstruction tolerances. All ratios are
// multiples of the input's average glyph size.
type TableConfig struct {
	// RowHeightRatio scales the average box height into the row clustering
	// tolerance.
	RowHeightRatio float64

	// ColGapThresholdRatio scales the average character width into the
	// minimum x-center gap that starts a new column.
	ColGapThresholdRatio float64

	// HorizontalMergeThresholdRatio scales the average character width into
	// the window (small gaps and slight overlaps) within which adjacent
	// fragments on one row merge into a single cell.
	HorizontalMergeThresholdRatio float64
}

// DefaultTableConfig returns the default table reconstruction configuration.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		RowHeightRatio:                0.5,
		ColGapThresholdRatio:          1.0,
		HorizontalMergeThresholdRatio: 0.5,
	}
}

// ReconstructTable clusters detections into rows and columns and serializes
// the result as TSV. Empty input yields an empty string.
func ReconstructTable(dets []model.Detection, cfg TableConfig) string {
	return ReconstructTableGrid(dets, cfg).ToTSV()
}

// ReconstructTableGrid is ReconstructTable without the final serialization,
// for callers that want to export the grid in another format.
func ReconstructTableGrid(dets []model.Detection, cfg TableConfig) model.Grid {
	if len(dets) == 0 {
		return model.Grid{}
	}

	items := newItems(dets)
	avgCharW := avgCharWidth(items)
	avgH := avgHeight(items)

	// Row clustering on vertical centers.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].bbox.CenterY() < items[j].bbox.CenterY()
	})
	rows := clusterRows(items, centerY, centerX, avgH*cfg.RowHeightRatio)

	// Repair OCR fragmentation of one logical cell into several detections.
	rows = mergeRowFragments(rows, avgCharW*cfg.HorizontalMergeThresholdRatio)

	boundaries := columnBoundaries(rows, avgCharW*cfg.ColGapThresholdRatio, avgH)

	return placeInGrid(rows, boundaries)
}

func centerX(it item) float64 { return it.bbox.CenterX() }
func centerY(it item) float64 { return it.bbox.CenterY() }
func left(it item) float64    { return it.bbox.Left() }
func top(it item) float64     { return it.bbox.Top() }

// mergeRowFragments walks each row left to right and merges a fragment into
// its predecessor when the horizontal gap is strictly within ±threshold.
// Merged text is joined with a single space and the running box is expanded
// to cover both fragments.
func mergeRowFragments(rows [][]item, threshold float64) [][]item {
	merged := make([][]item, len(rows))

	for i, row := range rows {
		if len(row) == 0 {
			merged[i] = nil
			continue
		}

		out := []item{row[0]}
		for _, cur := range row[1:] {
			prev := &out[len(out)-1]
			gap := cur.bbox.Left() - prev.bbox.Right()

			if gap < threshold && gap > -threshold {
				prev.text += " " + cur.text
				right := math.Max(prev.bbox.Right(), cur.bbox.Right())
				prev.bbox.Width = right - prev.bbox.X
			} else {
				out = append(out, cur)
			}
		}
		merged[i] = out
	}

	return merged
}

// columnBoundaries infers column x-centers from the sorted x-centers of all
// merged fragments. A gap larger than gapThreshold starts a new boundary.
// Candidates within dedupTolerance of an accepted boundary are dropped; the
// tolerance is the average box height, a vertical measure reused here for a
// horizontal decision because it is stable across inputs.
func columnBoundaries(rows [][]item, gapThreshold, dedupTolerance float64) []float64 {
	var centers []float64
	for _, row := range rows {
		for _, it := range row {
			centers = append(centers, it.bbox.CenterX())
		}
	}
	if len(centers) == 0 {
		return nil
	}
	sort.Float64s(centers)

	candidates := []float64{centers[0]}
	for i := 1; i < len(centers); i++ {
		if centers[i]-centers[i-1] > gapThreshold {
			candidates = append(candidates, centers[i])
		}
	}

	var boundaries []float64
	for _, c := range candidates {
		isNew := true
		for _, b := range boundaries {
			if math.Abs(c-b) < dedupTolerance {
				isNew = false
				break
			}
		}
		if isNew {
			boundaries = append(boundaries, c)
		}
	}
	sort.Float64s(boundaries)

	return boundaries
}

// placeInGrid assigns every fragment to the nearest column boundary. When two
// fragments land in the same cell their texts are joined with a space.
func placeInGrid(rows [][]item, boundaries []float64) model.Grid {
	grid := make(model.Grid, len(rows))

	for i, row := range rows {
		grid[i] = make([]string, len(boundaries))
		for _, it := range row {
			col := -1
			minDist := math.Inf(1)
			for j, b := range boundaries {
				if dist := math.Abs(it.bbox.CenterX() - b); dist < minDist {
					minDist = dist
					col = j
				}
			}
			if col < 0 {
				continue
			}
			if grid[i][col] != "" {
				grid[i][col] += " " + it.text
			} else {
				grid[i][col] = it.text
			}
		}
	}

	return grid
}
