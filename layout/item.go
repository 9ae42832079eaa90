package layout

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/tsawler/ocrlayout/model"
)

// defaultCharWidth is used when the input carries no text at all, so the
// width statistics would otherwise divide by zero.
const defaultCharWidth = 10

// item is the working record for one detection: its text plus the normalized
// bounding box. Items are copies; the caller's detections stay untouched.
type item struct {
	text string
	bbox model.BBox
}

func newItems(dets []model.Detection) []item {
	items := make([]item, len(dets))
	for i, d := range dets {
		items[i] = item{text: d.Text, bbox: d.Box.Normalize()}
	}
	return items
}

// avgHeight returns the mean box height over all items.
func avgHeight(items []item) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range items {
		sum += it.bbox.Height
	}
	return sum / float64(len(items))
}

// avgCharWidth estimates glyph width as total box width over total rune
// count. Falls back to defaultCharWidth when there is no text.
func avgCharWidth(items []item) float64 {
	totalWidth := 0.0
	totalRunes := 0
	for _, it := range items {
		totalWidth += it.bbox.Width
		totalRunes += utf8.RuneCountInString(it.text)
	}
	if totalRunes == 0 {
		return defaultCharWidth
	}
	return totalWidth / float64(totalRunes)
}

// avgItemCharWidth estimates glyph width as the mean of per-item width/runes
// ratios over items that carry text. DetectMode and the list-marker pass use
// this per-item form; the reconstructors use the aggregate avgCharWidth.
func avgItemCharWidth(items []item) float64 {
	sum := 0.0
	n := 0
	for _, it := range items {
		if runes := utf8.RuneCountInString(it.text); runes > 0 {
			sum += it.bbox.Width / float64(runes)
			n++
		}
	}
	if n == 0 {
		return defaultCharWidth
	}
	return sum / float64(n)
}

// clusterRows greedily groups items, already sorted on the cluster key, into
// rows. An item joins the current row when its key is within tolerance of the
// running mean key of the row; otherwise the row closes and a new one starts.
// Each finished row is sorted left to right on the sort key.
func clusterRows(items []item, key, sortKey func(item) float64, tolerance float64) [][]item {
	if len(items) == 0 {
		return nil
	}

	var rows [][]item
	current := []item{items[0]}

	closeRow := func() {
		sort.SliceStable(current, func(i, j int) bool {
			return sortKey(current[i]) < sortKey(current[j])
		})
		rows = append(rows, current)
	}

	for _, it := range items[1:] {
		sum := 0.0
		for _, r := range current {
			sum += key(r)
		}
		mean := sum / float64(len(current))

		if math.Abs(key(it)-mean) < tolerance {
			current = append(current, it)
		} else {
			closeRow()
			current = []item{it}
		}
	}
	closeRow()

	return rows
}
