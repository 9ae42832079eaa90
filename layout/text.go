package layout

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/ocrlayout/model"
)

// DefaultSpaceWidthRatio is the fraction of the average character width that
// one inserted space represents.
const DefaultSpaceWidthRatio = 0.5

// ReconstructText rebuilds layout-preserving plain text from detections.
// Detections are clustered into lines keyed on their top edge, and the
// horizontal gap between neighbors on a line becomes a proportional run of
// spaces. Empty input yields an empty string.
func ReconstructText(dets []model.Detection, spaceWidthRatio float64) string {
	if len(dets) == 0 {
		return ""
	}

	items := newItems(dets)
	avgCharW := avgCharWidth(items)
	avgH := avgHeight(items)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].bbox.Top() < items[j].bbox.Top()
	})
	rows := clusterRows(items, top, left, avgH*0.5)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		var sb strings.Builder
		sb.WriteString(row[0].text)

		for i := 1; i < len(row); i++ {
			gap := row[i].bbox.Left() - row[i-1].bbox.Right()
			if gap > 0 {
				n := int(math.Round(gap / (avgCharW * spaceWidthRatio)))
				if n < 1 {
					n = 1
				}
				sb.WriteString(strings.Repeat(" ", n))
			}
			sb.WriteString(row[i].text)
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

var (
	headingSpaceRe   = regexp.MustCompile(`(#{1,6})([^\s#])`)
	colonSpaceRe     = regexp.MustCompile(`(:)([^\s/])`) // exempt "://" so URLs survive
	commaSpaceRe     = regexp.MustCompile(`,([^\s])`)
	semicolonSpaceRe = regexp.MustCompile(`;([^\s])`)
)

// PostProcessText repairs common OCR spacing defects: missing spaces after
// Markdown heading markers, colons, commas, and semicolons.
func PostProcessText(text string) string {
	text = headingSpaceRe.ReplaceAllString(text, "$1 $2")
	text = colonSpaceRe.ReplaceAllString(text, "$1 $2")
	text = commaSpaceRe.ReplaceAllString(text, ", $1")
	text = semicolonSpaceRe.ReplaceAllString(text, "; $1")
	return text
}

var listMarkerRe = regexp.MustCompile(`^[-*+0-9]`)

// addListMarkersByIndent prepends "- " to lines that are visibly indented
// relative to the leftmost detection. Headings, already-marked lines, and the
// first content line are left alone. A line qualifies when its source
// detection starts more than two character widths right of the minimum x1.
func addListMarkersByIndent(dets []model.Detection, text string) string {
	if len(dets) < 2 {
		return text
	}

	items := newItems(dets)

	minX := math.Inf(1)
	for _, it := range items {
		if it.bbox.Left() < minX {
			minX = it.bbox.Left()
		}
	}
	indentThreshold := avgItemCharWidth(items) * 2

	lines := strings.Split(text, "\n")
	firstContentFound := false

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if strings.HasPrefix(stripped, "#") || listMarkerRe.MatchString(stripped) {
			firstContentFound = true
			continue
		}

		var match *item
		for j := range items {
			if items[j].text != "" && strings.Contains(stripped, items[j].text) {
				match = &items[j]
				break
			}
		}

		if match != nil && firstContentFound && match.bbox.Left() > minX+indentThreshold {
			lines[i] = "- " + line
			continue
		}
		firstContentFound = true
	}

	return strings.Join(lines, "\n")
}

// ReconstructTextWithPostProcess composes text reconstruction, spacing
// repair, and indentation-based list marker annotation.
func ReconstructTextWithPostProcess(dets []model.Detection, spaceWidthRatio float64) string {
	text := ReconstructText(dets, spaceWidthRatio)
	text = PostProcessText(text)
	return addListMarkersByIndent(dets, text)
}
