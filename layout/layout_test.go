package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/ocrlayout/model"
)

func det(text string, x1, y1, x2, y2 float64) model.Detection {
	return model.Detection{
		Box:        model.RectBox(x1, y1, x2, y2),
		Text:       text,
		Confidence: 0.9,
	}
}

// tableDets is a 2x2 grid: two header cells over two value cells.
func tableDets() []model.Detection {
	return []model.Detection{
		det("Header1", 10, 10, 80, 30),
		det("Header2", 120, 10, 210, 30),
		det("Value1", 10, 50, 70, 70),
		det("Value2", 120, 50, 185, 70),
	}
}

// ============================================================================
// Mode Detection Tests
// ============================================================================

func TestDetectModeSmallInputs(t *testing.T) {
	tests := []struct {
		name string
		dets []model.Detection
	}{
		{"empty", nil},
		{"single", []model.Detection{det("one", 10, 10, 40, 30)}},
		{"pair", []model.Detection{
			det("one", 10, 10, 40, 30),
			det("two", 10, 50, 40, 70),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMode(tt.dets, DefaultColThresholdRatio); got != ModeText {
				t.Errorf("DetectMode() = %v, want %v", got, ModeText)
			}
		})
	}
}

func TestDetectModeTable(t *testing.T) {
	// Header1/Value1 share an x-center column, so half the detections
	// participate in a vertical alignment.
	if got := DetectMode(tableDets(), DefaultColThresholdRatio); got != ModeTable {
		t.Errorf("DetectMode() = %v, want %v", got, ModeTable)
	}
}

func TestDetectModeText(t *testing.T) {
	// Staggered x-centers, no vertical alignment anywhere.
	dets := []model.Detection{
		det("The", 10, 10, 40, 30),
		det("quick", 50, 10, 100, 30),
		det("jumped", 100, 50, 160, 70),
	}

	if got := DetectMode(dets, DefaultColThresholdRatio); got != ModeText {
		t.Errorf("DetectMode() = %v, want %v", got, ModeText)
	}
}

func TestModeString(t *testing.T) {
	if ModeTable.String() != "table" {
		t.Errorf("ModeTable.String() = %q, want %q", ModeTable.String(), "table")
	}
	if ModeText.String() != "text" {
		t.Errorf("ModeText.String() = %q, want %q", ModeText.String(), "text")
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("table") != ModeTable {
		t.Errorf("ParseMode(table) = %v, want %v", ParseMode("table"), ModeTable)
	}
	if ParseMode("text") != ModeText {
		t.Errorf("ParseMode(text) = %v, want %v", ParseMode("text"), ModeText)
	}
	if ParseMode("anything else") != ModeText {
		t.Errorf("ParseMode(anything else) = %v, want %v", ParseMode("anything else"), ModeText)
	}
}

// ============================================================================
// Table Reconstruction Tests
// ============================================================================

func TestReconstructTable(t *testing.T) {
	got := ReconstructTable(tableDets(), DefaultTableConfig())
	want := "Header1\tHeader2\nValue1\tValue2"
	if got != want {
		t.Errorf("ReconstructTable() = %q, want %q", got, want)
	}
}

func TestReconstructTableInputOrderIrrelevant(t *testing.T) {
	dets := tableDets()
	shuffled := []model.Detection{dets[3], dets[0], dets[2], dets[1]}

	got := ReconstructTable(shuffled, DefaultTableConfig())
	want := "Header1\tHeader2\nValue1\tValue2"
	if got != want {
		t.Errorf("ReconstructTable() = %q, want %q", got, want)
	}
}

func TestReconstructTableEmpty(t *testing.T) {
	if got := ReconstructTable(nil, DefaultTableConfig()); got != "" {
		t.Errorf("ReconstructTable(nil) = %q, want empty", got)
	}
}

func TestReconstructTableMergesFragments(t *testing.T) {
	// Two fragments of one logical cell, 4px apart. Average char width is
	// 10, so the default merge window of half a character (5px) joins them.
	dets := []model.Detection{
		det("Value1A", 10, 10, 80, 30),
		det("Value1B", 84, 10, 154, 30),
	}

	got := ReconstructTable(dets, DefaultTableConfig())
	want := "Value1A Value1B"
	if got != want {
		t.Errorf("ReconstructTable() = %q, want %q", got, want)
	}
}

func TestReconstructTableMergeDisabledByTightWindow(t *testing.T) {
	dets := []model.Detection{
		det("Value1A", 10, 10, 80, 30),
		det("Value1B", 84, 10, 154, 30),
	}

	cfg := DefaultTableConfig()
	cfg.HorizontalMergeThresholdRatio = 0.01

	got := ReconstructTable(dets, cfg)
	want := "Value1A\tValue1B"
	if got != want {
		t.Errorf("ReconstructTable() = %q, want %q", got, want)
	}
}

func TestReconstructTableGridExport(t *testing.T) {
	grid := ReconstructTableGrid(tableDets(), DefaultTableConfig())

	if grid.RowCount() != 2 || grid.ColCount() != 2 {
		t.Fatalf("grid = %d x %d, want 2 x 2", grid.RowCount(), grid.ColCount())
	}
	if grid[0][0] != "Header1" || grid[1][1] != "Value2" {
		t.Errorf("grid = %v, want Header1/Value2 at corners", grid)
	}
}

// ============================================================================
// Text Reconstruction Tests
// ============================================================================

func TestReconstructText(t *testing.T) {
	// Gap of 50px at avgCharWidth 10 and ratio 0.5 becomes 10 spaces.
	dets := []model.Detection{
		det("Hello", 10, 10, 60, 30),
		det("world", 110, 10, 160, 30),
		det("next", 10, 50, 50, 70),
	}

	got := ReconstructText(dets, DefaultSpaceWidthRatio)
	want := "Hello" + strings.Repeat(" ", 10) + "world\nnext"
	if got != want {
		t.Errorf("ReconstructText() = %q, want %q", got, want)
	}
}

func TestReconstructTextOverlapNoSpace(t *testing.T) {
	// Overlapping neighbors get no separator at all.
	dets := []model.Detection{
		det("ab", 10, 10, 30, 30),
		det("cd", 28, 10, 48, 30),
	}

	got := ReconstructText(dets, DefaultSpaceWidthRatio)
	if got != "abcd" {
		t.Errorf("ReconstructText() = %q, want %q", got, "abcd")
	}
}

func TestReconstructTextMinimumOneSpace(t *testing.T) {
	// A positive gap too small to round to one space still gets one.
	dets := []model.Detection{
		det("ab", 10, 10, 30, 30),
		det("cd", 31, 10, 51, 30),
	}

	got := ReconstructText(dets, DefaultSpaceWidthRatio)
	if got != "ab cd" {
		t.Errorf("ReconstructText() = %q, want %q", got, "ab cd")
	}
}

func TestReconstructTextEmpty(t *testing.T) {
	if got := ReconstructText(nil, DefaultSpaceWidthRatio); got != "" {
		t.Errorf("ReconstructText(nil) = %q, want empty", got)
	}
}

// ============================================================================
// Text Post-Processing Tests
// ============================================================================

func TestPostProcessText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading marker", "##Heading", "## Heading"},
		{"deep heading", "###### Fine", "###### Fine"},
		{"colon", "key:value", "key: value"},
		{"url exempt", "see https://example.com", "see https://example.com"},
		{"comma", "a,b", "a, b"},
		{"semicolon", "x;y", "x; y"},
		{"already spaced", "a, b; c: d", "a, b; c: d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostProcessText(tt.in); got != tt.want {
				t.Errorf("PostProcessText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReconstructTextWithPostProcessListMarkers(t *testing.T) {
	// "indented" starts 30px right of the leftmost detection, beyond the
	// two-character threshold, so it gains a list marker. The flush line
	// after it does not.
	dets := []model.Detection{
		det("Title", 10, 10, 60, 30),
		det("indented", 40, 50, 120, 70),
		det("flush", 10, 90, 60, 110),
	}

	got := ReconstructTextWithPostProcess(dets, DefaultSpaceWidthRatio)
	want := "Title\n- indented\nflush"
	if got != want {
		t.Errorf("ReconstructTextWithPostProcess() = %q, want %q", got, want)
	}
}

func TestReconstructTextWithPostProcessFirstLineNotMarked(t *testing.T) {
	// An indented first content line stays unmarked.
	dets := []model.Detection{
		det("indented", 40, 10, 120, 30),
		det("flush", 10, 50, 60, 70),
	}

	got := ReconstructTextWithPostProcess(dets, DefaultSpaceWidthRatio)
	want := "indented\nflush"
	if got != want {
		t.Errorf("ReconstructTextWithPostProcess() = %q, want %q", got, want)
	}
}

func TestReconstructTextWithPostProcessSkipsMarkedLines(t *testing.T) {
	// Lines already starting with a list or heading marker are untouched.
	dets := []model.Detection{
		det("# Title", 10, 10, 80, 30),
		det("- already marked", 40, 50, 200, 70),
	}

	got := ReconstructTextWithPostProcess(dets, DefaultSpaceWidthRatio)
	want := "# Title\n- already marked"
	if got != want {
		t.Errorf("ReconstructTextWithPostProcess() = %q, want %q", got, want)
	}
}
