package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBox(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)
	if bbox.X != 10 || bbox.Y != 20 || bbox.Width != 100 || bbox.Height != 50 {
		t.Errorf("NewBBox() = %+v, want {10, 20, 100, 50}", bbox)
	}
}

func TestBBoxEdges(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)

	if bbox.Left() != 10 {
		t.Errorf("Left() = %v, want 10", bbox.Left())
	}
	if bbox.Right() != 110 {
		t.Errorf("Right() = %v, want 110", bbox.Right())
	}
	if bbox.Top() != 20 {
		t.Errorf("Top() = %v, want 20", bbox.Top())
	}
	if bbox.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", bbox.Bottom())
	}
}

func TestBBoxCenter(t *testing.T) {
	bbox := NewBBox(0, 0, 100, 50)

	if bbox.CenterX() != 50 {
		t.Errorf("CenterX() = %v, want 50", bbox.CenterX())
	}
	if bbox.CenterY() != 25 {
		t.Errorf("CenterY() = %v, want 25", bbox.CenterY())
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 10, 10)

	got := a.Union(b)
	want := NewBBox(0, 0, 15, 15)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestBBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     BBox
		expected bool
	}{
		{"overlapping", NewBBox(0, 0, 10, 10), NewBBox(5, 5, 10, 10), true},
		{"touching edges", NewBBox(0, 0, 10, 10), NewBBox(10, 0, 10, 10), true},
		{"disjoint", NewBBox(0, 0, 10, 10), NewBBox(20, 20, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// Box Tests
// ============================================================================

func TestBoxNormalizeRect(t *testing.T) {
	bbox := RectBox(10, 20, 110, 70).Normalize()
	want := NewBBox(10, 20, 100, 50)
	if bbox != want {
		t.Errorf("Normalize() = %+v, want %+v", bbox, want)
	}
}

func TestBoxNormalizePolygon(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   BBox
	}{
		{
			"axis-aligned corners",
			[]Point{{10, 20}, {110, 20}, {110, 70}, {10, 70}},
			NewBBox(10, 20, 100, 50),
		},
		{
			"skewed polygon takes envelope",
			[]Point{{12, 20}, {110, 22}, {108, 70}, {10, 68}},
			NewBBox(10, 20, 100, 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolyBox(tt.points...).Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxNormalizeEquivalence(t *testing.T) {
	// A polygon whose corners trace a rectangle must normalize to the same
	// bbox as the flat rectangle form.
	poly := PolyBox(Point{10, 20}, Point{110, 20}, Point{110, 70}, Point{10, 70}).Normalize()
	rect := RectBox(10, 20, 110, 70).Normalize()
	if poly != rect {
		t.Errorf("polygon Normalize() = %+v, rect Normalize() = %+v, want equal", poly, rect)
	}
}

func TestBoxUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want BBox
	}{
		{"polygon form", `[[10,20],[110,20],[110,70],[10,70]]`, NewBBox(10, 20, 100, 50)},
		{"rectangle form", `[10,20,110,70]`, NewBBox(10, 20, 100, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Box
			if err := json.Unmarshal([]byte(tt.json), &b); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := b.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxUnmarshalJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not an array", `{"x":1}`},
		{"empty array", `[]`},
		{"bad point", `[["a","b"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Box
			if err := json.Unmarshal([]byte(tt.json), &b); err == nil {
				t.Errorf("Unmarshal(%s) expected error, got nil", tt.json)
			}
		})
	}
}

func TestBoxMarshalRoundTrip(t *testing.T) {
	in := `[[10,20],[110,20],[110,70],[10,70]]`

	var b Box
	if err := json.Unmarshal([]byte(in), &b); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != in {
		t.Errorf("Marshal() = %s, want %s", out, in)
	}
}

func TestDetectionUnmarshal(t *testing.T) {
	in := `{"box":[10,20,110,70],"text":"Voltage","confidence":0.93}`

	var d Detection
	if err := json.Unmarshal([]byte(in), &d); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if d.Text != "Voltage" {
		t.Errorf("Text = %q, want %q", d.Text, "Voltage")
	}
	if d.Confidence != 0.93 {
		t.Errorf("Confidence = %v, want 0.93", d.Confidence)
	}
	if got := d.Box.Normalize(); got != NewBBox(10, 20, 100, 50) {
		t.Errorf("Box.Normalize() = %+v, want {10, 20, 100, 50}", got)
	}
}

// ============================================================================
// Grid Tests
// ============================================================================

func TestGridFromTSV(t *testing.T) {
	grid := GridFromTSV("a\tb\nc\td")

	if grid.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", grid.RowCount())
	}
	if grid.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", grid.ColCount())
	}
	if grid[1][0] != "c" {
		t.Errorf("grid[1][0] = %q, want %q", grid[1][0], "c")
	}
}

func TestGridFromTSVEmpty(t *testing.T) {
	grid := GridFromTSV("")
	if grid.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", grid.RowCount())
	}
}

func TestGridTSVRoundTrip(t *testing.T) {
	in := "Header1\tHeader2\nValue1\tValue2"
	if got := GridFromTSV(in).ToTSV(); got != in {
		t.Errorf("ToTSV() = %q, want %q", got, in)
	}
}

func TestGridToMarkdown(t *testing.T) {
	grid := Grid{{"Name", "Value"}, {"R1", "4.7k"}}

	got := grid.ToMarkdown()
	want := "| Name | Value |\n|---|---|\n| R1 | 4.7k |\n"
	if got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestGridToHTML(t *testing.T) {
	grid := Grid{{"Name", "Value"}, {"R1", "<1k"}}

	got, err := grid.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, "<th>Name</th>") {
		t.Errorf("ToHTML() missing header cell: %s", got)
	}
	if !strings.Contains(got, "<td>R1</td>") {
		t.Errorf("ToHTML() missing data cell: %s", got)
	}
	// Cell text must be escaped.
	if !strings.Contains(got, "&lt;1k") {
		t.Errorf("ToHTML() did not escape cell text: %s", got)
	}
}

func TestGridAligned(t *testing.T) {
	grid := Grid{{"Name", "Value"}, {"R1", "4.7k"}}

	got := grid.Aligned()
	want := "Name  Value\nR1    4.7k"
	if got != want {
		t.Errorf("Aligned() = %q, want %q", got, want)
	}
}

func TestGridAlignedWideRunes(t *testing.T) {
	grid := Grid{{"名前", "x"}, {"ab", "y"}}

	got := grid.Aligned()
	// 名前 occupies 4 cells, ab occupies 2, so ab gets 2 extra pad spaces.
	want := "名前  x\nab    y"
	if got != want {
		t.Errorf("Aligned() = %q, want %q", got, want)
	}
}
