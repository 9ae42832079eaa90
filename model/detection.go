package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Box holds the raw geometry of one detection as produced by an OCR engine.
// Engines report either a 4-point polygon (one point per corner, possibly
// skewed) or an axis-aligned [x1,y1,x2,y2] rectangle. Both forms normalize
// to the same axis-aligned envelope.
type Box struct {
	points []Point
	rect   [4]float64
	isRect bool
}

// PolyBox creates a Box from polygon corner points.
func PolyBox(points ...Point) Box {
	return Box{points: points}
}

// RectBox creates a Box from rectangle coordinates.
func RectBox(x1, y1, x2, y2 float64) Box {
	return Box{rect: [4]float64{x1, y1, x2, y2}, isRect: true}
}

// Normalize converts the raw box into an axis-aligned bounding box. For
// polygon input the envelope is the min/max over all corner coordinates.
// A box with the wrong number of points is a caller contract violation.
func (b Box) Normalize() BBox {
	if b.isRect {
		return NewBBox(b.rect[0], b.rect[1], b.rect[2]-b.rect[0], b.rect[3]-b.rect[1])
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range b.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return NewBBox(minX, minY, maxX-minX, maxY-minY)
}

// UnmarshalJSON accepts both wire shapes: [[x,y],[x,y],[x,y],[x,y]] for
// polygons and [x1,y1,x2,y2] for rectangles.
func (b *Box) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("box must be a JSON array: %w", err)
	}
	if len(elems) == 0 {
		return fmt.Errorf("box array is empty")
	}

	// A leading nested array means polygon form.
	if len(elems[0]) > 0 && elems[0][0] == '[' {
		points := make([]Point, 0, len(elems))
		for i, raw := range elems {
			var pair [2]float64
			if err := json.Unmarshal(raw, &pair); err != nil {
				return fmt.Errorf("box point %d: %w", i, err)
			}
			points = append(points, Point{X: pair[0], Y: pair[1]})
		}
		*b = PolyBox(points...)
		return nil
	}

	var coords [4]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("box rectangle: %w", err)
	}
	*b = RectBox(coords[0], coords[1], coords[2], coords[3])
	return nil
}

// MarshalJSON emits the box in the same shape it was created with.
func (b Box) MarshalJSON() ([]byte, error) {
	if b.isRect {
		return json.Marshal(b.rect)
	}
	pairs := make([][2]float64, len(b.points))
	for i, p := range b.points {
		pairs[i] = [2]float64{p.X, p.Y}
	}
	return json.Marshal(pairs)
}

// Detection is one OCR recognition result: a bounding box, the recognized
// text, and a confidence score. Detections are immutable inputs; the layout
// algorithms derive working copies and never mutate them.
type Detection struct {
	Box        Box     `json:"box"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
