// Package model provides the shared data types for OCR layout reconstruction.
//
// This package defines the user-facing data structures that the layout and
// postprocess packages operate on, making them the primary API for feeding
// recognition results into the library.
//
// # Detections
//
// A [Detection] is one OCR recognition result: a bounding [Box], the
// recognized text, and a confidence score. Boxes arrive in one of two wire
// shapes, a 4-point polygon or an [x1,y1,x2,y2] rectangle:
//
//	det := model.Detection{
//	    Box:        model.RectBox(10, 10, 100, 30),
//	    Text:       "Header1",
//	    Confidence: 0.99,
//	}
//
// Both shapes normalize to the same axis-aligned [BBox] via [Box.Normalize].
//
// # Geometry
//
// Geometric primitives use screen coordinates (Y grows downward):
//
//   - [BBox] - axis-aligned bounding box with center, union, and edge accessors
//   - [Point] - 2D point
//
// # Grids
//
// A [Grid] is the tabular output of table reconstruction: rows of cells with
// TSV round-tripping and export methods (ToMarkdown, ToHTML, Aligned).
package model
