// Package layout reconstructs reading structure from unordered OCR detections.
//
// The input is a flat set of [model.Detection] values (bounding box, text,
// confidence) in arbitrary order. The package infers structure geometrically,
// using tolerances derived from the average glyph size of the input.
//
// # Mode Detection
//
// [DetectMode] classifies a detection set as tabular or free text by counting
// detections that share a vertical alignment:
//
//	mode := layout.DetectMode(dets, layout.DefaultColThresholdRatio)
//
// # Table Reconstruction
//
// [ReconstructTable] clusters detections into rows and columns and emits a
// TSV string. The algorithm:
//
//  1. Greedy row clustering on vertical centers against the running row mean
//  2. Horizontal merging of fragments that belong to one logical cell
//  3. Column boundary identification from gaps between sorted x-centers
//  4. Nearest-boundary cell placement
//  5. Tab/newline serialization
//
// # Text Reconstruction
//
// [ReconstructText] clusters detections into lines keyed on the top edge and
// re-spaces them proportionally to the horizontal gaps. [PostProcessText]
// repairs common OCR spacing defects (missing spaces after Markdown heading
// markers, colons, commas, and semicolons), and
// [ReconstructTextWithPostProcess] additionally annotates indented lines with
// list markers.
//
// All functions are pure: they never mutate their input and hold no state
// between calls.
package layout
