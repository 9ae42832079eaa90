//go:build ocr

// Package ocr adapts the Tesseract OCR engine into the detection input the
// layout package consumes.
//
// This package wraps Tesseract via gosseract and requires Tesseract to be
// installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Builds without the "ocr" build tag get a stub that returns
// ErrOCRNotEnabled.
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/ocrlayout/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Detections performs OCR on image data (PNG, TIFF, JPEG, etc.) and returns
// word-level detections. Tesseract confidences (0-100) are normalized to the
// 0-1 range. Words with empty text are dropped.
func (c *Client) Detections(imageData []byte) ([]model.Detection, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	dets := make([]model.Detection, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		dets = append(dets, model.Detection{
			Box: model.RectBox(
				float64(b.Box.Min.X), float64(b.Box.Min.Y),
				float64(b.Box.Max.X), float64(b.Box.Max.Y),
			),
			Text:       b.Word,
			Confidence: b.Confidence / 100,
		})
	}

	return dets, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
