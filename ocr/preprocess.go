package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MinDimension is the smallest width or height at which OCR accuracy holds
// up without upscaling. Screen captures of value tables are often smaller.
const MinDimension = 300

// PrepareImage decodes image data (PNG, JPEG, BMP, TIFF) and upscales it 2x
// with Catmull-Rom interpolation when either dimension is below
// MinDimension. The result is re-encoded as PNG, which Tesseract handles
// losslessly. Images already large enough are re-encoded without scaling.
func PrepareImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	out := src
	if b.Dx() < MinDimension || b.Dy() < MinDimension {
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, draw.Over, nil)
		out = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
