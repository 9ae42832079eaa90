package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode prepared image: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestPrepareImageUpscalesSmall(t *testing.T) {
	out, err := PrepareImage(encodePNG(t, 100, 40))
	if err != nil {
		t.Fatalf("PrepareImage() error = %v", err)
	}

	w, h := decodeSize(t, out)
	if w != 200 || h != 80 {
		t.Errorf("prepared size = %dx%d, want 200x80", w, h)
	}
}

func TestPrepareImageKeepsLarge(t *testing.T) {
	out, err := PrepareImage(encodePNG(t, 400, 320))
	if err != nil {
		t.Fatalf("PrepareImage() error = %v", err)
	}

	w, h := decodeSize(t, out)
	if w != 400 || h != 320 {
		t.Errorf("prepared size = %dx%d, want 400x320", w, h)
	}
}

func TestPrepareImageInvalidData(t *testing.T) {
	if _, err := PrepareImage([]byte("not an image")); err == nil {
		t.Error("PrepareImage(garbage) expected error, got nil")
	}
}
