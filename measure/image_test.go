package measure

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tsawler/folio/model"
)

// Helper to encode a blank image in the named format.
func encodeImage(t *testing.T, format string, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		t.Fatalf("unknown format %s", format)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestProbeImage_Formats(t *testing.T) {
	for _, format := range []string{"png", "jpeg", "gif", "bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			data := encodeImage(t, format, 40, 30)
			size, got, err := ProbeImage(data)
			if err != nil {
				t.Fatalf("ProbeImage: %v", err)
			}
			if got != format {
				t.Errorf("expected format %s, got %s", format, got)
			}
			if size != (model.Size{Width: 40, Height: 30}) {
				t.Errorf("expected 40x30, got %+v", size)
			}
		})
	}
}

func TestProbeImage_GarbageData(t *testing.T) {
	_, _, err := ProbeImage([]byte("not an image at all"))
	if !errors.Is(err, ErrImageFormat) {
		t.Fatalf("expected ErrImageFormat, got %v", err)
	}
}

func TestImageMeasure(t *testing.T) {
	data := encodeImage(t, "png", 200, 150)
	m, err := ImageMeasure(data)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width() != 200 || m.Height() != 150 {
		t.Errorf("expected 200x150, got %.0fx%.0f", m.Width(), m.Height())
	}
}

func TestImageMeasureAtDPI(t *testing.T) {
	// A 300 DPI raster displays at roughly a third of its pixel count.
	data := encodeImage(t, "png", 2550, 3300)
	m, err := ImageMeasureAtDPI(data, 300)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.Width()-816) > 1e-9 || math.Abs(m.Height()-1056) > 1e-9 {
		t.Errorf("expected 816x1056, got %.1fx%.1f", m.Width(), m.Height())
	}

	if _, err := ImageMeasureAtDPI(data, 0); !errors.Is(err, ErrBadDPI) {
		t.Errorf("expected ErrBadDPI, got %v", err)
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name   string
		size   model.Size
		bounds model.Size
		want   model.Size
	}{
		{"wider than bounds", model.Size{Width: 800, Height: 600}, model.Size{Width: 200, Height: 400}, model.Size{Width: 200, Height: 150}},
		{"taller than bounds", model.Size{Width: 100, Height: 400}, model.Size{Width: 200, Height: 100}, model.Size{Width: 25, Height: 100}},
		{"already fits", model.Size{Width: 50, Height: 50}, model.Size{Width: 200, Height: 100}, model.Size{Width: 50, Height: 50}},
		{"degenerate bounds", model.Size{Width: 50, Height: 50}, model.Size{}, model.Size{Width: 50, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitWithin(tt.size, tt.bounds)
			if math.Abs(got.Width-tt.want.Width) > 1e-9 || math.Abs(got.Height-tt.want.Height) > 1e-9 {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestEMUConversions(t *testing.T) {
	if got := EMUToPixels(914400); got != 96 {
		t.Errorf("expected one inch to be 96px, got %v", got)
	}
	if got := EMUToPixels(9525); got != 1 {
		t.Errorf("expected 9525 EMU to be 1px, got %v", got)
	}
	if got := PixelsToEMU(96); got != 914400 {
		t.Errorf("expected 96px to be 914400 EMU, got %d", got)
	}
	if got := PixelsToEMU(0.5); got != 4763 {
		t.Errorf("expected half a pixel to round to 4763 EMU, got %d", got)
	}

	m := ImageMeasureFromEMU(1828800, 914400)
	if m.Width() != 192 || m.Height() != 96 {
		t.Errorf("expected 192x96, got %.0fx%.0f", m.Width(), m.Height())
	}
}
