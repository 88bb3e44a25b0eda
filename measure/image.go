package measure

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	// Registered formats for probing. Probing reads headers only and
	// never decodes pixel data.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/folio/model"
)

// Common errors
var (
	ErrImageFormat = errors.New("measure: unrecognized image format")
	ErrImageSize   = errors.New("measure: non-positive image dimensions")
	ErrBadDPI      = errors.New("measure: non-positive dpi")
)

// ProbeImage reads just enough of an encoded image to learn its
// intrinsic pixel dimensions and format name. PNG, JPEG, GIF, BMP,
// TIFF, and WebP are recognized.
func ProbeImage(data []byte) (model.Size, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.Size{}, "", fmt.Errorf("%w: %v", ErrImageFormat, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return model.Size{}, format, fmt.Errorf("%w: %dx%d", ErrImageSize, cfg.Width, cfg.Height)
	}
	return model.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}, format, nil
}

// ImageMeasure probes data and returns its measure at natural size,
// one CSS pixel per image pixel.
func ImageMeasure(data []byte) (*model.ImageMeasure, error) {
	size, _, err := ProbeImage(data)
	if err != nil {
		return nil, err
	}
	return &model.ImageMeasure{Size: size}, nil
}

// ImageMeasureAtDPI probes data and scales the intrinsic size as if
// the raster had been authored at the given density. A 300 DPI scan
// of a full page measures 8.5 inches wide, not 2550 pixels.
func ImageMeasureAtDPI(data []byte, dpi float64) (*model.ImageMeasure, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("%w: %.1f", ErrBadDPI, dpi)
	}
	size, _, err := ProbeImage(data)
	if err != nil {
		return nil, err
	}
	scale := 96 / dpi
	return &model.ImageMeasure{Size: model.Size{
		Width:  size.Width * scale,
		Height: size.Height * scale,
	}}, nil
}

// FitWithin scales size down to fit inside bounds, preserving aspect
// ratio. A size already inside bounds comes back unchanged; images are
// never scaled up.
func FitWithin(size, bounds model.Size) model.Size {
	if size.Width <= 0 || size.Height <= 0 || bounds.Width <= 0 || bounds.Height <= 0 {
		return size
	}
	scale := math.Min(bounds.Width/size.Width, bounds.Height/size.Height)
	if scale >= 1 {
		return size
	}
	return model.Size{Width: size.Width * scale, Height: size.Height * scale}
}
