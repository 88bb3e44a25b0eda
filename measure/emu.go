package measure

import (
	"math"

	"github.com/tsawler/folio/model"
)

// OOXML drawing anchors give image extents in English Metric Units.
const (
	EMUPerInch  int64 = 914400
	EMUPerPixel int64 = 9525 // 914400 / 96
)

// EMUToPixels converts an EMU extent to CSS pixels at 96 DPI.
func EMUToPixels(emu int64) float64 {
	return float64(emu) / float64(EMUPerPixel)
}

// PixelsToEMU converts CSS pixels to EMU, rounding to the nearest
// unit.
func PixelsToEMU(px float64) int64 {
	return int64(math.Round(px * float64(EMUPerPixel)))
}

// ImageMeasureFromEMU builds an image measure from an OOXML extent,
// cx across and cy down.
func ImageMeasureFromEMU(cx, cy int64) *model.ImageMeasure {
	return &model.ImageMeasure{Size: model.Size{
		Width:  EMUToPixels(cx),
		Height: EMUToPixels(cy),
	}}
}
