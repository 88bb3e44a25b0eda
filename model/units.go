package model

import "math"

// Layout coordinates are CSS pixels at 96 DPI. Word-processing sources
// express positions in twips (twentieths of a point, 1440 per inch) and
// image extents in EMUs (914400 per inch); the conversions below are the
// single place those ratios live.
const (
	// TwipsPerInch is the number of twips in one inch.
	TwipsPerInch = 1440

	// PixelsPerInch is the CSS pixel density all layout math assumes.
	PixelsPerInch = 96.0

	// TwipsPerPixel is the exact twip width of one CSS pixel.
	TwipsPerPixel = TwipsPerInch / 96

	// EMUPerInch is the number of English Metric Units in one inch.
	EMUPerInch = 914400

	// PointsPerInch is the number of typographic points in one inch.
	PointsPerInch = 72.0
)

// Twips is a length in twentieths of a point.
type Twips int

// Pixels converts a twip length to CSS pixels.
func (t Twips) Pixels() float64 {
	return float64(t) / TwipsPerPixel
}

// Inches converts a twip length to inches.
func (t Twips) Inches() float64 {
	return float64(t) / TwipsPerInch
}

// PixelsToTwips converts CSS pixels to twips, rounding to the nearest twip.
func PixelsToTwips(px float64) Twips {
	return Twips(math.Round(px * TwipsPerPixel))
}

// InchesToTwips converts inches to twips.
func InchesToTwips(in float64) Twips {
	return Twips(math.Round(in * TwipsPerInch))
}

// InchesToPixels converts inches to CSS pixels.
func InchesToPixels(in float64) float64 {
	return in * PixelsPerInch
}

// PointsToPixels converts typographic points to CSS pixels.
func PointsToPixels(pt float64) float64 {
	return pt / PointsPerInch * PixelsPerInch
}

// MillimetersToPixels converts millimeters to CSS pixels.
func MillimetersToPixels(mm float64) float64 {
	return mm / 25.4 * PixelsPerInch
}

// EMUToPixels converts English Metric Units to CSS pixels.
func EMUToPixels(emu int64) float64 {
	return float64(emu) / EMUPerInch * PixelsPerInch
}

// PixelsToEMU converts CSS pixels to English Metric Units.
func PixelsToEMU(px float64) int64 {
	return int64(math.Round(px / PixelsPerInch * EMUPerInch))
}
