// Package measure builds image measures for the layout engine from
// encoded image bytes and document units.
//
// The engine treats measurement as an input: text is measured by the
// caller's shaping collaborator, but image extents usually come
// straight from the file or from the document's anchor data. This
// package covers both paths:
//
//	m, err := measure.ImageMeasure(pngBytes)        // intrinsic size
//	m, err = measure.ImageMeasureAtDPI(scan, 300)   // density-aware
//	m = measure.ImageMeasureFromEMU(cx, cy)         // OOXML extent
//
// Probing uses image.DecodeConfig, so only headers are read; PNG,
// JPEG, GIF, BMP, TIFF, and WebP are recognized.
package measure
