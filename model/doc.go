// Package model provides the shared data types of the layout engine:
// the flow blocks it consumes, the measures that describe them, and
// the pages and fragments it produces.
//
// All coordinates are CSS pixels at 96 DPI with the origin at the
// top-left corner of the page. Word-processing units (twips, EMUs,
// points) convert through the helpers in this package.
//
// # Flow Blocks
//
// Input content arrives as a flat sequence of [FlowBlock] values. The
// concrete types are:
//
//   - [Paragraph] - runs of text, tabs, inline images, and fields
//   - [Table] - rows and columns of [Cell] values
//   - [Image] - a block-level image, inline or floating via [Anchor]
//   - [SectionBreak] - geometry change: page size, margins, columns
//   - [PageBreak], [ColumnBreak] - forced breaks
//
// # Measures
//
// Layout consumes pre-computed [Measure] values aligned one-to-one
// with the blocks. [ParagraphMeasure] breaks a paragraph into
// [MeasuredLine] values; [TableMeasure] carries per-row heights;
// break blocks pair with [BreakMeasure].
//
// # Output
//
// The result of a layout pass is a [Layout]: a dense, 1-indexed list
// of [Page] values holding [Fragment] placements. A block split
// across pages produces several fragments whose line or row ranges
// cover the block exactly. [Warning] values record non-fatal issues
// such as content taller than a column; [LayoutStats] counts what the
// pass did.
//
// # Geometry
//
// Geometric primitives support position and overlap calculations:
//
//   - [BBox] - bounding box with intersection, union, and overlap calculations
//   - [Point] - 2D point with distance calculation
package model
