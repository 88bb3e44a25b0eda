// Package layout paginates measured document content into pages of
// positioned fragments.
//
// The package is the placement half of a word-processor style text
// layout pipeline: callers measure their content elsewhere (breaking
// paragraphs into lines, sizing table rows and images) and this
// package decides what lands on which page, at which coordinates.
//
// # Pagination
//
// The [Engine] walks a flat block sequence and produces a
// [model.Layout]:
//
//	engine, err := layout.NewEngine(layout.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	result, err := engine.Layout(blocks, measures)
//
// Pagination never fails on content: blocks that cannot fit anywhere
// overflow a page and are reported in the layout's warnings. The same
// input always produces the same layout.
//
// # Components
//
// The engine is built from independently usable parts:
//
//   - [Paginator] - the page and column cursor: fit queries, vertical
//     spacing collapse, forced breaks, lazy page creation
//   - [TabStopResolver] - tab advance widths per OOXML semantics:
//     explicit stops, alignment modes, leaders, and the default grid
//   - [ExclusionZoneManager] - text wrap bands around floating images
//
// # Options
//
// [Options] carries page geometry, column setup, and defaults:
//
//	opts := layout.DefaultOptions()
//	opts.Columns = model.Columns{Count: 2, Gap: 32}
//	opts.TitlePage = true
//	engine, err := layout.NewEngine(opts)
//
// US Letter at 96 DPI with one-inch margins is the default.
//
// # Splitting
//
// A paragraph splits across columns and pages on line boundaries, a
// table on row boundaries. Each placed piece is a fragment carrying
// its line or row range and continuation flags, so a renderer can
// paint partial blocks and draw continuation affordances.
package layout
