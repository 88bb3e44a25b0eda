// Package folio provides a fluent API for paginating measured document
// content into pages.
//
// Basic usage:
//
//	result, warnings, err := folio.Flow(blocks, measures).Paginate()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", model.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := folio.Flow(blocks, measures).
//	    Preset("a4").
//	    Columns(2).
//	    Paginate()
//
// For advanced use cases, the lower-level layout package is also
// available.
package folio

import (
	"github.com/tsawler/folio/model"
)

// Flow wraps a block sequence and its measures in a Pagination for
// fluent configuration. Blocks and measures are parallel slices; the
// pairing is checked when a terminal operation runs.
//
// Example:
//
//	result, warnings, err := folio.Flow(blocks, measures).Paginate()
func Flow(blocks []model.FlowBlock, measures []model.Measure) *Pagination {
	return &Pagination{
		blocks:   blocks,
		measures: measures,
		config:   defaultConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := folio.Must(folio.Flow(blocks, measures).PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustPaginate is a helper that wraps a call to Paginate() and panics
// if the error is non-nil. It discards warnings and returns just the
// value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	result := folio.MustPaginate(folio.Flow(blocks, measures).Paginate())
func MustPaginate[T any](val T, _ []model.Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
