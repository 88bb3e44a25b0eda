package layout

import "errors"

// Sentinel errors returned by option validation and layout. Wrapped
// errors carry detail; match with errors.Is.
var (
	// ErrPageSize indicates a non-positive page width or height.
	ErrPageSize = errors.New("layout: page size must be positive")

	// ErrContentHeight indicates margins that leave no vertical room
	// for content between the top and bottom of the page.
	ErrContentHeight = errors.New("layout: margins leave no content height")

	// ErrContentWidth indicates margins that leave no horizontal room
	// for content.
	ErrContentWidth = errors.New("layout: margins leave no content width")

	// ErrColumns indicates an invalid column arrangement: fewer than
	// one column, a negative gap, or columns too wide for the content
	// box.
	ErrColumns = errors.New("layout: invalid column arrangement")

	// ErrLineHeight indicates a non-positive default line height.
	ErrLineHeight = errors.New("layout: default line height must be positive")

	// ErrInputMismatch indicates blocks and measures that do not align:
	// different lengths, a nil entry, or a measure whose kind does not
	// match its block.
	ErrInputMismatch = errors.New("layout: blocks and measures do not align")
)
