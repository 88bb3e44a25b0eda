package model

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal layout issue
type WarningCode int

const (
	// WarnOverflow marks a single line, row, or image taller than a
	// full column; it was placed anyway and extends past the bottom
	// margin.
	WarnOverflow WarningCode = iota + 1

	// WarnChainDegraded marks a keep-with-next chain taller than a
	// page whose members were placed one by one instead of together.
	WarnChainDegraded

	// WarnAnchorOverflow marks a floating image whose anchor places
	// part of it outside the page.
	WarnAnchorOverflow
)

func (wc WarningCode) String() string {
	switch wc {
	case WarnOverflow:
		return "overflow"
	case WarnChainDegraded:
		return "chain-degraded"
	case WarnAnchorOverflow:
		return "anchor-overflow"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue encountered during layout. Layout never
// fails because content does not fit; it records a warning and keeps
// going.
type Warning struct {
	Code    WarningCode
	BlockID string
	Page    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] page %d, block %s: %s", w.Code, w.Page, w.BlockID, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
