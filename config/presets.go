package config

import (
	"sort"
	"strings"

	"github.com/tsawler/folio/model"
)

// pagePresets are standard page sizes in CSS pixels at 96 DPI.
var pagePresets = map[string]model.Size{
	"letter":    {Width: 816, Height: 1056},
	"legal":     {Width: 816, Height: 1344},
	"tabloid":   {Width: 1056, Height: 1632},
	"executive": {Width: 696, Height: 1008},
	"a3":        {Width: 1123, Height: 1587},
	"a4":        {Width: 794, Height: 1123},
	"a5":        {Width: 559, Height: 794},
}

// marginPresets mirror the margin schemes word processors offer. All of
// them keep the header and footer bands half an inch from the page
// edges.
var marginPresets = map[string]model.Margins{
	"normal":   {Top: 96, Right: 96, Bottom: 96, Left: 96, Header: 48, Footer: 48},
	"narrow":   {Top: 48, Right: 48, Bottom: 48, Left: 48, Header: 48, Footer: 48},
	"moderate": {Top: 96, Right: 72, Bottom: 96, Left: 72, Header: 48, Footer: 48},
	"wide":     {Top: 96, Right: 192, Bottom: 96, Left: 192, Header: 48, Footer: 48},
}

// PagePreset returns the named page size. Names are case-insensitive.
func PagePreset(name string) (model.Size, bool) {
	s, ok := pagePresets[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// MarginPreset returns the named margin scheme. Names are
// case-insensitive.
func MarginPreset(name string) (model.Margins, bool) {
	m, ok := marginPresets[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// PagePresetNames returns the known page preset names, sorted.
func PagePresetNames() []string {
	names := make([]string, 0, len(pagePresets))
	for name := range pagePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarginPresetNames returns the known margin preset names, sorted.
func MarginPresetNames() []string {
	names := make([]string, 0, len(marginPresets))
	for name := range marginPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
