package model

import "math"

// Orientation represents page orientation
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Size is a page extent in pixels
type Size struct {
	Width  float64
	Height float64
}

// Orientation returns Landscape when the page is wider than tall
func (s Size) Orientation() Orientation {
	if s.Width > s.Height {
		return Landscape
	}
	return Portrait
}

// Flipped returns the size with width and height swapped
func (s Size) Flipped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Margins are the page margins in pixels. Header and Footer are the
// distances from the page edges to the header and footer bands.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
	Header float64
	Footer float64
}

// Columns describes the column arrangement of the content box
type Columns struct {
	Count int
	Gap   float64
}

// HeaderFooterHeights are the measured content heights of the header
// or footer variants a document defines. Zero means the variant is
// absent.
type HeaderFooterHeights struct {
	Default float64
	First   float64
	Even    float64
}

// Page represents a single laid-out page. HeaderHeight and
// FooterHeight are the band heights of the header and footer variants
// selected for this page (first page, even page, or default).
type Page struct {
	Number       int // 1-indexed page number
	Size         Size
	Margins      Margins
	HeaderHeight float64
	FooterHeight float64
	SectionIndex int        // 0-indexed section the page belongs to
	Fragments    []Fragment // fragments in placement order
}

// NewPage creates a new page with given geometry
func NewPage(number int, size Size, margins Margins, sectionIndex int) *Page {
	return &Page{
		Number:       number,
		Size:         size,
		Margins:      margins,
		SectionIndex: sectionIndex,
		Fragments:    make([]Fragment, 0),
	}
}

// AddFragment adds a fragment to the page
func (p *Page) AddFragment(frag Fragment) {
	p.Fragments = append(p.Fragments, frag)
}

// FragmentCount returns the number of fragments on the page
func (p *Page) FragmentCount() int {
	return len(p.Fragments)
}

// FragmentsForBlock returns the page's fragments belonging to a block
func (p *Page) FragmentsForBlock(blockID string) []Fragment {
	var frags []Fragment
	for _, f := range p.Fragments {
		if f.Block() == blockID {
			frags = append(frags, f)
		}
	}
	return frags
}

// GetFragmentsInRegion returns fragments intersecting a bounding box
func (p *Page) GetFragmentsInRegion(bbox BBox) []Fragment {
	var frags []Fragment
	for _, f := range p.Fragments {
		if bbox.Intersects(f.Bounds()) {
			frags = append(frags, f)
		}
	}
	return frags
}

// ContentBox returns the content area of the page as a bounding box.
// Header and footer bands taller than their margins push it inward.
func (p *Page) ContentBox() BBox {
	top := math.Max(p.Margins.Top, p.Margins.Header+p.HeaderHeight)
	bottom := math.Min(p.Size.Height-p.Margins.Bottom, p.Size.Height-p.Margins.Footer-p.FooterHeight)
	return BBox{
		X:      p.Margins.Left,
		Y:      top,
		Width:  p.Size.Width - p.Margins.Left - p.Margins.Right,
		Height: bottom - top,
	}
}

// ResolvedField is the resolved value of one field run: the display
// text a painting consumer should substitute for the run identified by
// BlockID and RunIndex wherever it renders on Page.
type ResolvedField struct {
	Page     int
	BlockID  string
	RunIndex int
	Value    string
}

// Layout is the result of laying out a block sequence: a dense list of
// pages plus the bookkeeping that accumulated while producing them.
// PageGap is the vertical gap a continuous viewer leaves between
// pages; it feeds PageOriginY.
type Layout struct {
	Pages    []*Page
	PageGap  float64
	Fields   []ResolvedField
	Warnings []Warning
	Stats    LayoutStats
}

// PageOriginY returns the Y position of the top edge of the given
// 1-indexed page in a continuous vertical arrangement of all pages
// separated by PageGap. Unknown page numbers return the total stack
// height.
func (l *Layout) PageOriginY(number int) float64 {
	var y float64
	for _, page := range l.Pages {
		if page.Number == number {
			return y
		}
		y += page.Size.Height + l.PageGap
	}
	return y
}

// PageCount returns the number of pages
func (l *Layout) PageCount() int {
	return len(l.Pages)
}

// GetPage returns the page with the given 1-indexed number, or nil
func (l *Layout) GetPage(number int) *Page {
	if number < 1 || number > len(l.Pages) {
		return nil
	}
	return l.Pages[number-1]
}

// FragmentsForBlock returns all fragments of a block across all pages,
// in page order.
func (l *Layout) FragmentsForBlock(blockID string) []Fragment {
	var frags []Fragment
	for _, page := range l.Pages {
		frags = append(frags, page.FragmentsForBlock(blockID)...)
	}
	return frags
}

// LayoutStats collects counters describing what the layout pass did
type LayoutStats struct {
	PageCount          int
	FragmentCount      int
	SplitParagraphs    int
	SplitTables        int
	DeferredChains     int
	DegradedChains     int
	ForcedPageBreaks   int
	ForcedColumnBreaks int
	Overflows          int
	BlocksProcessed    int
}
