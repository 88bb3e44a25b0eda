package layout

import (
	"github.com/charmbracelet/log"

	"github.com/tsawler/folio/model"
)

// fitEpsilon absorbs floating-point drift in fit checks. Heights
// within half a pixel of the remaining space still count as fitting.
const fitEpsilon = 0.5

// PageGeometry is the usable geometry of one page: its extent, the
// content band left after margins and header/footer bands, and the
// column arrangement. HeaderHeight and FooterHeight are the band
// heights that produced the content band.
type PageGeometry struct {
	Size          model.Size
	Margins       model.Margins
	Columns       model.Columns
	ContentTop    float64
	ContentBottom float64
	HeaderHeight  float64
	FooterHeight  float64
	SectionIndex  int
}

// ContentWidth returns the width between the left and right margins
func (g PageGeometry) ContentWidth() float64 {
	return g.Size.Width - g.Margins.Left - g.Margins.Right
}

// ColumnWidth returns the width of one column
func (g PageGeometry) ColumnWidth() float64 {
	return columnWidth(g.ContentWidth(), g.Columns)
}

// ColumnX returns the page-absolute X of a column's left edge
func (g PageGeometry) ColumnX(index int) float64 {
	return g.Margins.Left + float64(index)*(g.ColumnWidth()+g.Columns.Gap)
}

// ColumnHeight returns the height of a fresh column
func (g PageGeometry) ColumnHeight() float64 {
	return g.ContentBottom - g.ContentTop
}

// GeometrySource yields the geometry for each page as the paginator
// creates it. Section state implements this; the geometry of a page is
// fixed at creation.
type GeometrySource interface {
	PageGeometry(pageNumber int) PageGeometry
}

// GeometryFunc adapts a function to the GeometrySource interface
type GeometryFunc func(pageNumber int) PageGeometry

func (f GeometryFunc) PageGeometry(pageNumber int) PageGeometry {
	return f(pageNumber)
}

// PageState is the paginator's cursor state for one page. The current
// state is always the last one created; earlier states are never
// revisited.
type PageState struct {
	Page            *model.Page
	Geometry        PageGeometry
	CursorY         float64
	ColumnIndex     int
	TrailingSpacing float64
}

// AtColumnTop reports whether the cursor sits at the top of a fresh
// column with nothing placed in it yet.
func (s *PageState) AtColumnTop() bool {
	return s.CursorY == s.Geometry.ContentTop
}

// AvailableHeight returns the vertical room left in the current column
func (s *PageState) AvailableHeight() float64 {
	return s.Geometry.ContentBottom - s.CursorY
}

// Placement is where the paginator put a fragment: the page, the
// page-absolute origin, and the column it landed in. Overflow marks a
// placement that extends past the bottom of the content band.
type Placement struct {
	Page     *model.Page
	X        float64
	Y        float64
	Width    float64
	Column   int
	Overflow bool
}

// Paginator owns the page and column cursor. It answers fit queries,
// advances columns and pages, and hands out placements with
// space-before collapse applied. Pages are created lazily; laying out
// nothing creates none.
type Paginator struct {
	source GeometrySource
	logger *log.Logger
	states []*PageState
}

// NewPaginator creates a paginator drawing page geometry from source.
func NewPaginator(source GeometrySource) *Paginator {
	return &Paginator{source: source}
}

// SetLogger attaches an optional debug logger. A nil logger keeps the
// paginator silent.
func (p *Paginator) SetLogger(l *log.Logger) {
	p.logger = l
}

// Current returns the state of the current page, creating the first
// page if none exists.
func (p *Paginator) Current() *PageState {
	if len(p.states) == 0 {
		p.newPage()
	}
	return p.states[len(p.states)-1]
}

// HasPages reports whether any page has been created
func (p *Paginator) HasPages() bool {
	return len(p.states) > 0
}

// PageCount returns the number of created pages
func (p *Paginator) PageCount() int {
	return len(p.states)
}

// Pages returns the created pages in order
func (p *Paginator) Pages() []*model.Page {
	pages := make([]*model.Page, len(p.states))
	for i, st := range p.states {
		pages[i] = st.Page
	}
	return pages
}

// Fits reports whether a height fits in the current column at the
// current cursor.
func (p *Paginator) Fits(height float64) bool {
	return p.fitsAt(p.Current(), height)
}

// EnsureFits advances columns and pages until the height fits or the
// cursor reaches a fresh column top, whichever comes first. A height
// taller than a fresh column stops at the fresh top; the caller places
// it there and tolerates the overflow.
func (p *Paginator) EnsureFits(height float64) *PageState {
	st := p.Current()
	for !p.fitsAt(st, height) && !st.AtColumnTop() {
		p.advanceColumn()
		st = p.Current()
	}
	return st
}

// AvailableHeight returns the vertical room left in the current column
func (p *Paginator) AvailableHeight() float64 {
	return p.Current().AvailableHeight()
}

// EffectiveSpaceBefore returns the space-before that would actually be
// placed at the current cursor: collapsed against the previous block's
// trailing spacing and suppressed at a fresh column top.
func (p *Paginator) EffectiveSpaceBefore(requested float64) float64 {
	return effectiveSpacing(p.Current(), requested)
}

// Place reserves room for one fragment and returns its placement.
// Space-before collapses against the previous trailing spacing and
// vanishes at fresh column tops; the cursor moves past the fragment
// and the space-after is held for the next placement to collapse
// against. When the fragment fits nowhere it is placed at a fresh
// column top and Overflow is set.
func (p *Paginator) Place(height, spaceBefore, spaceAfter float64) Placement {
	st := p.Current()
	eff := effectiveSpacing(st, spaceBefore)
	for !p.fitsAt(st, eff+height) && !st.AtColumnTop() {
		p.advanceColumn()
		st = p.Current()
		eff = effectiveSpacing(st, spaceBefore)
	}

	y := st.CursorY + eff
	overflow := !p.fitsAt(st, eff+height)
	st.CursorY = y + height
	st.TrailingSpacing = spaceAfter

	return Placement{
		Page:     st.Page,
		X:        st.Geometry.ColumnX(st.ColumnIndex),
		Y:        y,
		Width:    st.Geometry.ColumnWidth(),
		Column:   st.ColumnIndex,
		Overflow: overflow,
	}
}

// ForcePageBreak unconditionally starts a new page. The current page
// is kept even when empty, honoring explicit break blocks.
func (p *Paginator) ForcePageBreak() {
	p.Current()
	p.newPage()
}

// ForceColumnBreak unconditionally advances to the next column,
// rolling over to a new page from the last column.
func (p *Paginator) ForceColumnBreak() {
	p.Current()
	p.advanceColumn()
}

// fitsAt reports whether a height fits below the cursor of a state
func (p *Paginator) fitsAt(st *PageState, height float64) bool {
	return st.CursorY+height <= st.Geometry.ContentBottom+fitEpsilon
}

// advanceColumn moves to the next column on the current page, or to a
// new page from the last column. The cursor resets to the content top
// with no pending trailing spacing.
func (p *Paginator) advanceColumn() {
	st := p.Current()
	if st.ColumnIndex+1 < st.Geometry.Columns.Count {
		st.ColumnIndex++
		st.CursorY = st.Geometry.ContentTop
		st.TrailingSpacing = 0
		if p.logger != nil {
			p.logger.Debug("column advanced", "page", st.Page.Number, "column", st.ColumnIndex)
		}
		return
	}
	p.newPage()
}

// newPage creates the next page from the geometry source
func (p *Paginator) newPage() {
	number := len(p.states) + 1
	geom := p.source.PageGeometry(number)
	page := model.NewPage(number, geom.Size, geom.Margins, geom.SectionIndex)
	page.HeaderHeight = geom.HeaderHeight
	page.FooterHeight = geom.FooterHeight
	p.states = append(p.states, &PageState{
		Page:     page,
		Geometry: geom,
		CursorY:  geom.ContentTop,
	})
	if p.logger != nil {
		p.logger.Debug("page started", "page", number, "section", geom.SectionIndex)
	}
}

// effectiveSpacing collapses requested space-before with the previous
// trailing spacing, like adjoining margins, and suppresses it at a
// fresh column top.
func effectiveSpacing(st *PageState, requested float64) float64 {
	if st.AtColumnTop() {
		return 0
	}
	if st.TrailingSpacing > requested {
		return st.TrailingSpacing
	}
	return requested
}
