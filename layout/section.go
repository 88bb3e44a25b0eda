package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/folio/model"
)

// sectionState tracks the active page geometry as section breaks
// update it. It implements GeometrySource: every page the paginator
// creates is stamped with the geometry in force at that moment.
type sectionState struct {
	size    model.Size
	margins model.Margins
	columns model.Columns

	headerHeights model.HeaderFooterHeights
	footerHeights model.HeaderFooterHeights
	titlePage     bool
	evenAndOdd    bool

	index        int
	startPage    int
	pendingStart bool
}

func newSectionState(opts Options) *sectionState {
	return &sectionState{
		size:          opts.PageSize,
		margins:       opts.Margins,
		columns:       opts.Columns,
		headerHeights: opts.HeaderHeights,
		footerHeights: opts.FooterHeights,
		titlePage:     opts.TitlePage,
		evenAndOdd:    opts.EvenAndOddHeaders,
		pendingStart:  true,
	}
}

// Apply moves to the next section, folding in any geometry overrides.
// It reports whether the geometry changed; the caller decides whether
// that forces a page break. Overrides that leave no content area are
// rejected.
func (s *sectionState) Apply(sb *model.SectionBreak) (bool, error) {
	size := s.size
	margins := s.margins
	columns := s.columns
	if sb.PageSize != nil {
		size = *sb.PageSize
	}
	if sb.Margins != nil {
		margins = *sb.Margins
	}
	if sb.Columns != nil {
		columns = *sb.Columns
	}

	if size.Width <= 0 || size.Height <= 0 {
		return false, fmt.Errorf("section break %s: %w: %.1f x %.1f", sb.ID, ErrPageSize, size.Width, size.Height)
	}
	if size.Height-margins.Top-margins.Bottom <= 0 {
		return false, fmt.Errorf("section break %s: %w", sb.ID, ErrContentHeight)
	}
	contentWidth := size.Width - margins.Left - margins.Right
	if contentWidth <= 0 {
		return false, fmt.Errorf("section break %s: %w", sb.ID, ErrContentWidth)
	}
	if err := validateColumns(columns, contentWidth); err != nil {
		return false, fmt.Errorf("section break %s: %w", sb.ID, err)
	}

	changed := size != s.size || margins != s.margins || columns != s.columns
	s.size = size
	s.margins = margins
	s.columns = columns
	s.index++

	// Only a section that opens on a fresh page gets first-page
	// header treatment; a continuous section shares its first page
	// with the previous one.
	if sb.Type != model.SectionBreakContinuous || changed {
		s.pendingStart = true
	}
	return changed, nil
}

// PageGeometry returns the geometry for a page being created now.
// Header and footer bands taller than their margins push the content
// band inward.
func (s *sectionState) PageGeometry(pageNumber int) PageGeometry {
	if s.pendingStart {
		s.startPage = pageNumber
		s.pendingStart = false
	}

	headerH := s.variantHeight(s.headerHeights, pageNumber)
	footerH := s.variantHeight(s.footerHeights, pageNumber)
	contentTop := math.Max(s.margins.Top, s.margins.Header+headerH)
	contentBottom := math.Min(s.size.Height-s.margins.Bottom, s.size.Height-s.margins.Footer-footerH)

	return PageGeometry{
		Size:          s.size,
		Margins:       s.margins,
		Columns:       s.columns,
		ContentTop:    contentTop,
		ContentBottom: contentBottom,
		HeaderHeight:  headerH,
		FooterHeight:  footerH,
		SectionIndex:  s.index,
	}
}

// variantHeight picks the header or footer variant for a page: First
// on a section's opening page when title pages are on, Even on even
// pages when even/odd headers are on, Default otherwise.
func (s *sectionState) variantHeight(h model.HeaderFooterHeights, pageNumber int) float64 {
	if s.titlePage && pageNumber == s.startPage {
		return h.First
	}
	if s.evenAndOdd && pageNumber%2 == 0 {
		return h.Even
	}
	return h.Default
}

// ContentWidth returns the content width of the active geometry
func (s *sectionState) ContentWidth() float64 {
	return s.size.Width - s.margins.Left - s.margins.Right
}

// LeftMargin returns the left margin of the active geometry
func (s *sectionState) LeftMargin() float64 {
	return s.margins.Left
}
