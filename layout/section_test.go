package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/folio/model"
)

func TestSectionState_DefaultGeometry(t *testing.T) {
	s := newSectionState(DefaultOptions())

	geom := s.PageGeometry(1)

	if geom.ContentTop != 96 {
		t.Errorf("expected content top 96, got %v", geom.ContentTop)
	}
	if geom.ContentBottom != 960 {
		t.Errorf("expected content bottom 960, got %v", geom.ContentBottom)
	}
	if geom.SectionIndex != 0 {
		t.Errorf("expected section index 0, got %d", geom.SectionIndex)
	}
	if geom.Size.Width != 816 || geom.Size.Height != 1056 {
		t.Errorf("expected US Letter, got %v x %v", geom.Size.Width, geom.Size.Height)
	}
	if geom.ContentWidth() != 624 {
		t.Errorf("expected content width 624, got %v", geom.ContentWidth())
	}
}

func TestSectionState_TallHeaderPushesContentDown(t *testing.T) {
	opts := DefaultOptions()
	opts.HeaderHeights = model.HeaderFooterHeights{Default: 70}
	opts.FooterHeights = model.HeaderFooterHeights{Default: 80}
	s := newSectionState(opts)

	geom := s.PageGeometry(1)

	// header band 48 + 70 exceeds the 96 top margin
	if geom.ContentTop != 118 {
		t.Errorf("expected content top 118, got %v", geom.ContentTop)
	}
	// footer band 48 + 80 leaves content ending at 928
	if geom.ContentBottom != 928 {
		t.Errorf("expected content bottom 928, got %v", geom.ContentBottom)
	}
}

func TestSectionState_ShortHeaderStaysInsideMargin(t *testing.T) {
	opts := DefaultOptions()
	opts.HeaderHeights = model.HeaderFooterHeights{Default: 20}
	s := newSectionState(opts)

	geom := s.PageGeometry(1)

	// 48 + 20 fits inside the 96 top margin; content is unaffected
	if geom.ContentTop != 96 {
		t.Errorf("expected content top 96, got %v", geom.ContentTop)
	}
}

func TestSectionState_GeometryEchoesBandHeights(t *testing.T) {
	opts := DefaultOptions()
	opts.HeaderHeights = model.HeaderFooterHeights{Default: 70}
	opts.FooterHeights = model.HeaderFooterHeights{Default: 80}
	s := newSectionState(opts)

	geom := s.PageGeometry(1)

	if geom.HeaderHeight != 70 || geom.FooterHeight != 80 {
		t.Errorf("expected band heights 70/80, got %v/%v", geom.HeaderHeight, geom.FooterHeight)
	}
}

func TestSectionState_TitlePageVariant(t *testing.T) {
	opts := DefaultOptions()
	opts.TitlePage = true
	opts.HeaderHeights = model.HeaderFooterHeights{Default: 70, First: 10}
	s := newSectionState(opts)

	first := s.PageGeometry(1)
	second := s.PageGeometry(2)

	// the section's opening page uses the First variant
	if first.ContentTop != 96 {
		t.Errorf("expected first page content top 96, got %v", first.ContentTop)
	}
	if second.ContentTop != 118 {
		t.Errorf("expected later page content top 118, got %v", second.ContentTop)
	}
}

func TestSectionState_EvenOddVariant(t *testing.T) {
	opts := DefaultOptions()
	opts.EvenAndOddHeaders = true
	opts.HeaderHeights = model.HeaderFooterHeights{Default: 10, Even: 70}
	s := newSectionState(opts)

	odd := s.PageGeometry(1)
	even := s.PageGeometry(2)
	next := s.PageGeometry(3)

	if odd.ContentTop != 96 {
		t.Errorf("expected odd page content top 96, got %v", odd.ContentTop)
	}
	if even.ContentTop != 118 {
		t.Errorf("expected even page content top 118, got %v", even.ContentTop)
	}
	if next.ContentTop != 96 {
		t.Errorf("expected page 3 content top 96, got %v", next.ContentTop)
	}
}

func TestSectionState_ApplyWithoutOverrides(t *testing.T) {
	s := newSectionState(DefaultOptions())
	s.PageGeometry(1)

	changed, err := s.Apply(&model.SectionBreak{ID: "s1", Type: model.SectionBreakNextPage})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("expected no geometry change")
	}
	if geom := s.PageGeometry(2); geom.SectionIndex != 1 {
		t.Errorf("expected section index 1, got %d", geom.SectionIndex)
	}
}

func TestSectionState_ApplyOverrides(t *testing.T) {
	s := newSectionState(DefaultOptions())
	s.PageGeometry(1)

	landscape := model.Size{Width: 1056, Height: 816}
	changed, err := s.Apply(&model.SectionBreak{
		ID:       "s1",
		Type:     model.SectionBreakNextPage,
		PageSize: &landscape,
		Columns:  &model.Columns{Count: 2, Gap: 32},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected geometry change")
	}

	geom := s.PageGeometry(2)
	if geom.Size != landscape {
		t.Errorf("expected landscape size, got %v", geom.Size)
	}
	if geom.Columns.Count != 2 {
		t.Errorf("expected 2 columns, got %d", geom.Columns.Count)
	}
	// margins carry over unchanged
	if geom.ContentTop != 96 {
		t.Errorf("expected content top 96, got %v", geom.ContentTop)
	}
	if geom.ContentBottom != 816-96 {
		t.Errorf("expected content bottom 720, got %v", geom.ContentBottom)
	}
}

func TestSectionState_ApplyRejectsImpossibleMargins(t *testing.T) {
	s := newSectionState(DefaultOptions())
	s.PageGeometry(1)

	_, err := s.Apply(&model.SectionBreak{
		ID:      "bad",
		Type:    model.SectionBreakNextPage,
		Margins: &model.Margins{Top: 600, Bottom: 600},
	})

	if !errors.Is(err, ErrContentHeight) {
		t.Fatalf("expected ErrContentHeight, got %v", err)
	}

	// the failed override must not corrupt the active geometry
	geom := s.PageGeometry(2)
	if geom.ContentTop != 96 || geom.ContentBottom != 960 {
		t.Errorf("expected geometry unchanged after rejected override, got top %v bottom %v",
			geom.ContentTop, geom.ContentBottom)
	}
	if geom.SectionIndex != 0 {
		t.Errorf("expected section index unchanged, got %d", geom.SectionIndex)
	}
}

func TestSectionState_ApplyRejectsBadColumns(t *testing.T) {
	s := newSectionState(DefaultOptions())

	_, err := s.Apply(&model.SectionBreak{
		ID:      "bad",
		Type:    model.SectionBreakNextPage,
		Columns: &model.Columns{Count: 0},
	})

	if !errors.Is(err, ErrColumns) {
		t.Fatalf("expected ErrColumns, got %v", err)
	}
}

func TestSectionState_ContinuousSectionSharesFirstPage(t *testing.T) {
	opts := DefaultOptions()
	opts.TitlePage = true
	opts.HeaderHeights = model.HeaderFooterHeights{Default: 70, First: 0}
	s := newSectionState(opts)

	if geom := s.PageGeometry(1); geom.ContentTop != 96 {
		t.Fatalf("expected First variant on page 1, got top %v", geom.ContentTop)
	}

	// a continuous break with identical geometry does not open a new
	// section start page
	if _, err := s.Apply(&model.SectionBreak{ID: "s1", Type: model.SectionBreakContinuous}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geom := s.PageGeometry(2); geom.ContentTop != 118 {
		t.Errorf("expected Default variant on page 2, got top %v", geom.ContentTop)
	}

	// a next-page break does
	if _, err := s.Apply(&model.SectionBreak{ID: "s2", Type: model.SectionBreakNextPage}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geom := s.PageGeometry(3); geom.ContentTop != 96 {
		t.Errorf("expected First variant on the new section's opening page, got top %v", geom.ContentTop)
	}
}
