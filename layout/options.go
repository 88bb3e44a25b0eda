package layout

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tsawler/folio/model"
)

// Options holds the document-level defaults a layout pass starts from.
// Sections may override page size, margins, and columns mid-document;
// everything else applies for the whole pass. All lengths are pixels.
type Options struct {
	// PageSize is the page extent. The default is US Letter at 96 DPI.
	PageSize model.Size

	// Margins bound the content box. Header and Footer are the
	// distances from the page edges to the header and footer bands.
	Margins model.Margins

	// Columns is the column arrangement of the content box.
	Columns model.Columns

	// PageGap is the vertical gap between pages in a continuous view.
	// It does not affect pagination; it is carried into the resulting
	// layout for viewers.
	PageGap float64

	// DefaultLineHeight is the height an empty paragraph advances the
	// cursor by.
	DefaultLineHeight float64

	// DefaultTabInterval is the spacing of the implicit tab grid in
	// twips. Zero falls back to 720 (half an inch).
	DefaultTabInterval model.Twips

	// HeaderHeights and FooterHeights are the measured content heights
	// of the header and footer variants. A variant taller than its
	// margin band pushes the content box inward.
	HeaderHeights model.HeaderFooterHeights
	FooterHeights model.HeaderFooterHeights

	// TitlePage selects the First header/footer variant on the first
	// page of each section.
	TitlePage bool

	// EvenAndOddHeaders selects the Even variant on even pages.
	EvenAndOddHeaders bool

	// Language is the BCP 47 tag used to format field values such as
	// page numbers. Empty means "en".
	Language string

	// Logger receives debug and progress output. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns options matching a default word-processing
// document: US Letter, one-inch margins, a single column.
func DefaultOptions() Options {
	return Options{
		PageSize:           model.Size{Width: 816, Height: 1056},
		Margins:            model.Margins{Top: 96, Right: 96, Bottom: 96, Left: 96, Header: 48, Footer: 48},
		Columns:            model.Columns{Count: 1, Gap: 48},
		PageGap:            20,
		DefaultLineHeight:  18,
		DefaultTabInterval: 720,
		Language:           "en",
	}
}

// Validate checks that the options describe a usable page. It is
// called by NewEngine; layout never starts from an unusable geometry.
func (o Options) Validate() error {
	if o.PageSize.Width <= 0 || o.PageSize.Height <= 0 {
		return fmt.Errorf("%w: %.1f x %.1f", ErrPageSize, o.PageSize.Width, o.PageSize.Height)
	}
	if o.PageSize.Height-o.Margins.Top-o.Margins.Bottom <= 0 {
		return fmt.Errorf("%w: page height %.1f, margins %.1f + %.1f",
			ErrContentHeight, o.PageSize.Height, o.Margins.Top, o.Margins.Bottom)
	}
	contentWidth := o.PageSize.Width - o.Margins.Left - o.Margins.Right
	if contentWidth <= 0 {
		return fmt.Errorf("%w: page width %.1f, margins %.1f + %.1f",
			ErrContentWidth, o.PageSize.Width, o.Margins.Left, o.Margins.Right)
	}
	if err := validateColumns(o.Columns, contentWidth); err != nil {
		return err
	}
	if o.DefaultLineHeight <= 0 {
		return fmt.Errorf("%w: %.1f", ErrLineHeight, o.DefaultLineHeight)
	}
	return nil
}

// validateColumns checks a column arrangement against a content width.
// Section overrides run through the same check.
func validateColumns(c model.Columns, contentWidth float64) error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count %d", ErrColumns, c.Count)
	}
	if c.Gap < 0 {
		return fmt.Errorf("%w: negative gap %.1f", ErrColumns, c.Gap)
	}
	width := columnWidth(contentWidth, c)
	if width <= 0 {
		return fmt.Errorf("%w: %d columns with gap %.1f exceed content width %.1f",
			ErrColumns, c.Count, c.Gap, contentWidth)
	}
	return nil
}

// columnWidth returns the width of one column given the content width
// and the arrangement.
func columnWidth(contentWidth float64, c model.Columns) float64 {
	if c.Count <= 1 {
		return contentWidth
	}
	return (contentWidth - float64(c.Count-1)*c.Gap) / float64(c.Count)
}
