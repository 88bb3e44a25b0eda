package layout

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tsawler/folio/model"
)

// Engine paginates a measured document. It walks the flow blocks in order,
// maintains the page and column cursor, and produces a Layout of positioned
// fragments. An Engine holds only immutable options; each Layout call builds
// its own working state, so one Engine can serve concurrent callers.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options. The options are
// validated once here rather than on every Layout call.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts}, nil
}

// Options returns a copy of the engine's options.
func (e *Engine) Options() Options {
	return e.opts
}

// Layout paginates blocks into pages. Each block must be paired with the
// measure at the same index: paragraphs with a [model.ParagraphMeasure],
// tables with a [model.TableMeasure], images with a [model.ImageMeasure].
// Break blocks carry a [model.BreakMeasure] or nil. The same input always
// produces the same layout.
func (e *Engine) Layout(blocks []model.FlowBlock, measures []model.Measure) (*model.Layout, error) {
	if err := validateInput(blocks, measures); err != nil {
		return nil, err
	}
	run := newLayoutRun(e.opts)
	return run.execute(blocks, measures)
}

// layoutRun is the mutable state of one Layout call
type layoutRun struct {
	opts     Options
	sections *sectionState
	pager    *Paginator
	zones    *ExclusionZoneManager
	stats    model.LayoutStats
	warnings []model.Warning
	logger   *log.Logger

	// chainEnd is the index of the last block in the keep-next chain most
	// recently reserved, or -1 when no chain is active.
	chainEnd int
}

func newLayoutRun(opts Options) *layoutRun {
	r := &layoutRun{
		opts:     opts,
		sections: newSectionState(opts),
		zones:    NewExclusionZoneManager(),
		logger:   opts.Logger,
		chainEnd: -1,
	}
	r.pager = NewPaginator(r.sections)
	r.pager.SetLogger(opts.Logger)
	r.zones.SetLayoutContext(r.sections.ContentWidth(), r.sections.LeftMargin())
	return r
}

func (r *layoutRun) execute(blocks []model.FlowBlock, measures []model.Measure) (*model.Layout, error) {
	start := time.Now()

	for i, block := range blocks {
		r.stats.BlocksProcessed++

		switch b := block.(type) {
		case *model.SectionBreak:
			if err := r.applySectionBreak(b); err != nil {
				return nil, err
			}

		case *model.PageBreak:
			r.pager.ForcePageBreak()
			r.stats.ForcedPageBreaks++

		case *model.ColumnBreak:
			r.pager.ForceColumnBreak()
			r.stats.ForcedColumnBreaks++

		case *model.Paragraph:
			// Step 1: honor a forced page break attached to the paragraph.
			if b.Attrs.PageBreakBefore {
				r.pager.ForcePageBreak()
				r.stats.ForcedPageBreaks++
			}

			// Step 2: reserve room for a keep-next chain starting here.
			r.reserveChain(i, blocks, measures)

			// Step 3: place the paragraph's lines.
			r.placeParagraph(b, measures[i].(*model.ParagraphMeasure))

		case *model.Table:
			r.placeTable(b, measures[i].(*model.TableMeasure))

		case *model.Image:
			r.placeImage(b, measures[i].(*model.ImageMeasure))

		default:
			return nil, fmt.Errorf("%w: block %d has unsupported kind %s", ErrInputMismatch, i, block.Kind())
		}

		if r.chainEnd != -1 && i >= r.chainEnd {
			r.chainEnd = -1
		}
	}

	pages := r.pager.Pages()
	r.stats.PageCount = len(pages)

	layout := &model.Layout{
		Pages:    pages,
		PageGap:  r.opts.PageGap,
		Fields:   r.resolveFields(blocks, measures),
		Warnings: r.warnings,
		Stats:    r.stats,
	}

	r.infof("layout pass complete",
		"blocks", r.stats.BlocksProcessed,
		"pages", r.stats.PageCount,
		"fragments", r.stats.FragmentCount,
		"warnings", len(r.warnings),
		"duration", time.Since(start))
	return layout, nil
}

// applySectionBreak folds the break's overrides into the active geometry and
// starts whatever new page or column the break type demands.
func (r *layoutRun) applySectionBreak(sb *model.SectionBreak) error {
	changed, err := r.sections.Apply(sb)
	if err != nil {
		return err
	}
	r.zones.SetLayoutContext(r.sections.ContentWidth(), r.sections.LeftMargin())

	switch sb.Type {
	case model.SectionBreakContinuous:
		// A continuous section keeps filling the current page unless its
		// geometry no longer matches it.
		if changed {
			r.pager.ForcePageBreak()
		}

	case model.SectionBreakNextColumn:
		if changed {
			r.pager.ForcePageBreak()
		} else {
			r.pager.ForceColumnBreak()
		}

	case model.SectionBreakEvenPage:
		r.pager.ForcePageBreak()
		if r.pager.Current().Page.Number%2 != 0 {
			r.pager.ForcePageBreak()
		}

	case model.SectionBreakOddPage:
		r.pager.ForcePageBreak()
		if r.pager.Current().Page.Number%2 == 0 {
			r.pager.ForcePageBreak()
		}

	default:
		r.pager.ForcePageBreak()
	}
	return nil
}

// reserveChain groups a run of keep-next paragraphs with the content block
// that follows them, then makes sure the whole chain starts somewhere with
// room for it. A chain that cannot fit even a fresh column degrades to
// normal block-by-block flow with a warning; a chain that fits a fresh
// column but not the current one is deferred there whole.
func (r *layoutRun) reserveChain(i int, blocks []model.FlowBlock, measures []model.Measure) {
	if r.chainEnd >= i {
		return
	}
	head, ok := blocks[i].(*model.Paragraph)
	if !ok || !head.Attrs.KeepNext {
		return
	}

	end := i
	for end < len(blocks) {
		p, ok := blocks[end].(*model.Paragraph)
		if !ok || !p.Attrs.KeepNext {
			break
		}
		end++
	}
	if end >= len(blocks) || !isContentBlock(blocks[end]) {
		// The keep-next run has no follower to stay with; the last marked
		// paragraph's keep-next is a no-op.
		end--
	}
	if end <= i {
		return
	}
	r.chainEnd = end

	height := r.chainHeight(i, end, blocks, measures)
	eff := r.pager.EffectiveSpaceBefore(spacingBefore(blocks[i]))
	if r.pager.Fits(eff + height) {
		return
	}

	fresh := r.pager.Current().Geometry.ColumnHeight()
	if height <= fresh+fitEpsilon {
		// Defer with the space-before counted: at a fresh column top the
		// spacing is suppressed, so the loop still terminates.
		r.pager.EnsureFits(eff + height)
		r.stats.DeferredChains++
		r.debugf("chain deferred", "head", head.ID, "blocks", end-i+1, "height", height)
		return
	}

	r.warn(model.WarnChainDegraded, head.ID,
		fmt.Sprintf("keep-next chain of %d blocks is taller than a full column (%.1f > %.1f)",
			end-i+1, height, fresh))
	r.stats.DegradedChains++
}

// chainHeight totals the chain's block heights plus the collapsed spacing
// between members. Spacing before the first member is applied at placement.
func (r *layoutRun) chainHeight(from, to int, blocks []model.FlowBlock, measures []model.Measure) float64 {
	total := 0.0
	prevAfter := 0.0
	for k := from; k <= to; k++ {
		if k > from {
			total += math.Max(prevAfter, spacingBefore(blocks[k]))
		}
		total += r.blockHeight(blocks[k], measures[k])
		prevAfter = spacingAfter(blocks[k])
	}
	return total
}

// blockHeight is the vertical flow space a block consumes. Anchored images
// float outside the flow and consume none; an empty paragraph still takes
// one default line.
func (r *layoutRun) blockHeight(b model.FlowBlock, m model.Measure) float64 {
	if img, ok := b.(*model.Image); ok && img.Anchor != nil {
		return 0
	}
	if pm, ok := m.(*model.ParagraphMeasure); ok && len(pm.Lines) == 0 {
		return r.opts.DefaultLineHeight
	}
	if m == nil {
		return 0
	}
	return m.Height()
}

// placeParagraph lays a paragraph into the current column, splitting it
// across columns and pages when it does not fit whole.
func (r *layoutRun) placeParagraph(p *model.Paragraph, m *model.ParagraphMeasure) {
	attrs := p.Attrs

	// An empty paragraph occupies one line of vertical space but yields no
	// fragment to paint.
	if len(m.Lines) == 0 {
		r.pager.Place(r.opts.DefaultLineHeight, attrs.SpaceBefore, attrs.SpaceAfter)
		return
	}

	total := m.TotalHeight
	eff := r.pager.EffectiveSpaceBefore(attrs.SpaceBefore)
	if attrs.KeepLines || r.pager.Fits(eff+total) {
		pl := r.pager.Place(total, attrs.SpaceBefore, attrs.SpaceAfter)
		r.addParagraphFragment(p, m, pl, 0, len(m.Lines))
		if pl.Overflow {
			r.warnOverflow(p.ID, total)
		}
		return
	}

	r.splitParagraph(p, m)
}

// splitParagraph walks the paragraph's lines, emitting one fragment per
// column visited. Splits land on line boundaries only.
func (r *layoutRun) splitParagraph(p *model.Paragraph, m *model.ParagraphMeasure) {
	attrs := p.Attrs
	from := 0
	parts := 0
	for from < len(m.Lines) {
		before := 0.0
		if from == 0 {
			before = attrs.SpaceBefore
		}

		st := r.pager.Current()
		eff := r.pager.EffectiveSpaceBefore(before)
		n := fittingLines(m.Lines, from, st.AvailableHeight()-eff)
		if n == 0 {
			if !st.AtColumnTop() {
				r.pager.EnsureFits(m.Lines[from].LineHeight)
				continue
			}
			// A single line taller than the column overflows rather than
			// stalling the walk.
			n = 1
		}

		after := 0.0
		if from+n == len(m.Lines) {
			after = attrs.SpaceAfter
		}
		pl := r.pager.Place(m.LinesHeight(from, from+n), before, after)
		r.addParagraphFragment(p, m, pl, from, from+n)
		if pl.Overflow {
			r.warnOverflow(p.ID, m.Lines[from].LineHeight)
		}
		from += n
		parts++
	}
	if parts > 1 {
		r.stats.SplitParagraphs++
		r.debugf("paragraph split", "block", p.ID, "fragments", parts)
	}
}

// addParagraphFragment records a positioned slice of a paragraph on the page
// it was placed on, applying the paragraph's horizontal indents.
func (r *layoutRun) addParagraphFragment(p *model.Paragraph, m *model.ParagraphMeasure, pl Placement, fromLine, toLine int) {
	attrs := p.Attrs
	width := pl.Width - attrs.IndentLeft - attrs.IndentRight
	if width < 0 {
		width = 0
	}
	pl.Page.AddFragment(&model.ParagraphFragment{
		BlockID:           p.ID,
		X:                 pl.X + attrs.IndentLeft,
		Y:                 pl.Y,
		Width:             width,
		Height:            m.LinesHeight(fromLine, toLine),
		FromLine:          fromLine,
		ToLine:            toLine,
		ContinuesFromPrev: fromLine > 0,
		ContinuesOnNext:   toLine < len(m.Lines),
	})
	r.stats.FragmentCount++
}

// placeTable lays a table into the current column, splitting it across
// columns and pages on row boundaries when it does not fit whole.
func (r *layoutRun) placeTable(t *model.Table, m *model.TableMeasure) {
	attrs := t.Attrs
	if len(m.Rows) == 0 {
		return
	}

	eff := r.pager.EffectiveSpaceBefore(attrs.SpaceBefore)
	if r.pager.Fits(eff + m.TotalHeight) {
		pl := r.pager.Place(m.TotalHeight, attrs.SpaceBefore, attrs.SpaceAfter)
		r.addTableFragment(t, m, pl, 0, len(m.Rows))
		return
	}

	from := 0
	parts := 0
	for from < len(m.Rows) {
		before := 0.0
		if from == 0 {
			before = attrs.SpaceBefore
		}

		st := r.pager.Current()
		eff := r.pager.EffectiveSpaceBefore(before)
		n := fittingRows(m.Rows, from, st.AvailableHeight()-eff)
		if n == 0 {
			if !st.AtColumnTop() {
				r.pager.EnsureFits(m.Rows[from].Height)
				continue
			}
			// A single row taller than the column overflows rather than
			// stalling the walk.
			n = 1
		}

		after := 0.0
		if from+n == len(m.Rows) {
			after = attrs.SpaceAfter
		}
		pl := r.pager.Place(m.RowsHeight(from, from+n), before, after)
		r.addTableFragment(t, m, pl, from, from+n)
		if pl.Overflow {
			r.warnOverflow(t.ID, m.Rows[from].Height)
		}
		from += n
		parts++
	}
	if parts > 1 {
		r.stats.SplitTables++
		r.debugf("table split", "block", t.ID, "fragments", parts)
	}
}

// addTableFragment records a positioned run of table rows on the page it was
// placed on. The fragment is as wide as the measured table, clamped to the
// column.
func (r *layoutRun) addTableFragment(t *model.Table, m *model.TableMeasure, pl Placement, fromRow, toRow int) {
	max := pl.Width - t.Attrs.IndentLeft
	if max < 0 {
		max = 0
	}
	width := m.TotalWidth
	if width <= 0 || width > max {
		width = max
	}
	pl.Page.AddFragment(&model.TableFragment{
		BlockID:           t.ID,
		X:                 pl.X + t.Attrs.IndentLeft,
		Y:                 pl.Y,
		Width:             width,
		Height:            m.RowsHeight(fromRow, toRow),
		FromRow:           fromRow,
		ToRow:             toRow,
		ContinuesFromPrev: fromRow > 0,
		ContinuesOnNext:   toRow < len(m.Rows),
	})
	r.stats.FragmentCount++
}

// placeImage places an inline image in the flow, or registers an anchored
// image as a floating object with an exclusion zone.
func (r *layoutRun) placeImage(img *model.Image, m *model.ImageMeasure) {
	if img.Anchor == nil {
		r.placeInlineImage(img, m)
		return
	}
	r.placeAnchoredImage(img, m)
}

func (r *layoutRun) placeInlineImage(img *model.Image, m *model.ImageMeasure) {
	h := m.Height()
	w := m.Width()
	pl := r.pager.Place(h, 0, 0)
	if w > pl.Width {
		w = pl.Width
	}
	pl.Page.AddFragment(&model.ImageFragment{
		BlockID: img.ID,
		X:       pl.X,
		Y:       pl.Y,
		Width:   w,
		Height:  h,
	})
	r.stats.FragmentCount++
	if pl.Overflow {
		r.warnOverflow(img.ID, h)
	}
}

// placeAnchoredImage positions a floating image relative to the current
// page's content box. The cursor does not move; text flows around the
// image's exclusion zone instead.
func (r *layoutRun) placeAnchoredImage(img *model.Image, m *model.ImageMeasure) {
	anchor := img.Anchor
	st := r.pager.Current()
	geom := st.Geometry
	w, h := m.Width(), m.Height()

	x := geom.Margins.Left + anchor.OffsetX
	y := geom.ContentTop + anchor.OffsetY

	// Floats stacked at the same spot on one page shift right instead of
	// overlapping.
	if anchor.WrapSide != model.WrapSideNone {
		band := r.zones.ComputeAvailableWidth(y, h, st.Page.Number)
		if minX := geom.Margins.Left + band.OffsetX; x < minX {
			x = minX
		}
	}

	if x+w > geom.Size.Width+fitEpsilon || y+h > geom.Size.Height+fitEpsilon {
		r.warn(model.WarnAnchorOverflow, img.ID,
			fmt.Sprintf("anchored image extends past the page edge at (%.1f, %.1f)", x, y))
	}

	r.zones.RegisterFloatingObject(model.ExclusionZone{
		ID:        img.ID,
		Page:      st.Page.Number,
		Bounds:    model.NewBBox(x, y, w, h),
		Distances: anchor.Distances,
		WrapSide:  anchor.WrapSide,
	})

	zOrder := 1
	if anchor.BehindText {
		zOrder = -1
	}
	st.Page.AddFragment(&model.ImageFragment{
		BlockID:  img.ID,
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		Anchored: true,
		ZOrder:   zOrder,
	})
	r.stats.FragmentCount++
}

// debugf emits a debug event through the optional run logger
func (r *layoutRun) debugf(msg string, kv ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, kv...)
	}
}

// infof emits an info event through the optional run logger
func (r *layoutRun) infof(msg string, kv ...any) {
	if r.logger != nil {
		r.logger.Info(msg, kv...)
	}
}

func (r *layoutRun) warn(code model.WarningCode, blockID, msg string) {
	page := 0
	if r.pager.HasPages() {
		page = r.pager.Current().Page.Number
	}
	r.warnings = append(r.warnings, model.Warning{
		Code:    code,
		BlockID: blockID,
		Page:    page,
		Message: msg,
	})
}

func (r *layoutRun) warnOverflow(blockID string, height float64) {
	r.stats.Overflows++
	r.warn(model.WarnOverflow, blockID,
		fmt.Sprintf("content %.1fpx tall exceeds the column height", height))
}

func isContentBlock(b model.FlowBlock) bool {
	switch b.Kind() {
	case model.BlockKindParagraph, model.BlockKindTable, model.BlockKindImage:
		return true
	}
	return false
}

func spacingBefore(b model.FlowBlock) float64 {
	switch b := b.(type) {
	case *model.Paragraph:
		return b.Attrs.SpaceBefore
	case *model.Table:
		return b.Attrs.SpaceBefore
	}
	return 0
}

func spacingAfter(b model.FlowBlock) float64 {
	switch b := b.(type) {
	case *model.Paragraph:
		return b.Attrs.SpaceAfter
	case *model.Table:
		return b.Attrs.SpaceAfter
	}
	return 0
}

// validateInput checks that blocks and measures pair one-to-one and that
// each measure's kind matches its block. Break blocks may carry a nil
// measure or a BreakMeasure placeholder.
func validateInput(blocks []model.FlowBlock, measures []model.Measure) error {
	if len(blocks) != len(measures) {
		return fmt.Errorf("%w: %d blocks but %d measures", ErrInputMismatch, len(blocks), len(measures))
	}
	for i, b := range blocks {
		if b == nil {
			return fmt.Errorf("%w: block %d is nil", ErrInputMismatch, i)
		}
		m := measures[i]
		switch b.Kind() {
		case model.BlockKindParagraph:
			if _, ok := m.(*model.ParagraphMeasure); !ok {
				return measureMismatch(i, b, m)
			}
		case model.BlockKindTable:
			if _, ok := m.(*model.TableMeasure); !ok {
				return measureMismatch(i, b, m)
			}
		case model.BlockKindImage:
			if _, ok := m.(*model.ImageMeasure); !ok {
				return measureMismatch(i, b, m)
			}
		default:
			if m == nil {
				continue
			}
			if _, ok := m.(*model.BreakMeasure); !ok {
				return measureMismatch(i, b, m)
			}
		}
	}
	return nil
}

func measureMismatch(i int, b model.FlowBlock, m model.Measure) error {
	if m == nil {
		return fmt.Errorf("%w: %s block %d has no measure", ErrInputMismatch, b.Kind(), i)
	}
	return fmt.Errorf("%w: %s block %d has %s measure", ErrInputMismatch, b.Kind(), i, m.Kind())
}
