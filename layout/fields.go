package layout

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/folio/model"
)

// resolveFields computes display values for field runs after pagination,
// once page numbers and the total page count are known. Values are
// formatted for the configured language, so a page number renders with
// the digit conventions of the document's locale.
func (r *layoutRun) resolveFields(blocks []model.FlowBlock, measures []model.Measure) []model.ResolvedField {
	var fields []model.ResolvedField
	printer := message.NewPrinter(language.Make(r.opts.Language))

	for i, block := range blocks {
		p, ok := block.(*model.Paragraph)
		if !ok {
			continue
		}
		pm, _ := measures[i].(*model.ParagraphMeasure)

		for ri, run := range p.Runs {
			if run.Kind != model.RunKindField || run.Field == nil {
				continue
			}
			page := r.pageForRun(p.ID, pm, ri)
			fields = append(fields, model.ResolvedField{
				Page:     page,
				BlockID:  p.ID,
				RunIndex: ri,
				Value:    fieldValue(printer, run.Field, page, r.stats.PageCount),
			})
		}
	}
	return fields
}

// pageForRun finds the page showing the line that starts the given run,
// or 0 when the line was never placed.
func (r *layoutRun) pageForRun(blockID string, pm *model.ParagraphMeasure, runIndex int) int {
	line := 0
	if pm != nil {
		for li, l := range pm.Lines {
			if l.FromRun <= runIndex {
				line = li
			}
		}
	}
	for _, page := range r.pager.Pages() {
		for _, frag := range page.FragmentsForBlock(blockID) {
			pf, ok := frag.(*model.ParagraphFragment)
			if !ok {
				continue
			}
			if pf.FromLine <= line && line < pf.ToLine {
				return page.Number
			}
		}
	}
	return 0
}

// fieldValue renders one field instruction. PAGE and NUMPAGES compute
// from the finished layout; anything else keeps its cached text.
func fieldValue(printer *message.Printer, f *model.Field, page, total int) string {
	name := ""
	if parts := strings.Fields(f.Instruction); len(parts) > 0 {
		name = strings.ToUpper(parts[0])
	}
	switch name {
	case "PAGE":
		return printer.Sprintf("%d", page)
	case "NUMPAGES":
		return printer.Sprintf("%d", total)
	default:
		return f.Text
	}
}
