package layout

import "github.com/tsawler/folio/model"

// fittingLines returns how many lines of lines[from:] fit within avail
// vertical space, counting from the front. It never returns more than the
// number of remaining lines, and returns 0 when not even the first line fits.
func fittingLines(lines []model.MeasuredLine, from int, avail float64) int {
	count := 0
	used := 0.0
	for i := from; i < len(lines); i++ {
		used += lines[i].LineHeight
		if used > avail+fitEpsilon {
			break
		}
		count++
	}
	return count
}

// fittingRows returns how many rows of rows[from:] fit within avail vertical
// space, counting from the front.
func fittingRows(rows []model.RowMeasure, from int, avail float64) int {
	count := 0
	used := 0.0
	for i := from; i < len(rows); i++ {
		used += rows[i].Height
		if used > avail+fitEpsilon {
			break
		}
		count++
	}
	return count
}
