package model

import "fmt"

// Table represents a table block with cells organized in rows and
// columns. The layout engine places tables with row granularity; cell
// content is carried for measurement and painting collaborators.
// ColumnWidths is the author-declared column grid in pixels; the
// measured widths on the table's measure are what the layout pass
// positions with.
type Table struct {
	ID           string
	Rows         [][]Cell
	ColumnWidths []float64
	Attrs        TableAttrs
	Src          SourceRange
}

func (t *Table) Kind() BlockKind     { return BlockKindTable }
func (t *Table) BlockID() string     { return t.ID }
func (t *Table) Source() SourceRange { return t.Src }

// TableAttrs carries the table-level attributes the layout engine acts
// on. Spacing is in pixels.
type TableAttrs struct {
	SpaceBefore float64
	SpaceAfter  float64
	IndentLeft  float64
}

// NewTable creates a new table with given dimensions
func NewTable(id string, rows, cols int) *Table {
	table := &Table{
		ID:   id,
		Rows: make([][]Cell, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
		for j := 0; j < cols; j++ {
			table.Rows[i][j] = Cell{
				RowSpan: 1,
				ColSpan: 1,
			}
		}
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetCell returns the cell at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = cell
	return nil
}

// Cell represents a table cell. Paragraphs holds the cell's content in
// document order.
type Cell struct {
	Paragraphs []*Paragraph
	RowSpan    int
	ColSpan    int
	IsHeader   bool
	Style      CellStyle
}

// CellStyle represents cell styling
type CellStyle struct {
	BackgroundColor Color
	BorderColor     Color
	BorderWidth     float64
	VerticalAlign   VerticalAlignment
}

// VerticalAlignment represents vertical alignment
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)
