package model

// MeasureKind represents the type of measurement result
type MeasureKind int

const (
	MeasureKindUnknown MeasureKind = iota
	MeasureKindParagraph
	MeasureKindTable
	MeasureKindImage
	MeasureKindBreak
)

func (mk MeasureKind) String() string {
	switch mk {
	case MeasureKindParagraph:
		return "Paragraph"
	case MeasureKindTable:
		return "Table"
	case MeasureKindImage:
		return "Image"
	case MeasureKindBreak:
		return "Break"
	default:
		return "Unknown"
	}
}

// Measure is the interface for pre-computed block measurements. The
// layout engine consumes measures; it never produces them. Each measure
// is paired by index with the flow block it describes.
type Measure interface {
	Kind() MeasureKind
	Height() float64
}

// MeasuredLine is one laid-out line of a paragraph. The run and
// character ranges are half-open: the line covers runs[FromRun:ToRun]
// with FromChar/ToChar giving the character offsets inside the boundary
// runs. LeftOffset and RightOffset narrow the line where it was wrapped
// around a floating object.
type MeasuredLine struct {
	FromRun     int
	FromChar    int
	ToRun       int
	ToChar      int
	Width       float64
	LineHeight  float64
	Ascent      float64
	LeftOffset  float64
	RightOffset float64
}

// ParagraphMeasure holds the line breakdown of a measured paragraph
type ParagraphMeasure struct {
	Lines       []MeasuredLine
	TotalHeight float64
}

// NewParagraphMeasure creates a paragraph measure, computing the total
// height from the lines.
func NewParagraphMeasure(lines []MeasuredLine) *ParagraphMeasure {
	m := &ParagraphMeasure{Lines: lines}
	for _, ln := range lines {
		m.TotalHeight += ln.LineHeight
	}
	return m
}

func (m *ParagraphMeasure) Kind() MeasureKind { return MeasureKindParagraph }
func (m *ParagraphMeasure) Height() float64   { return m.TotalHeight }

// LineCount returns the number of measured lines
func (m *ParagraphMeasure) LineCount() int {
	return len(m.Lines)
}

// LinesHeight returns the summed height of lines[from:to)
func (m *ParagraphMeasure) LinesHeight(from, to int) float64 {
	var h float64
	for i := from; i < to && i < len(m.Lines); i++ {
		h += m.Lines[i].LineHeight
	}
	return h
}

// RowMeasure is the measured height of one table row
type RowMeasure struct {
	Height float64
}

// TableMeasure holds the row breakdown of a measured table
type TableMeasure struct {
	Rows         []RowMeasure
	ColumnWidths []float64
	TotalWidth   float64
	TotalHeight  float64
}

// NewTableMeasure creates a table measure, computing the totals from
// the rows and column widths.
func NewTableMeasure(rows []RowMeasure, columnWidths []float64) *TableMeasure {
	m := &TableMeasure{Rows: rows, ColumnWidths: columnWidths}
	for _, r := range rows {
		m.TotalHeight += r.Height
	}
	for _, w := range columnWidths {
		m.TotalWidth += w
	}
	return m
}

func (m *TableMeasure) Kind() MeasureKind { return MeasureKindTable }
func (m *TableMeasure) Height() float64   { return m.TotalHeight }

// RowCount returns the number of measured rows
func (m *TableMeasure) RowCount() int {
	return len(m.Rows)
}

// RowsHeight returns the summed height of rows[from:to)
func (m *TableMeasure) RowsHeight(from, to int) float64 {
	var h float64
	for i := from; i < to && i < len(m.Rows); i++ {
		h += m.Rows[i].Height
	}
	return h
}

// ImageMeasure is the measured extent of an image block
type ImageMeasure struct {
	Size Size
}

func (m *ImageMeasure) Kind() MeasureKind { return MeasureKindImage }
func (m *ImageMeasure) Height() float64   { return m.Size.Height }
func (m *ImageMeasure) Width() float64    { return m.Size.Width }

// BreakMeasure is the zero-extent measure paired with break blocks so
// that blocks and measures stay aligned one-to-one.
type BreakMeasure struct{}

func (m *BreakMeasure) Kind() MeasureKind { return MeasureKindBreak }
func (m *BreakMeasure) Height() float64   { return 0 }
