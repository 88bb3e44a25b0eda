package model

// FragmentKind represents the type of page fragment
type FragmentKind int

const (
	FragmentKindParagraph FragmentKind = iota
	FragmentKindTable
	FragmentKindImage
)

func (fk FragmentKind) String() string {
	switch fk {
	case FragmentKindTable:
		return "Table"
	case FragmentKindImage:
		return "Image"
	default:
		return "Paragraph"
	}
}

// Fragment is the interface for the placed pieces of a block. A block
// split across pages or columns produces one fragment per piece; the
// fragments of one block cover it exactly, with no gaps and no
// overlaps. Coordinates are page-relative pixels, top-left origin.
type Fragment interface {
	Kind() FragmentKind
	Block() string
	Bounds() BBox
}

// ParagraphFragment is the part of a paragraph placed on one page.
// Lines[FromLine:ToLine) of the paragraph's measure render here.
type ParagraphFragment struct {
	BlockID           string
	X                 float64
	Y                 float64
	Width             float64
	Height            float64
	FromLine          int
	ToLine            int
	ContinuesFromPrev bool
	ContinuesOnNext   bool
}

func (f *ParagraphFragment) Kind() FragmentKind { return FragmentKindParagraph }
func (f *ParagraphFragment) Block() string      { return f.BlockID }
func (f *ParagraphFragment) Bounds() BBox       { return BBox{f.X, f.Y, f.Width, f.Height} }

// LineCount returns the number of lines rendered by this fragment
func (f *ParagraphFragment) LineCount() int {
	return f.ToLine - f.FromLine
}

// TableFragment is the part of a table placed on one page.
// Rows[FromRow:ToRow) of the table's measure render here.
type TableFragment struct {
	BlockID           string
	X                 float64
	Y                 float64
	Width             float64
	Height            float64
	FromRow           int
	ToRow             int
	ContinuesFromPrev bool
	ContinuesOnNext   bool
}

func (f *TableFragment) Kind() FragmentKind { return FragmentKindTable }
func (f *TableFragment) Block() string      { return f.BlockID }
func (f *TableFragment) Bounds() BBox       { return BBox{f.X, f.Y, f.Width, f.Height} }

// RowCount returns the number of rows rendered by this fragment
func (f *TableFragment) RowCount() int {
	return f.ToRow - f.FromRow
}

// ImageFragment is an image placed on one page. Images are atomic and
// never split. Anchored marks a floating image; ZOrder orders it
// against text, negative values paint behind.
type ImageFragment struct {
	BlockID  string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Anchored bool
	ZOrder   int
}

func (f *ImageFragment) Kind() FragmentKind { return FragmentKindImage }
func (f *ImageFragment) Block() string      { return f.BlockID }
func (f *ImageFragment) Bounds() BBox       { return BBox{f.X, f.Y, f.Width, f.Height} }
