package model

// BlockKind represents the type of flow block
type BlockKind int

const (
	BlockKindUnknown BlockKind = iota
	BlockKindParagraph
	BlockKindTable
	BlockKindImage
	BlockKindSectionBreak
	BlockKindPageBreak
	BlockKindColumnBreak
)

func (bk BlockKind) String() string {
	switch bk {
	case BlockKindParagraph:
		return "Paragraph"
	case BlockKindTable:
		return "Table"
	case BlockKindImage:
		return "Image"
	case BlockKindSectionBreak:
		return "SectionBreak"
	case BlockKindPageBreak:
		return "PageBreak"
	case BlockKindColumnBreak:
		return "ColumnBreak"
	default:
		return "Unknown"
	}
}

// SourceRange is a half-open range of positions in the source document.
// The layout engine never interprets it; it is carried through so
// fragments can be traced back to the content they came from.
type SourceRange struct {
	Start int
	End   int
}

// FlowBlock is the interface for all units of document flow. The
// concrete types in this package (Paragraph, Table, Image,
// SectionBreak, PageBreak, ColumnBreak) are the only implementations.
type FlowBlock interface {
	Kind() BlockKind
	BlockID() string
	Source() SourceRange
}

// RunKind represents the type of run inside a paragraph
type RunKind int

const (
	RunKindText RunKind = iota
	RunKindTab
	RunKindImage
	RunKindLineBreak
	RunKindField
)

func (rk RunKind) String() string {
	switch rk {
	case RunKindText:
		return "Text"
	case RunKindTab:
		return "Tab"
	case RunKindImage:
		return "Image"
	case RunKindLineBreak:
		return "LineBreak"
	case RunKindField:
		return "Field"
	default:
		return "Unknown"
	}
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// RunFormat carries the character formatting of a run. The layout
// engine does not paint, but formatting travels with the run so that
// measurement and painting agree on what was laid out.
type RunFormat struct {
	FontName  string
	FontSize  float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
}

// InlineImage is the payload of an image run: an image flowing with
// the text of its line, sized in pixels.
type InlineImage struct {
	Width  float64
	Height float64
}

// Field is the payload of a field run. Instruction is the raw field
// instruction ("PAGE", "NUMPAGES ..."); Text is the display text the
// source document last cached for it.
type Field struct {
	Instruction string
	Text        string
}

// Run is one run of paragraph content
type Run struct {
	Kind   RunKind
	Text   string       // RunKindText
	Format RunFormat    // character formatting
	Image  *InlineImage // RunKindImage
	Field  *Field       // RunKindField
	Src    SourceRange
}

// Alignment represents horizontal paragraph alignment
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignJustify:
		return "justify"
	default:
		return "start"
	}
}

// TabKind represents the alignment behavior of a tab stop
type TabKind int

const (
	TabKindStart TabKind = iota
	TabKindCenter
	TabKindEnd
	TabKindDecimal
	TabKindBar
	TabKindClear
)

func (tk TabKind) String() string {
	switch tk {
	case TabKindCenter:
		return "center"
	case TabKindEnd:
		return "end"
	case TabKindDecimal:
		return "decimal"
	case TabKindBar:
		return "bar"
	case TabKindClear:
		return "clear"
	default:
		return "start"
	}
}

// TabLeader represents the fill character drawn in the gap a tab spans
type TabLeader int

const (
	TabLeaderNone TabLeader = iota
	TabLeaderDot
	TabLeaderHyphen
	TabLeaderUnderscore
	TabLeaderMiddleDot
)

func (tl TabLeader) String() string {
	switch tl {
	case TabLeaderDot:
		return "dot"
	case TabLeaderHyphen:
		return "hyphen"
	case TabLeaderUnderscore:
		return "underscore"
	case TabLeaderMiddleDot:
		return "middleDot"
	default:
		return "none"
	}
}

// TabStop is one tab stop defined on a paragraph. Position is measured
// in twips from the text start edge. A stop with TabKindClear removes
// an inherited stop at the same position instead of defining one.
type TabStop struct {
	Position Twips
	Kind     TabKind
	Leader   TabLeader
}

// ParagraphAttrs carries the paragraph-level attributes the layout
// engine acts on. Spacing and indents are in pixels.
type ParagraphAttrs struct {
	Alignment       Alignment
	SpaceBefore     float64
	SpaceAfter      float64
	IndentLeft      float64
	IndentRight     float64
	IndentFirstLine float64 // extra indent on the first line
	IndentHanging   float64 // first line outdented by this amount
	KeepNext        bool    // keep on the same page as the next block
	KeepLines       bool    // never split across pages or columns
	PageBreakBefore bool
	Tabs            []TabStop
}

// Paragraph is a paragraph of runs to be laid out
type Paragraph struct {
	ID    string
	Runs  []Run
	Attrs ParagraphAttrs
	Src   SourceRange
}

func (p *Paragraph) Kind() BlockKind     { return BlockKindParagraph }
func (p *Paragraph) BlockID() string     { return p.ID }
func (p *Paragraph) Source() SourceRange { return p.Src }

// WrapSide represents which side of a floating object text may flow on
type WrapSide int

const (
	WrapSideNone WrapSide = iota
	WrapSideLeft
	WrapSideRight
	WrapSideBoth
)

func (ws WrapSide) String() string {
	switch ws {
	case WrapSideLeft:
		return "left"
	case WrapSideRight:
		return "right"
	case WrapSideBoth:
		return "both"
	default:
		return "none"
	}
}

// Distances are the minimum clearances kept between a floating object
// and the text wrapping around it, in pixels.
type Distances struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Anchor describes how a floating image is positioned. Offsets are in
// pixels from the top-left corner of the content box of the page the
// anchor lands on.
type Anchor struct {
	OffsetX    float64
	OffsetY    float64
	WrapSide   WrapSide
	Distances  Distances
	BehindText bool
}

// Image is a block-level image. With a nil Anchor it participates in
// flow like a one-line paragraph; with an Anchor it floats at a fixed
// position and registers an exclusion zone instead of advancing the
// cursor.
type Image struct {
	ID     string
	Width  float64
	Height float64
	Anchor *Anchor
	Src    SourceRange
}

func (i *Image) Kind() BlockKind     { return BlockKindImage }
func (i *Image) BlockID() string     { return i.ID }
func (i *Image) Source() SourceRange { return i.Src }

// SectionBreakType represents where the section following a break starts
type SectionBreakType int

const (
	SectionBreakNextPage SectionBreakType = iota
	SectionBreakContinuous
	SectionBreakEvenPage
	SectionBreakOddPage
	SectionBreakNextColumn
)

func (st SectionBreakType) String() string {
	switch st {
	case SectionBreakContinuous:
		return "continuous"
	case SectionBreakEvenPage:
		return "evenPage"
	case SectionBreakOddPage:
		return "oddPage"
	case SectionBreakNextColumn:
		return "nextColumn"
	default:
		return "nextPage"
	}
}

// SectionBreak ends the current section. Nil override fields keep the
// previous section's geometry.
type SectionBreak struct {
	ID       string
	Type     SectionBreakType
	PageSize *Size
	Margins  *Margins
	Columns  *Columns
	Src      SourceRange
}

func (s *SectionBreak) Kind() BlockKind     { return BlockKindSectionBreak }
func (s *SectionBreak) BlockID() string     { return s.ID }
func (s *SectionBreak) Source() SourceRange { return s.Src }

// PageBreak forces the next block onto a fresh page
type PageBreak struct {
	ID  string
	Src SourceRange
}

func (p *PageBreak) Kind() BlockKind     { return BlockKindPageBreak }
func (p *PageBreak) BlockID() string     { return p.ID }
func (p *PageBreak) Source() SourceRange { return p.Src }

// ColumnBreak forces the next block into the next column, or onto a
// fresh page when the current column is the last one.
type ColumnBreak struct {
	ID  string
	Src SourceRange
}

func (c *ColumnBreak) Kind() BlockKind     { return BlockKindColumnBreak }
func (c *ColumnBreak) BlockID() string     { return c.ID }
func (c *ColumnBreak) Source() SourceRange { return c.Src }
