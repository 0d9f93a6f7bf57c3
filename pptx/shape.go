package pptx

import "strings"

// Shape is an element placed on a slide. Frames are in EMU.
type Shape interface {
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	GetName() string
	base() *BaseShape
}

// BaseShape holds the frame, fill and outline common to all shapes.
type BaseShape struct {
	name                            string
	offsetX, offsetY, width, height int64
	fill                            *Fill
	border                          *Border
}

func (b *BaseShape) base() *BaseShape  { return b }
func (b *BaseShape) GetName() string   { return b.name }
func (b *BaseShape) GetOffsetX() int64 { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64 { return b.offsetY }
func (b *BaseShape) GetWidth() int64   { return b.width }
func (b *BaseShape) GetHeight() int64  { return b.height }

// SetName sets the name shown in the selection pane. Unnamed shapes get a
// generated name when written.
func (b *BaseShape) SetName(name string) *BaseShape {
	b.name = name
	return b
}

// SetPosition moves the top-left corner to (x, y).
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX, b.offsetY = x, y
	return b
}

// SetSize resizes the frame to w by h.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width, b.height = w, h
	return b
}

// GetFill returns the fill, creating a transparent one on first use.
func (b *BaseShape) GetFill() *Fill {
	if b.fill == nil {
		b.fill = NewFill()
	}
	return b.fill
}

// GetBorder returns the outline, creating a hidden one on first use. A shape
// whose outline was never touched inherits the theme line.
func (b *BaseShape) GetBorder() *Border {
	if b.border == nil {
		b.border = NewBorder()
	}
	return b.border
}

func (b *BaseShape) SetBorder(border *Border) { b.border = border }

// Default text body insets in EMU.
const (
	DefaultInsetLeftRight int64 = 91440
	DefaultInsetTopBottom int64 = 45720
)

// RichTextShape is a text box. New runs go to the last paragraph.
type RichTextShape struct {
	BaseShape
	paragraphs []*Paragraph
	wordWrap   bool
}

func newRichTextShape() *RichTextShape {
	return &RichTextShape{paragraphs: []*Paragraph{newParagraph()}, wordWrap: true}
}

// GetActiveParagraph returns the paragraph that receives new runs.
func (r *RichTextShape) GetActiveParagraph() *Paragraph {
	if len(r.paragraphs) == 0 {
		r.paragraphs = []*Paragraph{newParagraph()}
	}
	return r.paragraphs[len(r.paragraphs)-1]
}

// CreateParagraph starts a new paragraph after the existing ones.
func (r *RichTextShape) CreateParagraph() *Paragraph {
	p := newParagraph()
	r.paragraphs = append(r.paragraphs, p)
	return p
}

func (r *RichTextShape) GetParagraphs() []*Paragraph { return r.paragraphs }

// CreateTextRun appends a run to the active paragraph.
func (r *RichTextShape) CreateTextRun(text string) *TextRun {
	return r.GetActiveParagraph().CreateTextRun(text)
}

// SetWordWrap chooses between wrapping at the frame edge (the default) and
// a single unbroken line per paragraph.
func (r *RichTextShape) SetWordWrap(wrap bool) { r.wordWrap = wrap }
func (r *RichTextShape) GetWordWrap() bool     { return r.wordWrap }

// Text returns the plain text with paragraphs separated by "\n".
func (r *RichTextShape) Text() string {
	lines := make([]string, len(r.paragraphs))
	for i, p := range r.paragraphs {
		var sb strings.Builder
		for _, tr := range p.runs {
			sb.WriteString(tr.text)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Paragraph is a sequence of runs sharing one alignment.
type Paragraph struct {
	runs      []*TextRun
	alignment *Alignment
}

func newParagraph() *Paragraph {
	return &Paragraph{alignment: NewAlignment()}
}

func (p *Paragraph) GetAlignment() *Alignment { return p.alignment }
func (p *Paragraph) GetRuns() []*TextRun      { return p.runs }

// CreateTextRun appends a run in the default font.
func (p *Paragraph) CreateTextRun(text string) *TextRun {
	tr := &TextRun{text: text, font: NewFont()}
	p.runs = append(p.runs, tr)
	return tr
}

// TextRun is text with one set of character properties.
type TextRun struct {
	text string
	font *Font
	lang string
}

func (tr *TextRun) GetText() string { return tr.text }
func (tr *TextRun) GetFont() *Font  { return tr.font }

// GetLang returns the BCP 47 language tag, empty for the en-US default.
func (tr *TextRun) GetLang() string { return tr.lang }

// SetLang tags the run with a language such as "ar-SA" so that editors pick
// the matching proofing tools and complex-script font.
func (tr *TextRun) SetLang(lang string) { tr.lang = lang }

// AutoShapeType names a preset geometry (<a:prstGeom prst>).
type AutoShapeType string

const (
	AutoShapeRectangle     AutoShapeType = "rect"
	AutoShapeRoundedRect   AutoShapeType = "roundRect"
	AutoShapeTriangle      AutoShapeType = "triangle"
	AutoShapeRightTriangle AutoShapeType = "rtTriangle"
	AutoShapeChevron       AutoShapeType = "chevron"
)

// Valid reports whether t is a geometry the writer and renderer support.
func (t AutoShapeType) Valid() bool {
	switch t {
	case AutoShapeRectangle, AutoShapeRoundedRect, AutoShapeTriangle,
		AutoShapeRightTriangle, AutoShapeChevron:
		return true
	}
	return false
}

// AutoShape is a filled preset geometry without text.
type AutoShape struct {
	BaseShape
	shapeType AutoShapeType
}

func newAutoShape() *AutoShape {
	return &AutoShape{shapeType: AutoShapeRectangle}
}

func (a *AutoShape) GetAutoShapeType() AutoShapeType { return a.shapeType }

func (a *AutoShape) SetAutoShapeType(t AutoShapeType) *AutoShape {
	a.shapeType = t
	return a
}

// SetSolidFill paints the interior with c.
func (a *AutoShape) SetSolidFill(c Color) *AutoShape {
	a.GetFill().SetSolid(c)
	return a
}
