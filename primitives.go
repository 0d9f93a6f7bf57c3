package seradeck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VantageDataChat/seradeck/internal/logger"
	"github.com/VantageDataChat/seradeck/pptx"
)

// errNoSlide is recorded when a primitive runs before any slide exists.
var errNoSlide = errors.New("no current slide")

// Box is a shape frame in EMU.
type Box struct {
	X, Y, W, H int64
}

// In builds a Box from inch values.
func In(x, y, w, h float64) Box {
	return Box{X: pptx.Inch(x), Y: pptx.Inch(y), W: pptx.Inch(w), H: pptx.Inch(h)}
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() int64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() int64 { return b.Y + b.H }

// Overlaps reports whether b and o share any interior area.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// inner returns a frame offset from b's top-left corner by (dx, dy) inches.
func (b Box) inner(dx, dy float64, w, h int64) Box {
	return Box{X: b.X + pptx.Inch(dx), Y: b.Y + pptx.Inch(dy), W: w, H: h}
}

// TextStyle is the formatting applied to every run of a text box.
type TextStyle struct {
	Size  int
	Bold  bool
	Color pptx.Color
	Align pptx.HorizontalAlignment
	Wrap  bool
	Font  string
}

// Grid places equally sized cells row by row from an origin.
type Grid struct {
	X, Y       int64
	CellW      int64
	CellH      int64
	GapX, GapY int64
	Columns    int
	Capacity   int
}

// Count returns how many of n items the grid places.
func (g Grid) Count(n int) int {
	return min(n, g.Capacity)
}

// Cell returns the frame of item i: column i mod Columns, row i div Columns.
func (g Grid) Cell(i int) Box {
	col := int64(i % g.Columns)
	row := int64(i / g.Columns)
	return Box{
		X: g.X + col*(g.CellW+g.GapX),
		Y: g.Y + row*(g.CellH+g.GapY),
		W: g.CellW,
		H: g.CellH,
	}
}

// Builder appends shapes to the last slide of a presentation. The first
// failure is kept and turns every later call into a no-op.
type Builder struct {
	pres  *pptx.Presentation
	slide *pptx.Slide
	log   *logger.Logger
	err   error
}

// NewBuilder returns a builder drawing into p. A nil log discards output.
func NewBuilder(p *pptx.Presentation, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{pres: p, log: log}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error { return b.err }

// Presentation returns the presentation being built.
func (b *Builder) Presentation() *pptx.Presentation { return b.pres }

// NewSlide appends a blank slide and makes it current.
func (b *Builder) NewSlide(name string) {
	if b.err != nil {
		return
	}
	b.slide = b.pres.CreateSlide()
	b.slide.SetName(name)
}

// check records the first geometry failure. It reports whether drawing
// may proceed.
func (b *Builder) check(box Box, what string) bool {
	if b.err != nil {
		return false
	}
	if b.slide == nil {
		b.err = fmt.Errorf("%s: %w", what, errNoSlide)
		return false
	}
	if err := pptx.CheckBounds(b.pres.GetLayout(), box.X, box.Y, box.W, box.H); err != nil {
		b.err = fmt.Errorf("slide %d: %s: %w", b.pres.GetSlideCount(), what, err)
		return false
	}
	return true
}

// Shape draws a solid preset shape without an outline.
func (b *Builder) Shape(kind pptx.AutoShapeType, box Box, fill pptx.Color) {
	if !b.check(box, string(kind)) {
		return
	}
	s := b.slide.CreateAutoShape()
	s.SetAutoShapeType(kind)
	s.SetPosition(box.X, box.Y)
	s.SetSize(box.W, box.H)
	s.SetSolidFill(fill)
	s.SetBorder(pptx.NewBorder())
}

// Text draws a text box. Each line of text becomes a paragraph; lines whose
// first strong character is Arabic are marked right-to-left.
func (b *Builder) Text(box Box, style TextStyle, text string) {
	if !b.check(box, "text "+quoteShort(text)) {
		return
	}
	tb := b.slide.CreateRichTextShape()
	tb.SetPosition(box.X, box.Y)
	tb.SetSize(box.W, box.H)
	tb.SetWordWrap(style.Wrap)

	align := style.Align
	if align == "" {
		align = pptx.HorizontalLeft
	}
	for i, line := range strings.Split(text, "\n") {
		para := tb.GetActiveParagraph()
		if i > 0 {
			para = tb.CreateParagraph()
		}
		rtl := pptx.IsRTL(line)
		para.GetAlignment().SetHorizontal(align).SetRTL(rtl)

		run := para.CreateTextRun(line)
		font := run.GetFont().SetSize(style.Size).SetBold(style.Bold)
		if style.Color.ARGB != "" {
			font.SetColor(style.Color)
		}
		if style.Font != "" {
			font.SetName(style.Font)
		}
		if rtl {
			run.SetLang("ar-SA")
		}
	}
}

func quoteShort(s string) string {
	r := []rune(s)
	if len(r) > 24 {
		return fmt.Sprintf("%q...", string(r[:24]))
	}
	return fmt.Sprintf("%q", s)
}

// TopBorder draws the green accent bar at the top right and the dark blue
// rule under it.
func (b *Builder) TopBorder() {
	w := b.pres.GetLayout().CX
	b.Shape(pptx.AutoShapeRectangle, Box{X: w - pptx.Inch(3.5), Y: 0, W: pptx.Inch(3.5), H: pptx.Inch(0.15)}, Green)
	b.Shape(pptx.AutoShapeRectangle, Box{X: 0, Y: pptx.Inch(0.2), W: w - pptx.Inch(1), H: pptx.Inch(0.08)}, DarkBlue)
}

// BottomBorder draws the two footer rules and the two-digit page label.
func (b *Builder) BottomBorder(page int) {
	layout := b.pres.GetLayout()
	w, h := layout.CX, layout.CY
	ruleW := w - pptx.Inch(1.6)
	b.Shape(pptx.AutoShapeRectangle, Box{X: pptx.Inch(0.8), Y: h - pptx.Inch(0.55), W: ruleW, H: pptx.Inch(0.05)}, Green)
	b.Shape(pptx.AutoShapeRectangle, Box{X: pptx.Inch(0.8), Y: h - pptx.Inch(0.4), W: ruleW, H: pptx.Inch(0.05)}, DarkBlue)
	b.Text(Box{X: pptx.Inch(0.8), Y: h - pptx.Inch(0.5), W: pptx.Inch(0.6), H: pptx.Inch(0.4)},
		TextStyle{Size: 18, Bold: true, Color: LightBlue},
		PageLabel(page))
}

// PageLabel formats a page number the way the footer shows it.
func PageLabel(page int) string {
	return fmt.Sprintf("%02d", page)
}

// PageTitle draws the standard slide heading.
func (b *Builder) PageTitle(text string) {
	b.Text(In(0.8, 0.6, 11.5, 0.7),
		TextStyle{Size: 32, Bold: true, Color: DarkBlue, Align: pptx.HorizontalRight, Wrap: true, Font: pptx.DefaultFontName},
		text)
}

// InfoCard draws a rounded card with a small title over a bold value.
func (b *Builder) InfoCard(box Box, title, value string, bg pptx.Color) {
	b.Shape(pptx.AutoShapeRoundedRect, box, bg)
	textW := box.W - pptx.Inch(0.2)
	b.Text(box.inner(0.1, 0.4, textW, pptx.Inch(0.4)),
		TextStyle{Size: 12, Color: White, Align: pptx.HorizontalCenter},
		title)
	b.Text(box.inner(0.1, 0.7, textW, pptx.Inch(0.5)),
		TextStyle{Size: 16, Bold: true, Color: White, Align: pptx.HorizontalCenter},
		value)
}

// DetailBox draws a light rounded box with a dark accent bar on its right
// edge, a bold title and a wrapped body.
func (b *Builder) DetailBox(box Box, title, body string) {
	b.Shape(pptx.AutoShapeRoundedRect, box, LightGray)
	b.Shape(pptx.AutoShapeRectangle, Box{X: box.Right() - pptx.Inch(0.08), Y: box.Y, W: pptx.Inch(0.08), H: box.H}, DarkBlue)
	textW := box.W - pptx.Inch(0.4)
	b.Text(box.inner(0.2, 0.1, textW, pptx.Inch(0.3)),
		TextStyle{Size: 14, Bold: true, Color: DarkBlue, Align: pptx.HorizontalRight},
		title)
	b.Text(box.inner(0.2, 0.35, textW, box.H-pptx.Inch(0.45)),
		TextStyle{Size: 12, Color: Slate, Align: pptx.HorizontalRight, Wrap: true},
		body)
}

// EventCard draws a coloured rounded card with a white title and body.
func (b *Builder) EventCard(box Box, title, body string, bg pptx.Color) {
	b.Shape(pptx.AutoShapeRoundedRect, box, bg)
	textW := box.W - pptx.Inch(0.4)
	b.Text(box.inner(0.2, 0.15, textW, pptx.Inch(0.5)),
		TextStyle{Size: 18, Bold: true, Color: White, Align: pptx.HorizontalRight},
		title)
	b.Text(box.inner(0.2, 0.6, textW, box.H-pptx.Inch(0.8)),
		TextStyle{Size: 12, Color: White, Align: pptx.HorizontalRight, Wrap: true},
		body)
}
