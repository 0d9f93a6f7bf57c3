package pptx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque or translucent colour stored as 8 upper-case hex digits
// in alpha, red, green, blue order.
type Color struct {
	ARGB string
}

// Common colours.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
)

// NewColor parses "RRGGBB" or "AARRGGBB", with or without a leading "#".
// Six digits are fully opaque. Anything unparsable yields black.
func NewColor(hex string) Color {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	if !isValidARGB(hex) {
		return ColorBlack
	}
	return Color{ARGB: hex}
}

func isValidARGB(s string) bool {
	if len(s) != 8 || strings.ToUpper(s) != s {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// value returns the packed colour, or opaque black when ARGB is malformed.
func (c Color) value() uint32 {
	if !isValidARGB(c.ARGB) {
		return 0xFF000000
	}
	v, _ := strconv.ParseUint(c.ARGB, 16, 32)
	return uint32(v)
}

func (c Color) GetAlpha() uint8 { return uint8(c.value() >> 24) }
func (c Color) GetRed() uint8   { return uint8(c.value() >> 16) }
func (c Color) GetGreen() uint8 { return uint8(c.value() >> 8) }
func (c Color) GetBlue() uint8  { return uint8(c.value()) }

// RGB returns the six digits written to <a:srgbClr val>.
func (c Color) RGB() string {
	return fmt.Sprintf("%06X", c.value()&0xFFFFFF)
}

// RGBA returns c as an image colour.
func (c Color) RGBA() color.RGBA {
	v := c.value()
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

// DefaultFontName is used for every run unless overridden. It carries both
// Latin and Arabic glyphs on the platforms the deck is opened on.
const DefaultFontName = "Arial"

// Font holds the character properties of a text run. Size is in points.
type Font struct {
	Name  string
	Size  int
	Bold  bool
	Color Color
}

// NewFont returns black 18pt Arial.
func NewFont() *Font {
	return &Font{Name: DefaultFontName, Size: 18, Color: ColorBlack}
}

func (f *Font) SetBold(bold bool) *Font {
	f.Bold = bold
	return f
}

// SetSize sets the point size, clamped to the 1-4000 range PowerPoint accepts.
func (f *Font) SetSize(size int) *Font {
	f.Size = max(1, min(size, 4000))
	return f
}

func (f *Font) SetColor(c Color) *Font {
	f.Color = c
	return f
}

func (f *Font) SetName(name string) *Font {
	f.Name = name
	return f
}

// HorizontalAlignment is the <a:pPr algn> value.
type HorizontalAlignment string

const (
	HorizontalLeft   HorizontalAlignment = "l"
	HorizontalCenter HorizontalAlignment = "ctr"
	HorizontalRight  HorizontalAlignment = "r"
)

// Alignment holds paragraph layout: horizontal alignment and reading
// direction.
type Alignment struct {
	Horizontal HorizontalAlignment
	RTL        bool
}

// NewAlignment returns left-aligned, left-to-right paragraph layout.
func NewAlignment() *Alignment {
	return &Alignment{Horizontal: HorizontalLeft}
}

func (a *Alignment) SetHorizontal(h HorizontalAlignment) *Alignment {
	a.Horizontal = h
	return a
}

// SetRTL marks the paragraph right-to-left (<a:pPr rtl="1">).
func (a *Alignment) SetRTL(rtl bool) *Alignment {
	a.RTL = rtl
	return a
}

// FillType selects how a shape interior is painted.
type FillType int

const (
	FillNone FillType = iota
	FillSolid
)

// Fill is a shape interior.
type Fill struct {
	Type  FillType
	Color Color
}

// NewFill returns an empty (transparent) fill.
func NewFill() *Fill {
	return &Fill{}
}

func (f *Fill) SetSolid(c Color) *Fill {
	f.Type, f.Color = FillSolid, c
	return f
}

// BorderStyle selects how a shape outline is drawn.
type BorderStyle string

const (
	BorderNone  BorderStyle = "none"
	BorderSolid BorderStyle = "solid"
)

// Border is a shape outline. Width is in EMU.
type Border struct {
	Style BorderStyle
	Width int
	Color Color
}

// NewBorder returns a hidden outline.
func NewBorder() *Border {
	return &Border{Style: BorderNone}
}

func (b *Border) SetSolid(width int, c Color) *Border {
	b.Style, b.Width, b.Color = BorderSolid, width, c
	return b
}
