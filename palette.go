package seradeck

import "github.com/VantageDataChat/seradeck/pptx"

// Named colours of the SERA visual identity.
var (
	DarkBlue    = pptx.NewColor("1A365D")
	LightBlue   = pptx.NewColor("3182CE")
	Green       = pptx.NewColor("48BB78")
	White       = pptx.NewColor("FFFFFF")
	LightGray   = pptx.NewColor("F7FAFC")
	ChevronBlue = pptx.NewColor("2C5282")
	Mint        = pptx.NewColor("68D391")
	Slate       = pptx.NewColor("4A5568")
	DetailGrey  = pptx.NewColor("718096")
	Orange      = pptx.NewColor("ED8936")
	Magenta     = pptx.NewColor("B83280")
	Rust        = pptx.NewColor("C05621")
	Purple      = pptx.NewColor("6B46C1")
)

// Palette is an ordered set of card colours cycled by index.
type Palette []pptx.Color

// Card palettes used by the stacked event slides.
var (
	TwoCardPalette   = Palette{DarkBlue, Green, Magenta, Rust, Purple}
	ThreeCardPalette = Palette{DarkBlue, Magenta, Green}
	dividerPalette   = Palette{Green, DarkBlue}
)

// At returns the colour at i modulo the palette length. Negative indices
// wrap from the end. An empty palette yields DarkBlue.
func (p Palette) At(i int) pptx.Color {
	n := len(p)
	if n == 0 {
		return DarkBlue
	}
	return p[((i%n)+n)%n]
}
