package pptx

import (
	"image/color"
	"strings"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	// lineSpacing is the line height as a multiple of the font size.
	lineSpacing = 1.2
	// ascentRatio places the first baseline below the top of a line.
	ascentRatio = 0.95
)

// shapedRun is a run of glyphs in visual order, drawn with one font.
type shapedRun struct {
	font    *loadedFont
	glyphs  []shaping.Glyph
	advance float64
}

// textLine is one laid-out line of a paragraph.
type textLine struct {
	runs  []shapedRun
	width float64
}

// drawParagraphs lays paragraphs out top to bottom inside a box of width w
// starting at (x, y). Each paragraph uses the font of its first run.
func (r *renderer) drawParagraphs(paragraphs []*Paragraph, wrap bool, x, y, w float64) {
	for _, para := range paragraphs {
		if para == nil || len(para.runs) == 0 {
			y += float64(NewFont().Size) * r.pxPerPoint() * lineSpacing
			continue
		}
		f := para.runs[0].font
		var text strings.Builder
		for _, tr := range para.runs {
			text.WriteString(tr.text)
		}
		sizePx := float64(f.Size) * r.pxPerPoint()
		rtl := para.alignment != nil && para.alignment.RTL
		align := HorizontalLeft
		if para.alignment != nil && para.alignment.Horizontal != "" {
			align = para.alignment.Horizontal
		}

		for _, hard := range strings.Split(text.String(), "\n") {
			var lines []textLine
			if wrap && w > 0 {
				lines = r.wrapLine(hard, f, sizePx, rtl, w)
			} else {
				lines = []textLine{r.layoutLine(hard, f, sizePx, rtl)}
			}
			for _, line := range lines {
				lx := x
				switch align {
				case HorizontalCenter:
					lx = x + (w-line.width)/2
				case HorizontalRight:
					lx = x + w - line.width
				}
				r.drawLine(line, lx, y+sizePx*ascentRatio, sizePx, f.Color.RGBA())
				y += sizePx * lineSpacing
			}
		}
	}
}

// wrapLine breaks text greedily at spaces so that each line fits maxWidth.
// A single word wider than maxWidth gets a line of its own.
func (r *renderer) wrapLine(text string, f *Font, sizePx float64, rtl bool, maxWidth float64) []textLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []textLine{{}}
	}
	var lines []textLine
	current := words[0]
	currentLine := r.layoutLine(current, f, sizePx, rtl)
	for _, word := range words[1:] {
		candidate := current + " " + word
		candidateLine := r.layoutLine(candidate, f, sizePx, rtl)
		if candidateLine.width <= maxWidth {
			current, currentLine = candidate, candidateLine
			continue
		}
		lines = append(lines, currentLine)
		current = word
		currentLine = r.layoutLine(current, f, sizePx, rtl)
	}
	return append(lines, currentLine)
}

// layoutLine shapes one line into runs in visual order.
func (r *renderer) layoutLine(text string, f *Font, sizePx float64, rtl bool) textLine {
	var line textLine
	for _, br := range visualRuns(text, rtl) {
		segments := r.fontSegments(br.text, f)
		shaped := make([]shapedRun, 0, len(segments))
		for _, seg := range segments {
			sr := r.shapeSegment(seg.text, seg.font, br.rtl, sizePx)
			line.width += sr.advance
			shaped = append(shaped, sr)
		}
		if br.rtl {
			for i, j := 0, len(shaped)-1; i < j; i, j = i+1, j-1 {
				shaped[i], shaped[j] = shaped[j], shaped[i]
			}
		}
		line.runs = append(line.runs, shaped...)
	}
	return line
}

type fontSegment struct {
	text []rune
	font *loadedFont
}

// fontSegments splits text into maximal spans drawable with one font.
// Neutral characters stay with the preceding span.
func (r *renderer) fontSegments(text []rune, f *Font) []fontSegment {
	var segs []fontSegment
	for i, c := range text {
		if len(segs) > 0 {
			last := &segs[len(segs)-1]
			if strongDirection(c) == -1 || last.font.covers(c) {
				last.text = text[i-len(last.text) : i+1]
				continue
			}
		}
		segs = append(segs, fontSegment{text: text[i : i+1], font: r.fonts.lookup(f.Name, f.Bold, c)})
	}
	return segs
}

// shapeSegment runs the HarfBuzz shaper over text. Right-to-left output is
// already in visual order.
func (r *renderer) shapeSegment(text []rune, lf *loadedFont, rtl bool, sizePx float64) shapedRun {
	gf, err := lf.shapingFont()
	if err != nil {
		lf = r.fonts.regular
		gf, _ = lf.shapingFont()
	}
	dir := di.DirectionLTR
	lang := language.NewLanguage("en")
	if rtl {
		dir = di.DirectionRTL
		lang = language.NewLanguage("ar")
	}
	out := r.shaper.Shape(shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: dir,
		Face:      gotext.NewFace(gf),
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    runScript(text),
		Language:  lang,
	})
	sr := shapedRun{font: lf, glyphs: out.Glyphs}
	for _, g := range out.Glyphs {
		sr.advance += fixedToFloat(g.Advance)
	}
	return sr
}

// runScript returns the script of the first character that has one.
func runScript(text []rune) language.Script {
	for _, c := range text {
		if s := language.LookupScript(c); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

// drawLine fills the glyph outlines of line with its pen starting at
// (x, baseline).
func (r *renderer) drawLine(line textLine, x, baseline, sizePx float64, c color.RGBA) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(sizePx * 64)
	pen := x
	for _, run := range line.runs {
		for _, g := range run.glyphs {
			gx := pen + fixedToFloat(g.XOffset)
			gy := baseline - fixedToFloat(g.YOffset)
			segments, err := run.font.sf.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
			if err == nil {
				r.traceGlyph(segments, gx, gy)
			}
			pen += fixedToFloat(g.Advance)
		}
	}
	r.dc.SetColor(c)
	r.dc.Fill()
}

// traceGlyph appends sfnt outline segments, which are y-down and relative
// to the glyph origin, to the current path.
func (r *renderer) traceGlyph(segments sfnt.Segments, ox, oy float64) {
	dc := r.dc
	pt := func(p fixed.Point26_6) (float64, float64) {
		return ox + fixedToFloat(p.X), oy + fixedToFloat(p.Y)
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dc.ClosePath()
			}
			dc.NewSubPath()
			dc.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			dc.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			dc.QuadraticTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		dc.ClosePath()
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
