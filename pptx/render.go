package pptx

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/sync/errgroup"
)

// RenderOptions configures slide-to-image rendering.
type RenderOptions struct {
	// Width is the output image width in pixels. Height is calculated from
	// the slide aspect ratio. Default: 960
	Width int
	// BackgroundColor overrides the white slide background.
	BackgroundColor *color.RGBA
	// FontDirs specifies additional directories to search for TrueType/OpenType fonts.
	// System font directories are always searched automatically.
	FontDirs []string
	// FontCache allows sharing a pre-configured FontCache across multiple renders.
	// If nil, a new FontCache is created using FontDirs.
	FontCache *FontCache
	// Parallelism bounds concurrent slide renders. Default: runtime.NumCPU().
	Parallelism int
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       960,
		Parallelism: runtime.NumCPU(),
	}
}

// withDefaults returns a copy of opts with every unset field filled in.
func (opts *RenderOptions) withDefaults() *RenderOptions {
	o := DefaultRenderOptions()
	if opts != nil {
		*o = *opts
	}
	if o.Width <= 0 {
		o.Width = 960
	}
	if o.Parallelism <= 0 {
		o.Parallelism = runtime.NumCPU()
	}
	if o.FontCache == nil {
		o.FontCache = NewFontCache(o.FontDirs...)
	}
	return o
}

// SlideToImage renders a single slide to an image.
func (p *Presentation) SlideToImage(slideIndex int, opts *RenderOptions) (image.Image, error) {
	if slideIndex < 0 || slideIndex >= len(p.slides) {
		return nil, fmt.Errorf("%w: %d (0-%d)", ErrSlideIndex, slideIndex, len(p.slides)-1)
	}
	opts = opts.withDefaults()
	return p.renderSlide(p.slides[slideIndex], opts), nil
}

func (p *Presentation) renderSlide(slide *Slide, opts *RenderOptions) image.Image {
	layout := p.layout
	imgW := opts.Width
	imgH := int(math.Round(float64(imgW) * float64(layout.CY) / float64(layout.CX)))

	dc := gg.NewContext(imgW, imgH)
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.BackgroundColor != nil {
		bg = *opts.BackgroundColor
	}
	dc.SetColor(bg)
	dc.Clear()

	r := &renderer{
		dc:     dc,
		scale:  float64(imgW) / float64(layout.CX),
		fonts:  opts.FontCache,
		shaper: &shaping.HarfbuzzShaper{},
	}
	for _, shape := range slide.shapes {
		r.renderShape(shape)
	}
	return dc.Image()
}

// SlidesToImages renders all slides to images, at most opts.Parallelism at a
// time. The result is in slide order.
func (p *Presentation) SlidesToImages(opts *RenderOptions) ([]image.Image, error) {
	opts = opts.withDefaults()
	images := make([]image.Image, len(p.slides))

	var g errgroup.Group
	g.SetLimit(opts.Parallelism)
	for i, slide := range p.slides {
		i, slide := i, slide
		g.Go(func() error {
			if slide == nil {
				return fmt.Errorf("slide %d: slide is nil", i)
			}
			images[i] = p.renderSlide(slide, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// SaveSlideAsImage renders a slide and saves it to a file. The format is
// chosen from the file extension.
func (p *Presentation) SaveSlideAsImage(slideIndex int, path string, opts *RenderOptions) error {
	img, err := p.SlideToImage(slideIndex, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path)
}

// SaveSlidesAsImages renders every slide and saves them using pattern, which
// must contain one integer verb for the 1-based slide number
// (e.g. "out/slide%02d.png"). It returns the written paths in slide order.
func (p *Presentation) SaveSlidesAsImages(pattern string, opts *RenderOptions) ([]string, error) {
	if strings.Count(pattern, "%") != 1 {
		return nil, fmt.Errorf("pattern %q must contain exactly one integer verb", pattern)
	}
	images, err := p.SlidesToImages(opts)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(images))
	for i, img := range images {
		paths[i] = fmt.Sprintf(pattern, i+1)
		if err := saveImage(img, paths[i]); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return paths, nil
}

// ContactSheet lays thumbnails of images out in a grid of the given number of
// columns, each scaled to thumbWidth pixels wide, on a light grey canvas.
func ContactSheet(images []image.Image, columns, thumbWidth int) (image.Image, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("contact sheet needs at least one image")
	}
	if columns <= 0 || thumbWidth <= 0 {
		return nil, fmt.Errorf("invalid contact sheet grid: %d columns, %dpx thumbnails", columns, thumbWidth)
	}
	const gap = 16

	thumbs := make([]*image.NRGBA, len(images))
	thumbHeight := 0
	for i, img := range images {
		thumbs[i] = imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
		if h := thumbs[i].Bounds().Dy(); h > thumbHeight {
			thumbHeight = h
		}
	}

	rows := (len(images) + columns - 1) / columns
	width := gap + columns*(thumbWidth+gap)
	height := gap + rows*(thumbHeight+gap)
	canvas := imaging.New(width, height, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
	for i, t := range thumbs {
		x := gap + (i%columns)*(thumbWidth+gap)
		y := gap + (i/columns)*(thumbHeight+gap)
		canvas = imaging.Paste(canvas, t, image.Pt(x, y))
	}
	return canvas, nil
}

// SaveImage writes img to path, creating parent directories. The format is
// chosen from the file extension.
func SaveImage(img image.Image, path string) error {
	return saveImage(img, path)
}

func saveImage(img image.Image, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// renderer draws one slide. It is not safe for concurrent use.
type renderer struct {
	dc     *gg.Context
	scale  float64 // pixels per EMU
	fonts  *FontCache
	shaper *shaping.HarfbuzzShaper
}

func (r *renderer) px(emu int64) float64 {
	return float64(emu) * r.scale
}

// pxPerPoint returns the pixel size of one typographic point.
func (r *renderer) pxPerPoint() float64 {
	return emuPerPoint * r.scale
}

func (r *renderer) renderShape(shape Shape) {
	switch s := shape.(type) {
	case *AutoShape:
		r.renderAutoShape(s)
	case *RichTextShape:
		r.renderRichText(s)
	}
}

func (r *renderer) renderAutoShape(s *AutoShape) {
	x, y, w, h := r.px(s.offsetX), r.px(s.offsetY), r.px(s.width), r.px(s.height)
	if s.fill != nil && s.fill.Type == FillSolid {
		r.tracePreset(s.shapeType, x, y, w, h)
		r.dc.SetColor(s.fill.Color.RGBA())
		r.dc.Fill()
	}
	if b := s.border; b != nil && b.Style == BorderSolid {
		r.tracePreset(s.shapeType, x, y, w, h)
		r.dc.SetColor(b.Color.RGBA())
		r.dc.SetLineWidth(math.Max(1, r.px(int64(b.Width))))
		r.dc.Stroke()
	}
}

// roundRectRadius is the default adj of the roundRect preset (16667/100000).
const roundRectRadius = 0.16667

// tracePreset adds the outline of a preset geometry to the current path.
func (r *renderer) tracePreset(kind AutoShapeType, x, y, w, h float64) {
	dc := r.dc
	switch kind {
	case AutoShapeRoundedRect:
		dc.DrawRoundedRectangle(x, y, w, h, roundRectRadius*math.Min(w, h))
	case AutoShapeTriangle:
		polygon(dc, x+w/2, y, x+w, y+h, x, y+h)
	case AutoShapeRightTriangle:
		polygon(dc, x, y, x, y+h, x+w, y+h)
	case AutoShapeChevron:
		a := 0.5 * math.Min(w, h)
		polygon(dc, x, y, x+w-a, y, x+w, y+h/2, x+w-a, y+h, x, y+h, x+a, y+h/2)
	default:
		dc.DrawRectangle(x, y, w, h)
	}
}

func polygon(dc *gg.Context, pts ...float64) {
	dc.NewSubPath()
	dc.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		dc.LineTo(pts[i], pts[i+1])
	}
	dc.ClosePath()
}

func (r *renderer) renderRichText(s *RichTextShape) {
	x, y, w, h := r.px(s.offsetX), r.px(s.offsetY), r.px(s.width), r.px(s.height)
	if s.fill != nil && s.fill.Type == FillSolid {
		r.dc.DrawRectangle(x, y, w, h)
		r.dc.SetColor(s.fill.Color.RGBA())
		r.dc.Fill()
	}
	r.drawParagraphs(s.paragraphs, s.wordWrap,
		x+r.px(DefaultInsetLeftRight), y+r.px(DefaultInsetTopBottom),
		w-2*r.px(DefaultInsetLeftRight))
}
