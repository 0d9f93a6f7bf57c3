package pptx

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func embeddedRenderOptions() *RenderOptions {
	opts := DefaultRenderOptions()
	opts.FontCache = newEmbeddedFontCache()
	return opts
}

func pixelAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestSlideToImage_Dimensions(t *testing.T) {
	img, err := newTestPresentation().SlideToImage(0, embeddedRenderOptions())
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 960 {
		t.Errorf("expected width 960, got %d", bounds.Dx())
	}
	// 16:9 => 960:540
	if bounds.Dy() != 540 {
		t.Errorf("expected height 540, got %d", bounds.Dy())
	}
}

func TestSlideToImage_FillsShapes(t *testing.T) {
	img, err := newTestPresentation().SlideToImage(0, embeddedRenderOptions())
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	// 72 px per inch at 960 px wide: the card spans (72,72)-(288,144).
	if got, want := pixelAt(img, 180, 108), (color.RGBA{R: 0x1A, G: 0x36, B: 0x5D, A: 0xFF}); got != want {
		t.Errorf("card center = %v, want %v", got, want)
	}
	if got := pixelAt(img, 600, 20); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("background = %v, want white", got)
	}
}

func TestSlideToImage_ChevronNotch(t *testing.T) {
	img, err := newTestPresentation().SlideToImage(1, embeddedRenderOptions())
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	fill := color.RGBA{R: 0x2C, G: 0x52, B: 0x82, A: 0xFF}
	// The chevron is 144 px wide and 540 px tall: notch depth and point
	// depth are both 72 px.
	if got := pixelAt(img, 110, 270); got != fill {
		t.Errorf("chevron body = %v, want %v", got, fill)
	}
	if got := pixelAt(img, 20, 270); got == fill {
		t.Error("chevron notch should stay unfilled")
	}
	if got := pixelAt(img, 140, 10); got == fill {
		t.Error("chevron point should not reach the top right corner")
	}
}

func TestSlideToImage_DrawsText(t *testing.T) {
	p := New()
	s := p.CreateSlide()
	tb := s.CreateRichTextShape()
	tb.SetPosition(Inch(1), Inch(1))
	tb.SetSize(Inch(6), Inch(1))
	tb.CreateTextRun("HELLO WORLD").GetFont().SetSize(40).SetColor(ColorBlack)

	img, err := p.SlideToImage(0, embeddedRenderOptions())
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	dark := 0
	for y := 72; y < 144; y++ {
		for x := 72; x < 504; x++ {
			if c := pixelAt(img, x, y); c.R < 128 && c.G < 128 && c.B < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text pixels drawn inside the text box")
	}
}

func TestSlideToImage_OutOfRange(t *testing.T) {
	_, err := newTestPresentation().SlideToImage(5, nil)
	if !errors.Is(err, ErrSlideIndex) {
		t.Errorf("got %v, want ErrSlideIndex", err)
	}
}

func TestSlidesToImages_Order(t *testing.T) {
	p := newTestPresentation()
	opts := embeddedRenderOptions()
	opts.Parallelism = 2
	images, err := p.SlidesToImages(opts)
	if err != nil {
		t.Fatalf("SlidesToImages: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	// Only slide 2 has the chevron at the left edge.
	fill := color.RGBA{R: 0x2C, G: 0x52, B: 0x82, A: 0xFF}
	if pixelAt(images[0], 110, 270) == fill || pixelAt(images[1], 110, 270) != fill {
		t.Error("images are not in slide order")
	}
}

func TestSaveSlidesAsImages(t *testing.T) {
	dir := t.TempDir()
	paths, err := newTestPresentation().SaveSlidesAsImages(filepath.Join(dir, "slide%02d.png"), embeddedRenderOptions())
	if err != nil {
		t.Fatalf("SaveSlidesAsImages: %v", err)
	}
	want := []string{filepath.Join(dir, "slide01.png"), filepath.Join(dir, "slide02.png")}
	for i, path := range want {
		if paths[i] != path {
			t.Errorf("path %d = %s, want %s", i, paths[i], path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}

	if _, err := newTestPresentation().SaveSlidesAsImages(filepath.Join(dir, "slide.png"), nil); err == nil {
		t.Error("expected error for pattern without a verb")
	}
}

func TestContactSheet(t *testing.T) {
	images := make([]image.Image, 5)
	for i := range images {
		images[i] = image.NewRGBA(image.Rect(0, 0, 160, 90))
	}
	sheet, err := ContactSheet(images, 3, 80)
	if err != nil {
		t.Fatalf("ContactSheet: %v", err)
	}
	// 3 columns of 80 px and 2 rows of 45 px, 16 px gaps.
	if got := sheet.Bounds(); got.Dx() != 16+3*(80+16) || got.Dy() != 16+2*(45+16) {
		t.Errorf("sheet size = %dx%d", got.Dx(), got.Dy())
	}

	if _, err := ContactSheet(nil, 3, 80); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ContactSheet(images, 0, 80); err == nil {
		t.Error("expected error for zero columns")
	}
}
