package seradeck

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VantageDataChat/seradeck/internal/logger"
	"github.com/VantageDataChat/seradeck/pptx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func generate(t *testing.T) *pptx.Presentation {
	t.Helper()
	p, err := Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return p
}

func textShapes(s *pptx.Slide) []*pptx.RichTextShape {
	var out []*pptx.RichTextShape
	for _, sh := range s.GetShapes() {
		if tb, ok := sh.(*pptx.RichTextShape); ok {
			out = append(out, tb)
		}
	}
	return out
}

func autoShapes(s *pptx.Slide, kind pptx.AutoShapeType) []*pptx.AutoShape {
	var out []*pptx.AutoShape
	for _, sh := range s.GetShapes() {
		if a, ok := sh.(*pptx.AutoShape); ok && a.GetAutoShapeType() == kind {
			out = append(out, a)
		}
	}
	return out
}

func TestGenerate_SlideCount(t *testing.T) {
	p := generate(t)
	if got := p.GetSlideCount(); got != SlideCount {
		t.Fatalf("got %d slides, want %d", got, SlideCount)
	}
}

func TestGenerate_ShapesInsideBounds(t *testing.T) {
	p := generate(t)
	layout := p.GetLayout()
	for i, s := range p.GetAllSlides() {
		for j, sh := range s.GetShapes() {
			err := pptx.CheckBounds(layout, sh.GetOffsetX(), sh.GetOffsetY(), sh.GetWidth(), sh.GetHeight())
			if err != nil {
				t.Errorf("slide %d shape %d: %v", i+1, j+1, err)
			}
		}
	}
}

func TestGenerate_PageLabels(t *testing.T) {
	p := generate(t)
	layout := p.GetLayout()
	labelX := pptx.Inch(0.8)
	labelY := layout.CY - pptx.Inch(0.5)

	slides := p.GetAllSlides()
	// The cover and the closing slide carry no footer.
	for i := 1; i < len(slides)-1; i++ {
		var labels []string
		for _, tb := range textShapes(slides[i]) {
			if tb.GetOffsetX() == labelX && tb.GetOffsetY() == labelY {
				labels = append(labels, tb.Text())
			}
		}
		want := PageLabel(i + 1)
		if len(labels) != 1 || labels[0] != want {
			t.Errorf("slide %d: page labels %q, want [%q]", i+1, labels, want)
		}
	}
	for _, i := range []int{0, len(slides) - 1} {
		for _, tb := range textShapes(slides[i]) {
			if tb.GetOffsetY() == labelY {
				t.Errorf("slide %d should not have a page label", i+1)
			}
		}
	}
}

func TestGenerate_ArabicTextIsRTL(t *testing.T) {
	p := generate(t)
	s, err := p.GetSlide(1)
	if err != nil {
		t.Fatal(err)
	}
	heading := textShapes(s)[1]
	if heading.Text() != "المحتوى" {
		t.Fatalf("heading = %q", heading.Text())
	}
	para := heading.GetParagraphs()[0]
	if !para.GetAlignment().RTL || para.GetAlignment().Horizontal != pptx.HorizontalRight {
		t.Errorf("heading alignment = %+v", para.GetAlignment())
	}
	if lang := para.GetRuns()[0].GetLang(); lang != "ar-SA" {
		t.Errorf("heading lang = %q", lang)
	}

	cover, _ := p.GetSlide(0)
	title := textShapes(cover)[0]
	if title.Text() != "SERA 2026" || title.GetParagraphs()[0].GetAlignment().RTL {
		t.Errorf("cover title %q should be left-to-right", title.Text())
	}
}

func TestGenerate_BudgetKeepsPlaceholders(t *testing.T) {
	p := generate(t)
	s, err := p.GetSlide(27)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, tb := range textShapes(s) {
		if tb.Text() == Placeholder {
			n++
		}
	}
	if n != 3 {
		t.Errorf("found %d placeholders on the budget slide, want 3", n)
	}
	cards := autoShapes(s, pptx.AutoShapeRoundedRect)
	// Six info cards, two detail boxes and the total bar.
	if len(cards) != 9 {
		t.Fatalf("got %d rounded shapes, want 9", len(cards))
	}
	if got := cards[5].GetFill().Color; got != Green {
		t.Errorf("last info card fill = %s, want green", got.ARGB)
	}
	if got := cards[4].GetFill().Color; got != DarkBlue {
		t.Errorf("info card fill = %s, want dark blue", got.ARGB)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	if _, err := generate(t).WriteTo(&first); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if _, err := generate(t).WriteTo(&second); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("two runs produced different bytes")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a", "deck.pptx")
	b := filepath.Join(dir, "b", "deck.pptx")
	if err := Save(a, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(b, DefaultOptions()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	da, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := os.ReadFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(da, db) {
		t.Error("saved files differ")
	}
	if !bytes.HasPrefix(da, []byte("PK")) {
		t.Error("output is not a zip archive")
	}
}

func TestGenerate_LogsEverySlide(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	if _, err := Generate(opts); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := logs.FilterMessage("slide assembled").Len(); n != SlideCount {
		t.Errorf("logged %d slides, want %d", n, SlideCount)
	}
	done := logs.FilterMessage("deck generated").All()
	if len(done) != 1 || done[0].ContextMap()["slides"] != int64(SlideCount) {
		t.Errorf("deck generated entries = %v", done)
	}
}

func TestTwoEventSlide(t *testing.T) {
	p := pptx.New()
	b := NewBuilder(p, nil)
	cards := []Card{
		{Title: "2. يوم التأسيس", Body: "المكان: مقر SERA\nالخدمات: هدايا", Color: 0},
		{Title: "3. يوم تقدير الموظف", Body: "المكان: فندق", Color: 3},
	}
	b.TwoEventSlide(7, "فعاليات الربع الأول", cards)
	if err := b.Err(); err != nil {
		t.Fatalf("TwoEventSlide: %v", err)
	}

	s, _ := p.GetSlide(0)
	rounded := autoShapes(s, pptx.AutoShapeRoundedRect)
	if len(rounded) != 2 {
		t.Fatalf("got %d cards, want 2", len(rounded))
	}
	texts := map[string]bool{}
	for _, tb := range textShapes(s) {
		texts[tb.Text()] = true
	}
	for i, c := range cards {
		if got, want := rounded[i].GetFill().Color, TwoCardPalette.At(c.Color); got != want {
			t.Errorf("card %d fill = %s, want %s", i, got.ARGB, want.ARGB)
		}
		if !texts[c.Title] || !texts[c.Body] {
			t.Errorf("card %d text missing: %q / %q", i, c.Title, c.Body)
		}
	}
	if !texts["07"] {
		t.Error("page label 07 missing")
	}
}

func TestFourEventSlide_PlacesAtMostFour(t *testing.T) {
	p := pptx.New()
	b := NewBuilder(p, nil)
	cards := make([]Detail, 6)
	for i := range cards {
		cards[i] = Detail{Title: PageLabel(i), Body: "body"}
	}
	b.FourEventSlide(3, "عنوان", cards, &Detail{Title: "extra", Body: "detail"})
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}
	s, _ := p.GetSlide(0)
	// Four cards plus the extra detail box.
	if n := len(autoShapes(s, pptx.AutoShapeRoundedRect)); n != 5 {
		t.Errorf("got %d rounded shapes, want 5", n)
	}
}

func TestBuilder_StickyError(t *testing.T) {
	p := pptx.New()
	b := NewBuilder(p, nil)
	b.NewSlide("test")
	b.Shape(pptx.AutoShapeRectangle, In(1, 1, 2, 2), DarkBlue)
	b.Shape(pptx.AutoShapeRectangle, In(12, 1, 2, 2), DarkBlue)
	b.Shape(pptx.AutoShapeRectangle, In(1, 4, 2, 2), DarkBlue)
	b.NewSlide("after")

	if err := b.Err(); !errors.Is(err, pptx.ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if !strings.Contains(b.Err().Error(), "slide 1") {
		t.Errorf("error %q should name the slide", b.Err())
	}
	if p.GetSlideCount() != 1 {
		t.Errorf("got %d slides, want 1", p.GetSlideCount())
	}
	s, _ := p.GetSlide(0)
	if n := len(s.GetShapes()); n != 1 {
		t.Errorf("got %d shapes, want 1", n)
	}
}

func TestBuilder_RejectsNegativeSize(t *testing.T) {
	b := NewBuilder(pptx.New(), nil)
	b.NewSlide("test")
	b.Text(Box{X: 0, Y: 0, W: -1, H: 10}, TextStyle{Size: 12}, "x")
	if !errors.Is(b.Err(), pptx.ErrInvalidGeometry) {
		t.Fatalf("got %v, want ErrInvalidGeometry", b.Err())
	}
}

func TestBuilder_RequiresSlide(t *testing.T) {
	b := NewBuilder(pptx.New(), nil)
	b.PageTitle("عنوان")
	if !errors.Is(b.Err(), errNoSlide) {
		t.Fatalf("got %v, want errNoSlide", b.Err())
	}
}

func TestText_SplitsParagraphs(t *testing.T) {
	p := pptx.New()
	b := NewBuilder(p, nil)
	b.NewSlide("text")
	b.Text(In(1, 1, 4, 1), TextStyle{Size: 12, Align: pptx.HorizontalRight, Wrap: true}, "السطر الأول\nSecond line")

	s, _ := p.GetSlide(0)
	tb := textShapes(s)[0]
	paras := tb.GetParagraphs()
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if !paras[0].GetAlignment().RTL || paras[1].GetAlignment().RTL {
		t.Error("only the Arabic line should be right-to-left")
	}
	if paras[1].GetRuns()[0].GetLang() != "" {
		t.Error("latin run should not carry a language tag")
	}
	if !tb.GetWordWrap() {
		t.Error("word wrap should be on")
	}
}

func TestGenerate_ContentsDividersAlternate(t *testing.T) {
	p := generate(t)
	s, err := p.GetSlide(1)
	if err != nil {
		t.Fatal(err)
	}
	var dividers []*pptx.AutoShape
	for _, r := range autoShapes(s, pptx.AutoShapeRectangle) {
		if r.GetHeight() == pptx.Inch(0.04) {
			dividers = append(dividers, r)
		}
	}
	if len(dividers) != len(contents) {
		t.Fatalf("got %d dividers, want %d", len(dividers), len(contents))
	}
	for i, d := range dividers {
		want := Green
		if i%2 == 1 {
			want = DarkBlue
		}
		if got := d.GetFill().Color; got != want {
			t.Errorf("divider %d fill = %s, want %s", i, got.ARGB, want.ARGB)
		}
	}
}

func TestGenerate_SportsCardColors(t *testing.T) {
	p := generate(t)
	s, err := p.GetSlide(25)
	if err != nil {
		t.Fatal(err)
	}
	if s.GetName() != "sports" {
		t.Fatalf("slide 26 is %q, want sports", s.GetName())
	}
	cards := autoShapes(s, pptx.AutoShapeRoundedRect)
	want := []pptx.Color{Green, LightBlue, Orange}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i, c := range cards {
		if got := c.GetFill().Color; got != want[i] {
			t.Errorf("card %d fill = %s, want %s", i, got.ARGB, want[i].ARGB)
		}
	}
}

func TestFourEventSlide_WarnsWhenFull(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	b := NewBuilder(pptx.New(), &logger.Logger{SugaredLogger: zap.New(core).Sugar()})
	b.FourEventSlide(3, "عنوان", make([]Detail, 6), nil)

	warns := logs.FilterMessage("grid full, items dropped").All()
	if len(warns) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warns))
	}
	if got := warns[0].ContextMap()["dropped"]; got != int64(2) {
		t.Errorf("dropped = %v, want 2", got)
	}
}
