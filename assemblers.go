package seradeck

import "github.com/VantageDataChat/seradeck/pptx"

// Cover is the text of the title and closing slides.
type Cover struct {
	Title   string
	Org     string
	Tagline string
}

// TOCEntry is one row of the contents slide.
type TOCEntry struct {
	Text string
	Page string
}

// Fact is an info card: a short label over a bold value.
type Fact struct {
	Title string
	Value string
}

// Detail is a titled block of body text.
type Detail struct {
	Title string
	Body  string
}

// Section is the text of a section divider.
type Section struct {
	Title    string
	Subtitle string
	Detail   string
}

// EventDetail is a major event shown on a slide of its own.
type EventDetail struct {
	Title      string
	Date       string
	Attendance string
	Level      string
	Venue      string
	Stage      string
	AV         string
	Services   string
}

// Card is an event card whose colour is picked from a palette by index.
type Card struct {
	Title string
	Body  string
	Color int
}

// ColoredCard is an event card with an explicit colour.
type ColoredCard struct {
	Title string
	Body  string
	Fill  pptx.Color
}

// Budget is the content of the budget summary slide.
type Budget struct {
	Facts      []Fact
	Details    []Detail
	TotalLabel string
	TotalValue string
}

// Slide grids, in EMU.
var (
	factGrid = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(1.5),
		CellW: pptx.Inch(3.5), CellH: pptx.Inch(1.1),
		GapX: pptx.Inch(0.3), GapY: pptx.Inch(0.2),
		Columns: 3, Capacity: 6,
	}
	categoryGrid = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(1.5),
		CellW: pptx.Inch(3.7), CellH: pptx.Inch(1.5),
		GapX: pptx.Inch(0.2), GapY: pptx.Inch(0.2),
		Columns: 3, Capacity: 6,
	}
	fourEventGrid = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(1.5),
		CellW: pptx.Inch(5.6), CellH: pptx.Inch(1.4),
		GapX: pptx.Inch(0.2), GapY: pptx.Inch(0.2),
		Columns: 2, Capacity: 4,
	}
	eventInfoGrid = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(1.5),
		CellW: pptx.Inch(3.5), CellH: pptx.Inch(1),
		GapX:    pptx.Inch(0.3),
		Columns: 3, Capacity: 3,
	}
	eventDetailStack = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(2.7),
		CellW: pptx.Inch(11.5), CellH: pptx.Inch(0.8),
		GapY:    pptx.Inch(0.1),
		Columns: 1, Capacity: 4,
	}
	summaryStack = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(4),
		CellW: pptx.Inch(11.5), CellH: pptx.Inch(0.7),
		GapY:    pptx.Inch(0.1),
		Columns: 1, Capacity: 2,
	}
	twoEventStack = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(1.5),
		CellW: pptx.Inch(11.5), CellH: pptx.Inch(2.3),
		GapY:    pptx.Inch(0.2),
		Columns: 1, Capacity: 2,
	}
	threeEventStack = Grid{
		X: pptx.Inch(0.8), Y: pptx.Inch(1.5),
		CellW: pptx.Inch(11.5), CellH: pptx.Inch(1.5),
		GapY:    pptx.Inch(0.15),
		Columns: 1, Capacity: 3,
	}
	tocRows = Grid{
		X: pptx.Inch(1), Y: pptx.Inch(1.6),
		CellW: pptx.Inch(11), CellH: pptx.Inch(0.5),
		GapY:    pptx.Inch(0.2),
		Columns: 1, Capacity: 7,
	}
)

// begin starts a bordered content slide.
func (b *Builder) begin(name string, page int) {
	b.NewSlide(name)
	b.TopBorder()
	b.BottomBorder(page)
}

// fit returns how many of n items g places and warns when the rest are
// dropped.
func (b *Builder) fit(g Grid, n int, what string) int {
	placed := g.Count(n)
	if placed < n && b.err == nil {
		b.log.Warn("grid full, items dropped",
			"slide", b.pres.GetSlideCount(), "items", what, "placed", placed, "dropped", n-placed)
	}
	return placed
}

func (b *Builder) assembled(name string, page int) {
	if b.err != nil {
		return
	}
	b.log.Debug("slide assembled", "slide", b.pres.GetSlideCount(), "layout", name, "page", page)
}

// TitleSlide draws the cover page.
func (b *Builder) TitleSlide(c Cover) {
	b.cover("title", c)
}

// ClosingSlide draws the closing page. It mirrors the cover.
func (b *Builder) ClosingSlide(c Cover) {
	b.cover("closing", c)
}

func (b *Builder) cover(name string, c Cover) {
	b.NewSlide(name)
	layout := b.pres.GetLayout()
	w, h := layout.CX, layout.CY
	b.Shape(pptx.AutoShapeRectangle, Box{X: w / 2, Y: 0, W: w / 2, H: h}, DarkBlue)
	b.Shape(pptx.AutoShapeChevron, Box{X: w/2 - pptx.Inch(1), Y: 0, W: pptx.Inch(2), H: h}, ChevronBlue)
	b.Shape(pptx.AutoShapeRightTriangle, Box{X: 0, Y: h - pptx.Inch(1.5), W: pptx.Inch(1.5), H: pptx.Inch(1.5)}, Green)

	b.Text(In(0.5, 2, 5.5, 1.2), TextStyle{Size: 60, Bold: true, Color: DarkBlue, Align: pptx.HorizontalRight}, c.Title)
	b.Text(In(0.5, 3.2, 5.5, 0.6), TextStyle{Size: 24, Color: LightBlue, Align: pptx.HorizontalRight}, c.Org)
	b.Text(In(0.5, 4, 5.5, 0.8), TextStyle{Size: 36, Bold: true, Color: DarkBlue, Align: pptx.HorizontalRight}, c.Tagline)
	b.assembled(name, 0)
}

// TOCSlide draws the contents page. Divider rules alternate green and dark
// blue.
func (b *Builder) TOCSlide(page int, title string, entries []TOCEntry) {
	b.begin("contents", page)
	b.Text(In(0.8, 0.6, 11.5, 0.8),
		TextStyle{Size: 44, Bold: true, Color: DarkBlue, Align: pptx.HorizontalRight, Wrap: true, Font: pptx.DefaultFontName},
		title)

	for i, limit := 0, b.fit(tocRows, len(entries), "contents entries"); i < limit; i++ {
		row := tocRows.Cell(i)
		b.Shape(pptx.AutoShapeRectangle, Box{X: row.X, Y: row.Bottom(), W: row.W, H: pptx.Inch(0.04)}, dividerPalette.At(i))
		b.Text(Box{X: pptx.Inch(2), Y: row.Y, W: pptx.Inch(9), H: row.H},
			TextStyle{Size: 20, Bold: true, Color: DarkBlue, Align: pptx.HorizontalRight, Wrap: true, Font: pptx.DefaultFontName},
			entries[i].Text)
		b.Text(Box{X: row.X, Y: row.Y, W: pptx.Inch(0.8), H: row.H},
			TextStyle{Size: 20, Bold: true, Color: LightBlue, Align: pptx.HorizontalLeft},
			entries[i].Page)
	}
	b.assembled("contents", page)
}

// OverviewSlide draws a grid of info cards followed by detail boxes.
func (b *Builder) OverviewSlide(page int, title string, facts []Fact, details []Detail) {
	b.begin("overview", page)
	b.PageTitle(title)
	for i, limit := 0, b.fit(factGrid, len(facts), "facts"); i < limit; i++ {
		b.InfoCard(factGrid.Cell(i), facts[i].Title, facts[i].Value, DarkBlue)
	}
	for i, limit := 0, b.fit(summaryStack, len(details), "details"); i < limit; i++ {
		b.DetailBox(summaryStack.Cell(i), details[i].Title, details[i].Body)
	}
	b.assembled("overview", page)
}

// CategoriesSlide draws a grid of dark cards with a mint title and a
// centred body.
func (b *Builder) CategoriesSlide(page int, title string, cats []Detail) {
	b.begin("categories", page)
	b.PageTitle(title)
	for i, limit := 0, b.fit(categoryGrid, len(cats), "categories"); i < limit; i++ {
		cell := categoryGrid.Cell(i)
		b.Shape(pptx.AutoShapeRoundedRect, cell, DarkBlue)
		textW := cell.W - pptx.Inch(0.2)
		b.Text(cell.inner(0.1, 0.1, textW, pptx.Inch(0.4)),
			TextStyle{Size: 16, Bold: true, Color: Mint, Align: pptx.HorizontalCenter},
			cats[i].Title)
		b.Text(cell.inner(0.1, 0.5, textW, cell.H-pptx.Inch(0.6)),
			TextStyle{Size: 12, Color: White, Align: pptx.HorizontalCenter, Wrap: true},
			cats[i].Body)
	}
	b.assembled("categories", page)
}

// SectionDivider draws a centred section heading.
func (b *Builder) SectionDivider(page int, s Section) {
	b.begin("section", page)
	b.Text(In(0.8, 2.5, 11.5, 0.6), TextStyle{Size: 26, Color: LightBlue, Align: pptx.HorizontalCenter}, s.Subtitle)
	b.Text(In(0.8, 3.2, 11.5, 1), TextStyle{Size: 50, Bold: true, Color: DarkBlue, Align: pptx.HorizontalCenter}, s.Title)
	b.Text(In(0.8, 4.3, 11.5, 0.5), TextStyle{Size: 18, Color: DetailGrey, Align: pptx.HorizontalCenter}, s.Detail)
	b.assembled("section", page)
}

// EventDetailSlide draws one major event: date, attendance and level cards
// over venue, stage, AV and services boxes.
func (b *Builder) EventDetailSlide(page int, ev EventDetail) {
	b.begin("event", page)
	b.PageTitle(ev.Title)
	facts := []Fact{
		{"التاريخ", ev.Date},
		{"الحضور المتوقع", ev.Attendance},
		{"المستوى", ev.Level},
	}
	for i, f := range facts {
		b.InfoCard(eventInfoGrid.Cell(i), f.Title, f.Value, DarkBlue)
	}
	details := []Detail{
		{"المكان المقترح", ev.Venue},
		{"المسرح والديكور", ev.Stage},
		{"المتطلبات السمعية والبصرية", ev.AV},
		{"الخدمات الرئيسية", ev.Services},
	}
	for i, d := range details {
		b.DetailBox(eventDetailStack.Cell(i), d.Title, d.Body)
	}
	b.assembled("event", page)
}

// TwoEventSlide stacks up to two tall event cards coloured from
// TwoCardPalette.
func (b *Builder) TwoEventSlide(page int, title string, cards []Card) {
	b.stackedCards("two-event", page, title, cards, twoEventStack, TwoCardPalette)
}

// ThreeEventSlide stacks up to three event cards coloured from
// ThreeCardPalette.
func (b *Builder) ThreeEventSlide(page int, title string, cards []Card) {
	b.stackedCards("three-event", page, title, cards, threeEventStack, ThreeCardPalette)
}

func (b *Builder) stackedCards(name string, page int, title string, cards []Card, g Grid, pal Palette) {
	b.begin(name, page)
	b.PageTitle(title)
	for i, limit := 0, b.fit(g, len(cards), "cards"); i < limit; i++ {
		b.EventCard(g.Cell(i), cards[i].Title, cards[i].Body, pal.At(cards[i].Color))
	}
	b.assembled(name, page)
}

// FourEventSlide draws up to four compact cards in a 2x2 grid and an
// optional detail box beneath them.
func (b *Builder) FourEventSlide(page int, title string, cards []Detail, extra *Detail) {
	b.begin("four-event", page)
	b.PageTitle(title)
	for i, limit := 0, b.fit(fourEventGrid, len(cards), "cards"); i < limit; i++ {
		cell := fourEventGrid.Cell(i)
		b.Shape(pptx.AutoShapeRoundedRect, cell, DarkBlue)
		textW := cell.W - pptx.Inch(0.3)
		b.Text(cell.inner(0.15, 0.1, textW, pptx.Inch(0.4)),
			TextStyle{Size: 14, Bold: true, Color: Mint, Align: pptx.HorizontalRight},
			cards[i].Title)
		b.Text(cell.inner(0.15, 0.5, textW, cell.H-pptx.Inch(0.6)),
			TextStyle{Size: 11, Color: White, Align: pptx.HorizontalRight, Wrap: true},
			cards[i].Body)
	}
	if extra != nil {
		b.DetailBox(In(0.8, 4.5, 11.5, 0.8), extra.Title, extra.Body)
	}
	b.assembled("four-event", page)
}

// SportsSlide stacks event cards that carry their own colours.
func (b *Builder) SportsSlide(page int, title string, cards []ColoredCard) {
	b.begin("sports", page)
	b.PageTitle(title)
	for i, limit := 0, b.fit(threeEventStack, len(cards), "cards"); i < limit; i++ {
		b.EventCard(threeEventStack.Cell(i), cards[i].Title, cards[i].Body, cards[i].Fill)
	}
	b.assembled("sports", page)
}

// BudgetSlide draws the budget summary: info cards with the last one in
// green, detail boxes and a dark total bar.
func (b *Builder) BudgetSlide(page int, title string, budget Budget) {
	b.begin("budget", page)
	b.PageTitle(title)
	n := b.fit(factGrid, len(budget.Facts), "facts")
	for i := 0; i < n; i++ {
		bg := DarkBlue
		if i == n-1 {
			bg = Green
		}
		b.InfoCard(factGrid.Cell(i), budget.Facts[i].Title, budget.Facts[i].Value, bg)
	}
	for i, limit := 0, b.fit(summaryStack, len(budget.Details), "details"); i < limit; i++ {
		b.DetailBox(summaryStack.Cell(i), budget.Details[i].Title, budget.Details[i].Body)
	}

	total := In(0.8, 5.6, 11.5, 0.7)
	b.Shape(pptx.AutoShapeRoundedRect, total, DarkBlue)
	b.Shape(pptx.AutoShapeRectangle, Box{X: total.Right() - pptx.Inch(0.08), Y: total.Y, W: pptx.Inch(0.08), H: total.H}, Green)
	b.Text(In(1, 5.65, 11, 0.3), TextStyle{Size: 14, Bold: true, Color: White, Align: pptx.HorizontalRight}, budget.TotalLabel)
	b.Text(In(1, 5.95, 11, 0.3), TextStyle{Size: 18, Bold: true, Color: Mint, Align: pptx.HorizontalRight}, budget.TotalValue)
	b.assembled("budget", page)
}
