package seradeck

// SlideCount is the number of slides in the proposal deck.
const SlideCount = 29

// Proposal draws the full proposal deck, one assembler call per slide.
// Page numbers follow the slide order.
func (b *Builder) Proposal() {
	b.TitleSlide(cover)
	b.TOCSlide(2, "المحتوى", contents)
	b.OverviewSlide(3, "نظرة عامة على البرنامج", overviewFacts, overviewDetails)
	b.CategoriesSlide(4, "فئات الفعاليات", categories)

	b.SectionDivider(5, sections.Q1)
	b.EventDetailSlide(6, annualMeeting)
	for i, pair := range q1Events {
		b.TwoEventSlide(7+i, quarter1, pair)
	}

	b.SectionDivider(11, sections.Q2)
	b.EventDetailSlide(12, eidAlFitr)
	b.TwoEventSlide(13, quarter2, q2Pair)
	b.FourEventSlide(14, quarter2, q2Quad, &eidAlAdha)

	b.SectionDivider(15, sections.Q3)
	b.EventDetailSlide(16, seraSummer)
	b.FourEventSlide(17, quarter3, q3Quad, nil)
	b.ThreeEventSlide(18, quarter3, q3Trio)

	b.SectionDivider(19, sections.Q4)
	b.ThreeEventSlide(20, quarter4, q4Trio)
	for i, quad := range q4Quads {
		b.FourEventSlide(21+i, quarter4, quad, nil)
	}
	b.EventDetailSlide(24, yearEndParty)

	b.SectionDivider(25, sections.Sports)
	b.SportsSlide(26, sportsTitle, sportsEvents)

	b.SectionDivider(27, sections.Budget)
	b.BudgetSlide(28, budgetTitle, budgetSummary)

	b.ClosingSlide(closing)
}
