package pptx

import (
	"slices"

	"golang.org/x/text/unicode/bidi"
)

// strongDirection classifies r for run splitting: 1 for right-to-left
// letters, 0 for left-to-right letters and digits, -1 for neutrals.
func strongDirection(r rune) int8 {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.R, bidi.AL:
		return 1
	case bidi.L, bidi.EN, bidi.AN:
		return 0
	default:
		return -1
	}
}

// IsRTL reports whether the first strong character of s is right-to-left.
// Text without strong characters is left-to-right.
func IsRTL(s string) bool {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}

// bidiRun is a span of one embedding level.
type bidiRun struct {
	text  []rune
	rtl   bool
	level int
}

// visualRuns splits one line into directional runs with the Unicode
// bidirectional algorithm and returns them in visual (left to right) order.
// Glyph order inside a right-to-left run is left to the shaper.
func visualRuns(line string, rtlBase bool) []bidiRun {
	if line == "" {
		return nil
	}
	dir := bidi.LeftToRight
	if rtlBase {
		dir = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(line, bidi.DefaultDirection(dir)); err != nil {
		return []bidiRun{{text: []rune(line), rtl: rtlBase, level: baseLevel(rtlBase)}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []bidiRun{{text: []rune(line), rtl: rtlBase, level: baseLevel(rtlBase)}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		text := []rune(run.String())
		if len(text) == 0 {
			continue
		}
		rtl := run.Direction() == bidi.RightToLeft
		runs = append(runs, bidiRun{text: text, rtl: rtl, level: runLevel(text, rtl, rtlBase, runs)})
	}
	reorderRuns(runs)
	return runs
}

func baseLevel(rtl bool) int {
	if rtl {
		return 1
	}
	return 0
}

// runLevel recovers the embedding level of a run from its direction, which
// is all the ordering exposes. Left-to-right text inside a right-to-left
// paragraph sits at level 2. So do numbers that follow right-to-left text in
// a left-to-right paragraph.
func runLevel(text []rune, rtl, rtlBase bool, prev []bidiRun) int {
	switch {
	case rtl:
		return 1
	case rtlBase:
		return 2
	case len(prev) > 0 && prev[len(prev)-1].rtl && !hasStrongLTR(text):
		return 2
	}
	return 0
}

func hasStrongLTR(text []rune) bool {
	for _, r := range text {
		if p, _ := bidi.LookupRune(r); p.Class() == bidi.L {
			return true
		}
	}
	return false
}

// reorderRuns applies rule L2: from the highest level down to 1, every
// maximal sequence of runs at that level or above is reversed.
func reorderRuns(runs []bidiRun) {
	highest := 0
	for _, r := range runs {
		highest = max(highest, r.level)
	}
	for lvl := highest; lvl >= 1; lvl-- {
		for i := 0; i < len(runs); {
			if runs[i].level < lvl {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].level >= lvl {
				j++
			}
			slices.Reverse(runs[i:j])
			i = j
		}
	}
}
