package pptx

import "testing"

func TestIsRTL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"المقدمة", true},
		{"SERA 2026", false},
		{"2026 خطة", true},
		{"   ", false},
		{"", false},
		{"(Q1) الربع الأول", false},
		{"01", false},
	}
	for _, tt := range tests {
		if got := IsRTL(tt.in); got != tt.want {
			t.Errorf("IsRTL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func runTexts(runs []bidiRun) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = string(r.text)
	}
	return out
}

func TestVisualRuns(t *testing.T) {
	tests := []struct {
		name string
		line string
		rtl  bool
		want []string
		dirs []bool
	}{
		{
			name: "latin only",
			line: "Event Plan",
			want: []string{"Event Plan"},
			dirs: []bool{false},
		},
		{
			name: "arabic only",
			line: "خطة الفعاليات",
			rtl:  true,
			want: []string{"خطة الفعاليات"},
			dirs: []bool{true},
		},
		{
			name: "arabic paragraph with year",
			line: "موسم 2026",
			rtl:  true,
			want: []string{"2026", "موسم "},
			dirs: []bool{false, true},
		},
		{
			name: "number range in arabic text",
			line: "يجب الحجز قبل 3-4 أشهر",
			rtl:  true,
			want: []string{" أشهر", "4", "-", "3", "يجب الحجز قبل "},
			dirs: []bool{true, false, true, false, true},
		},
		{
			name: "spaced numbers between arabic letters",
			line: "ب 1 2 ب",
			rtl:  true,
			want: []string{" ب", "2", " ", "1", "ب "},
			dirs: []bool{true, false, true, false, true},
		},
		{
			name: "latin paragraph ending in arabic year",
			line: "SERA موسم 2026",
			want: []string{"SERA ", "2026", "موسم "},
			dirs: []bool{false, false, true},
		},
		{
			name: "latin paragraph with arabic words",
			line: "SERA موسم الرياض",
			want: []string{"SERA ", "موسم الرياض"},
			dirs: []bool{false, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := visualRuns(tt.line, tt.rtl)
			got := runTexts(runs)
			if len(got) != len(tt.want) {
				t.Fatalf("runs = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] || runs[i].rtl != tt.dirs[i] {
					t.Errorf("run %d = %q (rtl=%v), want %q (rtl=%v)", i, got[i], runs[i].rtl, tt.want[i], tt.dirs[i])
				}
			}
		})
	}
}

func TestVisualRuns_Empty(t *testing.T) {
	if runs := visualRuns("", true); runs != nil {
		t.Errorf("visualRuns(\"\") = %v, want nil", runs)
	}
}

func TestReorderRuns(t *testing.T) {
	runs := []bidiRun{
		{text: []rune("a"), level: 1},
		{text: []rune("b"), level: 2},
		{text: []rune("c"), level: 2},
		{text: []rune("d"), level: 0},
	}
	reorderRuns(runs)
	got := runTexts(runs)
	want := []string{"b", "c", "a", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reorderRuns = %q, want %q", got, want)
		}
	}
}
