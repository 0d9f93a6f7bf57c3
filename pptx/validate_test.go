package pptx

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCheckBounds(t *testing.T) {
	layout := NewDocumentLayout()
	layout.SetLayout(LayoutScreen16x9)

	tests := []struct {
		name       string
		x, y, w, h int64
		want       error
	}{
		{"full page", 0, 0, layout.CX, layout.CY, nil},
		{"zero size at corner", layout.CX, layout.CY, 0, 0, nil},
		{"inside", Inch(1), Inch(1), Inch(2), Inch(2), nil},
		{"negative width", 0, 0, -1, Inch(1), ErrInvalidGeometry},
		{"negative height", 0, 0, Inch(1), -1, ErrInvalidGeometry},
		{"negative left", -1, 0, Inch(1), Inch(1), ErrOutOfBounds},
		{"negative top", 0, -1, Inch(1), Inch(1), ErrOutOfBounds},
		{"past right edge", layout.CX - Inch(1), 0, Inch(1) + 1, Inch(1), ErrOutOfBounds},
		{"past bottom edge", 0, layout.CY - Inch(1), Inch(1), Inch(1) + 1, ErrOutOfBounds},
		{"offset wraps int64", math.MaxInt64 - 10, 0, 100, Inch(1), ErrOutOfBounds},
		{"height wraps int64", 0, Inch(1), Inch(1), math.MaxInt64, ErrOutOfBounds},
		{"width wraps int64", Inch(1), 0, math.MaxInt64 - Inch(1) + 1, Inch(1), ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBounds(layout, tt.x, tt.y, tt.w, tt.h)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckBounds_NilLayout(t *testing.T) {
	if err := CheckBounds(nil, 0, 0, 1, 1); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("got %v, want ErrInvalidGeometry", err)
	}
}

func TestValidate_AggregatesProblems(t *testing.T) {
	p := New()
	s := p.CreateSlide()

	off := s.CreateAutoShape()
	off.SetPosition(Inch(13), 0)
	off.SetSize(Inch(1), Inch(1))

	bad := s.CreateAutoShape()
	bad.SetAutoShapeType(AutoShapeType("heart"))
	bad.SetSize(Inch(1), Inch(1))

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("error %v should wrap ErrOutOfBounds", err)
	}
	msg := err.Error()
	for _, want := range []string{"slide 1: shape 1", "out of page bounds", "slide 1: shape 2: unsupported geometry heart"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := newTestPresentation().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1A365D", "FF1A365D"},
		{"#48bb78", "FF48BB78"},
		{"80FFFFFF", "80FFFFFF"},
		{"zzz", "FF000000"},
	}
	for _, tt := range tests {
		if got := NewColor(tt.in).ARGB; got != tt.want {
			t.Errorf("NewColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	c := NewColor("3182CE")
	if c.GetRed() != 0x31 || c.GetGreen() != 0x82 || c.GetBlue() != 0xCE || c.GetAlpha() != 0xFF {
		t.Errorf("components of %s wrong: %v", c.ARGB, c.RGBA())
	}
	if c.RGB() != "3182CE" {
		t.Errorf("RGB() = %s", c.RGB())
	}
}

func TestMeasurement(t *testing.T) {
	if Inch(1) != 914400 {
		t.Errorf("Inch(1) = %d", Inch(1))
	}
	if Inch(13.333) != 12191695 {
		t.Errorf("Inch(13.333) = %d", Inch(13.333))
	}
	if Inch(0.8) != 731520 {
		t.Errorf("Inch(0.8) = %d", Inch(0.8))
	}
	if Point(1) != 12700 {
		t.Errorf("Point(1) = %d", Point(1))
	}
	if got := EMUToInch(Inch(2.5)); got != 2.5 {
		t.Errorf("EMUToInch round trip = %v", got)
	}
}
