package pptx

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Geometry errors returned by CheckBounds.
var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrOutOfBounds     = errors.New("shape out of page bounds")
)

// CheckBounds reports whether the frame (x, y, w, h), in EMU, is well formed
// and lies entirely on a page of the given layout. A zero-size frame on the
// page edge is accepted. The right and bottom edges are compared by
// subtraction so that huge offsets cannot wrap around.
func CheckBounds(layout *DocumentLayout, x, y, w, h int64) error {
	switch {
	case layout == nil:
		return fmt.Errorf("%w: no layout", ErrInvalidGeometry)
	case w < 0 || h < 0:
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidGeometry, w, h)
	case x < 0 || y < 0 || x > layout.CX || y > layout.CY || w > layout.CX-x || h > layout.CY-y:
		return fmt.Errorf("%w: (%.2f, %.2f, %.2f x %.2f in) on %.3f x %.3f in page",
			ErrOutOfBounds, EMUToInch(x), EMUToInch(y), EMUToInch(w), EMUToInch(h),
			EMUToInch(layout.CX), EMUToInch(layout.CY))
	}
	return nil
}

// Validate reports every structural problem in the presentation. The writer
// refuses to serialize a presentation that fails validation.
func (p *Presentation) Validate() error {
	var err error
	if p.properties == nil {
		err = multierr.Append(err, errors.New("document properties are nil"))
	}
	switch {
	case p.layout == nil:
		err = multierr.Append(err, errors.New("document layout is nil"))
	case p.layout.CX <= 0 || p.layout.CY <= 0:
		err = multierr.Append(err, fmt.Errorf("layout size %dx%d must be positive", p.layout.CX, p.layout.CY))
	}
	if len(p.slides) == 0 {
		err = multierr.Append(err, errors.New("presentation must have at least one slide"))
	}
	for i, s := range p.slides {
		if s == nil {
			err = multierr.Append(err, fmt.Errorf("slide %d: slide is nil", i+1))
			continue
		}
		for j, shape := range s.shapes {
			if serr := p.validateShape(shape); serr != nil {
				err = multierr.Append(err, fmt.Errorf("slide %d: shape %d: %w", i+1, j+1, serr))
			}
		}
	}
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func (p *Presentation) validateShape(shape Shape) error {
	if shape == nil {
		return errors.New("shape is nil")
	}
	var err error
	if l := p.layout; l != nil && l.CX > 0 && l.CY > 0 {
		err = CheckBounds(l, shape.GetOffsetX(), shape.GetOffsetY(), shape.GetWidth(), shape.GetHeight())
	}
	if f := shape.base().fill; f != nil && f.Type == FillSolid && !isValidARGB(f.Color.ARGB) {
		err = multierr.Append(err, fmt.Errorf("fill colour %q is not ARGB", f.Color.ARGB))
	}

	switch sh := shape.(type) {
	case *AutoShape:
		if !sh.shapeType.Valid() {
			err = multierr.Append(err, fmt.Errorf("unsupported geometry %s", sh.shapeType))
		}
	case *RichTextShape:
		if len(sh.paragraphs) == 0 {
			err = multierr.Append(err, errors.New("text box has no paragraphs"))
		}
		for i, para := range sh.paragraphs {
			err = multierr.Append(err, validateParagraph(para, i+1))
		}
	}
	return err
}

func validateParagraph(para *Paragraph, n int) error {
	if para == nil {
		return fmt.Errorf("paragraph %d is nil", n)
	}
	var err error
	if para.alignment == nil {
		err = fmt.Errorf("paragraph %d has no alignment", n)
	}
	for k, tr := range para.runs {
		switch {
		case tr == nil:
			err = multierr.Append(err, fmt.Errorf("paragraph %d run %d is nil", n, k+1))
		case tr.font == nil:
			err = multierr.Append(err, fmt.Errorf("paragraph %d run %d has no font", n, k+1))
		case !isValidARGB(tr.font.Color.ARGB):
			err = multierr.Append(err, fmt.Errorf("paragraph %d run %d colour %q is not ARGB", n, k+1, tr.font.Color.ARGB))
		}
	}
	return err
}
