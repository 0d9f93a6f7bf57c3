// Package pptx writes PowerPoint presentation files (.pptx) following the
// Office Open XML (OOXML) standard, and renders their slides to raster
// previews.
//
// The package is write-only: a Presentation is built in memory from auto
// shapes and text boxes and then serialized with a Writer.
//
// See Version for the engine release.
package pptx

import (
	"errors"
	"fmt"
)

// ErrSlideIndex is returned when a slide index is out of range.
var ErrSlideIndex = errors.New("slide index out of range")

// Presentation represents an in-memory PowerPoint presentation.
type Presentation struct {
	properties *DocumentProperties
	slides     []*Slide
	layout     *DocumentLayout
}

// New creates a new Presentation with no slides and a 16:9 widescreen layout.
func New() *Presentation {
	layout := NewDocumentLayout()
	layout.SetLayout(LayoutScreen16x9)
	return &Presentation{
		properties: NewDocumentProperties(),
		slides:     make([]*Slide, 0),
		layout:     layout,
	}
}

// GetDocumentProperties returns the document properties.
func (p *Presentation) GetDocumentProperties() *DocumentProperties {
	return p.properties
}

// SetDocumentProperties sets the document properties.
func (p *Presentation) SetDocumentProperties(props *DocumentProperties) {
	p.properties = props
}

// GetLayout returns the document layout.
func (p *Presentation) GetLayout() *DocumentLayout {
	return p.layout
}

// SetLayout sets the document layout.
func (p *Presentation) SetLayout(layout *DocumentLayout) {
	p.layout = layout
}

// CreateSlide creates a new blank slide and appends it to the presentation.
func (p *Presentation) CreateSlide() *Slide {
	slide := newSlide()
	p.slides = append(p.slides, slide)
	return slide
}

// GetSlide returns a slide by index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, fmt.Errorf("%w: %d", ErrSlideIndex, index)
	}
	return p.slides[index], nil
}

// GetAllSlides returns all slides.
func (p *Presentation) GetAllSlides() []*Slide {
	return p.slides
}

// GetSlideCount returns the number of slides.
func (p *Presentation) GetSlideCount() int {
	return len(p.slides)
}

// Slide is an ordered list of shapes drawn on the blank layout.
type Slide struct {
	name   string
	shapes []Shape
}

func newSlide() *Slide {
	return &Slide{shapes: make([]Shape, 0)}
}

// GetName returns the slide name.
func (s *Slide) GetName() string { return s.name }

// SetName sets the slide name.
func (s *Slide) SetName(name string) { s.name = name }

// GetShapes returns the shapes in z-order.
func (s *Slide) GetShapes() []Shape {
	return s.shapes
}

// AddShape appends a shape to the slide.
func (s *Slide) AddShape(shape Shape) {
	s.shapes = append(s.shapes, shape)
}

// CreateRichTextShape creates a text box and adds it to the slide.
func (s *Slide) CreateRichTextShape() *RichTextShape {
	shape := newRichTextShape()
	s.shapes = append(s.shapes, shape)
	return shape
}

// CreateAutoShape creates a preset geometry shape and adds it to the slide.
func (s *Slide) CreateAutoShape() *AutoShape {
	shape := newAutoShape()
	s.shapes = append(s.shapes, shape)
	return shape
}
