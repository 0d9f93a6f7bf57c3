// Package seradeck generates the SERA 2026 technical proposal deck: a fixed
// bilingual Arabic and English slide deck drawn from layout primitives.
package seradeck

import (
	"fmt"
	"time"

	"github.com/VantageDataChat/seradeck/internal/logger"
	"github.com/VantageDataChat/seradeck/pptx"
)

// OutputPath is where the driver writes the deck, relative to the working
// directory.
const OutputPath = "presentations/SERA_2026_Technical_Proposal.pptx"

// Options control document metadata and logging. Slide content is fixed.
type Options struct {
	Title    string
	Subject  string
	Company  string
	Creator  string
	Keywords string

	// Timestamp is written as both created and modified time. A fixed value
	// makes repeated runs produce identical files.
	Timestamp time.Time
	Logger    *logger.Logger
}

// DefaultOptions returns options with a fixed timestamp and a no-op logger.
func DefaultOptions() *Options {
	return &Options{
		Title:     "SERA 2026 - العرض الفني",
		Subject:   "برنامج فعاليات هيئة تنظيم الكهرباء 2026",
		Company:   "هيئة تنظيم الكهرباء",
		Creator:   "seradeck",
		Keywords:  "SERA, 2026, فعاليات",
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Logger:    logger.Nop(),
	}
}

// Generate builds the proposal deck in memory.
func Generate(opts *Options) (*pptx.Presentation, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	p := pptx.New()
	props := p.GetDocumentProperties()
	props.Title = opts.Title
	props.Subject = opts.Subject
	props.Company = opts.Company
	props.Creator = opts.Creator
	props.Keywords = opts.Keywords
	props.LastModifiedBy = opts.Creator
	props.Created = opts.Timestamp
	props.Modified = opts.Timestamp

	b := NewBuilder(p, log)
	b.Proposal()
	if err := b.Err(); err != nil {
		log.Error("deck build stopped", "slide", p.GetSlideCount(), "error", err)
		return nil, fmt.Errorf("build deck: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log.Debug("deck generated", "slides", p.GetSlideCount())
	return p, nil
}

// Save generates the deck and writes it to path. Nothing is written when
// generation fails.
func Save(path string, opts *Options) error {
	p, err := Generate(opts)
	if err != nil {
		return err
	}
	w, err := pptx.NewWriter(p, pptx.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	if err := w.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
