package pptx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer serializes a presentation.
type Writer interface {
	Save(path string) error
	io.WriterTo
}

// WriterType names an output format.
type WriterType string

// WriterPowerPoint2007 is the Office Open XML (.pptx) format.
const WriterPowerPoint2007 WriterType = "PowerPoint2007"

// NewWriter returns a writer for p in the requested format.
func NewWriter(p *Presentation, format WriterType) (Writer, error) {
	if format != WriterPowerPoint2007 {
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
	return &PPTXWriter{presentation: p}, nil
}

// PPTXWriter writes .pptx packages. The bytes depend only on the
// presentation: parts go out in a fixed order and zip entries carry no
// modification time.
type PPTXWriter struct {
	presentation *Presentation
}

// Save writes to path, creating missing parent directories. Nothing is left
// at path when writing fails.
func (w *PPTXWriter) Save(path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	_, err = w.WriteTo(f)
	return err
}

type partWriter func(*zip.Writer) error

// countingWriter tracks the bytes written through it for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// WriteTo validates the presentation and streams the package to out. It
// returns the number of bytes written.
func (w *PPTXWriter) WriteTo(out io.Writer) (int64, error) {
	cw := &countingWriter{w: out}
	err := w.writePackage(cw)
	return cw.n, err
}

func (w *PPTXWriter) writePackage(out io.Writer) error {
	p := w.presentation
	if p == nil {
		return errors.New("presentation is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	zw := zip.NewWriter(out)
	fixed := []partWriter{
		w.writeContentTypes,
		w.writeRootRels,
		w.writeAppProperties,
		w.writeCoreProperties,
		w.writePresentation,
		w.writePresentationRels,
		w.writePresProps,
		w.writeViewProps,
		w.writeTableStyles,
		w.writeSlideMaster,
		w.writeSlideLayout,
		w.writeTheme,
	}
	for _, write := range fixed {
		if err := write(zw); err != nil {
			return err
		}
	}
	for i, s := range p.slides {
		n := i + 1
		if err := w.writeSlide(zw, s, n); err != nil {
			return fmt.Errorf("slide %d: %w", n, err)
		}
		if err := w.writeSlideRels(zw, n); err != nil {
			return fmt.Errorf("slide %d rels: %w", n, err)
		}
	}
	return zw.Close()
}

// Save writes p to path as a .pptx file.
func (p *Presentation) Save(path string) error {
	return (&PPTXWriter{presentation: p}).Save(path)
}

// WriteTo writes p to out as a .pptx package.
func (p *Presentation) WriteTo(out io.Writer) (int64, error) {
	return (&PPTXWriter{presentation: p}).WriteTo(out)
}
