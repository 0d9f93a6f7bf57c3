// Command render_all builds the proposal deck in memory and writes a PNG
// preview of every slide plus a contact sheet to presentations/preview.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VantageDataChat/seradeck"
	"github.com/VantageDataChat/seradeck/internal/logger"
	"github.com/VantageDataChat/seradeck/pptx"
)

const (
	previewDir   = "presentations/preview"
	sheetColumns = 5
	thumbWidth   = 384
)

func main() {
	log, err := logger.New("development")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	if err := run(log); err != nil {
		log.Fatal("preview failed", "error", err)
	}
	log.Sync()
}

func run(log *logger.Logger) error {
	opts := seradeck.DefaultOptions()
	opts.Logger = log
	pres, err := seradeck.Generate(opts)
	if err != nil {
		return err
	}

	renderOpts := pptx.DefaultRenderOptions()
	renderOpts.Width = 1920
	images, err := pres.SlidesToImages(renderOpts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for i, img := range images {
		path := filepath.Join(previewDir, fmt.Sprintf("slide%02d.png", i+1))
		if err := pptx.SaveImage(img, path); err != nil {
			return err
		}
	}
	log.Info("slides rendered", "dir", previewDir, "count", len(images))

	sheet, err := pptx.ContactSheet(images, sheetColumns, thumbWidth)
	if err != nil {
		return fmt.Errorf("contact sheet: %w", err)
	}
	sheetPath := filepath.Join(previewDir, "contact_sheet.png")
	if err := pptx.SaveImage(sheet, sheetPath); err != nil {
		return err
	}
	log.Info("contact sheet written", "path", sheetPath)
	return nil
}
