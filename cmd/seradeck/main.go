// Command seradeck writes the SERA 2026 technical proposal deck to
// presentations/SERA_2026_Technical_Proposal.pptx.
package main

import (
	"fmt"
	"os"

	"github.com/VantageDataChat/seradeck"
	"github.com/VantageDataChat/seradeck/internal/logger"
	"github.com/VantageDataChat/seradeck/pptx"
)

func main() {
	log, err := logger.New("development")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	opts := seradeck.DefaultOptions()
	opts.Logger = log
	if err := seradeck.Save(seradeck.OutputPath, opts); err != nil {
		log.Fatal("deck generation failed", "error", err)
	}
	log.Info("presentation saved", "path", seradeck.OutputPath, "slides", seradeck.SlideCount, "engine", pptx.Version)
	log.Sync()
}
