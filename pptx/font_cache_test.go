package pptx

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestFontCache_FallsBackToEmbedded(t *testing.T) {
	fc := newEmbeddedFontCache()
	if f := fc.lookup("Arial", false, 'A'); f != fc.regular {
		t.Errorf("regular lookup = %s, want embedded regular", f.name)
	}
	if f := fc.lookup("Arial", true, 'A'); f != fc.bold {
		t.Errorf("bold lookup = %s, want embedded bold", f.name)
	}
}

func TestFontCache_LoadFontData(t *testing.T) {
	fc := newEmbeddedFontCache()
	// Prime the memo so that loading has to reset it.
	fc.lookup("Mono", false, 'x')

	if err := fc.LoadFontData("Mono", gomono.TTF); err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	if f := fc.lookup("MONO", false, 'x'); f.name != "mono" {
		t.Errorf("lookup after load = %s, want mono", f.name)
	}
	// The family name from the name table is registered too.
	fc.mu.RLock()
	_, ok := fc.fonts["go mono"]
	fc.mu.RUnlock()
	if !ok {
		t.Error("family name not registered")
	}
}

func TestFontCache_LoadFontRejectsGarbage(t *testing.T) {
	fc := newEmbeddedFontCache()
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := fc.LoadFont("bad", path); err == nil {
		t.Error("expected parse error")
	}
	if err := fc.LoadFont("missing", filepath.Join(t.TempDir(), "none.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFontCache_ScanDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	tooDeep := filepath.Join(root, "a", "b", "c", "d")
	for _, dir := range []string{nested, tooDeep} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range []string{
		filepath.Join(nested, "Mono.TTF"),
		filepath.Join(tooDeep, "deep.ttf"),
		filepath.Join(nested, "readme.txt"),
	} {
		if err := os.WriteFile(p, gomono.TTF, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	fc := NewFontCache(root)
	fc.dirs = []string{root}
	fc.ensureScanned()

	if _, ok := fc.fonts["mono"]; !ok {
		t.Error("nested font not scanned")
	}
	if _, ok := fc.fonts["deep"]; ok {
		t.Error("font below the depth limit was scanned")
	}
	if len(fc.order) != 1 {
		t.Errorf("scanned %d fonts, want 1", len(fc.order))
	}
}
