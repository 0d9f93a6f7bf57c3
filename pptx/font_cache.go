package pptx

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// loadedFont is one parsed font file. The sfnt view supplies outlines and
// cmap coverage; the go-text view is parsed on first use for shaping.
type loadedFont struct {
	name string
	data []byte
	sf   *sfnt.Font

	once   sync.Once
	shaper *gotext.Font
	err    error
}

// shapingFont returns the go-text font used by the HarfBuzz shaper.
func (lf *loadedFont) shapingFont() (*gotext.Font, error) {
	lf.once.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(lf.data))
		if err != nil {
			lf.err = fmt.Errorf("parse %s: %w", lf.name, err)
			return
		}
		lf.shaper = face.Font
	})
	return lf.shaper, lf.err
}

// covers reports whether the font maps r to a real glyph.
func (lf *loadedFont) covers(r rune) bool {
	var buf sfnt.Buffer
	gi, err := lf.sf.GlyphIndex(&buf, r)
	return err == nil && gi != 0
}

func parseLoadedFont(name string, data []byte) (*loadedFont, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &loadedFont{name: name, data: data, sf: sf}, nil
}

// FontCache locates font files for preview rendering. It searches system font
// directories and user-specified directories for .ttf and .otf files. Lookups
// fall back to any scanned font that covers the requested script, then to the
// embedded Go fonts.
type FontCache struct {
	mu      sync.RWMutex
	dirs    []string
	fonts   map[string]*loadedFont // lowercase name -> font
	order   []*loadedFont          // scan order, used for script fallback
	scanned bool

	resolvedMu sync.Mutex
	resolved   map[resolveKey]*loadedFont

	regular *loadedFont
	bold    *loadedFont
}

// NewFontCache creates a FontCache that searches the given directories
// plus the OS default font directories.
func NewFontCache(extraDirs ...string) *FontCache {
	dirs := append(systemFontDirs(), extraDirs...)
	fc := &FontCache{
		dirs:     dirs,
		fonts:    make(map[string]*loadedFont),
		resolved: make(map[resolveKey]*loadedFont),
	}
	// The Go fonts are compiled in; parsing them cannot fail.
	fc.regular, _ = parseLoadedFont("go regular", goregular.TTF)
	fc.bold, _ = parseLoadedFont("go bold", gobold.TTF)
	return fc
}

// newEmbeddedFontCache returns a cache that only knows the embedded Go fonts
// and whatever is loaded explicitly. Tests use it to stay independent of the
// fonts installed on the host.
func newEmbeddedFontCache() *FontCache {
	fc := NewFontCache()
	fc.dirs = nil
	fc.scanned = true
	return fc
}

type resolveKey struct {
	name   string
	bold   bool
	script language.Script
}

// lookup returns the font to draw r with for a run styled with the given
// family name and weight. Results are memoized per script.
func (fc *FontCache) lookup(name string, bold bool, r rune) *loadedFont {
	fc.ensureScanned()

	key := resolveKey{name: strings.ToLower(name), bold: bold, script: language.LookupScript(r)}
	fc.resolvedMu.Lock()
	f, ok := fc.resolved[key]
	fc.resolvedMu.Unlock()
	if ok && f.covers(r) {
		return f
	}

	f = fc.resolve(key.name, bold, r)
	fc.resolvedMu.Lock()
	fc.resolved[key] = f
	fc.resolvedMu.Unlock()
	return f
}

func (fc *FontCache) resolve(lower string, bold bool, r rune) *loadedFont {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	if f := fc.findFont(lower, bold); f != nil && f.covers(r) {
		return f
	}
	for _, f := range fc.order {
		if f.covers(r) && isBoldName(f.name) == bold {
			return f
		}
	}
	for _, f := range fc.order {
		if f.covers(r) {
			return f
		}
	}
	if bold {
		return fc.bold
	}
	return fc.regular
}

// findFont looks up a font by name, trying bold variants first when asked.
// The caller holds fc.mu.
func (fc *FontCache) findFont(lower string, bold bool) *loadedFont {
	if bold {
		for _, suffix := range []string{" bold", "bd", "b", "-bold"} {
			if f, ok := fc.fonts[lower+suffix]; ok {
				return f
			}
		}
	}
	if f, ok := fc.fonts[lower]; ok {
		return f
	}
	return nil
}

func isBoldName(name string) bool {
	return strings.Contains(name, "bold")
}

// LoadFont reads a font file and registers it under name.
func (fc *FontCache) LoadFont(name string, path string) error {
	data, err := readFontFile(path)
	if err != nil {
		return err
	}
	return fc.LoadFontData(name, data)
}

// LoadFontData registers a TrueType/OpenType font from raw bytes. Explicitly
// loaded fonts take precedence over scanned ones in script fallback.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := parseLoadedFont(strings.ToLower(name), data)
	if err != nil {
		return err
	}
	fc.mu.Lock()
	fc.fonts[f.name] = f
	fc.order = append([]*loadedFont{f}, fc.order...)
	fc.registerByFamilyName(f)
	fc.mu.Unlock()

	fc.resolvedMu.Lock()
	fc.resolved = make(map[resolveKey]*loadedFont)
	fc.resolvedMu.Unlock()
	return nil
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true

	for _, dir := range fc.dirs {
		fc.scanDir(dir)
	}
}

// Scanning stops this many directories below each root, and files larger
// than maxFontFileSize are skipped.
const (
	maxFontScanDepth = 3
	maxFontFileSize  = 20 << 20
)

func readFontFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFontFileSize {
		return nil, fmt.Errorf("font file %s is %d bytes, limit %d", path, info.Size(), maxFontFileSize)
	}
	return os.ReadFile(path)
}

// scanDir registers every readable .ttf and .otf file under root. The
// caller holds fc.mu for writing.
func (fc *FontCache) scanDir(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			rel, _ := filepath.Rel(root, path)
			if rel != "." && strings.Count(rel, string(filepath.Separator)) >= maxFontScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		data, err := readFontFile(path)
		if err != nil {
			return nil
		}
		name := strings.ToLower(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())))
		f, err := parseLoadedFont(name, data)
		if err != nil {
			return nil
		}
		fc.fonts[f.name] = f
		fc.order = append(fc.order, f)
		fc.registerByFamilyName(f)
		return nil
	})
}

// registerByFamilyName registers f under its family and full names from the
// font's name table. The caller holds fc.mu.
func (fc *FontCache) registerByFamilyName(f *loadedFont) {
	var buf sfnt.Buffer
	if family, err := f.sf.Name(&buf, sfnt.NameIDFamily); err == nil && family != "" {
		if _, taken := fc.fonts[strings.ToLower(family)]; !taken {
			fc.fonts[strings.ToLower(family)] = f
		}
	}
	if full, err := f.sf.Name(&buf, sfnt.NameIDFull); err == nil && full != "" {
		fc.fonts[strings.ToLower(full)] = f
	}
}

// systemFontDirs lists the directories fonts are installed to on the
// current OS.
func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	under := func(parts ...string) string {
		if home == "" {
			return ""
		}
		return filepath.Join(append([]string{home}, parts...)...)
	}

	var dirs []string
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts", under("Library", "Fonts")}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts", under(".local", "share", "fonts"), under(".fonts")}
	}
	return slices.DeleteFunc(dirs, func(d string) bool { return d == "" })
}
