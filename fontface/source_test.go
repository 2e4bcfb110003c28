package fontface

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gogpu/accent/glyphs"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var backends = []string{"ximage", "gotext"}

func newTestSource(t *testing.T, data []byte, parser string) *Source {
	t.Helper()
	s, err := NewSource(data, WithParser(parser))
	if err != nil {
		t.Fatalf("NewSource(%s) error = %v", parser, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewSource(t *testing.T) {
	for _, parser := range backends {
		t.Run(parser, func(t *testing.T) {
			s := newTestSource(t, goregular.TTF, parser)
			if s.Name() != "Go" {
				t.Errorf("Name() = %q, want Go", s.Name())
			}
			if s.Parser() != parser {
				t.Errorf("Parser() = %q, want %q", s.Parser(), parser)
			}
			if s.Parsed().UnitsPerEm() <= 0 {
				t.Errorf("UnitsPerEm() = %d", s.Parsed().UnitsPerEm())
			}
		})
	}
}

func TestNewSourceDefaultParser(t *testing.T) {
	s, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer func() { _ = s.Close() }()
	if s.Parser() != "ximage" {
		t.Errorf("Parser() = %q, want ximage", s.Parser())
	}
}

func TestNewSourceEmptyData(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceInvalidData(t *testing.T) {
	for _, parser := range backends {
		if _, err := NewSource([]byte("not a font"), WithParser(parser)); err == nil {
			t.Errorf("%s: expected error for invalid font data", parser)
		}
	}
}

func TestNewSourceUnknownParser(t *testing.T) {
	_, err := NewSource(goregular.TTF, WithParser("freetype"))
	if !errors.Is(err, ErrUnknownParser) {
		t.Errorf("NewSource() error = %v, want ErrUnknownParser", err)
	}
}

func TestNewSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := NewSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewSourceFromFile() error = %v", err)
	}
	defer func() { _ = s.Close() }()
	if !s.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}

	if _, err := NewSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestHasGlyph(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'z', true},
		{'0', true},
		{'\U000F0001', false},
		{'\U000F1AF0', false},
	}
	for _, parser := range backends {
		s := newTestSource(t, goregular.TTF, parser)
		for _, tt := range tests {
			if got := s.HasGlyph(tt.r); got != tt.want {
				t.Errorf("%s: HasGlyph(%U) = %v, want %v", parser, tt.r, got, tt.want)
			}
			// memoised result
			if got := s.HasGlyph(tt.r); got != tt.want {
				t.Errorf("%s: second HasGlyph(%U) = %v, want %v", parser, tt.r, got, tt.want)
			}
		}
	}
}

func TestCoverage(t *testing.T) {
	s := newTestSource(t, goregular.TTF, "ximage")
	cov := s.Coverage(glyphs.NerdFonts)

	sets := glyphs.NerdFonts.Sets()
	if len(cov) != len(sets) {
		t.Fatalf("Coverage() returned %d sets, want %d", len(cov), len(sets))
	}
	total := 0
	for i, c := range cov {
		if c.Set != sets[i].Name {
			t.Errorf("cov[%d].Set = %q, want %q", i, c.Set, sets[i].Name)
		}
		if c.Covered < 0 || c.Covered > c.Total {
			t.Errorf("%s: covered %d of %d", c.Set, c.Covered, c.Total)
		}
		total += c.Total
		if c.Set == "Material Design" && c.Covered != 0 {
			t.Errorf("Go Regular covers %d Material Design glyphs, want 0", c.Covered)
		}
	}
	if total != glyphs.NerdFonts.Len() {
		t.Errorf("sum of totals = %d, want %d", total, glyphs.NerdFonts.Len())
	}
}

func TestCoverageCustomTable(t *testing.T) {
	table := glyphs.MustTable(glyphs.Set{
		Name:   "Digits",
		Ranges: []glyphs.Range{{First: '0', Last: '9'}},
	})
	s := newTestSource(t, goregular.TTF, "gotext")
	cov := s.Coverage(table)
	if len(cov) != 1 || cov[0] != (SetCoverage{Set: "Digits", Covered: 10, Total: 10}) {
		t.Errorf("Coverage() = %+v", cov)
	}
	if !cov[0].Complete() {
		t.Error("Complete() = false")
	}
}

func TestMissing(t *testing.T) {
	s := newTestSource(t, goregular.TTF, "ximage")
	set := glyphs.Set{Name: "mixed", Ranges: []glyphs.Range{
		{First: 'A', Last: 'C'},
		{First: 0xF0001, Last: 0xF0005},
	}}
	if got := s.Missing(set, 0); len(got) != 5 || got[0] != 0xF0001 {
		t.Errorf("Missing(0) = %U", got)
	}
	if got := s.Missing(set, 2); len(got) != 2 {
		t.Errorf("Missing(2) returned %d runes", len(got))
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		weight int
		italic bool
	}{
		{"regular", goregular.TTF, 400, false},
		{"bold", gobold.TTF, 600, false},
		{"italic", goitalic.TTF, 400, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSource(t, tt.data, "gotext")
			d, ok := s.Describe()
			if !ok {
				t.Fatal("Describe() ok = false for gotext")
			}
			if d.Family != "Go" {
				t.Errorf("Family = %q, want Go", d.Family)
			}
			if d.Weight != tt.weight {
				t.Errorf("Weight = %d, want %d", d.Weight, tt.weight)
			}
			if d.Italic != tt.italic {
				t.Errorf("Italic = %v, want %v", d.Italic, tt.italic)
			}
			if d.Stretch != "normal" {
				t.Errorf("Stretch = %q, want normal", d.Stretch)
			}
		})
	}
}

func TestDescribeUnsupported(t *testing.T) {
	s := newTestSource(t, goregular.TTF, "ximage")
	if _, ok := s.Describe(); ok {
		t.Error("Describe() ok = true for ximage")
	}
}

func TestSourceClose(t *testing.T) {
	s, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if !s.HasGlyph('A') {
		t.Fatal("HasGlyph('A') = false before Close")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if s.HasGlyph('A') {
		t.Error("HasGlyph('A') = true after Close")
	}
	if s.Parsed() != nil {
		t.Error("Parsed() != nil after Close")
	}
	if _, ok := s.Describe(); ok {
		t.Error("Describe() ok = true after Close")
	}
}

func TestSourceCopyProtection(t *testing.T) {
	s := newTestSource(t, goregular.TTF, "ximage")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when copying Source")
		}
	}()

	var dup Source
	dup.addr = s.addr
	dup.parsed = s.parsed
	_ = dup.Name()
}

func TestHasGlyphConcurrent(t *testing.T) {
	s := newTestSource(t, goregular.TTF, "ximage")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := rune(0x20); r < 0x250; r++ {
				s.HasGlyph(r)
			}
		}()
	}
	wg.Wait()
	if !s.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
}

// stubParser maps every rune in its set to glyph 1.
type stubParser struct{ runes map[rune]bool }

func (p stubParser) Parse([]byte) (ParsedFont, error) { return p, nil }
func (p stubParser) Name() string                     { return "Stub" }
func (p stubParser) UnitsPerEm() int                  { return 1000 }
func (p stubParser) GlyphIndex(r rune) uint32 {
	if p.runes[r] {
		return 1
	}
	return 0
}

func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", stubParser{runes: map[rune]bool{'\uf400': true}})
	t.Cleanup(func() {
		parserRegistry.Lock()
		delete(parserRegistry.m, "stub")
		parserRegistry.Unlock()
	})

	found := false
	for _, name := range Parsers() {
		found = found || name == "stub"
	}
	if !found {
		t.Errorf("Parsers() = %v, missing stub", Parsers())
	}

	s := newTestSource(t, []byte{0}, "stub")
	if s.Name() != "Stub" {
		t.Errorf("Name() = %q", s.Name())
	}
	if !s.HasGlyph('\uf400') || s.HasGlyph('\uf401') {
		t.Error("HasGlyph did not use the registered parser")
	}
}
