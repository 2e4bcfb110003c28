package fontface

import (
	"os"
	"sync"

	"github.com/gogpu/accent/glyphs"
	"github.com/pingcap/errors"
)

// Source represents a loaded font file.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection.
	// It must point to the Source itself.
	addr *Source

	mu     sync.RWMutex
	parsed ParsedFont
	parser string
	name   string

	hasGlyph *runeToBoolMap
}

// SetCoverage is the glyph coverage of one glyph set.
type SetCoverage struct {
	// Set is the glyph set name.
	Set string

	// Covered is the number of code points the font maps to a glyph.
	Covered int

	// Total is the number of code points in the set.
	Total int
}

// Complete reports whether every code point of the set is covered.
func (c SetCoverage) Complete() bool {
	return c.Covered == c.Total
}

// NewSource creates a Source from font data (TTF or OTF).
// The data is not retained after parsing returns.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, errors.Annotatef(ErrUnknownParser, "%q", config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &Source{
		parsed:   parsed,
		parser:   config.parserName,
		name:     extractFontName(parsed),
		hasGlyph: newRuneToBoolMap(),
	}
	s.addr = s
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "fontface: failed to read font file")
	}
	s, err := NewSource(data, opts...)
	if err != nil {
		return nil, errors.Annotatef(err, "fontface: %s", path)
	}
	return s, nil
}

// Name returns the font name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the backend that parsed the font.
func (s *Source) Parser() string {
	s.copyCheck()
	return s.parser
}

// Parsed returns the parsed font for advanced operations.
// Returns nil after Close.
func (s *Source) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
// Results are memoised per rune. A closed Source has no glyphs.
func (s *Source) HasGlyph(r rune) bool {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.parsed == nil {
		return false
	}
	if has, checked := s.hasGlyph.get(r); checked {
		return has
	}

	has := s.parsed.GlyphIndex(r) != 0
	s.hasGlyph.set(r, has)
	return has
}

// Coverage counts, for every set of t in table order, the code points the
// font maps to a glyph.
func (s *Source) Coverage(t *glyphs.Table) []SetCoverage {
	sets := t.Sets()
	out := make([]SetCoverage, 0, len(sets))
	for _, set := range sets {
		c := SetCoverage{Set: set.Name}
		for _, rg := range set.Ranges {
			for r := rg.First; r <= rg.Last; r++ {
				c.Total++
				if s.HasGlyph(r) {
					c.Covered++
				}
			}
		}
		out = append(out, c)
	}
	return out
}

// Missing returns the code points of set that the font does not draw,
// at most limit of them. A limit <= 0 means no limit.
func (s *Source) Missing(set glyphs.Set, limit int) []rune {
	var out []rune
	for _, rg := range set.Ranges {
		for r := rg.First; r <= rg.Last; r++ {
			if s.HasGlyph(r) {
				continue
			}
			out = append(out, r)
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}

// Describe returns the family, weight, style and stretch of the font.
// ok is false when the parser backend cannot read them.
func (s *Source) Describe() (d Description, ok bool) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ds, isDescriber := s.parsed.(Describer); isDescriber {
		return ds.Describe(), true
	}
	return Description{}, false
}

// Close releases the parsed font and the glyph cache.
// HasGlyph reports false for every rune after Close.
func (s *Source) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.parsed = nil
	s.hasGlyph.clear()
	return nil
}

// copyCheck panics if Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("fontface: Source must not be copied by value")
	}
}

// extractFontName returns the family name, or "Unknown Font".
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	return "Unknown Font"
}
