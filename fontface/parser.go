package fontface

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs github.com/go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use after Parse returns.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (the .notdef glyph) if the rune is not mapped.
	GlyphIndex(r rune) uint32
}

// Describer is implemented by parsed fonts that can read the style
// attributes of the face from the font tables.
type Describer interface {
	Describe() Description
}

// Description holds the CSS-relevant attributes of a font face.
type Description struct {
	// Family is the typographic family name.
	Family string

	// Weight is the CSS font-weight, 100 to 950.
	Weight int

	// Italic reports an italic or oblique face.
	Italic bool

	// Stretch is the CSS font-stretch keyword, e.g. "condensed".
	Stretch string
}

// Style returns the CSS font-style keyword.
func (d Description) Style() string {
	if d.Italic {
		return "italic"
	}
	return "normal"
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = struct {
	sync.RWMutex
	m map[string]FontParser
}{
	m: map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// Registering an existing name replaces it.
func RegisterParser(name string, parser FontParser) {
	parserRegistry.Lock()
	defer parserRegistry.Unlock()
	parserRegistry.m[name] = parser
}

// Parsers returns the names of the registered parsers.
func Parsers() []string {
	parserRegistry.RLock()
	defer parserRegistry.RUnlock()
	names := make([]string, 0, len(parserRegistry.m))
	for name := range parserRegistry.m {
		names = append(names, name)
	}
	return names
}

// getParser returns the parser by name.
func getParser(name string) (FontParser, bool) {
	parserRegistry.RLock()
	defer parserRegistry.RUnlock()
	p, ok := parserRegistry.m[name]
	return p, ok
}
