// Package fontface inspects font files for icon glyph coverage.
//
// A [Source] wraps a parsed TrueType or OpenType font and answers whether
// the font maps a code point to a glyph. [Source.Coverage] reports, per glyph
// set of a [glyphs.Table], how many code points the font actually draws,
// which is how a patched Nerd Font is checked before it is published with a
// documentation site.
//
// # Parser backends
//
// Parsing is pluggable through [FontParser]. Two backends are registered:
//
//   - "ximage" (default): golang.org/x/image/font/opentype
//   - "gotext": github.com/go-text/typesetting/font, which also reads the
//     family, weight, style and stretch from the font's tables
//
// Example:
//
//	src, err := fontface.NewSourceFromFile("JetBrainsMonoNerdFont-Regular.ttf",
//	    fontface.WithParser("gotext"))
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	for _, c := range src.Coverage(glyphs.NerdFonts) {
//	    fmt.Printf("%-28s %d/%d\n", c.Set, c.Covered, c.Total)
//	}
package fontface
