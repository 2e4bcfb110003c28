// Package accent highlights icon glyphs in generated documentation pages.
//
// Documentation written with a Nerd Font often starts headings and links
// with an icon glyph, e.g. "\uf41b Install". accent finds such elements
// and isolates the leading glyph in its own span so a stylesheet can render
// it in the icon font and an accent color:
//
//	<h2><span class="accent nerd-font">\uf41b</span> Install</h2>
//
// # Overview
//
// The package is built from three parts:
//
//   - glyphs: the static table of icon code-point ranges
//   - dom: HTML parsing, selector queries and the content-loaded signal
//   - Accentuator: the single pass that tests and rewrites candidates
//
// # Example usage
//
//	a, err := accent.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	loader := dom.NewLoader()
//	if err := a.Attach(loader); err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := loader.Load(page) // Run fires once, after parsing
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = doc.Render(os.Stdout)
//
// The site sub-package applies the same pass to every page of a built
// documentation tree.
//
// # Candidates
//
// By default the candidates are h1, h2, a, em and .md-ellipsis elements.
// Each candidate's rendered text is read as Unicode code points; when the
// first code point lies in the glyph table, the element's children are
// replaced with the glyph span followed by the remaining text. Elements
// whose text is empty or starts with any other character are left alone.
//
// # Logging
//
// accent is silent by default. Use [SetLogger] to enable diagnostics.
package accent
