package accent

import "github.com/gogpu/accent/glyphs"

// DefaultSelectors are the elements whose leading glyph is accented:
// top-level headings, links, emphasis and the MkDocs Material navigation
// ellipsis.
var DefaultSelectors = []string{"h1", "h2", "a", "em", ".md-ellipsis"}

// DefaultClasses are the class markers set on the glyph wrapper.
var DefaultClasses = []string{"accent", "nerd-font"}

// Option configures an Accentuator during creation.
//
// Example:
//
//	// Default selectors, classes and the Nerd Fonts table
//	a, err := accent.New()
//
//	// Only headings, with a custom class
//	a, err := accent.New(accent.WithSelectors("h1", "h2"), accent.WithClasses("icon"))
type Option func(*options)

// options holds optional configuration for Accentuator creation.
type options struct {
	table     *glyphs.Table
	selectors []string
	classes   []string
}

// defaultOptions returns the default accentuator options.
func defaultOptions() options {
	return options{
		table:     glyphs.NerdFonts,
		selectors: DefaultSelectors,
		classes:   DefaultClasses,
	}
}

// WithTable sets the glyph table used for membership tests.
// A nil table keeps the default glyphs.NerdFonts.
func WithTable(t *glyphs.Table) Option {
	return func(o *options) {
		if t != nil {
			o.table = t
		}
	}
}

// WithSelectors replaces the candidate selectors.
func WithSelectors(selectors ...string) Option {
	return func(o *options) {
		o.selectors = append([]string(nil), selectors...)
	}
}

// WithClasses replaces the class markers of the glyph wrapper.
// An empty list keeps DefaultClasses.
func WithClasses(classes ...string) Option {
	return func(o *options) {
		if len(classes) > 0 {
			o.classes = append([]string(nil), classes...)
		}
	}
}
