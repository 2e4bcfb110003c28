package accent

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/gogpu/accent/dom"
	"github.com/gogpu/accent/glyphs"
)

// Queryer is the document surface Run reads candidates from.
// *dom.Document implements it.
type Queryer interface {
	Select(s *dom.Selector) []dom.Element
}

// Result summarizes one Run.
type Result struct {
	// Candidates is the number of elements matched by the selectors.
	Candidates int

	// Accented is the number of elements whose content was rewritten.
	Accented int
}

// Accentuator wraps the leading icon glyph of selected elements in a
// styled span.
//
// An Accentuator holds only immutable configuration and may be shared by
// goroutines processing different documents. A single document must be
// processed by one goroutine at a time.
type Accentuator struct {
	table    *glyphs.Table
	selector *dom.Selector
	classes  []string
}

// New creates an Accentuator. It fails only when the configured selectors
// do not parse.
func New(opts ...Option) (*Accentuator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sel, err := dom.Compile(o.selectors...)
	if err != nil {
		return nil, err
	}

	return &Accentuator{
		table:    o.table,
		selector: sel,
		classes:  o.classes,
	}, nil
}

// Table returns the glyph table used for membership tests.
func (a *Accentuator) Table() *glyphs.Table {
	return a.table
}

// Selector returns the compiled candidate selector.
func (a *Accentuator) Selector() *dom.Selector {
	return a.selector
}

// Attach registers Run as the content-loaded callback of l.
func (a *Accentuator) Attach(l *dom.Loader) error {
	return l.OnContentLoaded(func(d *dom.Document) {
		a.Run(d)
	})
}

// detacher is implemented by elements that know when a rewrite of an
// enclosing candidate removed them from the document.
type detacher interface {
	Detached() bool
}

// Run selects the candidate elements of doc and accents each one in
// document order. An empty selection is a no-op. A candidate nested in an
// element accented earlier in the run is gone from the document and is
// skipped, so Accented counts the spans the document ends up with.
//
// Running twice over the same document leaves it as a single run did: an
// accented element is rewritten to the same span and tail again.
func (a *Accentuator) Run(doc Queryer) Result {
	els := doc.Select(a.selector)
	res := Result{Candidates: len(els)}
	for _, el := range els {
		if d, ok := el.(detacher); ok && d.Detached() {
			continue
		}
		if a.Accent(el) {
			res.Accented++
		}
	}
	Logger().Debug("accent run complete",
		"selector", a.selector.String(),
		"candidates", res.Candidates,
		"accented", res.Accented)
	return res
}

// Accent tests the first code point of el's text against the glyph table.
// On a match, el's content is replaced with a span holding the glyph
// followed by a text node holding the rest; otherwise el is untouched.
// Empty text never matches.
func (a *Accentuator) Accent(el dom.Element) bool {
	text := el.InnerText()
	c, size := utf8.DecodeRuneInString(text)
	if size == 0 || !a.table.Contains(c) {
		return false
	}

	glyph, tail := text[:size], text[size:]
	children := []dom.Fragment{dom.Span(glyph, a.classes...)}
	if tail != "" {
		children = append(children, dom.Text(tail))
	}
	el.ReplaceChildren(children...)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		set, _ := a.table.Lookup(c)
		attrs := []any{"glyph", fmt.Sprintf("U+%04X", c), "set", set.Name}
		if n, ok := el.(interface{ Tag() string }); ok {
			attrs = append(attrs, "tag", n.Tag())
		}
		l.Debug("accented element", attrs...)
	}
	return true
}
