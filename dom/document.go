package dom

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	perrors "github.com/pingcap/errors"
	"golang.org/x/net/html"
)

// Sentinel errors for the dom package.
var (
	// ErrListenerRegistered is returned when a second content-loaded callback
	// is registered on a Loader.
	ErrListenerRegistered = errors.New("dom: content loaded listener already registered")

	// ErrInvalidSelector is returned when a selector list does not parse.
	ErrInvalidSelector = errors.New("dom: invalid selector")

	// ErrNoSelectors is returned when Compile is called without selectors.
	ErrNoSelectors = errors.New("dom: no selectors")
)

// Selector is a compiled, comma-joined list of CSS selectors.
type Selector struct {
	source string
	m      cascadia.Selector
}

// Compile parses selectors into a single group selector. An element matches
// when it matches any of them.
func Compile(selectors ...string) (*Selector, error) {
	parts := make([]string, 0, len(selectors))
	for _, s := range selectors {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil, ErrNoSelectors
	}
	source := strings.Join(parts, ", ")
	m, err := cascadia.Compile(source)
	if err != nil {
		return nil, perrors.Annotatef(ErrInvalidSelector, "%q: %v", source, err)
	}
	return &Selector{source: source, m: m}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(selectors ...string) *Selector {
	s, err := Compile(selectors...)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the selector group as written.
func (s *Selector) String() string {
	return s.source
}

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Parse reads a complete HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, perrors.Annotate(err, "dom: parse document")
	}
	return &Document{doc: doc}, nil
}

// Select returns the elements matching s in document order.
// Each element appears once even when it matches several selectors.
func (d *Document) Select(s *Selector) []Element {
	nodes := d.doc.FindMatcher(s.m).Nodes
	out := make([]Element, len(nodes))
	for i, n := range nodes {
		out[i] = &Node{n: n}
	}
	return out
}

// QueryAll compiles selectors and returns the matching elements in document
// order. Invalid selectors match nothing.
func (d *Document) QueryAll(selectors ...string) []Element {
	s, err := Compile(selectors...)
	if err != nil {
		return nil
	}
	return d.Select(s)
}

// Find exposes the underlying goquery selection for read-only inspection.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return perrors.Trace(err)
		}
	}
	return nil
}

// Loader parses pages and delivers the content-loaded notification.
// A Loader holds at most one callback; it fires once per loaded document,
// after parsing has completed.
type Loader struct {
	mu      sync.Mutex
	onReady func(*Document)
}

// NewLoader creates a Loader with no callback registered.
func NewLoader() *Loader {
	return &Loader{}
}

// OnContentLoaded registers fn as the content-loaded callback.
// Only one callback may be registered; later calls return
// ErrListenerRegistered and leave the first callback in place.
func (l *Loader) OnContentLoaded(fn func(*Document)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.onReady != nil {
		return ErrListenerRegistered
	}
	l.onReady = fn
	return nil
}

// Load parses a page from r and fires the registered callback exactly once
// with the parsed document. The callback runs synchronously on the calling
// goroutine and has completed when Load returns.
func (l *Loader) Load(r io.Reader) (*Document, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	fn := l.onReady
	l.mu.Unlock()

	if fn != nil {
		fn(doc)
	}
	return doc, nil
}
