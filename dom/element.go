package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is the capability set a matched node offers to the accentuator:
// its rendered text and replacement of its children.
type Element interface {
	// InnerText returns the text as a browser would render it.
	InnerText() string

	// ReplaceChildren removes every child and appends children in order.
	ReplaceChildren(children ...Fragment)
}

// Fragment describes a node to be inserted by ReplaceChildren.
// A Fragment with an empty Tag is a text node.
type Fragment struct {
	Tag     string
	Text    string
	Classes []string
}

// Text returns a text node fragment.
func Text(s string) Fragment {
	return Fragment{Text: s}
}

// Span returns an inline span holding text, tagged with classes.
func Span(text string, classes ...string) Fragment {
	return Fragment{Tag: "span", Text: text, Classes: classes}
}

// IsText reports whether f is a plain text node.
func (f Fragment) IsText() bool {
	return f.Tag == ""
}

// node builds a fresh, detached html.Node for f.
func (f Fragment) node() *html.Node {
	if f.IsText() {
		return &html.Node{Type: html.TextNode, Data: f.Text}
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     f.Tag,
		DataAtom: atom.Lookup([]byte(f.Tag)),
	}
	if len(f.Classes) > 0 {
		n.Attr = []html.Attribute{{Key: "class", Val: strings.Join(f.Classes, " ")}}
	}
	if f.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: f.Text})
	}
	return n
}

// Node is an Element backed by an html.Node.
type Node struct {
	n *html.Node
}

// Tag returns the element name, e.g. "h1".
func (e *Node) Tag() string {
	return e.n.Data
}

// InnerText approximates the browser innerText of the element: text of
// all descendants with script, style and template content skipped, <br> as a
// newline, and runs of white space collapsed to one space and trimmed
// outside <pre>.
func (e *Node) InnerText() string {
	var tc textCollector
	tc.walk(e.n, false)
	return tc.b.String()
}

// ReplaceChildren implements Element.
func (e *Node) ReplaceChildren(children ...Fragment) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	for _, f := range children {
		e.n.AppendChild(f.node())
	}
}

// Detached reports whether the element no longer belongs to a document,
// e.g. after ReplaceChildren on an ancestor removed it.
func (e *Node) Detached() bool {
	for n := e.n; n != nil; n = n.Parent {
		if n.Type == html.DocumentNode {
			return false
		}
	}
	return true
}

type textCollector struct {
	b            strings.Builder
	pendingSpace bool
}

func (tc *textCollector) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			tc.writeRaw(n.Data)
		} else {
			tc.writeCollapsed(n.Data)
		}
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template, atom.Noscript:
			return
		case atom.Br:
			tc.pendingSpace = false
			tc.b.WriteByte('\n')
			return
		case atom.Pre, atom.Textarea:
			pre = true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		tc.walk(c, pre)
	}
}

func (tc *textCollector) writeRaw(s string) {
	if s == "" {
		return
	}
	tc.flushSpace()
	tc.b.WriteString(s)
}

func (tc *textCollector) writeCollapsed(s string) {
	for _, r := range s {
		if isCollapsible(r) {
			if tc.b.Len() > 0 && !strings.HasSuffix(tc.b.String(), "\n") {
				tc.pendingSpace = true
			}
			continue
		}
		tc.flushSpace()
		tc.b.WriteRune(r)
	}
}

func (tc *textCollector) flushSpace() {
	if tc.pendingSpace {
		tc.b.WriteByte(' ')
		tc.pendingSpace = false
	}
}

// isCollapsible reports CSS document white space. U+00A0 is not included.
func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
