// Package dom is the document surface the accentuator works against.
//
// A [Loader] parses one HTML page and then delivers a single
// "content loaded" notification to its registered callback, mirroring the
// DOMContentLoaded event of a browser. The callback receives a [Document],
// which answers selector queries with typed [Element] values in document
// order. Elements expose only what accenting needs: their rendered text and
// the ability to replace their children with new [Fragment] content.
//
// Parsing and selector matching use golang.org/x/net/html and
// github.com/PuerkitoBio/goquery.
package dom
