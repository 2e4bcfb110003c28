// Command nerdaccent accents Nerd Font icon glyphs in built documentation
// and prepares the web fonts that render them.
//
// Usage:
//
//	nerdaccent accent site/               # rewrite every page of a built site
//	nerdaccent ranges                     # print the glyph table
//	nerdaccent lookup U+F41B              # find the glyph set of a code point
//	nerdaccent coverage Hack.ttf          # check a font's glyph coverage
//	nerdaccent fontcss --mkdocs Hack      # fetch a font and write its CSS
package main

func main() {
	Execute()
}
