// Package glyphs holds the code-point ranges of icon fonts.
//
// A [Table] is an ordered, immutable list of named glyph sets. Each [Set]
// groups the inclusive [Range] values one icon collection occupies, for
// example the Octicons or Codicons blocks of a patched Nerd Font.
//
// The package-level [NerdFonts] table covers every collection merged into
// Nerd Fonts v3. Membership is a linear scan over the flattened ranges:
//
//	if glyphs.NerdFonts.Contains(r) {
//	    // r renders with the icon font
//	}
//
// The set names are descriptive only; matching never depends on them.
package glyphs
