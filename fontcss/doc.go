// Package fontcss generates @font-face style sheets for patched Nerd Fonts.
//
// Release archives of Nerd Fonts hold one .ttf file per variant, named
// after the family, the spacing variant and the weight and style:
//
//	JetBrainsMonoNerdFont-Regular.ttf
//	JetBrainsMonoNerdFontMono-BoldItalic.ttf
//	JetBrainsMonoNerdFontPropo-ExtraLightItalic.ttf
//
// [ParseFilename] turns such a name into a [Face], and a [Generator]
// writes one @font-face rule per face followed by the MkDocs Material
// font variables, so a documentation theme can render both text and the
// icon glyphs wrapped by the accent package.
package fontcss
