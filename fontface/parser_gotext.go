package fontface

import (
	"bytes"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/pingcap/errors"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Annotate(err, "fontface: failed to parse font")
	}
	return &gotextParsedFont{font: face.Font, desc: describe(face.Font.Describe())}, nil
}

// gotextParsedFont implements ParsedFont and Describer.
// Only the read-only *font.Font is kept; font.Face carries caches that are
// not safe for concurrent use.
type gotextParsedFont struct {
	font *font.Font
	desc Description
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.desc.Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint32 {
	gid, ok := f.font.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint32(gid)
}

// Describe implements Describer.
func (f *gotextParsedFont) Describe() Description {
	return f.desc
}

// stretchKeywords maps font.Stretch values to CSS font-stretch keywords.
var stretchKeywords = []struct {
	value   font.Stretch
	keyword string
}{
	{font.StretchUltraCondensed, "ultra-condensed"},
	{font.StretchExtraCondensed, "extra-condensed"},
	{font.StretchCondensed, "condensed"},
	{font.StretchSemiCondensed, "semi-condensed"},
	{font.StretchNormal, "normal"},
	{font.StretchSemiExpanded, "semi-expanded"},
	{font.StretchExpanded, "expanded"},
	{font.StretchExtraExpanded, "extra-expanded"},
	{font.StretchUltraExpanded, "ultra-expanded"},
}

func describe(d font.Description) Description {
	return Description{
		Family:  d.Family,
		Weight:  cssWeight(d.Aspect.Weight),
		Italic:  d.Aspect.Style == font.StyleItalic,
		Stretch: cssStretch(d.Aspect.Stretch),
	}
}

func cssWeight(w font.Weight) int {
	if w == 0 {
		return 400
	}
	return int(math.Round(float64(w)))
}

// cssStretch returns the keyword nearest to s.
func cssStretch(s font.Stretch) string {
	if s == 0 {
		return "normal"
	}
	best, dist := "normal", math.Inf(1)
	for _, k := range stretchKeywords {
		if d := math.Abs(float64(s - k.value)); d < dist {
			best, dist = k.keyword, d
		}
	}
	return best
}
