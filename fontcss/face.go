package fontcss

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnrecognizedFilename is returned when a font file name does not follow
// the Nerd Font naming scheme.
var ErrUnrecognizedFilename = errors.New("fontcss: unrecognized font file name")

// Extension is the file extension of patched font files.
const Extension = ".ttf"

// Spacing variants of a patched font.
const (
	SpacingDefault = ""
	SpacingMono    = "Mono"
	SpacingPropo   = "Propo"
)

// weights maps weight names used in file names to CSS font-weight values.
var weights = map[string]int{
	"Thin":       100,
	"Hairline":   100,
	"ExtraLight": 200,
	"UltraLight": 200,
	"Light":      300,
	"SemiLight":  350,
	"Normal":     400,
	"Regular":    400,
	"Medium":     500,
	"SemiBold":   600,
	"DemiBold":   600,
	"Bold":       700,
	"ExtraBold":  800,
	"UltraBold":  800,
	"Black":      900,
	"Heavy":      900,
	"ExtraBlack": 950,
	"UltraBlack": 950,
}

const weightPattern = `Thin|Hairline|(?:Extra|Ultra|Semi)?Light|Normal|Regular|Medium|(?:Semi|Demi|Extra|Ultra)?Bold|(?:Extra|Ultra)?Black|Heavy`

var filenameRe = regexp.MustCompile(`^(?P<name>.+NerdFont)(?P<spacing>Mono|Propo)?-(?P<weight>` +
	weightPattern + `)?(?P<stretch>Condensed)?(?P<style>Italic)?\.ttf$`)

// Face describes one font file as a CSS font face.
type Face struct {
	// File is the base name of the font file.
	File string

	// Name is the family name taken from the file, e.g. "JetBrainsMonoNerdFont".
	Name string

	// Spacing is SpacingDefault, SpacingMono or SpacingPropo.
	Spacing string

	// Weight is the CSS font-weight.
	Weight int

	// Style is the CSS font-style, "normal" or "italic".
	Style string

	// Stretch is the CSS font-stretch, "normal" or "condensed".
	Stretch string
}

// Family returns the CSS font-family of the face when the family is
// called base: base followed by the spacing variant, if any.
func (f Face) Family(base string) string {
	if f.Spacing == SpacingDefault {
		return base
	}
	return base + " " + f.Spacing
}

// Weight returns the CSS font-weight for a weight name such as "SemiBold".
func Weight(name string) (int, bool) {
	w, ok := weights[name]
	return w, ok
}

// ParseFilename extracts the face properties from a patched font file
// name. Missing weight, stretch or style parts default to 400, "normal"
// and "normal".
func ParseFilename(name string) (Face, error) {
	m := filenameRe.FindStringSubmatch(name)
	if m == nil {
		return Face{}, ErrUnrecognizedFilename
	}
	group := func(g string) string {
		return m[filenameRe.SubexpIndex(g)]
	}

	f := Face{
		File:    name,
		Name:    group("name"),
		Spacing: group("spacing"),
		Weight:  400,
		Style:   "normal",
		Stretch: "normal",
	}
	if w := group("weight"); w != "" {
		f.Weight = weights[w]
	}
	if s := group("stretch"); s != "" {
		f.Stretch = strings.ToLower(s)
	}
	if s := group("style"); s != "" {
		f.Style = strings.ToLower(s)
	}
	return f, nil
}
