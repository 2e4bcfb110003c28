package fontcss

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/accent"
	"github.com/gogpu/accent/fontface"
	"github.com/pingcap/errors"
)

// DefaultCSSFile is the name of the style sheet that makes the font the
// page default.
const DefaultCSSFile = "default-font.css"

// Generator writes style sheets for one patched font family.
type Generator struct {
	name string
	opts options
}

// New creates a Generator for the family base name, e.g. "JetBrainsMono".
// The "NerdFont" suffix is appended when missing.
func New(name string, opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !strings.HasSuffix(name, "NerdFont") {
		name += "NerdFont"
	}
	return &Generator{name: name, opts: o}
}

// FontName returns the family name used in the style sheets.
func (g *Generator) FontName() string {
	return g.name
}

// CSSFile returns the file name of the primary style sheet.
func (g *Generator) CSSFile() string {
	return g.name + ".css"
}

// Faces parses every font file in dir, in file name order.
// Unrecognized names are handled according to the Generator's Policy.
func (g *Generator) Faces(dir string) ([]Face, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Annotate(err, "fontcss: read font directory")
	}

	var faces []Face
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		f, err := ParseFilename(e.Name())
		if err == nil {
			faces = append(faces, f)
			continue
		}

		switch g.opts.policy {
		case PolicySkip:
			accent.Logger().Warn("skipping unrecognized font file", "file", e.Name())
		case PolicyInspect:
			f, err = g.inspect(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, err
			}
			faces = append(faces, f)
		default:
			return nil, errors.Annotatef(err, "%s", e.Name())
		}
	}
	return faces, nil
}

// inspect builds a Face from the font's own metadata.
func (g *Generator) inspect(path string) (Face, error) {
	src, err := fontface.NewSourceFromFile(path, fontface.WithParser(g.opts.parser))
	if err != nil {
		return Face{}, err
	}
	defer func() { _ = src.Close() }()

	d, ok := src.Describe()
	if !ok {
		return Face{}, errors.Annotatef(ErrUnrecognizedFilename,
			"%s: parser %q cannot describe fonts", filepath.Base(path), src.Parser())
	}

	f := Face{
		File:    filepath.Base(path),
		Name:    d.Family,
		Weight:  d.Weight,
		Style:   d.Style(),
		Stretch: d.Stretch,
	}
	for _, spacing := range []string{SpacingMono, SpacingPropo} {
		if strings.HasSuffix(d.Family, " "+spacing) || strings.Contains(f.File, "NerdFont"+spacing) {
			f.Spacing = spacing
			break
		}
	}
	accent.Logger().Info("inspected font file",
		"file", f.File,
		"family", d.Family,
		"weight", f.Weight,
		"style", f.Style)
	return f, nil
}

// WriteCSS writes the header comment, one @font-face rule per face and the
// MkDocs Material font variables.
func (g *Generator) WriteCSS(w io.Writer, faces []Face) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* Generated from %s-%s by nerdaccent */\n\n", g.name, g.opts.version)
	for _, f := range faces {
		fmt.Fprintf(bw, "@font-face {\n")
		fmt.Fprintf(bw, "  font-family: %q;\n", f.Family(g.name))
		fmt.Fprintf(bw, "  src:\n   url(%q) format(\"truetype\");\n", f.File)
		fmt.Fprintf(bw, "  font-weight: %d;\n", f.Weight)
		fmt.Fprintf(bw, "  font-style: %s;\n", f.Style)
		fmt.Fprintf(bw, "  font-stretch: %s;\n", f.Stretch)
		fmt.Fprintf(bw, "}\n\n")
	}
	fmt.Fprintf(bw, "\n:root {\n")
	fmt.Fprintf(bw, "  --md-text-font: \"%s %s\";\n", g.name, SpacingPropo)
	fmt.Fprintf(bw, "  --md-code-font: \"%s\" \"%s %s\";\n", g.name, g.name, SpacingMono)
	fmt.Fprintf(bw, "}\n\n")
	return errors.Trace(bw.Flush())
}

// WriteDefaultCSS writes a style sheet that imports cssFile and makes the
// font the page default. The accent spans always use the icon font; the
// MkDocs variant relies on the theme variables set by the primary style
// sheet and also colors the spans with the theme accent.
func (g *Generator) WriteDefaultCSS(w io.Writer, cssFile string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* Generated from %s-%s by nerdaccent */\n\n", g.name, g.opts.version)
	fmt.Fprintf(bw, "@import url(%q);\n\n", cssFile)
	if g.opts.mkdocs {
		fmt.Fprintf(bw, ".accent.nerd-font {\n")
		fmt.Fprintf(bw, "  font-family: %q;\n", g.name)
		fmt.Fprintf(bw, "  color: var(--md-accent-fg-color);\n")
		fmt.Fprintf(bw, "}\n")
		return errors.Trace(bw.Flush())
	}
	fmt.Fprintf(bw, "body {\n  font-family: \"%s %s\", sans-serif;\n}\n\n", g.name, SpacingPropo)
	fmt.Fprintf(bw, "code, kbd, pre, samp {\n  font-family: \"%s %s\", monospace;\n}\n\n", g.name, SpacingMono)
	fmt.Fprintf(bw, ".accent.nerd-font {\n  font-family: %q;\n}\n", g.name)
	return errors.Trace(bw.Flush())
}

// Generate writes the primary style sheet for the fonts in dir into dir
// and, when withDefault is set, the default style sheet next to it.
// It returns the paths written.
func (g *Generator) Generate(dir string, withDefault bool) ([]string, error) {
	faces, err := g.Faces(dir)
	if err != nil {
		return nil, err
	}

	primary := filepath.Join(dir, g.CSSFile())
	if err := writeFile(primary, func(w io.Writer) error { return g.WriteCSS(w, faces) }); err != nil {
		return nil, err
	}
	paths := []string{primary}
	accent.Logger().Info("wrote font style sheet", "path", primary, "faces", len(faces))

	if withDefault {
		def := filepath.Join(dir, DefaultCSSFile)
		if err := writeFile(def, func(w io.Writer) error { return g.WriteDefaultCSS(w, g.CSSFile()) }); err != nil {
			return paths, err
		}
		paths = append(paths, def)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path) // #nosec G304 -- output path chosen by the caller
	if err != nil {
		return errors.Annotate(err, "fontcss: create style sheet")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Trace(cerr)
		}
	}()
	return write(f)
}
