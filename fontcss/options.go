package fontcss

import (
	"github.com/pingcap/errors"
)

// DefaultVersion is the Nerd Fonts release written into generated headers
// when none is given.
const DefaultVersion = "v3.2.1"

// Policy selects what Generator.Faces does with a font file whose name
// does not follow the Nerd Font naming scheme.
type Policy string

// Supported policies.
const (
	// PolicyFail aborts with ErrUnrecognizedFilename.
	PolicyFail Policy = "fail"

	// PolicySkip leaves the file out of the style sheet.
	PolicySkip Policy = "skip"

	// PolicyInspect reads family, weight and style from the font tables.
	PolicyInspect Policy = "inspect"
)

// ErrUnknownPolicy is returned by ParsePolicy for unsupported names.
var ErrUnknownPolicy = errors.New("fontcss: unknown policy")

// ParsePolicy converts a policy name. The empty string is PolicyFail.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case "":
		return PolicyFail, nil
	case PolicyFail, PolicySkip, PolicyInspect:
		return p, nil
	default:
		return "", errors.Annotatef(ErrUnknownPolicy, "%q", s)
	}
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	version string
	policy  Policy
	parser  string
	mkdocs  bool
}

func defaultOptions() options {
	return options{
		version: DefaultVersion,
		policy:  PolicyFail,
		parser:  "gotext",
	}
}

// WithVersion sets the release version named in generated headers.
func WithVersion(v string) Option {
	return func(o *options) {
		if v != "" {
			o.version = v
		}
	}
}

// WithPolicy sets the handling of unrecognized font file names.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithParser sets the fontface backend used by PolicyInspect.
// It must be able to describe fonts; the default is "gotext".
func WithParser(name string) Option {
	return func(o *options) {
		o.parser = name
	}
}

// WithMkDocs makes the default style sheet target MkDocs Material.
func WithMkDocs(enabled bool) Option {
	return func(o *options) {
		o.mkdocs = enabled
	}
}
