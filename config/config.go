// Package config loads nerdaccent settings from YAML files in the XDG
// configuration directories.
//
// Files named *.yml or *.yaml are read from
//
//	<dir>/nerdaccent/
//	<dir>/nerdaccent/conf.d/
//
// for every directory in xdg.ConfigDirs followed by xdg.ConfigHome, each
// directory in sorted order. Later files override the keys they set.
package config

import (
	stderrors "errors"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/gogpu/accent"
	"github.com/gogpu/accent/dom"
	"github.com/gogpu/accent/fontcss"
	"github.com/gogpu/accent/glyphs"
	"github.com/pingcap/errors"
	"go.yaml.in/yaml/v3"
)

// AppName is the directory name used below each XDG config directory.
const AppName = "nerdaccent"

// Sentinel errors for config package.
var (
	// ErrInvalid is returned by Validate.
	ErrInvalid = stderrors.New("config: invalid configuration")
)

// Config is the complete nerdaccent configuration.
type Config struct {
	Accent AccentConfig `yaml:"accent"`
	Site   SiteConfig   `yaml:"site"`
	Fonts  FontsConfig  `yaml:"fonts"`
	Log    LogConfig    `yaml:"log"`
}

// AccentConfig configures the Accentuator.
type AccentConfig struct {
	Selectors []string `yaml:"selectors"`
	Classes   []string `yaml:"classes"`

	// ExtraSets are appended to the Nerd Fonts table.
	ExtraSets []SetConfig `yaml:"extra_sets"`
}

// SetConfig is a named glyph set.
type SetConfig struct {
	Name   string        `yaml:"name"`
	Ranges []RangeConfig `yaml:"ranges"`
}

// RangeConfig is an inclusive code point range. YAML integers may be
// written in hex, e.g. 0xe000. A missing last means a single code point.
type RangeConfig struct {
	First int64 `yaml:"first"`
	Last  int64 `yaml:"last"`
}

// SiteConfig configures site rewrites.
type SiteConfig struct {
	// Workers is the number of pages processed concurrently; 0 means
	// GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// FontsConfig configures fetching fonts and generating style sheets.
type FontsConfig struct {
	Version string `yaml:"version"`
	Output  string `yaml:"output"`
	Policy  string `yaml:"policy"`
}

// LogConfig configures the command line logger.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is console or json.
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Accent: AccentConfig{
			Selectors: append([]string(nil), accent.DefaultSelectors...),
			Classes:   append([]string(nil), accent.DefaultClasses...),
		},
		Fonts: FontsConfig{
			Version: fontcss.DefaultVersion,
			Policy:  string(fontcss.PolicyFail),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the discovered configuration files, then explicit if it is
// not empty, over the defaults. It returns the files read in order.
func Load(explicit string) (*Config, []string, error) {
	cfg := Default()
	files := Files()
	if explicit != "" {
		files = append(files, explicit)
	}
	for _, f := range files {
		if err := cfg.MergeFile(f); err != nil {
			return nil, nil, err
		}
	}
	return cfg, files, nil
}

// MergeFile decodes the YAML file at path into c. Keys absent from the
// file keep their current value; lists are replaced, not appended.
// Unknown keys are an error.
func (c *Config) MergeFile(path string) error {
	// #nosec G304 -- configuration path from XDG dirs or the command line
	f, err := os.Open(path)
	if err != nil {
		return errors.Annotate(err, "config: open")
	}
	defer func() { _ = f.Close() }()

	if err := c.Merge(f); err != nil {
		return errors.Annotatef(err, "config: %s", path)
	}
	return nil
}

// Merge decodes one YAML document from r into c.
func (c *Config) Merge(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Trace(err)
	}
	return nil
}

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Validate checks the values that Load cannot check while decoding.
func (c *Config) Validate() error {
	if _, err := dom.Compile(c.Accent.Selectors...); err != nil {
		return errors.Annotatef(ErrInvalid, "accent.selectors: %v", err)
	}
	if _, err := c.Table(); err != nil {
		return errors.Annotatef(ErrInvalid, "accent.extra_sets: %v", err)
	}
	if c.Site.Workers < 0 {
		return errors.Annotatef(ErrInvalid, "site.workers: %d is negative", c.Site.Workers)
	}
	if _, err := fontcss.ParsePolicy(c.Fonts.Policy); err != nil {
		return errors.Annotatef(ErrInvalid, "fonts.policy: %v", err)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errors.Annotatef(ErrInvalid, "log.level: %q", c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return errors.Annotatef(ErrInvalid, "log.format: %q", c.Log.Format)
	}
	return nil
}

// Table returns the Nerd Fonts table extended with the extra sets.
func (c *Config) Table() (*glyphs.Table, error) {
	if len(c.Accent.ExtraSets) == 0 {
		return glyphs.NerdFonts, nil
	}
	sets := make([]glyphs.Set, 0, len(c.Accent.ExtraSets))
	for _, s := range c.Accent.ExtraSets {
		if len(s.Ranges) == 0 {
			return nil, errors.Annotatef(glyphs.ErrInvalidRange, "%s: no ranges", s.Name)
		}
		set := glyphs.Set{Name: s.Name}
		for _, r := range s.Ranges {
			last := r.Last
			if last == 0 {
				last = r.First
			}
			if r.First < 0 || last > unicode.MaxRune {
				return nil, errors.Annotatef(glyphs.ErrInvalidRange, "%s: %#x..%#x", s.Name, r.First, last)
			}
			set.Ranges = append(set.Ranges, glyphs.Range{First: rune(r.First), Last: rune(last)})
		}
		sets = append(sets, set)
	}
	return glyphs.NerdFonts.With(sets...)
}

// AccentOptions converts the accent section to Accentuator options.
func (c *Config) AccentOptions() ([]accent.Option, error) {
	t, err := c.Table()
	if err != nil {
		return nil, err
	}
	return []accent.Option{
		accent.WithTable(t),
		accent.WithSelectors(c.Accent.Selectors...),
		accent.WithClasses(c.Accent.Classes...),
	}, nil
}
