package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/accent"
	"github.com/gogpu/accent/glyphs"
)

// xdgDirs points the XDG config directories at a temporary tree for the
// duration of the test.
func xdgDirs(t *testing.T) (home string, dirs []string) {
	t.Helper()
	root := t.TempDir()
	home = filepath.Join(root, "home")
	dirs = []string{filepath.Join(root, "sys0"), filepath.Join(root, "sys1")}

	origHome, origDirs := xdg.ConfigHome, xdg.ConfigDirs
	t.Cleanup(func() {
		xdg.ConfigHome, xdg.ConfigDirs = origHome, origDirs
	})
	xdg.ConfigHome, xdg.ConfigDirs = home, dirs
	return home, dirs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFilesIn(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yml", "a.yaml", "c.json", "00.yml"} {
		writeFile(t, filepath.Join(dir, name), "")
	}

	var names []string
	for _, f := range FilesIn(dir) {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"00.yml", "a.yaml", "b.yml"}, names)
	assert.Empty(t, FilesIn(filepath.Join(dir, "missing")))
}

func TestFiles(t *testing.T) {
	home, dirs := xdgDirs(t)
	writeFile(t, filepath.Join(dirs[0], AppName, "config_a.yaml"), "")
	writeFile(t, filepath.Join(dirs[0], AppName, "conf.d", "00_conf.yml"), "")
	writeFile(t, filepath.Join(dirs[1], AppName, "config_b.yml"), "")
	writeFile(t, filepath.Join(home, AppName, "config_c.yaml"), "")
	writeFile(t, filepath.Join(home, AppName, "conf.d", "01_conf.yaml"), "")
	writeFile(t, filepath.Join(home, "other", "ignored.yaml"), "")

	var names []string
	for _, f := range Files() {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"config_a.yaml", "00_conf.yml", "config_b.yml", "config_c.yaml", "01_conf.yaml"}, names)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, accent.DefaultSelectors, cfg.Accent.Selectors)
	assert.Equal(t, accent.DefaultClasses, cfg.Accent.Classes)
	assert.Equal(t, "v3.2.1", cfg.Fonts.Version)
	assert.Equal(t, "fail", cfg.Fonts.Policy)
	assert.NoError(t, cfg.Validate())

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Same(t, glyphs.NerdFonts, table)
}

func TestLoadMergeOrder(t *testing.T) {
	home, dirs := xdgDirs(t)
	writeFile(t, filepath.Join(dirs[0], AppName, "base.yaml"), `
accent:
  selectors: [h1, h2, h3]
site:
  workers: 2
log:
  level: debug
`)
	writeFile(t, filepath.Join(home, AppName, "user.yml"), `
site:
  workers: 8
fonts:
  policy: skip
`)
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	writeFile(t, explicit, `
accent:
  selectors: [a]
`)

	cfg, files, err := Load(explicit)
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Equal(t, explicit, files[2])

	assert.Equal(t, []string{"a"}, cfg.Accent.Selectors, "explicit file overrides discovered ones")
	assert.Equal(t, 8, cfg.Site.Workers, "home overrides system dirs")
	assert.Equal(t, "skip", cfg.Fonts.Policy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, accent.DefaultClasses, cfg.Accent.Classes, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingExplicit(t *testing.T) {
	xdgDirs(t)
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestMergeUnknownKey(t *testing.T) {
	cfg := Default()
	err := cfg.Merge(strings.NewReader("accent:\n  selector: [h1]\n"))
	assert.Error(t, err)
}

func TestMergeEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Merge(strings.NewReader("")))
	assert.Equal(t, Default(), cfg)
}

func TestExtraSets(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Merge(strings.NewReader(`
accent:
  extra_sets:
    - name: Private icons
      ranges:
        - {first: 0xe900, last: 0xe9ff}
        - {first: 0x1f600}
`)))
	require.NoError(t, cfg.Validate())

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.True(t, table.Contains(0xe950))
	assert.True(t, table.Contains(0x1f600))
	assert.False(t, table.Contains(0x1f601))
	assert.True(t, table.Contains(0xf400), "Nerd Fonts sets are kept")

	set, ok := table.Lookup(0xe900)
	require.True(t, ok)
	assert.Equal(t, "Private icons", set.Name)

	opts, err := cfg.AccentOptions()
	require.NoError(t, err)
	a, err := accent.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, table.Sets(), a.Table().Sets())
	assert.True(t, a.Table().Contains(0xe950))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad selector", func(c *Config) { c.Accent.Selectors = []string{"h1["} }},
		{"no selectors", func(c *Config) { c.Accent.Selectors = nil }},
		{"reversed range", func(c *Config) {
			c.Accent.ExtraSets = []SetConfig{{Name: "x", Ranges: []RangeConfig{{First: 0xe010, Last: 0xe000}}}}
		}},
		{"range past max rune", func(c *Config) {
			c.Accent.ExtraSets = []SetConfig{{Name: "x", Ranges: []RangeConfig{{First: 0x110000}}}}
		}},
		{"set without ranges", func(c *Config) {
			c.Accent.ExtraSets = []SetConfig{{Name: "empty"}}
		}},
		{"negative workers", func(c *Config) { c.Site.Workers = -1 }},
		{"unknown policy", func(c *Config) { c.Fonts.Policy = "ignore" }},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}
