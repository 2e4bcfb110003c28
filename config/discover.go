package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
)

// Files returns the YAML files found in the XDG configuration directories,
// lowest precedence first.
func Files() []string {
	var files []string
	for _, dir := range append(slices.Clone(xdg.ConfigDirs), xdg.ConfigHome) {
		files = append(files, FilesIn(filepath.Join(dir, AppName))...)
		files = append(files, FilesIn(filepath.Join(dir, AppName, "conf.d"))...)
	}
	return files
}

// FilesIn returns the *.yml and *.yaml files in dir, sorted by name.
// A missing directory has no files.
func FilesIn(dir string) []string {
	fsys := os.DirFS(dir)
	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			files = append(files, filepath.Join(dir, m))
		}
	}
	slices.Sort(files)
	return files
}
