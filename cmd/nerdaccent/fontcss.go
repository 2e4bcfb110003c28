package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/accent/fetch"
	"github.com/gogpu/accent/fontcss"
	"github.com/gogpu/accent/internal/log"
)

// mkdocsOutput is the --output default implied by --mkdocs.
const mkdocsOutput = "docs/assets/fonts/"

var fontcssFlags struct {
	version    string
	output     string
	name       string
	quiet      bool
	clean      bool
	genDefault bool
	mkdocs     bool
	policy     string
	baseURL    string
}

var fontcssCmd = &cobra.Command{
	Use:   "fontcss <archive>",
	Short: "Fetch a patched Nerd Font and generate CSS to use it as a web font",
	Long: `fontcss downloads a Nerd Fonts release archive, extracts its .ttf files and
writes <Name>NerdFont.css with one @font-face rule per file. archive is the
name of the font archive without "NerdFont", e.g. Hack or JetBrainsMono.

The fonts and CSS are written to a temporary directory whose path is
printed. --output moves them below a directory instead (implies --clean);
--quiet and --clean imply each other.`,
	Example: `  nerdaccent fontcss Hack
  nerdaccent fontcss --mkdocs --gen-default JetBrainsMono`,
	Args: cobra.ExactArgs(1),
	RunE: runFontCSS,
}

func init() {
	f := fontcssCmd.Flags()
	f.StringVarP(&fontcssFlags.version, "version", "v", "", "release version including the 'v' prefix (default from config)")
	f.StringVarP(&fontcssFlags.output, "output", "o", "", "directory to move the font directory to (implies --clean)")
	f.StringVarP(&fontcssFlags.name, "name", "n", "", "base name of the font, if it differs from the archive name")
	f.BoolVarP(&fontcssFlags.quiet, "quiet", "q", false, "do not print the temporary output directory (implies --clean)")
	f.BoolVarP(&fontcssFlags.clean, "clean", "c", false, "delete the temporary working directory when done (implies --quiet)")
	f.BoolVar(&fontcssFlags.genDefault, "gen-default", false, "also write "+fontcss.DefaultCSSFile+" making the font the page default")
	f.BoolVar(&fontcssFlags.mkdocs, "mkdocs", false, "default --output to "+mkdocsOutput+" and target MkDocs Material in "+fontcss.DefaultCSSFile)
	f.StringVar(&fontcssFlags.policy, "policy", "", "unrecognized font file names: fail, skip or inspect (default from config)")
	f.StringVar(&fontcssFlags.baseURL, "base-url", fetch.BaseURL, "release download prefix")
	_ = f.MarkHidden("base-url")
}

func runFontCSS(cmd *cobra.Command, args []string) error {
	flags := fontcssFlags
	archive := args[0]

	if flags.version == "" {
		flags.version = cfg.Fonts.Version
	}
	if flags.output == "" {
		flags.output = cfg.Fonts.Output
	}
	if flags.policy == "" {
		flags.policy = cfg.Fonts.Policy
	}
	if flags.mkdocs && flags.output == "" {
		flags.output = mkdocsOutput
	}
	if flags.quiet || flags.output != "" {
		flags.clean = true
	}
	if flags.clean {
		flags.quiet = true
	}
	policy, err := fontcss.ParsePolicy(flags.policy)
	if err != nil {
		return err
	}

	baseName := archive
	if flags.name != "" {
		baseName = flags.name
	}
	gen := fontcss.New(baseName,
		fontcss.WithVersion(flags.version),
		fontcss.WithPolicy(policy),
		fontcss.WithMkDocs(flags.mkdocs))

	tmpDir, err := os.MkdirTemp("", "nerdaccent-")
	if err != nil {
		return errors.Trace(err)
	}
	if flags.clean {
		defer func() { _ = os.RemoveAll(tmpDir) }()
	}
	fontDir := filepath.Join(tmpDir, gen.FontName())

	client := fetch.NewClient(fetch.WithBaseURL(flags.baseURL))
	files, err := client.Fetch(cmd.Context(), archive, flags.version, fontDir)
	if err != nil {
		return err
	}
	log.Logger().Info().Int("files", len(files)).Str("dir", fontDir).Msg("extracted fonts")

	if _, err := gen.Generate(fontDir, flags.genDefault); err != nil {
		return err
	}

	if flags.output != "" {
		dst := filepath.Join(flags.output, gen.FontName())
		if err := moveDir(fontDir, dst); err != nil {
			return err
		}
		log.Logger().Info().Str("dir", dst).Msg("fonts installed")
	}
	if !flags.quiet {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), fontDir)
	}
	return err
}

// moveDir moves src to dst, replacing dst. It copies when a rename is not
// possible, e.g. across file systems.
func moveDir(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Trace(err)
	}
	if err := os.RemoveAll(dst); err != nil {
		return errors.Trace(err)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	return errors.Trace(filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	}))
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- file inside our own temporary directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- destination below the chosen output directory
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, in)
	return err
}
