package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/accent/fontface"
)

var coverageFlags struct {
	parser  string
	missing int
}

var coverageCmd = &cobra.Command{
	Use:   "coverage <font>...",
	Short: "Report how many glyphs of each set a font draws",
	Long: `coverage parses TrueType or OpenType fonts and counts, per glyph set, the
code points the font maps to a glyph. Use it to check that a patched font
draws the icons used in the documentation.`,
	Example: `  nerdaccent coverage docs/assets/fonts/HackNerdFont/HackNerdFont-Regular.ttf
  nerdaccent coverage --missing 5 MyFont.ttf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCoverage,
}

func init() {
	f := coverageCmd.Flags()
	f.StringVar(&coverageFlags.parser, "parser", "gotext", "font parser backend: ximage or gotext")
	f.IntVar(&coverageFlags.missing, "missing", 0, "list up to this many missing code points per set")
}

func runCoverage(cmd *cobra.Command, args []string) error {
	t, err := cfg.Table()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		src, err := fontface.NewSourceFromFile(path, fontface.WithParser(coverageFlags.parser))
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s: %s, %d units/em", path, src.Name(), src.Parsed().UnitsPerEm())
		if d, ok := src.Describe(); ok {
			fmt.Fprintf(out, " (weight %d, %s, %s)", d.Weight, d.Style(), d.Stretch)
		}
		fmt.Fprintln(out)

		sets := t.Sets()
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SET\tCOVERED\tTOTAL\t%")
		for i, c := range src.Coverage(t) {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", c.Set, c.Covered, c.Total, coveragePercent(c))
			if coverageFlags.missing > 0 && !c.Complete() {
				for _, r := range src.Missing(sets[i], coverageFlags.missing) {
					fmt.Fprintf(tw, "  missing U+%04X\t\t\t\n", r)
				}
			}
		}
		_ = src.Close()
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// coveragePercent formats the covered share of a set, or "-" for a set
// without code points.
func coveragePercent(c fontface.SetCoverage) string {
	if c.Total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", 100*float64(c.Covered)/float64(c.Total))
}
