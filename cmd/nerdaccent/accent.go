package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/accent"
	"github.com/gogpu/accent/internal/log"
	"github.com/gogpu/accent/site"
)

var accentFlags struct {
	workers   int
	dryRun    bool
	selectors []string
	classes   []string
}

var accentCmd = &cobra.Command{
	Use:   "accent <path>...",
	Short: "Wrap leading icon glyphs of built pages in accent spans",
	Long: `accent rewrites HTML pages in place. Each path is a page or a directory
that is searched for .html and .htm files. Pages without accented elements
are not touched, and running accent twice changes nothing the second time.`,
	Example: `  nerdaccent accent site/
  nerdaccent accent --dry-run --selector h1 --selector h2 site/index.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAccent,
}

func init() {
	f := accentCmd.Flags()
	f.IntVarP(&accentFlags.workers, "workers", "w", 0, "pages processed concurrently (default from config, 0 = all CPUs)")
	f.BoolVarP(&accentFlags.dryRun, "dry-run", "n", false, "report changes without writing pages")
	f.StringSliceVar(&accentFlags.selectors, "selector", nil, "candidate selectors (default from config)")
	f.StringSliceVar(&accentFlags.classes, "class", nil, "classes set on the glyph span (default from config)")
}

func runAccent(cmd *cobra.Command, args []string) error {
	if len(accentFlags.selectors) > 0 {
		cfg.Accent.Selectors = accentFlags.selectors
	}
	if len(accentFlags.classes) > 0 {
		cfg.Accent.Classes = accentFlags.classes
	}
	workers := cfg.Site.Workers
	if cmd.Flags().Changed("workers") {
		workers = accentFlags.workers
	}

	opts, err := cfg.AccentOptions()
	if err != nil {
		return err
	}
	acc, err := accent.New(opts...)
	if err != nil {
		return err
	}
	rw := site.New(acc, site.WithWorkers(workers), site.WithDryRun(accentFlags.dryRun))

	var total site.Report
	for _, path := range args {
		rep, err := rw.Rewrite(cmd.Context(), path)
		total.Pages += rep.Pages
		total.Changed += rep.Changed
		total.Candidates += rep.Candidates
		total.Accented += rep.Accented
		if err != nil {
			return err
		}
		log.Logger().Info().
			Str("path", path).
			Int("pages", rep.Pages).
			Int("changed", rep.Changed).
			Int("accented", rep.Accented).
			Msg("rewrote site")
	}

	verb := "changed"
	if accentFlags.dryRun {
		verb = "would change"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d pages, %s %d, %d of %d candidates accented\n",
		total.Pages, verb, total.Changed, total.Accented, total.Candidates)
	return err
}
