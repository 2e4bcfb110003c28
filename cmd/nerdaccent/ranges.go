package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Print the glyph sets and their code point ranges",
	Args:  cobra.NoArgs,
	RunE:  runRanges,
}

func runRanges(cmd *cobra.Command, _ []string) error {
	t, err := cfg.Table()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SET\tGLYPHS\tRANGES")
	for _, s := range t.Sets() {
		ranges := make([]string, len(s.Ranges))
		count := 0
		for i, r := range s.Ranges {
			ranges[i] = r.String()
			count += int(r.Last-r.First) + 1
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Name, count, strings.Join(ranges, ", "))
	}
	fmt.Fprintf(tw, "total\t%d\t\n", t.Len())
	return tw.Flush()
}
