package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/accent/glyphs"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <codepoint|text>...",
	Short: "Show which glyph set contains a code point",
	Long: `lookup accepts code points written as U+F41B or 0xf41b, or text whose
every character is looked up. Without a prefix, 4 to 6 hex digits that
include a decimal digit are read as a code point, so f41b is U+F41B while
face, cafe or ab are looked up as text.`,
	Example: `  nerdaccent lookup U+F41B 0xe0b0
  nerdaccent lookup U+2665 f400`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	t, err := cfg.Table()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE POINT\tSET\tNAME")
	for _, arg := range args {
		runes, err := parseCodePoints(arg)
		if err != nil {
			return err
		}
		for _, r := range runes {
			set := "-"
			if s, ok := t.Lookup(r); ok {
				set = s.Name
			}
			fmt.Fprintf(tw, "U+%04X\t%s\t%s\n", r, set, glyphs.Describe(r))
		}
	}
	return tw.Flush()
}

// parseCodePoints reads a code point notation, or the characters of arg
// when it is not one.
func parseCodePoints(arg string) ([]rune, error) {
	if !utf8.ValidString(arg) {
		return nil, errors.Errorf("lookup: %q is not valid UTF-8", arg)
	}
	hex, prefixed := arg, false
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		if strings.HasPrefix(arg, prefix) {
			hex, prefixed = arg[len(prefix):], true
			break
		}
	}
	// Bare hex must look like a code point; short or letter-only words
	// such as "ab" or "face" are text.
	if prefixed || (len(hex) >= 4 && len(hex) <= 6 && strings.ContainsAny(hex, "0123456789")) {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			if v > utf8.MaxRune {
				return nil, errors.Errorf("lookup: %s is beyond U+10FFFF", arg)
			}
			return []rune{rune(v)}, nil
		}
	}
	return []rune(arg), nil
}
