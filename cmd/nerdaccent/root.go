package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/accent/config"
	"github.com/gogpu/accent/internal/log"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg is loaded before any subcommand runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "nerdaccent",
	Short: "Accent Nerd Font icon glyphs in generated documentation",
	Long: `nerdaccent post-processes a built documentation site: headings, links,
emphasis and navigation labels that start with a Nerd Font icon glyph get
the glyph wrapped in <span class="accent nerd-font"> so a style sheet can
render it in the icon font.

Configuration is read from $XDG_CONFIG_HOME/nerdaccent/*.yaml and the
system XDG config directories; --config adds one more file on top.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	// Bootstrap logger so configuration errors are reported.
	_ = log.Init(log.InfoLevel, log.FormatConsole, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Logger().Error().Err(err).Msg("nerdaccent failed")
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "additional YAML configuration file")
	pf.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "log format: console or json")

	rootCmd.AddCommand(accentCmd, rangesCmd, lookupCmd, coverageCmd, fontcssCmd)
}

// setup loads the configuration, applies the global flags and configures
// logging.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, files, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if logFormat != "" {
		loaded.Log.Format = logFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	if err := log.Init(loaded.Log.Level, loaded.Log.Format, cmd.ErrOrStderr()); err != nil {
		return err
	}
	cfg = loaded

	log.Logger().Debug().Strs("files", files).Msg("configuration loaded")
	return nil
}
