// Package log configures the command line logger and routes the library
// loggers of accent into it.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pingcap/errors"
	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/gogpu/accent"
)

const (
	defaultLogLevel = InfoLevel

	// TimeFormat is the timestamp layout of console output.
	TimeFormat = "2006-01-02 15:04:05"
)

// Level names accepted by Init.
const (
	TraceLevel = "trace"
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output formats accepted by Init.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownLevel is returned by Init for an unsupported level name.
var ErrUnknownLevel = errors.New("log: unknown log level")

var logger = zerolog.Nop()

// Init configures the process logger writing to w (os.Stderr when nil)
// and installs it as the accent library logger.
func Init(level, format string, w io.Writer) error {
	if level == "" {
		level = defaultLogLevel
	}
	var (
		zl zerolog.Level
		sl slog.Level
	)
	switch strings.ToLower(level) {
	case TraceLevel:
		zl, sl = zerolog.TraceLevel, slog.LevelDebug-4
	case DebugLevel:
		zl, sl = zerolog.DebugLevel, slog.LevelDebug
	case InfoLevel:
		zl, sl = zerolog.InfoLevel, slog.LevelInfo
	case WarnLevel:
		zl, sl = zerolog.WarnLevel, slog.LevelWarn
	case ErrorLevel:
		zl, sl = zerolog.ErrorLevel, slog.LevelError
	default:
		return errors.Annotatef(ErrUnknownLevel, "%q", level)
	}
	zerolog.SetGlobalLevel(zl)

	if w == nil {
		w = os.Stderr
	}
	if !strings.EqualFold(format, FormatJSON) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: TimeFormat}
	}
	logger = zerolog.New(w).With().Timestamp().Logger()

	accent.SetLogger(slog.New(slogzerolog.Option{
		Level:  sl,
		Logger: &logger,
	}.NewZerologHandler()))
	return nil
}

// Logger returns the process logger. It discards everything until Init.
func Logger() *zerolog.Logger {
	return &logger
}
