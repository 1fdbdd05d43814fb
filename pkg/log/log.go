// Package log creates [slog.Handler] values from command line settings.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	// ErrUnknownLevel indicates an unsupported log level.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownFormat indicates an unsupported log format.
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler creates a [slog.Handler] writing to w at the given level and
// in the given format.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	}), nil
}

// GetLevel parses a log level name, ignoring case.
func GetLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return log.ErrorLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// GetFormatter parses a log format name, ignoring case.
func GetFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat:
		return log.TextFormatter, nil
	case LogfmtFormat:
		return log.LogfmtFormatter, nil
	case JSONFormat:
		return log.JSONFormatter, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
