package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// ErrUnknownFormat indicates an unsupported output format was requested.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownColorMode indicates an unsupported color mode was requested.
	ErrUnknownColorMode = errors.New("unknown color mode")
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat returns the [Format] named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(Formats, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ColorMode controls styling of text output.
type ColorMode string

const (
	// ColorAuto styles output written to a terminal unless NO_COLOR is set.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode returns the [ColorMode] named by s, ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(s))
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// Options configures a [Reporter]. The zero value writes uncolored text
// only when w is not a terminal.
type Options struct {
	Format Format
	Color  ColorMode
}

func colorEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if termenv.EnvNoColor() {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
