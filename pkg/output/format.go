package output

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/lydio/pkg/errors"
)

// Format selects how a stylesheet is presented
type Format int

const (
	// FormatAuto highlights on a color terminal and writes plain CSS elsewhere
	FormatAuto Format = iota
	// FormatTerminal wraps the stylesheet in a highlighted css code block
	FormatTerminal
	// FormatText writes the stylesheet exactly as generated
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat accepts auto, term/terminal and text/plain/css, ignoring case.
// An empty name is auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain", "css":
		return FormatText, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat reports FormatTerminal only when output is a color terminal
// and NO_COLOR is unset. Redirected output stays valid CSS.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve turns FormatAuto into a concrete format for output
func Resolve(f Format, output *os.File) Format {
	if f == FormatAuto {
		return DetectFormat(output)
	}
	return f
}

// FormatFor parses name and resolves it against w. Auto is only detected
// for *os.File writers; any other writer gets FormatText.
func FormatFor(name string, w io.Writer) (Format, error) {
	f, err := ParseFormat(name)
	if err != nil {
		return FormatText, err
	}
	if file, ok := w.(*os.File); ok {
		return Resolve(f, file), nil
	}
	if f == FormatAuto {
		return FormatText, nil
	}
	return f, nil
}
