package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/lydio/pkg/errors"
	"github.com/arthur-debert/lydio/pkg/logging"
)

// Options control rendering
type Options struct {
	// Newline appends a final newline to plain text output
	Newline bool
	// Style is a glamour style name or path; "" or "auto" detects it
	Style string
	// Width wraps terminal output; 0 disables wrapping
	Width int
}

// Render writes stylesheet text to w. FormatTerminal highlights it; any other
// format writes the text unchanged.
func Render(w io.Writer, text string, format Format, opts Options) error {
	if format == FormatTerminal {
		highlighted, err := Highlight(text, opts)
		if err != nil {
			return err
		}
		text = highlighted
	} else if opts.Newline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

// Highlight renders text as a css code block with glamour
func Highlight(text string, opts Options) (string, error) {
	var options []glamour.TermRendererOption
	if opts.Style != "" && opts.Style != "auto" {
		options = append(options, glamour.WithStylePath(opts.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to create terminal renderer")
	}

	rendered, err := renderer.Render("```css\n" + text + "\n```\n")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to highlight stylesheet")
	}

	logger := logging.GetLogger("output.render")
	logger.Trace().Str("style", opts.Style).Int("width", opts.Width).Msg("Highlighted stylesheet")
	return rendered, nil
}
