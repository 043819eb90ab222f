package output_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() *css.Collection {
	c := css.NewCollection()
	body := c.AddRule("body").Prop("color", "var(--text)").Prop("margin", "0")
	body.Nest("body a").Prop("color", "inherit")
	c.AddRule(".l-clamp-800").Prop("width", "800px")
	return c
}

func TestRender_Text(t *testing.T) {
	text := sampleCollection().CSS()

	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, text, output.FormatText, output.Options{Newline: true}))
	assert.Equal(t, text+"\n", buf.String())

	buf.Reset()
	require.NoError(t, output.Render(&buf, text, output.FormatText, output.Options{}))
	assert.Equal(t, text, buf.String())
}

func TestRender_AutoIsUnchangedText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, "a {\n  b: c;\n}", output.FormatAuto, output.Options{}))
	assert.Equal(t, "a {\n  b: c;\n}", buf.String())
}

func TestRender_Terminal(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, "body {\n  margin: 0;\n}", output.FormatTerminal, output.Options{Style: "notty"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "body")
	assert.Contains(t, buf.String(), "margin")
}
