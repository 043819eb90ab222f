package output_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	c := sampleCollection()
	inner := css.NewCollection()
	inner.AddRule().Prop("x", "y")
	require.NoError(t, c.Add(inner))

	out, err := output.Tree(c)
	require.NoError(t, err)

	for _, want := range []string{
		"body (2 declarations)",
		"body a (1 declaration)",
		".l-clamp-800 (1 declaration)",
		"(collection)",
		"(no selector) (1 declaration)",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "body a"), strings.Index(out, ".l-clamp-800"))
}

func TestTree_Empty(t *testing.T) {
	out, err := output.Tree(css.NewCollection())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCountRules(t *testing.T) {
	c := sampleCollection()
	assert.Equal(t, 3, output.CountRules(c))

	inner := css.NewCollection()
	inner.AddRule("h1").Nest("h1 small")
	require.NoError(t, c.Add(inner))
	assert.Equal(t, 5, output.CountRules(c))
}

func TestSummary(t *testing.T) {
	assert.Contains(t, output.Summary(1, ""), "1 rule")
	assert.Contains(t, output.Summary(3, ""), "Built")

	s := output.Summary(3, "dist/site.css")
	assert.Contains(t, s, "Wrote")
	assert.Contains(t, s, "3 rules")
	assert.Contains(t, s, "dist/site.css")

	assert.Contains(t, output.ErrorLine(assert.AnError), "Error: ")
}
