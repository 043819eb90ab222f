package definition_test

import (
	"testing"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/definition"
	"github.com/arthur-debert/lydio/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	c, err := definition.Build(&definition.Sheet{})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "", c.CSS())
}

func TestBuild_ApplyBeforeDeclarations(t *testing.T) {
	sheet := &definition.Sheet{
		Sets: []definition.PropertySet{
			{Name: "a", Properties: css.NewProperties("margin", "0")},
			{Name: "b", Properties: css.NewProperties("padding", "0")},
		},
		Rules: []definition.RuleDef{{
			Selectors:    []string{"p"},
			Apply:        []string{"b", "a"},
			Declarations: []definition.DeclDef{{Name: "color", Value: "red", Important: true}},
		}},
	}

	c, err := definition.Build(sheet)
	require.NoError(t, err)
	assert.Equal(t, "p {\n  padding: 0;\n  margin: 0;\n  color: red !important;\n}", c.CSS())
}

func TestBuild_ExtendsIsIndependentCopy(t *testing.T) {
	sheet := &definition.Sheet{
		Rules: []definition.RuleDef{
			{
				ID:           "btn",
				Selectors:    []string{".btn"},
				Declarations: []definition.DeclDef{{Name: "padding", Value: "1rem"}},
				Nested: []definition.RuleDef{{
					Selectors:    []string{".btn:hover"},
					Declarations: []definition.DeclDef{{Name: "opacity", Value: ".8"}},
				}},
			},
			{
				Extends:      "btn",
				Declarations: []definition.DeclDef{{Name: "color", Value: "red"}},
			},
		},
	}

	c, err := definition.Build(sheet)
	require.NoError(t, err)

	members := c.Members()
	require.Len(t, members, 2)
	assert.Equal(t, ".btn {\n  padding: 1rem;\n}\n.btn:hover {\n  opacity: .8;\n}", members[0].CSS())
	assert.Equal(t, ".btn {\n  padding: 1rem;\n  color: red;\n}\n.btn:hover {\n  opacity: .8;\n}", members[1].CSS())
}

func TestBuild_NestedExtends(t *testing.T) {
	sheet := &definition.Sheet{
		Rules: []definition.RuleDef{
			{
				ID:           "link",
				Selectors:    []string{"a"},
				Declarations: []definition.DeclDef{{Name: "color", Value: "blue", Modifiers: []string{"!important"}}},
			},
			{
				Selectors: []string{"nav"},
				Nested: []definition.RuleDef{
					{Extends: "link", Selectors: []string{"nav a"}},
					{Extends: "link"},
				},
			},
		},
	}

	c, err := definition.Build(sheet)
	require.NoError(t, err)
	assert.Equal(t,
		"a {\n  color: blue !important;\n}\n\nnav {\n  \n}\nnav a {\n  color: blue !important;\n}\na {\n  color: blue !important;\n}",
		c.CSS())
}

func TestBuild_NestedExtendsAncestor(t *testing.T) {
	tests := []struct {
		name string
		rule definition.RuleDef
		want string
	}{
		{
			name: "parent",
			rule: definition.RuleDef{
				ID:           "a",
				Selectors:    []string{"a"},
				Declarations: []definition.DeclDef{{Name: "color", Value: "red"}},
				Nested:       []definition.RuleDef{{Extends: "a", Selectors: []string{"a b"}}},
			},
			want: "a {\n  color: red;\n}\na b {\n  color: red;\n}",
		},
		{
			name: "grandparent",
			rule: definition.RuleDef{
				ID:           "a",
				Selectors:    []string{"a"},
				Declarations: []definition.DeclDef{{Name: "color", Value: "red"}},
				Nested: []definition.RuleDef{{
					Selectors: []string{"a b"},
					Nested:    []definition.RuleDef{{Extends: "a", Selectors: []string{"a b c"}}},
				}},
			},
			want: "a {\n  color: red;\n}\na b {\n  \n}\na b c {\n  color: red;\n}",
		},
		{
			name: "keeps finished children",
			rule: definition.RuleDef{
				ID:           "a",
				Selectors:    []string{"a"},
				Declarations: []definition.DeclDef{{Name: "color", Value: "red"}},
				Nested: []definition.RuleDef{
					{
						Selectors:    []string{"a:hover"},
						Declarations: []definition.DeclDef{{Name: "opacity", Value: ".5"}},
					},
					{
						Selectors: []string{"a b"},
						Nested:    []definition.RuleDef{{Extends: "a", Selectors: []string{"a b c"}}},
					},
				},
			},
			want: "a {\n  color: red;\n}\na:hover {\n  opacity: .5;\n}\na b {\n  \n}\n" +
				"a b c {\n  color: red;\n}\na:hover {\n  opacity: .5;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := definition.Build(&definition.Sheet{Rules: []definition.RuleDef{tt.rule}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.CSS())
		})
	}
}

func TestBuild_NestedExtendsAncestorFromYAML(t *testing.T) {
	data := `
rules:
  - id: a
    selector: a
    declarations:
      color: red
    nested:
      - extends: a
        selector: a b
`
	sheet, err := definition.Decode([]byte(data), definition.FormatYAML)
	require.NoError(t, err)

	c, err := definition.Build(sheet)
	require.NoError(t, err)
	assert.Equal(t, "a {\n  color: red;\n}\na b {\n  color: red;\n}", c.CSS())
}

func TestBuild_Batches(t *testing.T) {
	sheet := &definition.Sheet{
		Sets: []definition.PropertySet{{Name: "flat", Properties: css.NewProperties("border", "0", "box-shadow", "none")}},
		Rules: []definition.RuleDef{
			{ID: "a", Selectors: []string{".a"}, Declarations: []definition.DeclDef{{Name: "color", Value: "red"}}},
			{ID: "b", Selectors: []string{".b"}},
			{Selectors: []string{".c"}},
		},
		Batches: []definition.Batch{{Set: "flat", Rules: []string{"a", "b"}}},
	}

	c, err := definition.Build(sheet)
	require.NoError(t, err)
	assert.Equal(t,
		".a {\n  color: red;\n  border: 0;\n  box-shadow: none;\n}\n\n.b {\n  border: 0;\n  box-shadow: none;\n}\n\n.c {\n  \n}",
		c.CSS())
}

func TestBuild_Errors(t *testing.T) {
	set := definition.PropertySet{Name: "s", Properties: css.NewProperties()}

	tests := []struct {
		name  string
		sheet *definition.Sheet
		code  errors.ErrorCode
	}{
		{
			name:  "unknown_set",
			sheet: &definition.Sheet{Rules: []definition.RuleDef{{Apply: []string{"missing"}}}},
			code:  errors.ErrNotFound,
		},
		{
			name:  "unknown_extends",
			sheet: &definition.Sheet{Rules: []definition.RuleDef{{Extends: "missing"}}},
			code:  errors.ErrNotFound,
		},
		{
			name: "extends_later_rule",
			sheet: &definition.Sheet{Rules: []definition.RuleDef{
				{Extends: "later"},
				{ID: "later"},
			}},
			code: errors.ErrNotFound,
		},
		{
			name:  "unknown_nested_extends",
			sheet: &definition.Sheet{Rules: []definition.RuleDef{{Nested: []definition.RuleDef{{Extends: "x"}}}}},
			code:  errors.ErrNotFound,
		},
		{
			name:  "duplicate_id",
			sheet: &definition.Sheet{Rules: []definition.RuleDef{{ID: "a"}, {ID: "a"}}},
			code:  errors.ErrSheetBuild,
		},
		{
			name:  "duplicate_set",
			sheet: &definition.Sheet{Sets: []definition.PropertySet{set, set}},
			code:  errors.ErrSheetBuild,
		},
		{
			name:  "batch_unknown_set",
			sheet: &definition.Sheet{Batches: []definition.Batch{{Set: "x"}}},
			code:  errors.ErrNotFound,
		},
		{
			name: "batch_unknown_rule",
			sheet: &definition.Sheet{
				Sets:    []definition.PropertySet{set},
				Batches: []definition.Batch{{Set: "s", Rules: []string{"x"}}},
			},
			code: errors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := definition.Build(tt.sheet)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
