package css

import (
	"slices"
	"strings"
)

// Rule binds an ordered list of declarations to one or more selectors and
// owns an ordered list of nested child rules.
type Rule struct {
	selectors    []string
	declarations []*Declaration
	children     []*Rule
}

// NewRule creates a rule with the given selectors. No selectors is legal and
// renders an empty selector list.
func NewRule(selectors ...string) *Rule {
	return &Rule{selectors: slices.Clone(selectors)}
}

// Selectors returns a copy of the selector list.
func (r *Rule) Selectors() []string { return slices.Clone(r.selectors) }

// Declarations returns the attached declarations in order. The slice is a
// copy; the declarations themselves are owned by r.
func (r *Rule) Declarations() []*Declaration { return slices.Clone(r.declarations) }

// Children returns the nested rules in order. The slice is a copy; the
// rules themselves are owned by r.
func (r *Rule) Children() []*Rule { return slices.Clone(r.children) }

// AddSelector appends a selector and returns the rule.
func (r *Rule) AddSelector(selector string) *Rule {
	r.selectors = append(r.selectors, selector)
	return r
}

// Select is an alias for AddSelector.
func (r *Rule) Select(selector string) *Rule {
	return r.AddSelector(selector)
}

// ReplaceSelectors discards the current selectors and returns the rule.
func (r *Rule) ReplaceSelectors(selectors ...string) *Rule {
	r.selectors = slices.Clone(selectors)
	return r
}

// CreateDeclaration returns a new declaration with an empty value. It is NOT
// attached to the rule.
func (r *Rule) CreateDeclaration(name string) *Declaration {
	return NewDeclaration(name, "")
}

// AddDeclaration attaches a new declaration and returns the declaration, not
// the rule, so it can be configured further:
//
//	rule.AddDeclaration("color", "red").Important()
func (r *Rule) AddDeclaration(name, value string) *Declaration {
	d := NewDeclaration(name, value)
	r.declarations = append(r.declarations, d)
	return d
}

// SetDeclaration attaches a new declaration and returns the rule.
func (r *Rule) SetDeclaration(name, value string) *Rule {
	r.AddDeclaration(name, value)
	return r
}

// Prop is an alias for SetDeclaration.
func (r *Rule) Prop(name, value string) *Rule {
	return r.SetDeclaration(name, value)
}

// Nest appends a new child rule and returns the child.
func (r *Rule) Nest(selectors ...string) *Rule {
	child := NewRule(selectors...)
	r.children = append(r.children, child)
	return child
}

// Apply attaches one declaration per entry of props, in order, and returns
// the rule.
func (r *Rule) Apply(props *Properties) *Rule {
	props.Each(func(name, value string) {
		r.SetDeclaration(name, value)
	})
	return r
}

// CSS renders the rule block followed by each child block. Children are not
// indented relative to the parent.
func (r *Rule) CSS() string {
	decls := make([]string, len(r.declarations))
	for i, d := range r.declarations {
		decls[i] = d.CSS()
	}
	nested := make([]string, len(r.children))
	for i, c := range r.children {
		nested[i] = c.CSS()
	}

	var b strings.Builder
	b.WriteString(strings.Join(r.selectors, ", "))
	b.WriteString(" {\n  ")
	b.WriteString(strings.Join(decls, "\n  "))
	b.WriteString("\n}\n")
	b.WriteString(strings.Join(nested, "\n"))
	return strings.TrimSpace(b.String())
}

func (r *Rule) String() string { return r.CSS() }

// Clone returns a deep copy of the rule, its declarations and its children.
func (r *Rule) Clone() *Rule {
	clone := &Rule{
		selectors:    slices.Clone(r.selectors),
		declarations: make([]*Declaration, len(r.declarations)),
		children:     make([]*Rule, len(r.children)),
	}
	for i, d := range r.declarations {
		clone.declarations[i] = d.Clone()
	}
	for i, c := range r.children {
		clone.children[i] = c.Clone()
	}
	return clone
}

func (r *Rule) cloneNode() Node { return r.Clone() }
