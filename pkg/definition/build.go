package definition

import (
	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/errors"
	"github.com/arthur-debert/lydio/pkg/logging"
)

type builder struct {
	sets  map[string]*css.Properties
	rules map[string]*css.Rule
	// path holds the rules currently being filled, outermost first.
	path []*css.Rule
}

// Build turns a Sheet into a collection. References are resolved in document
// order: a rule can only extend a rule defined before it.
func Build(sheet *Sheet) (*css.Collection, error) {
	logger := logging.GetLogger("definition.build")
	done := logging.LogOperationStart(logger, "build")
	defer done()

	b := &builder{
		sets:  make(map[string]*css.Properties, len(sheet.Sets)),
		rules: make(map[string]*css.Rule),
	}
	for _, s := range sheet.Sets {
		if _, dup := b.sets[s.Name]; dup {
			return nil, errors.Newf(errors.ErrSheetBuild, "duplicate property set %q", s.Name).
				WithDetail("set", s.Name)
		}
		b.sets[s.Name] = s.Properties
	}

	collection := css.NewCollection()
	for _, def := range sheet.Rules {
		var rule *css.Rule
		if def.Extends != "" {
			base, err := b.lookupRule(def.Extends)
			if err != nil {
				return nil, err
			}
			rule = base.Clone()
			if len(def.Selectors) > 0 {
				rule.ReplaceSelectors(def.Selectors...)
			}
			if err := collection.Add(rule); err != nil {
				return nil, err
			}
		} else {
			rule = collection.AddRule(def.Selectors...)
		}
		if err := b.fill(rule, def); err != nil {
			return nil, err
		}
	}

	for _, batch := range sheet.Batches {
		if err := b.applyBatch(batch); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("rules", sheet.RuleCount()).
		Int("sets", len(sheet.Sets)).
		Int("batches", len(sheet.Batches)).
		Msg("Built stylesheet")
	return collection, nil
}

func (b *builder) fill(rule *css.Rule, def RuleDef) error {
	if def.ID != "" {
		if _, dup := b.rules[def.ID]; dup {
			return errors.Newf(errors.ErrSheetBuild, "duplicate rule id %q", def.ID).
				WithDetail("id", def.ID)
		}
		b.rules[def.ID] = rule
	}

	for _, name := range def.Apply {
		props, err := b.lookupSet(name)
		if err != nil {
			return err
		}
		rule.Apply(props)
	}

	for _, d := range def.Declarations {
		decl := rule.AddDeclaration(d.Name, d.Value)
		if d.Important {
			decl.Important()
		}
		for _, m := range d.Modifiers {
			decl.AddModifier(m)
		}
	}

	b.path = append(b.path, rule)
	defer func() { b.path = b.path[:len(b.path)-1] }()
	for _, nested := range def.Nested {
		if err := b.nest(rule, nested); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) nest(parent *css.Rule, def RuleDef) error {
	if def.Extends == "" {
		return b.fill(parent.Nest(def.Selectors...), def)
	}

	base, err := b.lookupRule(def.Extends)
	if err != nil {
		return err
	}
	selectors := def.Selectors
	if len(selectors) == 0 {
		selectors = base.Selectors()
	}

	// Read base before nesting: it may be an ancestor of the new child. The
	// branch still being built under an ancestor is left out of the copy.
	decls := base.Declarations()
	var children []*css.Rule
	skip := b.activeChild(base)
	for _, c := range base.Children() {
		if c != skip {
			children = append(children, c)
		}
	}

	child := parent.Nest(selectors...)
	copyDeclarations(child, decls)
	for _, c := range children {
		copyInto(child.Nest(c.Selectors()...), c)
	}
	return b.fill(child, def)
}

// activeChild returns the child of r that lies on the path being built, or
// nil when r is not an ancestor under construction.
func (b *builder) activeChild(r *css.Rule) *css.Rule {
	for i := 0; i < len(b.path)-1; i++ {
		if b.path[i] == r {
			return b.path[i+1]
		}
	}
	return nil
}

// copyInto rebuilds the declarations and children of src under dst. Nest
// only creates fresh children, so nested copies are made node by node.
func copyInto(dst, src *css.Rule) {
	copyDeclarations(dst, src.Declarations())
	for _, c := range src.Children() {
		copyInto(dst.Nest(c.Selectors()...), c)
	}
}

func copyDeclarations(dst *css.Rule, decls []*css.Declaration) {
	for _, d := range decls {
		decl := dst.AddDeclaration(d.Name(), d.Value())
		for _, m := range d.Modifiers() {
			decl.AddModifier(m)
		}
	}
}

func (b *builder) applyBatch(batch Batch) error {
	props, err := b.lookupSet(batch.Set)
	if err != nil {
		return err
	}
	targets := make([]*css.Rule, 0, len(batch.Rules))
	for _, id := range batch.Rules {
		r, err := b.lookupRule(id)
		if err != nil {
			return err
		}
		targets = append(targets, r)
	}
	css.ApplyToMany(targets, props)
	return nil
}

func (b *builder) lookupSet(name string) (*css.Properties, error) {
	props, ok := b.sets[name]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "unknown property set %q", name).
			WithDetail("set", name)
	}
	return props, nil
}

func (b *builder) lookupRule(id string) (*css.Rule, error) {
	r, ok := b.rules[id]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "unknown rule id %q", id).
			WithDetail("id", id)
	}
	return r, nil
}
