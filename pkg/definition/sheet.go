package definition

import "github.com/arthur-debert/lydio/pkg/css"

// Sheet is the format-neutral form of a definition file.
type Sheet struct {
	Sets    []PropertySet
	Rules   []RuleDef
	Batches []Batch
}

// PropertySet is a named, reusable group of declarations.
type PropertySet struct {
	Name       string
	Properties *css.Properties
}

// Batch appends a property set to several rules after every rule is built.
type Batch struct {
	Set   string   `yaml:"set" toml:"set"`
	Rules []string `yaml:"rules" toml:"rules"`
}

// RuleDef describes one rule and its nested rules.
type RuleDef struct {
	// ID names the rule so later rules can extend it.
	ID string
	// Extends is the ID of an earlier rule to deep-copy as a starting point.
	Extends string
	// Selectors replace the extended rule's selectors when non-empty.
	Selectors []string
	// Apply lists property set names, applied in order before Declarations.
	Apply        []string
	Declarations []DeclDef
	Nested       []RuleDef
}

// DeclDef describes one declaration.
type DeclDef struct {
	Name      string   `yaml:"name" toml:"name"`
	Value     string   `yaml:"value" toml:"value"`
	Important bool     `yaml:"important" toml:"important"`
	Modifiers []string `yaml:"modifiers" toml:"modifiers"`
}

// RuleCount returns the number of rules including nested ones.
func (s *Sheet) RuleCount() int {
	return countRules(s.Rules)
}

func countRules(defs []RuleDef) int {
	n := len(defs)
	for _, d := range defs {
		n += countRules(d.Nested)
	}
	return n
}

func mergeSelectors(single string, many []string) []string {
	if single == "" {
		return many
	}
	return append([]string{single}, many...)
}
