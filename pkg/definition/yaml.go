package definition

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/errors"
)

type yamlSheet struct {
	Sets    yaml.Node  `yaml:"sets"`
	Rules   []yamlRule `yaml:"rules"`
	Batches []Batch    `yaml:"batches"`
}

type yamlRule struct {
	ID           string     `yaml:"id"`
	Extends      string     `yaml:"extends"`
	Selector     string     `yaml:"selector"`
	Selectors    []string   `yaml:"selectors"`
	Apply        []string   `yaml:"apply"`
	Declarations yaml.Node  `yaml:"declarations"`
	Nested       []yamlRule `yaml:"nested"`
}

func decodeYAML(data []byte) (*Sheet, error) {
	var raw yamlSheet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrSheetParse, "invalid YAML definition")
	}

	sets, err := yamlSets(&raw.Sets)
	if err != nil {
		return nil, err
	}
	rules, err := yamlRules(raw.Rules)
	if err != nil {
		return nil, err
	}
	return &Sheet{Sets: sets, Rules: rules, Batches: raw.Batches}, nil
}

func yamlSets(node *yaml.Node) ([]PropertySet, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, yamlError(node, "sets must be a mapping of set name to properties")
	}

	var sets []PropertySet
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i], node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, yamlError(body, fmt.Sprintf("set %q must be a mapping", name.Value))
		}
		props := css.NewProperties()
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, value := body.Content[j], body.Content[j+1]
			if value.Kind != yaml.ScalarNode {
				return nil, yamlError(value, fmt.Sprintf("set %q: value of %q must be a scalar", name.Value, key.Value))
			}
			props.Set(key.Value, scalarValue(value))
		}
		sets = append(sets, PropertySet{Name: name.Value, Properties: props})
	}
	return sets, nil
}

func yamlRules(raw []yamlRule) ([]RuleDef, error) {
	defs := make([]RuleDef, 0, len(raw))
	for _, r := range raw {
		decls, err := yamlDeclarations(&r.Declarations)
		if err != nil {
			return nil, err
		}
		nested, err := yamlRules(r.Nested)
		if err != nil {
			return nil, err
		}
		defs = append(defs, RuleDef{
			ID:           r.ID,
			Extends:      r.Extends,
			Selectors:    mergeSelectors(r.Selector, r.Selectors),
			Apply:        r.Apply,
			Declarations: decls,
			Nested:       nested,
		})
	}
	return defs, nil
}

// yamlDeclarations accepts either an ordered mapping (name: value or
// name: {value, important, modifiers}) or a sequence of declaration objects,
// which allows repeating a name for fallbacks.
func yamlDeclarations(node *yaml.Node) ([]DeclDef, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		var decls []DeclDef
		if err := node.Decode(&decls); err != nil {
			return nil, errors.Wrap(err, errors.ErrSheetParse, "invalid declaration list")
		}
		return decls, nil
	case yaml.MappingNode:
		decls := make([]DeclDef, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			decl := DeclDef{Name: key.Value}
			switch value.Kind {
			case yaml.ScalarNode:
				decl.Value = scalarValue(value)
			case yaml.MappingNode:
				if err := value.Decode(&decl); err != nil {
					return nil, errors.Wrapf(err, errors.ErrSheetParse,
						"invalid declaration %q", key.Value)
				}
				decl.Name = key.Value
			default:
				return nil, yamlError(value, fmt.Sprintf("declaration %q must be a scalar or mapping", key.Value))
			}
			decls = append(decls, decl)
		}
		return decls, nil
	default:
		return nil, yamlError(node, "declarations must be a mapping or a list")
	}
}

func scalarValue(node *yaml.Node) string {
	if node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

func yamlError(node *yaml.Node, msg string) error {
	return errors.Newf(errors.ErrSheetParse, "line %d: %s", node.Line, msg).
		WithDetail("line", node.Line)
}
