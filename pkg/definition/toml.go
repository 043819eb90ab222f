package definition

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/errors"
)

// TOML tables do not keep key order, so sets list their properties as
// [name, value] pairs and declarations as an array of inline tables.
type tomlSheet struct {
	Sets    []tomlSet  `toml:"sets"`
	Rules   []tomlRule `toml:"rules"`
	Batches []Batch    `toml:"batches"`
}

type tomlSet struct {
	Name       string     `toml:"name"`
	Properties [][]string `toml:"properties"`
}

type tomlRule struct {
	ID           string     `toml:"id"`
	Extends      string     `toml:"extends"`
	Selector     string     `toml:"selector"`
	Selectors    []string   `toml:"selectors"`
	Apply        []string   `toml:"apply"`
	Declarations []DeclDef  `toml:"declarations"`
	Nested       []tomlRule `toml:"nested"`
}

func decodeTOML(data []byte) (*Sheet, error) {
	var raw tomlSheet
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrSheetParse, "invalid TOML definition")
	}

	sheet := &Sheet{Rules: tomlRules(raw.Rules), Batches: raw.Batches}
	for _, s := range raw.Sets {
		props := css.NewProperties()
		for _, pair := range s.Properties {
			if len(pair) != 2 {
				return nil, errors.Newf(errors.ErrSheetParse,
					"set %q: properties must be [name, value] pairs, got %v", s.Name, pair)
			}
			props.Set(pair[0], pair[1])
		}
		sheet.Sets = append(sheet.Sets, PropertySet{Name: s.Name, Properties: props})
	}
	return sheet, nil
}

func tomlRules(raw []tomlRule) []RuleDef {
	defs := make([]RuleDef, 0, len(raw))
	for _, r := range raw {
		defs = append(defs, RuleDef{
			ID:           r.ID,
			Extends:      r.Extends,
			Selectors:    mergeSelectors(r.Selector, r.Selectors),
			Apply:        r.Apply,
			Declarations: r.Declarations,
			Nested:       tomlRules(r.Nested),
		})
	}
	return defs
}
