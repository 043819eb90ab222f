package output

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/errors"
)

// Tree renders the rule hierarchy of a collection, one line per rule with
// its declaration count.
func Tree(c *css.Collection) (string, error) {
	items := leveled(c, 0, nil)
	if len(items) == 0 {
		return "", nil
	}

	out, err := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(items)).Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to render rule tree")
	}
	return out, nil
}

func leveled(c *css.Collection, level int, items pterm.LeveledList) pterm.LeveledList {
	for _, m := range c.Members() {
		switch n := m.(type) {
		case *css.Rule:
			items = leveledRule(n, level, items)
		case *css.Collection:
			items = append(items, pterm.LeveledListItem{Level: level, Text: "(collection)"})
			items = leveled(n, level+1, items)
		}
	}
	return items
}

func leveledRule(r *css.Rule, level int, items pterm.LeveledList) pterm.LeveledList {
	items = append(items, pterm.LeveledListItem{Level: level, Text: ruleLabel(r)})
	for _, child := range r.Children() {
		items = leveledRule(child, level+1, items)
	}
	return items
}

func ruleLabel(r *css.Rule) string {
	selectors := strings.Join(r.Selectors(), ", ")
	if selectors == "" {
		selectors = "(no selector)"
	}
	n := len(r.Declarations())
	noun := "declarations"
	if n == 1 {
		noun = "declaration"
	}
	return fmt.Sprintf("%s (%d %s)", selectors, n, noun)
}

// CountRules returns the number of rules in c, including nested rules and
// rules inside nested collections.
func CountRules(c *css.Collection) int {
	total := 0
	for _, m := range c.Members() {
		switch n := m.(type) {
		case *css.Rule:
			total += countRule(n)
		case *css.Collection:
			total += CountRules(n)
		}
	}
	return total
}

func countRule(r *css.Rule) int {
	total := 1
	for _, child := range r.Children() {
		total += countRule(child)
	}
	return total
}
