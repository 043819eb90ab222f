package css

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/lydio/pkg/errors"
	"github.com/arthur-debert/lydio/pkg/logging"
)

// Node is anything a Collection can hold. Only *Rule and *Collection
// implement it.
type Node interface {
	CSS() string
	cloneNode() Node
}

// Collection is an ordered list of top-level rules and nested collections,
// rendered with a blank line between members.
type Collection struct {
	members []Node
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Members returns a copy of the member list.
func (c *Collection) Members() []Node { return slices.Clone(c.members) }

// Len returns the number of direct members.
func (c *Collection) Len() int { return len(c.members) }

// AddRule appends a new rule and returns the rule.
func (c *Collection) AddRule(selectors ...string) *Rule {
	r := NewRule(selectors...)
	c.members = append(c.members, r)
	return r
}

// Add appends a *Rule or *Collection. Any other value, including a nil
// pointer, fails with ErrTypeMismatch. A collection that is c or contains c
// fails with ErrCycle. The collection is unchanged on failure.
func (c *Collection) Add(member any) error {
	node, err := c.check(member)
	if err != nil {
		logger := logging.GetLogger("css.collection")
		logger.Debug().
			Err(err).
			Str("type", fmt.Sprintf("%T", member)).
			Int("members", len(c.members)).
			Msg("Rejected collection member")
		return err
	}
	c.members = append(c.members, node)
	return nil
}

// AddAndGet is Add followed by returning the added member.
func (c *Collection) AddAndGet(member any) (Node, error) {
	if err := c.Add(member); err != nil {
		return nil, err
	}
	return member.(Node), nil
}

func (c *Collection) check(member any) (Node, error) {
	switch m := member.(type) {
	case *Rule:
		if m != nil {
			return m, nil
		}
	case *Collection:
		if m == nil {
			break
		}
		if m == c || m.contains(c) {
			return nil, errors.New(errors.ErrCycle,
				"collection cannot contain itself")
		}
		return m, nil
	}
	return nil, errors.Newf(errors.ErrTypeMismatch,
		"only Rule or Collection members can be added, got %T", member).
		WithDetail("type", fmt.Sprintf("%T", member))
}

func (c *Collection) contains(target *Collection) bool {
	for _, m := range c.members {
		if sub, ok := m.(*Collection); ok {
			if sub == target || sub.contains(target) {
				return true
			}
		}
	}
	return false
}

// CSS renders every member separated by one blank line.
func (c *Collection) CSS() string {
	parts := make([]string, len(c.members))
	for i, m := range c.members {
		parts[i] = m.CSS()
	}
	return strings.Join(parts, "\n\n")
}

func (c *Collection) String() string { return c.CSS() }

// Clone returns a new collection holding deep copies of every member.
func (c *Collection) Clone() *Collection {
	clone := &Collection{members: make([]Node, len(c.members))}
	for i, m := range c.members {
		clone.members[i] = m.cloneNode()
	}
	return clone
}

func (c *Collection) cloneNode() Node { return c.Clone() }
