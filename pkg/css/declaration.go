package css

import (
	"fmt"
	"slices"
	"strings"
)

// ImportantModifier is the priority flag appended by Declaration.Important.
const ImportantModifier = "!important"

// Declaration is a single "name: value" pair with optional trailing
// modifiers such as !important.
type Declaration struct {
	name      string
	value     string
	modifiers []string
}

// NewDeclaration creates a declaration with no modifiers.
func NewDeclaration(name, value string) *Declaration {
	return &Declaration{name: name, value: value}
}

// Name returns the property name.
func (d *Declaration) Name() string { return d.name }

// Value returns the property value.
func (d *Declaration) Value() string { return d.value }

// Modifiers returns a copy of the modifier tokens in insertion order.
func (d *Declaration) Modifiers() []string { return slices.Clone(d.modifiers) }

// SetValue replaces the value and returns the declaration.
func (d *Declaration) SetValue(value string) *Declaration {
	d.value = value
	return d
}

// Important appends the !important modifier and returns the declaration.
// Calling it twice appends the token twice.
func (d *Declaration) Important() *Declaration {
	return d.AddModifier(ImportantModifier)
}

// AddModifier appends an arbitrary modifier token and returns the declaration.
func (d *Declaration) AddModifier(modifier string) *Declaration {
	d.modifiers = append(d.modifiers, modifier)
	return d
}

// CSS renders the declaration as "name: value;" or
// "name: value mod1 mod2;" when modifiers are present.
func (d *Declaration) CSS() string {
	var suffix string
	if len(d.modifiers) > 0 {
		suffix = " " + strings.Join(d.modifiers, " ")
	}
	return strings.TrimSpace(fmt.Sprintf("%s: %s%s;", d.name, d.value, suffix))
}

func (d *Declaration) String() string { return d.CSS() }

// Clone returns a copy that shares no mutable state with d.
func (d *Declaration) Clone() *Declaration {
	return &Declaration{
		name:      d.name,
		value:     d.value,
		modifiers: slices.Clone(d.modifiers),
	}
}
