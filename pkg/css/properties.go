package css

import "slices"

// Properties is an ordered mapping from declaration name to value. Iteration
// follows first insertion; setting an existing name replaces its value in
// place.
type Properties struct {
	names  []string
	values map[string]string
}

// NewProperties builds a mapping from alternating name, value arguments.
// A trailing name without a value is set to the empty string.
func NewProperties(pairs ...string) *Properties {
	p := &Properties{values: make(map[string]string)}
	for i := 0; i < len(pairs); i += 2 {
		var value string
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		p.Set(pairs[i], value)
	}
	return p
}

// Set stores value under name and returns the mapping.
func (p *Properties) Set(name, value string) *Properties {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
	return p
}

// Get returns the value stored under name.
func (p *Properties) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[name]
	return v, ok
}

// Len returns the number of names in the mapping.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns the names in insertion order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.names)
}

// Each calls fn for every pair in insertion order.
func (p *Properties) Each(fn func(name, value string)) {
	if p == nil {
		return
	}
	for _, name := range p.names {
		fn(name, p.values[name])
	}
}

// ApplyToMany applies props to every rule in order.
func ApplyToMany(rules []*Rule, props *Properties) {
	for _, r := range rules {
		r.Apply(props)
	}
}
