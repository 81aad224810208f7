package quill

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NamedPrefix is the stem of auto-generated named placeholders.
const NamedPrefix = "dcValue"

// ParameterSet maps placeholder keys to bound values. Keys are either names
// (without the leading colon) or 1-based positions.
type ParameterSet struct {
	named      map[string]any
	positional map[int]any
}

// NewParameterSet creates an empty parameter set.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{
		named:      make(map[string]any),
		positional: make(map[int]any),
	}
}

// SetNamed binds value under name. A leading colon is stripped.
func (p *ParameterSet) SetNamed(name string, value any) {
	p.named[strings.TrimPrefix(name, ":")] = value
}

// SetPositional binds value under pos.
func (p *ParameterSet) SetPositional(pos int, value any) {
	p.positional[pos] = value
}

// Named returns the value bound under name.
func (p *ParameterSet) Named(name string) (any, bool) {
	v, ok := p.named[strings.TrimPrefix(name, ":")]
	return v, ok
}

// Positional returns the value bound under pos.
func (p *ParameterSet) Positional(pos int) (any, bool) {
	v, ok := p.positional[pos]
	return v, ok
}

// Get looks a value up by string name or int position.
func (p *ParameterSet) Get(key any) (any, bool) {
	switch k := key.(type) {
	case string:
		return p.Named(k)
	case int:
		return p.Positional(k)
	}
	return nil, false
}

// Len returns the number of bound values.
func (p *ParameterSet) Len() int {
	return len(p.named) + len(p.positional)
}

// Names returns the named keys in sorted order.
func (p *ParameterSet) Names() []string {
	names := make([]string, 0, len(p.named))
	for name := range p.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Positions returns the positional keys in ascending order.
func (p *ParameterSet) Positions() []int {
	positions := make([]int, 0, len(p.positional))
	for pos := range p.positional {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// Map returns every binding keyed by string name or int position.
func (p *ParameterSet) Map() map[any]any {
	out := make(map[any]any, p.Len())
	for k, v := range p.named {
		out[k] = v
	}
	for k, v := range p.positional {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy; bound values are shared.
func (p *ParameterSet) Clone() *ParameterSet {
	out := NewParameterSet()
	for k, v := range p.named {
		out.named[k] = v
	}
	for k, v := range p.positional {
		out.positional[k] = v
	}
	return out
}

// CreateNamedParameter binds value and returns its placeholder for use in an
// expression. Without a placeholder the next :dcValueN is allocated from the
// shared counter; an explicit placeholder such as ":email" is used as given and
// leaves the counter untouched.
func (b *Builder) CreateNamedParameter(value any, placeholder ...string) string {
	var ph string
	if len(placeholder) > 0 && placeholder[0] != "" {
		ph = placeholder[0]
		if !strings.HasPrefix(ph, ":") {
			ph = ":" + ph
		}
	} else {
		b.counter++
		ph = ":" + NamedPrefix + strconv.Itoa(b.counter)
	}
	b.params.SetNamed(ph, value)
	return ph
}

// CreatePositionalParameter binds value under the next counter value and
// returns "?".
func (b *Builder) CreatePositionalParameter(value any) string {
	b.counter++
	b.params.SetPositional(b.counter, value)
	return "?"
}

// SetParameter binds value under a caller-chosen key: a string name or an int
// position. Other key types latch an error.
func (b *Builder) SetParameter(key, value any) *Builder {
	switch k := key.(type) {
	case string:
		b.params.SetNamed(k, value)
	case int:
		b.params.SetPositional(k, value)
	default:
		if b.err == nil {
			b.err = fmt.Errorf("parameter key must be string or int, got %T", key)
		}
	}
	return b
}

// SetParameters binds every entry of params (see SetParameter).
func (b *Builder) SetParameters(params map[any]any) *Builder {
	for k, v := range params {
		b.SetParameter(k, v)
	}
	return b
}

// Parameters returns a copy of the bound parameters.
func (b *Builder) Parameters() *ParameterSet {
	return b.params.Clone()
}

// Parameter returns the value bound under a string name or int position.
func (b *Builder) Parameter(key any) (any, bool) {
	return b.params.Get(key)
}
