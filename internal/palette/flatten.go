// SPDX-License-Identifier: MIT
package palette

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Flat maps fully-qualified color names to raw values in insertion order
type Flat struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewFlat returns an empty flat palette
func NewFlat() *Flat {
	return &Flat{m: orderedmap.New[string, string]()}
}

// Set stores a value. An existing key keeps its position.
func (f *Flat) Set(name, value string) {
	f.m.Set(name, value)
}

// Get returns the raw value for name
func (f *Flat) Get(name string) (string, bool) {
	return f.m.Get(name)
}

// Has reports whether name is present
func (f *Flat) Has(name string) bool {
	_, ok := f.m.Get(name)
	return ok
}

// Len returns the number of entries
func (f *Flat) Len() int {
	return f.m.Len()
}

// Keys returns the names in insertion order
func (f *Flat) Keys() []string {
	keys := make([]string, 0, f.m.Len())
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order
func (f *Flat) Each(fn func(name, value string)) {
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns an independent copy
func (f *Flat) Clone() *Flat {
	out := NewFlat()
	f.Each(out.Set)
	return out
}

// MarshalJSON keeps the insertion order
func (f *Flat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.m)
}

// MarshalYAML keeps the insertion order
func (f *Flat) MarshalYAML() (interface{}, error) {
	return f.m.MarshalYAML()
}

// Flatten walks the tree depth-first, joining names with "-". A child named
// DEFAULT takes its parent's name. Leaves are copied verbatim.
func Flatten(p *Palette) *Flat {
	out := NewFlat()
	if p != nil {
		flattenInto(out, "", p)
	}
	return out
}

func flattenInto(out *Flat, prefix string, b *Branch) {
	for _, e := range b.entries {
		name := joinName(prefix, e.Name)
		switch n := e.Node.(type) {
		case Leaf:
			out.Set(name, string(n))
		case *Branch:
			flattenInto(out, name, n)
		}
	}
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	if name == DefaultKey {
		return prefix
	}
	return prefix + "-" + name
}
