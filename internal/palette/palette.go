// SPDX-License-Identifier: MIT

// Package palette models nested color palettes, flattens them into utility
// class names and derives interaction-state colors for base/on pairs.
package palette

// DefaultKey collapses into the parent name when flattening
const DefaultKey = "DEFAULT"

// Node is either a Leaf or a *Branch
type Node interface {
	isNode()
}

// Leaf holds a raw color value. It is not validated until pairing.
type Leaf string

func (Leaf) isNode() {}

// Entry is a named child of a Branch
type Entry struct {
	Name string
	Node Node
}

// Branch is an ordered group of uniquely named children
type Branch struct {
	entries []Entry
	index   map[string]int
}

func (*Branch) isNode() {}

// Palette is the root of a color tree
type Palette = Branch

// New builds a branch from entries in order. A repeated name replaces the
// earlier node in place.
func New(entries ...Entry) *Branch {
	b := &Branch{index: make(map[string]int)}
	for _, e := range entries {
		b.Set(e.Name, e.Node)
	}
	return b
}

// Group is shorthand for a named branch entry
func Group(name string, entries ...Entry) Entry {
	return Entry{Name: name, Node: New(entries...)}
}

// Value is shorthand for a named leaf entry
func Value(name, value string) Entry {
	return Entry{Name: name, Node: Leaf(value)}
}

// Set adds or replaces a child
func (b *Branch) Set(name string, n Node) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.entries[i].Node = n
		return
	}
	b.index[name] = len(b.entries)
	b.entries = append(b.entries, Entry{Name: name, Node: n})
}

// Get returns a direct child by name
func (b *Branch) Get(name string) (Node, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.entries[i].Node, true
}

// Entries returns the children in declaration order
func (b *Branch) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of direct children
func (b *Branch) Len() int {
	return len(b.entries)
}
