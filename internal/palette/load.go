// SPDX-License-Identifier: MIT
package palette

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a document holds no palette
var ErrEmpty = errors.New("palette document is empty")

// Load reads a YAML or JSON palette file
func Load(fs afero.Fs, path string) (*Palette, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load palette %s: %w", path, err)
	}
	return p, nil
}

// Decode reads a palette from YAML or JSON, keeping key order and case.
// The palette may sit at the document root, under "colors" or under
// "theme.colors".
func Decode(r io.Reader) (*Palette, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrEmpty
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("palette must be a mapping, got %s", kindName(root.Kind))
	}

	root = paletteRoot(root)

	return decodeBranch(root, "")
}

// paletteRoot prefers theme.colors, then colors, then the document itself
func paletteRoot(root *yaml.Node) *yaml.Node {
	if theme := lookup(root, "theme"); theme != nil && theme.Kind == yaml.MappingNode {
		if colors := lookup(theme, "colors"); colors != nil {
			return colors
		}
	}
	if colors := lookup(root, "colors"); colors != nil {
		return colors
	}
	return root
}

func decodeBranch(n *yaml.Node, path string) (*Branch, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping, got %s", displayPath(path), kindName(n.Kind))
	}

	b := New()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		name := key.Value
		child := joinPath(path, name)

		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}

		switch val.Kind {
		case yaml.ScalarNode:
			b.Set(name, Leaf(val.Value))
		case yaml.MappingNode:
			sub, err := decodeBranch(val, child)
			if err != nil {
				return nil, err
			}
			b.Set(name, sub)
		default:
			return nil, fmt.Errorf("%s: unsupported %s value", child, kindName(val.Kind))
		}
	}
	return b, nil
}

func lookup(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "palette"
	}
	return path
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
