// SPDX-License-Identifier: MIT
package palette

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAMLKeepsOrderAndCase(t *testing.T) {
	doc := `
zeta: "#000"
brand:
  DEFAULT: "#6750a4"
  500: "#eee"
alpha: "#fff"
`
	p, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "brand", "brand-500", "alpha"}, Flatten(p).Keys())
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"a": "#ff0000", "on": {"a": "#0000ff"}}`

	p, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	flat := Flatten(p)
	assert.Equal(t, []string{"a", "on-a"}, flat.Keys())
}

func TestDecodeNestedColorsSection(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"colors", "opacity:\n  hover: 0.1\ncolors:\n  a: red\n  on:\n    a: blue\n"},
		{"theme colors", "theme:\n  colors:\n    a: red\n    on:\n      a: blue\n"},
		{"theme without colors", "theme:\n  fontFamily: serif\ncolors:\n  a: red\n  on:\n    a: blue\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "on-a"}, Flatten(p).Keys())
		})
	}
}

func TestDecodeAnchors(t *testing.T) {
	doc := `
base: &white "#fff"
on:
  base: *white
`
	p, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	v, ok := Flatten(p).Get("on-base")
	require.True(t, ok)
	assert.Equal(t, "#fff", v)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty"},
		{"scalar root", "red", "must be a mapping"},
		{"sequence leaf", "a:\n  - red\n  - blue\n", "a: unsupported sequence value"},
		{"nested sequence", "a:\n  b: [1, 2]\n", "a.b: unsupported sequence value"},
		{"syntax", "a: [", "failed to parse palette"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/themes/palette.yaml", []byte("a: \"#ff0000\"\non:\n  a: \"#0000ff\"\n"), 0644))

	p, err := Load(fs, "/themes/palette.yaml")
	require.NoError(t, err)

	d := Evaluate(p, DefaultOpacities())
	v, ok := d.Palette.Get("a-hover")
	require.True(t, ok)
	assert.Equal(t, "rgb(235, 0, 20)", v)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open palette")
}
