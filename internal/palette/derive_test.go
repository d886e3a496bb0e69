// SPDX-License-Identifier: MIT
package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePalette() *Palette {
	return New(
		Value("black", "#000000"),
		Value("a", "#ff0000"),
		Group("on", Value("a", "#0000ff")),
	)
}

func get(t *testing.T, f *Flat, key string) string {
	t.Helper()
	v, ok := f.Get(key)
	require.True(t, ok, "missing key %s", key)
	return v
}

func TestDeriveDefaultOpacities(t *testing.T) {
	d := Evaluate(samplePalette(), DefaultOpacities())

	assert.Equal(t, "rgb(235, 0, 20)", get(t, d.Palette, "a-hover"))
	assert.Equal(t, "rgb(224, 0, 31)", get(t, d.Palette, "a-press"))
	assert.Equal(t, "rgb(224, 0, 31)", get(t, d.Palette, "a-focus"))
	assert.Equal(t, "rgb(214, 0, 41)", get(t, d.Palette, "a-drag"))
	assert.Equal(t, "#ff0000", get(t, d.Palette, "a"))
	assert.Equal(t, "#0000ff", get(t, d.Palette, "on-a"))
	assert.Equal(t, "#000000", get(t, d.Palette, "black"))

	assert.Equal(t, []string{
		"black", "a", "on-a",
		"a-hover", "a-press", "a-focus", "a-drag",
	}, d.Palette.Keys())
}

func TestDeriveConfiguredOpacities(t *testing.T) {
	o := Opacities{Hover: 0.16, Press: 0.08, Focus: 0.08, Drag: 0.12}
	d := Evaluate(samplePalette(), o)

	assert.Equal(t, "rgb(214, 0, 41)", get(t, d.Palette, "a-hover"))
	assert.Equal(t, "rgb(235, 0, 20)", get(t, d.Palette, "a-press"))
	assert.Equal(t, "rgb(235, 0, 20)", get(t, d.Palette, "a-focus"))
	assert.Equal(t, "rgb(224, 0, 31)", get(t, d.Palette, "a-drag"))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	flat := Flatten(samplePalette())
	before := flat.Keys()

	Derive(flat, DefaultOpacities())

	assert.Equal(t, before, flat.Keys())
}

func TestDeriveUnpairedProducesNothing(t *testing.T) {
	flat := Flatten(New(Value("black", "#000"), Value("white", "#fff")))

	d := Derive(flat, DefaultOpacities())

	assert.Empty(t, d.Pairings)
	assert.Equal(t, flat.Keys(), d.Palette.Keys())
}

func TestDeriveSkipsOnPrefixedBases(t *testing.T) {
	flat := NewFlat()
	flat.Set("on-a", "#fff")
	flat.Set("on-on-a", "#000")

	d := Derive(flat, DefaultOpacities())

	assert.Empty(t, d.Pairings)
	assert.False(t, d.Palette.Has("on-a-hover"))
}

func TestDeriveSkipsInvalidColors(t *testing.T) {
	flat := NewFlat()
	flat.Set("a", "var(--brand)")
	flat.Set("on-a", "#fff")
	flat.Set("b", "#fff")
	flat.Set("on-b", "currentColor")
	flat.Set("c", "#fff")
	flat.Set("on-c", "#000")

	d := Derive(flat, DefaultOpacities())

	require.Len(t, d.Pairings, 1)
	assert.Equal(t, "c", d.Pairings[0].Base)
	assert.Equal(t, "on-c", d.Pairings[0].On)
	assert.False(t, d.Palette.Has("a-hover"))
	assert.False(t, d.Palette.Has("b-hover"))
}

func TestDeriveAddsExactlyFourKeysPerPairing(t *testing.T) {
	p := New(
		Value("primary", "#6750a4"),
		Value("secondary", "#625b71"),
		Value("tertiary", "#7d5260"),
		Group("on",
			Value("primary", "#ffffff"),
			Value("secondary", "#ffffff"),
		),
	)
	flat := Flatten(p)

	d := Derive(flat, DefaultOpacities())

	require.Len(t, d.Pairings, 2)
	assert.Equal(t, flat.Len()+8, d.Palette.Len())
	for _, pr := range d.Pairings {
		assert.True(t, d.Complete(pr))
		for _, s := range States {
			assert.True(t, d.Palette.Has(pr.Base+"-"+string(s)))
		}
	}
	assert.False(t, d.Palette.Has("tertiary-hover"))
}

func TestDeriveFirstWriterWins(t *testing.T) {
	flat := NewFlat()
	flat.Set("a", "#ff0000")
	flat.Set("on-a", "#0000ff")
	flat.Set("a-hover", "#123456")

	d := Derive(flat, DefaultOpacities())

	assert.Equal(t, "#123456", get(t, d.Palette, "a-hover"))
	assert.Equal(t, "rgb(224, 0, 31)", get(t, d.Palette, "a-press"))
}

func TestDerivedKeysAreNotPairedAgain(t *testing.T) {
	flat := NewFlat()
	flat.Set("a", "#ff0000")
	flat.Set("on-a", "#0000ff")
	flat.Set("on-a-hover", "#00ff00")

	d := Derive(flat, DefaultOpacities())

	require.Len(t, d.Pairings, 1)
	assert.False(t, d.Palette.Has("a-hover-hover"))
}

func TestOpacitiesFor(t *testing.T) {
	o := Opacities{Hover: 0.1, Press: 0.2, Focus: 0.3, Drag: 0.4}

	assert.Equal(t, 0.1, o.For(Hover))
	assert.Equal(t, 0.2, o.For(Press))
	assert.Equal(t, 0.3, o.For(Focus))
	assert.Equal(t, 0.4, o.For(Drag))
	assert.Equal(t, 0.0, o.For(State("unknown")))
}
