// SPDX-License-Identifier: MIT
package palette

import (
	"strings"

	"github.com/thatcatcamp/surfaces/internal/color"
)

// OnPrefix marks a foreground color paired with the base of the same name
const OnPrefix = "on-"

// State is an interaction state with a derived color
type State string

const (
	Hover State = "hover"
	Press State = "press"
	Focus State = "focus"
	Drag  State = "drag"
)

// States lists every derived state in emission order
var States = []State{Hover, Press, Focus, Drag}

// Opacities holds the overlay opacity for each state
type Opacities struct {
	Hover float64 `json:"hover" mapstructure:"hover" validate:"gte=0,lte=1"`
	Press float64 `json:"press" mapstructure:"press" validate:"gte=0,lte=1"`
	Focus float64 `json:"focus" mapstructure:"focus" validate:"gte=0,lte=1"`
	Drag  float64 `json:"drag" mapstructure:"drag" validate:"gte=0,lte=1"`
}

// DefaultOpacities returns 0.08 hover, 0.12 press, 0.12 focus and 0.16 drag
func DefaultOpacities() Opacities {
	return Opacities{Hover: 0.08, Press: 0.12, Focus: 0.12, Drag: 0.16}
}

// For returns the opacity configured for s
func (o Opacities) For(s State) float64 {
	switch s {
	case Hover:
		return o.Hover
	case Press:
		return o.Press
	case Focus:
		return o.Focus
	case Drag:
		return o.Drag
	}
	return 0
}

// StateKey names the derived entry for base in state s, e.g. primary-hover
func StateKey(base string, s State) string {
	return base + "-" + string(s)
}

// Pairing links a base color to its on-color
type Pairing struct {
	Base      string
	On        string
	BaseColor color.Color
	OnColor   color.Color
}

// StateKey names the derived entry for this pairing in state s
func (p Pairing) StateKey(s State) string {
	return StateKey(p.Base, s)
}

// Pairings resolves every base key K (not itself prefixed on-) that has an
// on-K sibling, where both values parse as colors. Keys that fail either
// check are skipped.
func Pairings(f *Flat) []Pairing {
	var out []Pairing
	f.Each(func(name, value string) {
		if strings.HasPrefix(name, OnPrefix) {
			return
		}
		onName := OnPrefix + name
		onValue, ok := f.Get(onName)
		if !ok {
			return
		}
		base, err := color.Parse(value)
		if err != nil {
			return
		}
		on, err := color.Parse(onValue)
		if err != nil {
			return
		}
		out = append(out, Pairing{Base: name, On: onName, BaseColor: base, OnColor: on})
	})
	return out
}

// Derivation is a flat palette augmented with derived state colors
type Derivation struct {
	Palette   *Flat
	Pairings  []Pairing
	Opacities Opacities
}

// Derive composites each pairing's on-color over its base at the four state
// opacities. The input is not modified. Existing keys are never overwritten.
func Derive(f *Flat, o Opacities) *Derivation {
	pairings := Pairings(f)
	out := f.Clone()

	for _, p := range pairings {
		for _, s := range States {
			key := p.StateKey(s)
			if out.Has(key) {
				continue
			}
			out.Set(key, color.Over(p.OnColor, p.BaseColor, o.For(s)).String())
		}
	}

	return &Derivation{Palette: out, Pairings: pairings, Opacities: o}
}

// Complete reports whether all four state colors of p are present
func (d *Derivation) Complete(p Pairing) bool {
	for _, s := range States {
		if !d.Palette.Has(p.StateKey(s)) {
			return false
		}
	}
	return true
}

// Evaluate flattens p and derives its state colors
func Evaluate(p *Palette, o Opacities) *Derivation {
	return Derive(Flatten(p), o)
}
