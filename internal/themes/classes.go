// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/thatcatcamp/surfaces/internal/color"
	"github.com/thatcatcamp/surfaces/internal/palette"
)

// Family groups rules generated for the same purpose
type Family string

const (
	FamilySurface     Family = "surface"
	FamilyInteractive Family = "interactive-surface"
	FamilyDragged     Family = "dragged-surface"
)

// Condition is the pseudo-class a rule applies under
type Condition string

const (
	Always         Condition = ""
	OnHover        Condition = "hover"
	OnActive       Condition = "active"
	OnFocusVisible Condition = "focus-visible"
	OnDisabled     Condition = "disabled"
)

// stateConditions binds derived states to the pseudo-class that shows them
var stateConditions = []struct {
	state     palette.State
	condition Condition
}{
	{palette.Hover, OnHover},
	{palette.Press, OnActive},
	{palette.Focus, OnFocusVisible},
}

// transitionProperties matches the color properties the states touch
const transitionProperties = "color, background-color, border-color, text-decoration-color, fill, stroke"

const transitionTiming = "cubic-bezier(0.4, 0, 0.2, 1)"

// Declaration is one CSS property assignment
type Declaration struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// Rule is the style intent for one class under one condition
type Rule struct {
	Class        string        `json:"class" yaml:"class"`
	Family       Family        `json:"family" yaml:"family"`
	Color        string        `json:"color" yaml:"color"`
	Condition    Condition     `json:"condition,omitempty" yaml:"condition,omitempty"`
	Declarations []Declaration `json:"declarations" yaml:"declarations"`
}

// ClassMap is the full set of rules for a derived palette
type ClassMap struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Classes returns each class name once, in emission order
func (cm *ClassMap) Classes() []string {
	return lo.Uniq(lo.Map(cm.Rules, func(r Rule, _ int) string { return r.Class }))
}

// Lookup returns the rules for a class
func (cm *ClassMap) Lookup(class string) []Rule {
	return lo.Filter(cm.Rules, func(r Rule, _ int) bool { return r.Class == class })
}

// Build emits surface, interactive-surface and dragged-surface rules for every
// pairing whose four state colors are present. A family with an empty prefix
// is skipped.
func Build(d *palette.Derivation, opts Options) (*ClassMap, error) {
	var disabled []Declaration
	if opts.Disabled != nil && opts.InteractivePrefix != "" {
		ref, err := resolveColor(d.Palette, opts.Disabled.ColorName)
		if err != nil {
			return nil, fmt.Errorf("disabled color: %w", err)
		}
		disabled = []Declaration{
			{Property: "color", Value: ref.WithAlpha(opts.Disabled.TextOpacity)},
			{Property: "background-color", Value: ref.WithAlpha(opts.Disabled.BackgroundOpacity)},
		}
	}

	var transition []Declaration
	if opts.Transition != nil {
		transition = []Declaration{
			{Property: "transition-property", Value: transitionProperties},
			{Property: "transition-timing-function", Value: transitionTiming},
			{Property: "transition-duration", Value: fmt.Sprintf("%dms", opts.Transition.DurationMS)},
		}
	}

	cm := &ClassMap{}
	for _, p := range d.Pairings {
		if !d.Complete(p) {
			continue
		}

		base := p.BaseColor.String()
		on := p.OnColor.String()
		state := func(s palette.State) string {
			v, _ := d.Palette.Get(p.StateKey(s))
			return v
		}

		if opts.SurfacePrefix != "" {
			decls := []Declaration{{Property: "color", Value: on}}
			// bg-* already sets the background
			if opts.SurfacePrefix != "bg" {
				decls = append([]Declaration{{Property: "background-color", Value: base}}, decls...)
			}
			cm.Rules = append(cm.Rules, Rule{
				Class:        className(opts.SurfacePrefix, p.Base),
				Family:       FamilySurface,
				Color:        p.Base,
				Declarations: decls,
			})
		}

		if opts.InteractivePrefix != "" {
			class := className(opts.InteractivePrefix, p.Base)
			decls := []Declaration{
				{Property: "background-color", Value: base},
				{Property: "color", Value: on},
			}
			cm.Rules = append(cm.Rules, Rule{
				Class:        class,
				Family:       FamilyInteractive,
				Color:        p.Base,
				Declarations: append(decls, transition...),
			})
			for _, sc := range stateConditions {
				cm.Rules = append(cm.Rules, Rule{
					Class:        class,
					Family:       FamilyInteractive,
					Color:        p.Base,
					Condition:    sc.condition,
					Declarations: []Declaration{{Property: "background-color", Value: state(sc.state)}},
				})
			}
			if disabled != nil {
				cm.Rules = append(cm.Rules, Rule{
					Class:        class,
					Family:       FamilyInteractive,
					Color:        p.Base,
					Condition:    OnDisabled,
					Declarations: append([]Declaration(nil), disabled...),
				})
			}
		}

		if opts.DraggedPrefix != "" {
			decls := []Declaration{
				{Property: "background-color", Value: state(palette.Drag)},
				{Property: "color", Value: on},
			}
			cm.Rules = append(cm.Rules, Rule{
				Class:        className(opts.DraggedPrefix, p.Base),
				Family:       FamilyDragged,
				Color:        p.Base,
				Declarations: append(decls, transition...),
			})
		}
	}

	return cm, nil
}

// resolveColor looks name up in the palette first, then parses it as a color
func resolveColor(flat *palette.Flat, name string) (color.Color, error) {
	if v, ok := flat.Get(name); ok {
		if c, err := color.Parse(v); err == nil {
			return c, nil
		}
	}
	return color.Parse(name)
}

func className(prefix, colorName string) string {
	return prefix + "-" + colorName
}
