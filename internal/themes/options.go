// SPDX-License-Identifier: MIT
package themes

// Options controls which class families are emitted and how they look
type Options struct {
	SurfacePrefix     string // static surface, e.g. surface-primary
	InteractivePrefix string // hover/active/focus-visible states
	DraggedPrefix     string // drag state applied unconditionally

	Disabled   *DisabledStyle // nil omits :disabled rules
	Transition *Transition    // nil omits transition declarations
}

// DisabledStyle dims interactive surfaces with a reference color
type DisabledStyle struct {
	TextOpacity       float64
	BackgroundOpacity float64
	ColorName         string // palette key or color literal
}

// Transition animates color changes between states
type Transition struct {
	DurationMS int
}

// Default class prefixes
const (
	DefaultSurfacePrefix     = "surface"
	DefaultInteractivePrefix = "interactive-surface"
	DefaultDraggedPrefix     = "dragged-surface"
)

// DefaultOptions returns the stock prefixes, disabled styling at 0.38 text
// and 0.12 background against black, and a 150ms transition
func DefaultOptions() Options {
	return Options{
		SurfacePrefix:     DefaultSurfacePrefix,
		InteractivePrefix: DefaultInteractivePrefix,
		DraggedPrefix:     DefaultDraggedPrefix,
		Disabled: &DisabledStyle{
			TextOpacity:       0.38,
			BackgroundOpacity: 0.12,
			ColorName:         "black",
		},
		Transition: &Transition{DurationMS: 150},
	}
}
