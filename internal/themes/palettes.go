// SPDX-License-Identifier: MIT
package themes

import "github.com/samber/lo"

// Preset names a brand pair used to build a stock palette
type Preset struct {
	Name      string // "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

// presets is the listing order; baseline is the config default
var presets = []Preset{
	{"baseline", "#6750a4", "#625b71"},
	{"slate", "#64748b", "#0f172a"},
	{"indigo", "#4f46e5", "#f97316"},
	{"rose", "#e11d48", "#64748b"},
	{"emerald", "#059669", "#f59e0b"},
	{"navy", "#000080", "#fbbf24"},
	{"purple", "#a855f7", "#ec4899"},
	{"teal", "#14b8a6", "#f87171"},
	{"amber", "#f59e0b", "#6366f1"},
	{"neutral", "#6b7280", "#4b5563"},
}

// GetPreset returns a copy of the named preset, or nil
func GetPreset(name string) *Preset {
	p, ok := lo.Find(presets, func(p Preset) bool { return p.Name == name })
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns copies of all presets in listing order
func ListPresets() []*Preset {
	return lo.Map(presets, func(p Preset, _ int) *Preset { return &p })
}
