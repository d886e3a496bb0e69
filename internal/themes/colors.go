// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/surfaces/internal/palette"

// Palette expands the preset into a base/on palette for light or dark mode
func (p *Preset) Palette(darkMode bool) *palette.Palette {
	if darkMode {
		return darkPalette(p)
	}
	return lightPalette(p)
}

// lightPalette keeps the brand colors and pairs them with white text
func lightPalette(p *Preset) *palette.Palette {
	return palette.New(
		palette.Value("black", "#000000"),
		palette.Value("white", "#ffffff"),
		palette.Value("primary", p.Primary),
		palette.Value("secondary", p.Secondary),
		palette.Value("background", "#ffffff"),
		palette.Group("surface",
			palette.Value(palette.DefaultKey, "#f9fafb"),
			palette.Value("variant", "#e5e7eb"),
		),
		palette.Value("error", "#ef4444"),
		palette.Group("on",
			palette.Value("primary", "#ffffff"),
			palette.Value("secondary", "#ffffff"),
			palette.Value("background", "#000000"),
			palette.Group("surface",
				palette.Value(palette.DefaultKey, "#000000"),
				palette.Value("variant", "#6b7280"),
			),
			palette.Value("error", "#ffffff"),
		),
	)
}

// darkPalette swaps in slate surfaces and light brand tints
func darkPalette(p *Preset) *palette.Palette {
	return palette.New(
		palette.Value("black", "#000000"),
		palette.Value("white", "#ffffff"),
		palette.Value("primary", "#f1f5f9"),
		palette.Value("secondary", "#e2e8f0"),
		palette.Value("background", "#0f172a"),
		palette.Group("surface",
			palette.Value(palette.DefaultKey, "#1e293b"),
			palette.Value("variant", "#334155"),
		),
		palette.Value("error", "#ef4444"),
		palette.Group("on",
			palette.Value("primary", p.Primary),
			palette.Value("secondary", p.Secondary),
			palette.Value("background", "#f1f5f9"),
			palette.Group("surface",
				palette.Value(palette.DefaultKey, "#f1f5f9"),
				palette.Value("variant", "#94a3b8"),
			),
			palette.Value("error", "#ffffff"),
		),
	)
}
