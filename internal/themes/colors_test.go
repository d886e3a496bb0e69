package themes

import (
	"testing"

	"github.com/thatcatcamp/surfaces/internal/color"
	"github.com/thatcatcamp/surfaces/internal/palette"
)

func TestPresetExists(t *testing.T) {
	preset := GetPreset("slate")
	if preset == nil {
		t.Fatal("slate preset not found")
	}
}

func TestUnknownPreset(t *testing.T) {
	if GetPreset("plaid") != nil {
		t.Fatal("expected nil for unknown preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	GetPreset("rose").Primary = "#000000"

	if got := GetPreset("rose").Primary; got != "#e11d48" {
		t.Errorf("preset table was mutated: primary = %s", got)
	}
	if first := ListPresets()[0].Name; first != "baseline" {
		t.Errorf("expected baseline first, got %s", first)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) < 10 {
		t.Errorf("expected at least 10 presets, got %d", len(presets))
	}
}

func TestPresetNamesUnique(t *testing.T) {
	names := make(map[string]bool)
	for _, p := range ListPresets() {
		if names[p.Name] {
			t.Errorf("duplicate preset name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestPresetPalettesPairEveryRole(t *testing.T) {
	roles := []string{"primary", "secondary", "background", "surface", "surface-variant", "error"}

	for _, preset := range ListPresets() {
		for _, dark := range []bool{false, true} {
			d := palette.Evaluate(preset.Palette(dark), palette.DefaultOpacities())

			paired := make(map[string]bool)
			for _, p := range d.Pairings {
				paired[p.Base] = true
			}
			for _, role := range roles {
				if !paired[role] {
					t.Errorf("%s (dark=%v): %s is not paired", preset.Name, dark, role)
				}
			}
		}
	}
}

func TestPresetColorsAreValid(t *testing.T) {
	preset := GetPreset("indigo")
	flat := palette.Flatten(preset.Palette(false))

	flat.Each(func(name, value string) {
		if _, err := color.Parse(value); err != nil {
			t.Errorf("%s has invalid color %q", name, value)
		}
	})
}

func TestLightAndDarkDiffer(t *testing.T) {
	preset := GetPreset("navy")
	light := palette.Flatten(preset.Palette(false))
	dark := palette.Flatten(preset.Palette(true))

	l, _ := light.Get("background")
	d, _ := dark.Get("background")
	if l == d {
		t.Fatal("light and dark backgrounds should differ")
	}
}
