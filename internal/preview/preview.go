// SPDX-License-Identifier: MIT

// Package preview draws derived surfaces as terminal swatches.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/surfaces/internal/color"
	"github.com/thatcatcamp/surfaces/internal/palette"
)

const swatchWidth = 10

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Width(20)
	headerStyle = lipgloss.NewStyle().Faint(true).Width(swatchWidth).Align(lipgloss.Center)
	swatchStyle = lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// Render returns one row per pairing: the base color followed by its four
// state colors, each labelled in the on-color
func Render(d *palette.Derivation) string {
	if len(d.Pairings) == 0 {
		return emptyStyle.Render("no base/on pairs found") + "\n"
	}

	var rows []string
	rows = append(rows, header())
	for _, p := range d.Pairings {
		rows = append(rows, row(d, p))
	}
	return strings.Join(rows, "\n") + "\n"
}

func header() string {
	cells := []string{nameStyle.Render("")}
	cells = append(cells, headerStyle.Render("base"))
	for _, s := range palette.States {
		cells = append(cells, headerStyle.Render(string(s)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func row(d *palette.Derivation, p palette.Pairing) string {
	on := lipgloss.Color(p.OnColor.Hex())

	cells := []string{nameStyle.Render(p.Base)}
	cells = append(cells, swatch(p.BaseColor.Hex(), on, "Aa"))
	for _, s := range palette.States {
		v, _ := d.Palette.Get(p.StateKey(s))
		c, err := color.Parse(v)
		if err != nil {
			cells = append(cells, swatchStyle.Render("?"))
			continue
		}
		cells = append(cells, swatch(c.Hex(), on, "Aa"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func swatch(bg string, fg lipgloss.Color, label string) string {
	return swatchStyle.
		Background(lipgloss.Color(bg)).
		Foreground(fg).
		Render(label)
}
