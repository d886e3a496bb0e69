package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/surfaces/internal/build"
	"github.com/thatcatcamp/surfaces/internal/preview"
	"github.com/thatcatcamp/surfaces/internal/themes"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the flattened palette with derived colors",
	Run: func(cmd *cobra.Command, args []string) {
		res := evaluate()

		t := listTable("NAME", "VALUE")
		res.Derivation.Palette.Each(func(name, value string) {
			t.Row(name, value)
		})
		fmt.Println(t)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show derived surfaces as terminal swatches",
	Run: func(cmd *cobra.Command, args []string) {
		res := evaluate()
		fmt.Print(preview.Render(res.Derivation))
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in palettes",
	Run: func(cmd *cobra.Command, args []string) {
		t := listTable("NAME", "PRIMARY", "SECONDARY")
		for _, p := range themes.ListPresets() {
			t.Row(p.Name, p.Primary, p.Secondary)
		}
		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(presetsCmd)
}

// listTable is a borderless table with a faint header row
func listTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Faint(true).PaddingRight(2)
	cell := lipgloss.NewStyle().PaddingRight(2)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// evaluate loads settings and runs one evaluation, exiting on failure
func evaluate() *build.Result {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := build.Run(appFs, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return res
}
