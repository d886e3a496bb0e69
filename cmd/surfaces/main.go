// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs backs every file the CLI reads or writes
var appFs = afero.NewOsFs()

var (
	configFlag  string
	paletteFlag string
	presetFlag  string
	darkFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "surfaces",
	Short: "Surfaces - interaction-state CSS from a color palette",
	Long: `Surfaces reads a palette of base colors and their "on" colors, derives
hover, press, focus and drag colors by blending the on-color over the base,
and emits surface, interactive-surface and dragged-surface classes.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default $SURFACES_CONFIG or ~/.surfaces/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&paletteFlag, "palette", "p", "", "YAML or JSON palette file")
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "", "built-in palette to use when no file is given")
	rootCmd.PersistentFlags().BoolVar(&darkFlag, "dark", false, "use the dark variant of the preset")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
