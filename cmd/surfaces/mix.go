package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/surfaces/internal/color"
)

var mixCmd = &cobra.Command{
	Use:   "mix <foreground> <background> <opacity>",
	Short: "Blend a foreground color over a background",
	Long: `Print the color of foreground rendered at opacity on top of background.

Colors may be keywords, #rgb, #rrggbb or rgb(r, g, b).`,
	Example: "  surfaces mix '#0000ff' '#ff0000' 0.08",
	Args:    cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		opacity, err := parseOpacity(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		c, err := color.Composite(args[0], args[1], opacity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s %s\n", c, c.Hex())
	},
}

// parseOpacity accepts any finite number; values outside 0..1 are clamped
// per channel by the blend
func parseOpacity(s string) (float64, error) {
	opacity, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(opacity) || math.IsInf(opacity, 0) {
		return 0, fmt.Errorf("invalid opacity %q", s)
	}
	return opacity, nil
}

func init() {
	rootCmd.AddCommand(mixCmd)
}
