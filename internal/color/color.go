// SPDX-License-Identifier: MIT

// Package color parses CSS color notations and blends an overlay color over a
// background in sRGB channel space.
package color

import (
	"fmt"
	"math"
	"strconv"
)

// Color is an opaque sRGB color with 8-bit channels
type Color struct {
	R, G, B uint8
}

// String renders the color as rgb(r, g, b)
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha renders the color with an alpha channel as rgba(r, g, b, a)
func (c Color) WithAlpha(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Over renders fg at the given opacity on top of the opaque bg.
//
// Each channel is fg*opacity + bg*(1-opacity), rounded half up. No gamma
// correction is applied. Opacity is not range-checked: 0 yields bg and 1
// yields fg, anything outside that range is clamped per channel. A NaN
// channel becomes 0.
func Over(fg, bg Color, opacity float64) Color {
	return Color{
		R: blend(fg.R, bg.R, opacity),
		G: blend(fg.G, bg.G, opacity),
		B: blend(fg.B, bg.B, opacity),
	}
}

// Composite parses both colors and blends fg over bg
func Composite(fg, bg string, opacity float64) (Color, error) {
	f, err := Parse(fg)
	if err != nil {
		return Color{}, err
	}
	b, err := Parse(bg)
	if err != nil {
		return Color{}, err
	}
	return Over(f, b, opacity), nil
}

func blend(fg, bg uint8, opacity float64) uint8 {
	v := float64(fg)*opacity + float64(bg)*(1-opacity)
	return clamp(math.Floor(v + 0.5))
}

func clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
