// SPDX-License-Identifier: MIT
package color

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// InvalidColorError is returned when a value matches none of the supported notations
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Value)
}

// Parse accepts a named keyword, #rgb, #rrggbb or rgb(r, g, b)
func Parse(s string) (Color, error) {
	v := strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(v, "#"):
		if c, ok := parseHex(v); ok {
			return c, nil
		}
	case strings.HasPrefix(strings.ToLower(v), "rgb("):
		if c, ok := parseRGB(v); ok {
			return c, nil
		}
	default:
		if c, ok := colornames.Map[strings.ToLower(v)]; ok {
			return Color{R: c.R, G: c.G, B: c.B}, nil
		}
	}

	return Color{}, &InvalidColorError{Value: s}
}

func parseHex(v string) (Color, bool) {
	if len(v) != 4 && len(v) != 7 {
		return Color{}, false
	}
	for _, r := range v[1:] {
		if !isHexDigit(r) {
			return Color{}, false
		}
	}

	c, err := colorful.Hex(strings.ToLower(v))
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// parseRGB handles both the legacy comma form and the space separated form.
// Channels must be integers in 0-255; alpha is not accepted.
func parseRGB(v string) (Color, bool) {
	if !strings.HasSuffix(v, ")") {
		return Color{}, false
	}
	body := v[len("rgb(") : len(v)-1]

	var parts []string
	if strings.Contains(body, ",") {
		parts = strings.Split(body, ",")
	} else {
		parts = strings.Fields(body)
	}
	if len(parts) != 3 {
		return Color{}, false
	}

	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, false
		}
		ch[i] = uint8(n)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, true
}
