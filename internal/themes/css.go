// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/thatcatcamp/surfaces/internal/palette"
)

// GenerateCSS renders the palette variables (when vars is set) followed by
// the class rules
func GenerateCSS(d *palette.Derivation, cm *ClassMap, vars bool) string {
	var sb strings.Builder
	if vars {
		// strings.Builder never fails
		_ = WriteVariables(&sb, d.Palette)
		sb.WriteString("\n")
	}
	_ = WriteCSS(&sb, cm)
	return sb.String()
}

// WriteVariables writes every palette entry as a --color-* custom property
func WriteVariables(w io.Writer, flat *palette.Flat) error {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	flat.Each(func(name, value string) {
		fmt.Fprintf(&sb, "  --color-%s: %s;\n", escapeIdent(name), value)
	})
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCSS writes one block per rule in order
func WriteCSS(w io.Writer, cm *ClassMap) error {
	for i, r := range cm.Rules {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, renderRule(r)); err != nil {
			return err
		}
	}
	return nil
}

func renderRule(r Rule) string {
	var sb strings.Builder
	sb.WriteString(selector(r))
	sb.WriteString(" {\n")
	for _, d := range r.Declarations {
		fmt.Fprintf(&sb, "  %s: %s;\n", d.Property, d.Value)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func selector(r Rule) string {
	s := "." + escapeIdent(r.Class)
	if r.Condition != Always {
		s += ":" + string(r.Condition)
	}
	return s
}

// escapeIdent backslash-escapes characters that are not valid in a bare
// CSS identifier, e.g. the dot in gray-0.5
func escapeIdent(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune('\\')
		sb.WriteRune(r)
	}
	return sb.String()
}
