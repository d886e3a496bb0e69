package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/surfaces/internal/palette"
)

func TestRenderRowsPerPairing(t *testing.T) {
	p := palette.New(
		palette.Value("black", "#000"),
		palette.Value("primary", "#6750a4"),
		palette.Value("error", "#b3261e"),
		palette.Group("on",
			palette.Value("primary", "#fff"),
			palette.Value("error", "#fff"),
		),
	)

	out := Render(palette.Evaluate(p, palette.DefaultOpacities()))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, s := range []string{"base", "hover", "press", "focus", "drag"} {
		assert.Contains(t, lines[0], s)
	}
	assert.Contains(t, lines[1], "primary")
	assert.Contains(t, lines[2], "error")
	assert.NotContains(t, out, "black")
}

func TestRenderUnparseableState(t *testing.T) {
	flat := palette.NewFlat()
	flat.Set("a", "#ff0000")
	flat.Set("on-a", "#0000ff")
	flat.Set("a-hover", "var(--brand-hover)")

	out := Render(palette.Derive(flat, palette.DefaultOpacities()))

	assert.Contains(t, out, "?")
}

func TestRenderEmpty(t *testing.T) {
	out := Render(palette.Evaluate(palette.New(palette.Value("black", "#000")), palette.DefaultOpacities()))

	assert.Contains(t, out, "no base/on pairs found")
}
