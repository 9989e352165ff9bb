package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableShape(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "SESSIONS"},
		[][]string{{"Manuel Ebert", "3"}, {"Stan", "1"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, one line per row")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Manuel Ebert")
	assert.Contains(t, lines[3], "Stan")
}

func TestRenderTableShortRows(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTableNoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}
