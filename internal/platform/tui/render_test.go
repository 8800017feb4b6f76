package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

func TestRowsUseTwoPixelsPerCell(t *testing.T) {
	f := core.NewFrame(4, 3)
	f.Set(0, 0, core.White)
	f.Set(3, 2, core.Paddle)

	rows := newPixelRenderer().Rows(f)

	require.Len(t, rows, 2, "odd heights round up")
	for _, row := range rows {
		assert.Equal(t, 4, strings.Count(row, string(halfBlock)))
		assert.Equal(t, 4, lipgloss.Width(row))
	}
}

func TestStylesAreCachedPerColourPair(t *testing.T) {
	f := core.NewFrame(8, 2)
	f.Fill(core.Paddle)
	f.Set(7, 1, core.White)

	r := newPixelRenderer()
	r.Rows(f)
	r.Rows(f)

	assert.Len(t, r.styles, 2)
}

func TestPlaceOverlayCentresLines(t *testing.T) {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = strings.Repeat("x", 20)
	}

	placeOverlay(rows, []string{"CLEAR!", "おめでと"}, 20, DefaultTheme())

	assert.Contains(t, rows[4], "CLEAR!")
	assert.Contains(t, rows[5], "おめでと")
	assert.Equal(t, 20, lipgloss.Width(rows[4]))
	assert.Equal(t, 20, lipgloss.Width(rows[5]))
	assert.Equal(t, strings.Repeat("x", 20), rows[3])
}

func TestPlaceOverlayClipsToRows(t *testing.T) {
	rows := []string{"a"}

	placeOverlay(rows, []string{"one", "two", "three"}, 5, DefaultTheme())

	assert.Contains(t, rows[0], "one")
}
