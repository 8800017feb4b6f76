package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// halfBlock draws the upper pixel in the foreground colour and the lower
// pixel in the background colour, giving two pixels per terminal cell.
const halfBlock = '▀'

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.RGB
}

// pixelRenderer converts a Frame into styled terminal rows.
// Styles are cached per colour pair; a run of equal cells shares one style.
type pixelRenderer struct {
	styles map[cellColors]lipgloss.Style
}

func newPixelRenderer() *pixelRenderer {
	return &pixelRenderer{styles: make(map[cellColors]lipgloss.Style)}
}

func (r *pixelRenderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
	r.styles[c] = s
	return s
}

// Rows renders the frame as terminal rows, two pixel rows per line.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *pixelRenderer) Rows(f *core.Frame) []string {
	rows := make([]string, 0, (f.Height()+1)/2)

	var sb strings.Builder
	for y := 0; y < f.Height(); y += 2 {
		sb.Reset()

		x := 0
		for x < f.Width() {
			start := cellColors{top: f.Get(x, y), bottom: f.Get(x, y+1)}

			// Collect consecutive cells with the same colours
			n := 0
			for x < f.Width() && (cellColors{top: f.Get(x, y), bottom: f.Get(x, y+1)}) == start {
				n++
				x++
			}

			sb.WriteString(r.style(start).Render(strings.Repeat(string(halfBlock), n)))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// placeOverlay writes lines centred over rows, each line replacing a whole
// row. The first line uses the title style.
func placeOverlay(rows []string, lines []string, width int, theme Theme) {
	if len(lines) == 0 || len(rows) == 0 {
		return
	}

	start := max((len(rows)-len(lines))/2, 0)
	for i, line := range lines {
		row := start + i
		if row >= len(rows) {
			break
		}
		style := theme.OverlayText
		if i == 0 {
			style = theme.OverlayTitle
		}
		rows[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line))
	}
}
