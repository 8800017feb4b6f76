package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// halfBlock draws the upper pixel in the foreground colour and the lower
// pixel in the background colour.
const halfBlock = '▀'

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.RGB
}

var (
	overlayTitleStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 0)).Background(tcell.ColorBlack).Bold(true)
	overlayTextStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	statusStyle       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 180))
)

func rgbColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (d *Driver) style(c cellColors) tcell.Style {
	if s, ok := d.styles[c]; ok {
		return s
	}
	s := tcell.StyleDefault.Foreground(rgbColor(c.top)).Background(rgbColor(c.bottom))
	d.styles[c] = s
	return s
}

// draw paints the frame, the overlay and the status line, then shows them.
func (d *Driver) draw() {
	d.screen.Clear()

	cols, rows := d.screen.Size()
	fieldRows := min((d.frame.Height()+1)/2, max(rows-1, 0))
	fieldCols := min(d.frame.Width(), cols)

	for row := range fieldRows {
		for x := range fieldCols {
			c := cellColors{top: d.frame.Get(x, row*2), bottom: d.frame.Get(x, row*2+1)}
			d.screen.SetContent(x, row, halfBlock, nil, d.style(c))
		}
	}

	lines := d.game.Overlay()
	start := max((fieldRows-len(lines))/2, 0)
	for i, line := range lines {
		if start+i >= fieldRows {
			break
		}
		style := overlayTextStyle
		if i == 0 {
			style = overlayTitleStyle
		}
		x := max((fieldCols-runewidth.StringWidth(line))/2, 0)
		d.drawText(x, start+i, line, style)
	}

	if rows > 0 {
		s := d.game.Stats()
		status := fmt.Sprintf("blocks %d/%d │ balls %d │ debris %d │ ←/→ move · p pause · r restart · q quit",
			s.Remaining, s.Total, s.Balls, s.Debris)
		d.drawText(0, rows-1, status, statusStyle)
	}

	d.screen.Show()
}

// drawText writes s from column x on row y, advancing by display width.
func (d *Driver) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
