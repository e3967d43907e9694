package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is the status and message area under the panels.
type HUD struct {
	Title    string
	Turn     int
	Hint     string
	Messages []string
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	hudY := r.layout.HUDTop()
	width := r.layout.Width

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("%s  turn %d", h.Title, h.Turn)
	if h.Hint != "" {
		status += "  " + h.Hint
	}
	r.drawText(0, hudY+1, status, width, styleStatus)

	rows := r.layout.HUDRows - 2
	start := max(0, len(h.Messages)-rows)
	for i, msg := range h.Messages[start:] {
		r.drawText(0, hudY+2+i, msg, width, styleMessage)
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, clipped to width columns.
func (r *Renderer) drawText(x, y int, text string, width int, style tcell.Style) {
	if width <= 0 {
		return
	}
	text = runewidth.Truncate(text, width, "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
