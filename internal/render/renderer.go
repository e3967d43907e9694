// Package render draws read-only reports of creatures and their
// possessions, on a tcell screen or as plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws creature panels onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	layout Layout
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, layout: NewLayout(w, h)}
}

// Resize recomputes the layout after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h)
}

// DrawFrame renders the panels side by side, then the HUD.
func (r *Renderer) DrawFrame(panels []Panel, hud HUD) {
	r.screen.Clear()
	for i, p := range panels {
		x, w := r.layout.Column(i, len(panels))
		r.drawPanel(p, x, w)
	}
	r.DrawHUD(hud)
}

func (r *Renderer) drawPanel(p Panel, x, width int) {
	height := r.layout.PanelHeight()
	if width <= 0 || height <= 0 {
		return
	}
	y := 0
	r.putGlyph(x, y, p.Glyph, headerStyle(p))
	r.drawText(x+3, y, p.Name, width-3, headerStyle(p))
	y++

	if p.Killed {
		r.drawText(x, y, "killed", width, styleDim)
	} else {
		r.drawBar(x, y, width, p.HP, p.MaxHP)
		y++
		stats := fmt.Sprintf("prot %d  dmg %d  load %.1f/%.0fkg", p.Protection, p.Damage, p.Used, p.Capacity)
		r.drawText(x, y, stats, width, styleText)
	}
	y += 2

	for _, l := range p.Lines {
		if y >= height {
			r.drawText(x, height-1, "…", width, styleDim)
			return
		}
		indent := 2 * l.Depth
		r.putGlyph(x+indent, y, l.Glyph, styleText)
		r.drawText(x+indent+3, y, l.Text, width-indent-3, styleText)
		y++
	}
}

// drawBar draws "HP cur/max" followed by a bar filling the rest of the width.
func (r *Renderer) drawBar(x, y, width, hp, maxHP int) {
	label := fmt.Sprintf("HP %d/%d ", hp, maxHP)
	r.drawText(x, y, label, width, styleStatus)
	barW := width - runewidth.StringWidth(label)
	if barW <= 0 || maxHP <= 0 {
		return
	}
	filled := barW * hp / maxHP
	style := tcell.StyleDefault.Foreground(hpColor(hp, maxHP))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
	r.drawText(x+runewidth.StringWidth(label), y, bar, barW, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
