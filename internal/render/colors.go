package render

import (
	"github.com/gdamore/tcell/v2"

	"loot-arena/internal/hoard"
)

var (
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMessage   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSeparator = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// headerStyle colours a panel title by species; the dead are grey.
func headerStyle(p Panel) tcell.Style {
	if p.Killed {
		return styleDim.Bold(true)
	}
	if p.Species == hoard.SpeciesHero {
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
}

// hpColor shades the hit-point bar: green above half, yellow above a quarter, red below.
func hpColor(hp, maxHP int) tcell.Color {
	switch {
	case maxHP <= 0:
		return tcell.ColorGray
	case hp*2 > maxHP:
		return tcell.ColorGreen
	case hp*4 > maxHP:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}
