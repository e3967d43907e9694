package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// glyphColumn is the width reserved for a glyph in plain reports.
const glyphColumn = 3

// WriteReport prints panels as indented plain text, one block per creature.
func WriteReport(w io.Writer, panels []Panel) error {
	var b strings.Builder
	for i, p := range panels {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(runewidth.FillRight(p.Glyph, glyphColumn))
		b.WriteString(p.Name)
		if p.Killed {
			b.WriteString("  (killed)\n")
		} else {
			fmt.Fprintf(&b, "  HP %d/%d  prot %d  dmg %d  load %.1f/%.0fkg\n",
				p.HP, p.MaxHP, p.Protection, p.Damage, p.Used, p.Capacity)
		}
		for _, l := range p.Lines {
			b.WriteString(strings.Repeat("  ", l.Depth+1))
			b.WriteString(runewidth.FillRight(l.Glyph, glyphColumn))
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
