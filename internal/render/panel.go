package render

import (
	"fmt"

	"loot-arena/assets"
	"loot-arena/internal/ducat"
	"loot-arena/internal/hoard"
	"loot-arena/internal/measure"
)

// Line is one row of a creature's possession tree.
type Line struct {
	Depth int
	Glyph string
	Text  string
}

// Panel is a read-only picture of one creature. Stats are zero for the dead.
type Panel struct {
	Name       string
	Species    hoard.Species
	Glyph      string
	Killed     bool
	HP         int
	MaxHP      int
	Protection int
	Damage     int
	Used       float64 // kg
	Capacity   float64 // kg
	Lines      []Line
}

// Snapshot reads c into a Panel. name is passed in because a killed
// creature no longer reports its own.
func Snapshot(c *hoard.Creature, name string) Panel {
	p := Panel{Name: name, Species: c.Species(), Killed: c.Killed(), Glyph: assets.SpeciesGlyph(c.Species())}
	if p.Killed {
		p.Glyph = assets.GlyphKilled
	} else {
		p.HP, _ = c.Hitpoints()
		p.MaxHP, _ = c.MaxHitpoints()
		p.Protection, _ = c.Protection()
		p.Damage, _ = c.Damage()
		p.Used, _ = c.UsedCapacity(measure.Kilogram)
		p.Capacity, _ = c.MaximumCapacity(measure.Kilogram)
	}

	direct := make(map[hoard.Holder]ducat.Ducat)
	for _, s := range c.Stacks() {
		direct[s.Holder] = s.Amount
	}
	for _, a := range c.Anchors().All() {
		switch {
		case a.HoldsDucat():
			p.Lines = append(p.Lines, Line{Glyph: assets.GlyphDucat, Text: a.Name() + ": 1 ducat"})
		case a.Item() != nil:
			it := a.Item()
			p.Lines = append(p.Lines, Line{Glyph: assets.PossessionGlyph(it), Text: a.Name() + ": " + Describe(it)})
			p.Lines = appendContents(p.Lines, it, 1, direct)
		default:
			p.Lines = append(p.Lines, Line{Glyph: assets.GlyphEmpty, Text: a.Name()})
		}
	}
	return p
}

func appendContents(lines []Line, p hoard.Possession, depth int, direct map[hoard.Holder]ducat.Ducat) []Line {
	c, ok := p.(hoard.Container)
	if !ok {
		return lines
	}
	if n := direct[c]; n > 0 {
		lines = append(lines, Line{Depth: depth, Glyph: assets.GlyphDucat, Text: fmt.Sprintf("%d ducats", n)})
	}
	if _, isPurse := p.(*hoard.Purse); isPurse {
		return lines
	}
	entries, _ := c.Entries()
	for _, e := range entries {
		lines = append(lines, Line{Depth: depth, Glyph: assets.PossessionGlyph(e), Text: Describe(e)})
		lines = appendContents(lines, e, depth+1, direct)
	}
	return lines
}

// Describe is a one-line summary of a possession.
func Describe(p hoard.Possession) string {
	if p.Terminated() {
		return fmt.Sprintf("%s #%d (destroyed)", hoard.KindName(p.Kind()), p.ID())
	}
	w, _ := p.Weight(measure.Kilogram)
	v, _ := p.Value()
	var detail string
	switch x := p.(type) {
	case *hoard.Weapon:
		dmg, _ := x.Damage()
		detail = fmt.Sprintf("dmg %d", dmg)
	case *hoard.Armor:
		cur, _ := x.Protection()
		full, _ := x.FullProtection()
		detail = fmt.Sprintf("prot %d/%d", cur, full)
	case *hoard.Backpack:
		entries, _ := x.Entries()
		detail = fmt.Sprintf("%d items", len(entries))
	case *hoard.Purse:
		if x.Broken() {
			detail = "broken"
		} else {
			limit, _ := x.Threshold()
			detail = fmt.Sprintf("limit %d", limit)
		}
	}
	return fmt.Sprintf("%s #%d %s %.1fkg %dd", hoard.KindName(p.Kind()), p.ID(), detail, w, v)
}
