package assets

import "loot-arena/internal/hoard"

// kindGlyphs maps a possession kind to its glyph.
var kindGlyphs = map[hoard.Kind]string{
	hoard.KindWeapon:   GlyphWeapon,
	hoard.KindArmor:    GlyphArmor,
	hoard.KindBackpack: GlyphBackpack,
	hoard.KindPurse:    GlyphPurse,
}

// PossessionGlyph returns the glyph for p, marking broken purses.
func PossessionGlyph(p hoard.Possession) string {
	if pu, ok := p.(*hoard.Purse); ok && pu.Broken() {
		return GlyphBroken
	}
	if g, ok := kindGlyphs[p.Kind()]; ok {
		return g
	}
	return "?"
}
