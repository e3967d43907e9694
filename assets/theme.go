package assets

import "loot-arena/internal/hoard"

// Emoji constants used as creature and possession glyphs.
const (
	GlyphHero     = "🧙"
	GlyphMonster  = "👹"
	GlyphKilled   = "💀"
	GlyphWeapon   = "🗡"
	GlyphArmor    = "🛡"
	GlyphBackpack = "🎒"
	GlyphPurse    = "👛"
	GlyphBroken   = "🕳"
	GlyphDucat    = "🪙"
	GlyphEmpty    = "·"
)

// SpeciesGlyph returns the glyph drawn for a living creature of species s.
func SpeciesGlyph(s hoard.Species) string {
	if s == hoard.SpeciesHero {
		return GlyphHero
	}
	return GlyphMonster
}

// ArenaOpening is shown when the demo begins.
const ArenaOpening = `The arena gates grind open.
Two fighters step onto the sand. Only one walks out,
and the victor takes what the loser carried.
Press any key to begin...`
