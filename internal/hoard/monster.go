package hoard

import (
	"regexp"

	"loot-arena/internal/measure"
)

// MonsterCapacityPerStrength is the kilograms a monster carries per point of strength.
const MonsterCapacityPerStrength = 9

var monsterName = regexp.MustCompile(`^[A-Z][A-Za-z0-9' ]*$`)

// ValidMonsterName: a capital first letter, then letters, digits, spaces and apostrophes.
func ValidMonsterName(name string) bool { return monsterName.MatchString(name) }

// NewMonster creates a monster at full health with the given anchors.
// damage is its natural attack, skin its natural protection.
func NewMonster(name string, strength float64, hitpoints, damage, skin int, anchors []string) (*Creature, error) {
	if !ValidMonsterName(name) {
		return nil, fail(ErrInvalidConstruction, []any{"name", name}, "invalid monster name %q", name)
	}
	if damage < 0 || skin < 0 {
		return nil, fail(ErrInvalidConstruction, []any{"name", name, "damage", damage, "skin", skin},
			"negative damage or skin")
	}
	c, err := newCreature(name, strength, hitpoints, anchors, monsterProfile{})
	if err != nil {
		return nil, err
	}
	c.baseDamage = damage
	c.skin = skin
	return c, nil
}

type monsterProfile struct{}

func (monsterProfile) species() Species { return SpeciesMonster }

func (monsterProfile) maxCapacity(c *Creature) measure.Weight {
	return measure.Of(MonsterCapacityPerStrength*c.strength, measure.Kilogram)
}

func (monsterProfile) accepts(*Creature, Possession) bool { return true }

func (monsterProfile) canTarget(_, other *Creature) bool {
	return other.profile.species() == SpeciesHero
}

// damage adds every weapon directly on an anchor to the natural attack.
func (monsterProfile) damage(c *Creature) int {
	dmg := c.baseDamage
	for _, a := range c.anchors.order {
		if w, ok := a.held.(*Weapon); ok {
			dmg += w.damage
		}
	}
	return dmg
}

func (monsterProfile) protection(c *Creature) int { return c.skin + wornProtection(c) }

func (monsterProfile) recover(*Creature, float64) int { return 0 }
