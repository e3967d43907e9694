package hoard

import (
	"math"
	"regexp"
	"strings"

	"loot-arena/internal/measure"
)

// Hero anchors, in the order they are searched.
const (
	AnchorLeftHand  = "left hand"
	AnchorRightHand = "right hand"
	AnchorBack      = "back"
	AnchorBody      = "body"
	AnchorBelt      = "belt"
)

// HeroAnchors is the fixed slot layout of every hero.
var HeroAnchors = []string{AnchorLeftHand, AnchorRightHand, AnchorBack, AnchorBody, AnchorBelt}

const (
	// HeroBaseProtection is a hero's protection without armor.
	HeroBaseProtection = 10
	// MaxHeroArmor is the number of armor pieces a hero may carry in total.
	MaxHeroArmor = 2
)

var heroName = regexp.MustCompile(`^[A-Z][A-Za-z' ]*$`)

// ValidHeroName: a capital first letter, then letters, spaces and at most two apostrophes.
func ValidHeroName(name string) bool {
	return heroName.MatchString(name) && strings.Count(name, "'") <= 2
}

// heroCapacityTable holds the carrying capacity in kg for strength 11 to 20.
var heroCapacityTable = [...]float64{115, 130, 150, 175, 200, 230, 260, 300, 350, 400}

// HeroCapacity is the carrying capacity of a hero with the given strength.
func HeroCapacity(strength float64) measure.Weight {
	return measure.Of(heroCapacity(int(math.Floor(strength))), measure.Kilogram)
}

func heroCapacity(s int) float64 {
	switch {
	case s <= 0:
		return 0
	case s <= 10:
		return float64(10 * s)
	case s <= 20:
		return heroCapacityTable[s-11]
	default:
		return 4 * heroCapacity(s-10)
	}
}

// NewHero creates a hero at full health with the standard empty anchors.
func NewHero(name string, strength float64, hitpoints int) (*Creature, error) {
	if !ValidHeroName(name) {
		return nil, fail(ErrInvalidConstruction, []any{"name", name}, "invalid hero name %q", name)
	}
	return newCreature(name, strength, hitpoints, HeroAnchors, heroProfile{})
}

type heroProfile struct{}

func (heroProfile) species() Species { return SpeciesHero }

func (heroProfile) maxCapacity(c *Creature) measure.Weight { return HeroCapacity(c.strength) }

func (heroProfile) accepts(c *Creature, p Possession) bool {
	return countArmor(c.Carried())+countArmor(reach(p)) <= MaxHeroArmor
}

func (heroProfile) canTarget(_, other *Creature) bool {
	return other.profile.species() == SpeciesMonster
}

// damage adds the weapons in both hands to the strength bonus.
func (heroProfile) damage(c *Creature) int {
	dmg := max(0, (int(math.Floor(c.strength))-10)/2)
	for _, name := range []string{AnchorLeftHand, AnchorRightHand} {
		if w, ok := c.anchors.byName[name].held.(*Weapon); ok {
			dmg += w.damage
		}
	}
	return dmg
}

func (heroProfile) protection(c *Creature) int {
	return HeroBaseProtection + wornProtection(c)
}

func (heroProfile) recover(c *Creature, fraction float64) int {
	return int(float64(c.maxHP-c.hp) * fraction)
}

func countArmor(ps []Possession) int {
	n := 0
	for _, p := range ps {
		if _, ok := p.(*Armor); ok {
			n++
		}
	}
	return n
}

// wornProtection sums the current protection of armor directly on anchors.
func wornProtection(c *Creature) int {
	sum := 0
	for _, a := range c.anchors.order {
		if ar, ok := a.held.(*Armor); ok {
			sum += ar.current
		}
	}
	return sum
}
