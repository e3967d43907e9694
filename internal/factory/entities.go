// Package factory turns arena presets into creatures and possessions.
package factory

import (
	"fmt"

	"loot-arena/internal/config"
	"loot-arena/internal/ducat"
	"loot-arena/internal/hoard"
	"loot-arena/internal/measure"
	"loot-arena/internal/registry"
)

// Roster holds the creatures built from one arena, in preset order. It
// remembers names so killed creatures can still be labelled.
type Roster struct {
	Creatures []*hoard.Creature
	byName    map[string]*hoard.Creature
	names     map[*hoard.Creature]string
}

// Get returns the creature called name.
func (r *Roster) Get(name string) (*hoard.Creature, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Name returns c's preset name, dead or alive.
func (r *Roster) Name(c *hoard.Creature) string { return r.names[c] }

// Populate builds every creature of the arena with its starting gear.
func Populate(f *hoard.Forge, a config.Arena) (*Roster, error) {
	r := &Roster{
		byName: make(map[string]*hoard.Creature, len(a.Creatures)),
		names:  make(map[*hoard.Creature]string, len(a.Creatures)),
	}
	for _, spec := range a.Creatures {
		c, err := NewCreature(f, spec)
		if err != nil {
			return nil, err
		}
		r.Creatures = append(r.Creatures, c)
		r.byName[spec.Name] = c
		r.names[c] = spec.Name
	}
	return r, nil
}

// NewCreature creates a hero or monster and puts its gear on its anchors.
func NewCreature(f *hoard.Forge, spec config.Creature) (*hoard.Creature, error) {
	var (
		c   *hoard.Creature
		err error
	)
	switch spec.Species {
	case config.SpeciesHero:
		c, err = hoard.NewHero(spec.Name, spec.Strength, spec.Hitpoints)
	case config.SpeciesMonster:
		c, err = hoard.NewMonster(spec.Name, spec.Strength, spec.Hitpoints, spec.Damage, spec.Skin, spec.Anchors)
	default:
		return nil, fmt.Errorf("creature %q: unknown species %q", spec.Name, spec.Species)
	}
	if err != nil {
		return nil, fmt.Errorf("creature %q: %w", spec.Name, err)
	}

	for _, g := range spec.Gear {
		if g.Ducat {
			if err := c.Anchors().AssignDucat(g.Anchor); err != nil {
				return nil, fmt.Errorf("creature %q: %w", spec.Name, err)
			}
			continue
		}
		if g.Item == nil {
			return nil, fmt.Errorf("creature %q: empty gear on %q", spec.Name, g.Anchor)
		}
		p, err := NewPossession(f, *g.Item)
		if err != nil {
			return nil, fmt.Errorf("creature %q: %w", spec.Name, err)
		}
		if err := c.Anchors().Assign(p, g.Anchor); err != nil {
			return nil, fmt.Errorf("creature %q: %w", spec.Name, err)
		}
	}
	return c, nil
}

// NewPossession forges an item, filling containers with their contents
// and ducats.
func NewPossession(f *hoard.Forge, spec config.Item) (hoard.Possession, error) {
	unit, err := measure.ParseUnit(spec.Unit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Kind, err)
	}
	weight := measure.Of(spec.Weight, unit)
	id := registry.ID(spec.ID)

	switch spec.Kind {
	case config.KindWeapon:
		w, err := f.NewWeapon(id, weight, spec.Damage, ducat.Ducat(spec.Value))
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.KindArmor:
		a, err := f.NewArmor(id, weight, spec.Protection, ducat.Ducat(spec.Value))
		if err != nil {
			return nil, err
		}
		return a, nil
	case config.KindBackpack:
		b, err := f.NewBackpack(id, weight, measure.Of(spec.Capacity, unit), ducat.Ducat(spec.Value))
		if err != nil {
			return nil, err
		}
		for _, sub := range spec.Contents {
			p, err := NewPossession(f, sub)
			if err != nil {
				return nil, err
			}
			if err := b.Admit(p); err != nil {
				return nil, fmt.Errorf("backpack %d: %w", b.ID(), err)
			}
		}
		if spec.Ducats > 0 {
			if err := b.AdmitDucats(ducat.Ducat(spec.Ducats)); err != nil {
				return nil, fmt.Errorf("backpack %d: %w", b.ID(), err)
			}
		}
		return b, nil
	case config.KindPurse:
		if spec.Ducats > spec.Threshold {
			return nil, fmt.Errorf("purse: %d ducats exceed threshold %d", spec.Ducats, spec.Threshold)
		}
		p, err := f.NewPurse(weight, ducat.Ducat(spec.Threshold))
		if err != nil {
			return nil, err
		}
		if spec.Ducats > 0 {
			if err := p.AdmitDucats(ducat.Ducat(spec.Ducats)); err != nil {
				return nil, fmt.Errorf("purse %d: %w", p.ID(), err)
			}
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown possession kind %q", spec.Kind)
}
