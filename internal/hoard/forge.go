package hoard

import (
	"log/slog"
	"math"

	"loot-arena/internal/ducat"
	"loot-arena/internal/measure"
	"loot-arena/internal/registry"
)

// Forge builds possessions. It owns the identity counters, so everything
// forged by one Forge shares one numbering per kind.
type Forge struct {
	reg    *registry.Registry
	logger *slog.Logger
}

// NewForge creates a Forge drawing ids from reg. A nil reg gets a fresh
// registry and a nil logger discards output.
func NewForge(reg *registry.Registry, logger *slog.Logger) *Forge {
	if reg == nil {
		reg = registry.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for k, rule := range identityRules {
		reg.Define(k, rule)
	}
	return &Forge{reg: reg, logger: logger}
}

// Registry exposes the identity counters.
func (f *Forge) Registry() *registry.Registry { return f.reg }

// identity claims id for kind k, or mints one when id is NilID.
func (f *Forge) identity(k Kind, id registry.ID) (registry.ID, error) {
	if id == registry.NilID {
		minted, err := f.reg.Mint(k)
		if err != nil {
			return 0, fail(ErrInvalidConstruction, []any{"kind", KindName(k)}, "%v", err)
		}
		return minted, nil
	}
	if err := f.reg.Claim(k, id); err != nil {
		return 0, fail(ErrInvalidConstruction, []any{"kind", KindName(k), "id", id}, "%v", err)
	}
	return id, nil
}

func validWeight(w measure.Weight) bool {
	return !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0) && w >= 0
}

func (f *Forge) base(k Kind, id registry.ID, weight measure.Weight) (item, error) {
	if !validWeight(weight) {
		return item{}, fail(ErrInvalidConstruction, []any{"kind", KindName(k), "weight", weight},
			"invalid %s weight %v", KindName(k), weight)
	}
	id, err := f.identity(k, id)
	if err != nil {
		return item{}, err
	}
	return item{forge: f, id: id, kind: k, weight: weight}, nil
}

// NewWeapon forges a weapon. Pass registry.NilID to mint the next multiple of 6.
func (f *Forge) NewWeapon(id registry.ID, weight measure.Weight, damage int, value ducat.Ducat) (*Weapon, error) {
	if damage < MinWeaponDamage || damage > MaxWeaponDamage || value < 1 || value > MaxWeaponValue {
		return nil, fail(ErrInvalidConstruction, []any{"damage", damage, "value", value},
			"weapon damage %d or value %v out of range", damage, value)
	}
	it, err := f.base(KindWeapon, id, weight)
	if err != nil {
		return nil, err
	}
	w := &Weapon{item: it, damage: damage, value: value}
	w.self = w
	return w, nil
}

// NewArmor forges undamaged armor. Pass registry.NilID to mint the next prime.
func (f *Forge) NewArmor(id registry.ID, weight measure.Weight, protection int, value ducat.Ducat) (*Armor, error) {
	if protection < 1 {
		return nil, fail(ErrInvalidConstruction, []any{"protection", protection},
			"armor protection %d must be positive", protection)
	}
	it, err := f.base(KindArmor, id, weight)
	if err != nil {
		return nil, err
	}
	a := &Armor{item: it, full: protection, current: protection, value: value}
	a.self = a
	return a, nil
}

// NewBackpack forges an empty backpack. capacity bounds its own weight plus contents.
func (f *Forge) NewBackpack(id registry.ID, weight, capacity measure.Weight, value ducat.Ducat) (*Backpack, error) {
	if !validWeight(capacity) || weight.Exceeds(capacity) {
		return nil, fail(ErrInvalidConstruction, []any{"weight", weight, "capacity", capacity},
			"backpack capacity %v below its weight %v", capacity, weight)
	}
	it, err := f.base(KindBackpack, id, weight)
	if err != nil {
		return nil, err
	}
	b := &Backpack{item: it, value: value}
	b.self = b
	b.vault = newVault(b, capacity)
	return b, nil
}

// NewPurse forges an empty purse that breaks once it would hold more than
// threshold ducats. Purse ids are Fibonacci numbers minted in order.
func (f *Forge) NewPurse(weight measure.Weight, threshold ducat.Ducat) (*Purse, error) {
	if threshold < 1 {
		return nil, fail(ErrInvalidConstruction, []any{"threshold", threshold}, "purse threshold must be positive")
	}
	it, err := f.base(KindPurse, registry.NilID, weight)
	if err != nil {
		return nil, err
	}
	p := &Purse{item: it, threshold: threshold}
	p.self = p
	p.vault = newVault(p, weight+threshold.Weight())
	return p, nil
}

func newCreature(name string, strength float64, hitpoints int, anchors []string, pr profile) (*Creature, error) {
	kv := []any{"name", name, "strength", strength, "hitpoints", hitpoints}
	if math.IsNaN(strength) || math.IsInf(strength, 0) || strength <= 0 {
		return nil, fail(ErrInvalidConstruction, kv, "strength must be positive")
	}
	if hitpoints < 1 {
		return nil, fail(ErrInvalidConstruction, kv, "hit points must be positive")
	}
	c := &Creature{
		name:     name,
		strength: math.Round(strength*100) / 100,
		hp:       hitpoints,
		maxHP:    hitpoints,
		profile:  pr,
	}
	set, err := newAnchorSet(c, anchors)
	if err != nil {
		return nil, err
	}
	c.anchors = set
	return c, nil
}
