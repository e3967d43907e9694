package hoard

import (
	"fmt"

	"loot-arena/internal/ducat"
	"loot-arena/internal/measure"
)

// Species selects a creature's rules for capacity, targeting and damage.
type Species uint8

const (
	SpeciesHero Species = iota + 1
	SpeciesMonster
)

func (s Species) String() string {
	switch s {
	case SpeciesHero:
		return "hero"
	case SpeciesMonster:
		return "monster"
	default:
		return fmt.Sprintf("species(%d)", uint8(s))
	}
}

// profile is the species-specific half of a creature.
type profile interface {
	species() Species
	maxCapacity(c *Creature) measure.Weight
	// accepts applies species rules to p joining c's possessions.
	accepts(c *Creature, p Possession) bool
	canTarget(c, other *Creature) bool
	damage(c *Creature) int
	protection(c *Creature) int
	// recover returns the hit points regained after a kill.
	recover(c *Creature, fraction float64) int
}

// Creature is a fighter carrying possessions on its anchors. Once killed it
// can no longer act or be inspected, but its possessions remain reachable
// for looting through Anchors, Carried and Surrender.
type Creature struct {
	name     string
	strength float64
	hp       int
	maxHP    int
	killed   bool
	anchors  *AnchorSet
	profile  profile

	baseDamage int
	skin       int
}

func (c *Creature) live() error {
	if c.killed {
		return fail(ErrDeadActor, []any{"creature", c.name}, "%s is killed", c.name)
	}
	return nil
}

// Species returns the creature's species.
func (c *Creature) Species() Species { return c.profile.species() }

// Killed reports whether the creature is dead. Death is permanent.
func (c *Creature) Killed() bool { return c.killed }

// Anchors returns the creature's slots.
func (c *Creature) Anchors() *AnchorSet { return c.anchors }

// Name returns the creature's name.
func (c *Creature) Name() (string, error) {
	if err := c.live(); err != nil {
		return "", err
	}
	return c.name, nil
}

// Strength returns the creature's strength, rounded to two decimals.
func (c *Creature) Strength() (float64, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.strength, nil
}

// Hitpoints returns the current hit points.
func (c *Creature) Hitpoints() (int, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.hp, nil
}

// MaxHitpoints returns the maximum hit points.
func (c *Creature) MaxHitpoints() (int, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.maxHP, nil
}

// Protection is the number a strike roll must reach to hit this creature.
func (c *Creature) Protection() (int, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.profile.protection(c), nil
}

// Damage is what a successful strike by this creature takes off.
func (c *Creature) Damage() (int, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return max(1, c.profile.damage(c)), nil
}

// MaximumCapacity is the weight the creature can carry.
func (c *Creature) MaximumCapacity(u measure.Unit) (float64, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.maxCapacity().In(u), nil
}

// UsedCapacity is the weight of everything reachable from the anchors.
func (c *Creature) UsedCapacity(u measure.Unit) (float64, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.used().In(u), nil
}

func (c *Creature) maxCapacity() measure.Weight { return c.profile.maxCapacity(c) }

func (c *Creature) used() measure.Weight {
	var w measure.Weight
	for _, a := range c.anchors.order {
		w += a.load()
	}
	return w
}

// CanTarget reports whether c may strike other.
func (c *Creature) CanTarget(other *Creature) bool {
	if c.killed || other == nil || other == c || other.killed {
		return false
	}
	return c.profile.canTarget(c, other)
}

// TakeDamage lowers hit points by n, never below zero. Reaching zero kills
// the creature. It returns the new hit points.
func (c *Creature) TakeDamage(n int) (int, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	c.hp = max(0, c.hp-max(0, n))
	if c.hp == 0 {
		c.killed = true
	}
	return c.hp, nil
}

// Recover lets a victor regain part of its lost hit points; fraction is in
// [0, 1). It returns the hit points regained.
func (c *Creature) Recover(fraction float64) (int, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	if fraction < 0 || fraction >= 1 {
		fraction = 0
	}
	gain := min(c.maxHP-c.hp, c.profile.recover(c, fraction))
	c.hp += gain
	return gain, nil
}

// Carried lists every possession reachable from the anchors, anchor by
// anchor, depth first. It works on killed creatures.
func (c *Creature) Carried() []Possession {
	var out []Possession
	for _, a := range c.anchors.order {
		if a.held != nil {
			out = append(out, reach(a.held)...)
		}
	}
	return out
}

// containers lists every container reachable from the anchors, breadth first.
func (c *Creature) containers() []Container {
	var queue []Container
	for _, a := range c.anchors.order {
		if k, ok := a.held.(Container); ok {
			queue = append(queue, k)
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, e := range queue[i].contents().entries {
			if k, ok := e.(Container); ok {
				queue = append(queue, k)
			}
		}
	}
	return queue
}

// Containers lists every container the creature carries, breadth first.
func (c *Creature) Containers() []Container { return c.containers() }

// Stack is a pile of ducats held directly by an anchor or a container.
type Stack struct {
	Holder Holder
	Amount ducat.Ducat
}

// Stacks lists the ducat piles on the creature: anchor ducats first, then
// each container's direct stack, breadth first.
func (c *Creature) Stacks() []Stack {
	var out []Stack
	for _, a := range c.anchors.order {
		if a.coin {
			out = append(out, Stack{Holder: a, Amount: 1})
		}
	}
	for _, k := range c.containers() {
		if coins := k.contents().coins; coins > 0 {
			out = append(out, Stack{Holder: k, Amount: coins})
		}
	}
	return out
}

// Surrender detaches p from a killed creature for looting. The returned
// restore func puts p back where it was, provided p is still unheld.
func (c *Creature) Surrender(p Possession) (restore func(), err error) {
	kv := []any{"creature", c.name}
	if !c.killed {
		return nil, fail(ErrReleaseDenied, kv, "%s is still alive", c.name)
	}
	if p == nil {
		return nil, fail(ErrReleaseDenied, kv, "nil possession")
	}
	it := p.core()
	if err := it.alive(); err != nil {
		return nil, err
	}
	if ultimate(it.holder) != c {
		return nil, fail(ErrReleaseDenied, append(kv, "id", it.id),
			"%s %d is not carried by %s", KindName(it.kind), it.id, c.name)
	}
	from := it.holder
	detach(p)
	return func() {
		if it.holder != nil || it.terminated {
			return
		}
		switch h := from.(type) {
		case *Anchor:
			if h.Empty() {
				h.held = p
				it.holder = h
			}
		case Container:
			if !h.Terminated() {
				h.contents().attach(p)
			}
		}
	}, nil
}

// SurrenderDucats takes amount ducats from a stack on a killed creature.
// The returned restore func puts them back.
func (c *Creature) SurrenderDucats(from Holder, amount ducat.Ducat) (restore func(), err error) {
	kv := []any{"creature", c.name, "ducats", amount}
	if !c.killed {
		return nil, fail(ErrReleaseDenied, kv, "%s is still alive", c.name)
	}
	switch h := from.(type) {
	case *Anchor:
		if h.owner != c || !h.coin || amount != 1 {
			return nil, fail(ErrReleaseDenied, kv, "no ducat on that anchor")
		}
		h.coin = false
		return func() {
			if h.Empty() {
				h.coin = true
			}
		}, nil
	case Container:
		v := h.contents()
		if h.Terminated() || ultimate(h) != c || v.coins < amount {
			return nil, fail(ErrReleaseDenied, kv, "stack holds less than %v", amount)
		}
		v.coins -= amount
		return func() { v.coins += amount }, nil
	}
	return nil, fail(ErrReleaseDenied, kv, "unknown ducat holder")
}
