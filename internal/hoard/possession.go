// Package hoard models who holds what: possessions, the containers that
// nest them, the anchors on a creature's body, and the creatures themselves.
//
// The graph is owned top-down. A creature's anchors and a container's entries
// are the only owning edges; holder and ancestor links are plain lookups
// walked on demand. Nothing here is safe for concurrent use: the simulation
// is turn-sequential and every call runs to completion on its own.
package hoard

import (
	"loot-arena/internal/ducat"
	"loot-arena/internal/measure"
	"loot-arena/internal/registry"
)

// Holder is anything a possession can be held by: an *Anchor on a creature
// or a Container.
type Holder interface {
	holds()
}

// Possession is a physical item that can be weighed, valued and held.
// The interface is sealed; the implementations are *Weapon, *Armor,
// *Backpack and *Purse.
type Possession interface {
	// ID and Kind are fixed at construction and remain readable after termination.
	ID() registry.ID
	Kind() Kind
	Terminated() bool

	// Weight is the possession's own mass, excluding anything it contains.
	Weight(u measure.Unit) (float64, error)
	Value() (ducat.Ducat, error)
	Holder() (Holder, error)
	UltimateHolder() (*Creature, error)
	CanHaveAsHolder(h Holder) bool
	Terminate() error

	core() *item
}

// item carries the state every possession shares.
type item struct {
	self       Possession
	forge      *Forge
	id         registry.ID
	kind       Kind
	weight     measure.Weight
	holder     Holder
	terminated bool
}

func (it *item) core() *item { return it }

// ID returns the possession's identity within its kind.
func (it *item) ID() registry.ID { return it.id }

// Kind returns the possession's family.
func (it *item) Kind() Kind { return it.kind }

// Terminated reports whether the possession has been destroyed.
func (it *item) Terminated() bool { return it.terminated }

func (it *item) alive() error {
	if it.terminated {
		return fail(ErrTerminated, []any{"id", it.id, "kind", KindName(it.kind)},
			"%s %d", KindName(it.kind), it.id)
	}
	return nil
}

// Weight returns the possession's own weight in unit u.
func (it *item) Weight(u measure.Unit) (float64, error) {
	if err := it.alive(); err != nil {
		return 0, err
	}
	return it.weight.In(u), nil
}

// Holder returns the anchor or container currently holding the possession,
// or nil.
func (it *item) Holder() (Holder, error) {
	if err := it.alive(); err != nil {
		return nil, err
	}
	return it.holder, nil
}

// UltimateHolder walks the holder chain up to the creature carrying the
// possession. It returns nil when the chain ends in an unheld root.
func (it *item) UltimateHolder() (*Creature, error) {
	if err := it.alive(); err != nil {
		return nil, err
	}
	return ultimate(it.holder), nil
}

// CanHaveAsHolder accepts no holder, an anchor of a living creature, or a
// container that is not terminated and is not the possession itself.
func (it *item) CanHaveAsHolder(h Holder) bool {
	if it.terminated {
		return false
	}
	switch h := h.(type) {
	case nil:
		return true
	case *Anchor:
		return h != nil && h.owner != nil && !h.owner.killed
	case Container:
		return h != nil && !h.Terminated() && Possession(h) != it.self
	}
	return false
}

// ultimate returns the creature at the root of h's chain.
func ultimate(h Holder) *Creature {
	for h != nil {
		switch cur := h.(type) {
		case *Anchor:
			return cur.owner
		case Container:
			h = cur.core().holder
		default:
			return nil
		}
	}
	return nil
}

// load is the weight p adds to whatever holds it, contents included.
func load(p Possession) measure.Weight {
	if c, ok := p.(Container); ok {
		return c.contents().used()
	}
	return p.core().weight
}

// detach cuts p loose from its holder, whatever state the holder is in.
func detach(p Possession) {
	it := p.core()
	switch h := it.holder.(type) {
	case *Anchor:
		h.held = nil
	case Container:
		h.contents().remove(p)
	}
	it.holder = nil
}

// terminate marks p destroyed and returns its identity to the registry.
func (it *item) terminate() {
	detach(it.self)
	it.terminated = true
	if it.forge != nil {
		it.forge.reg.Release(it.kind, it.id)
	}
}
