package hoard

import (
	"loot-arena/internal/ducat"
	"loot-arena/internal/measure"
)

// Anchor is a named slot on a creature's body. It holds at most one
// possession, or a single ducat.
type Anchor struct {
	owner *Creature
	name  string
	held  Possession
	coin  bool
}

func (a *Anchor) holds() {}

// Name returns the slot name.
func (a *Anchor) Name() string { return a.name }

// Creature returns the anchor's owner.
func (a *Anchor) Creature() *Creature { return a.owner }

// Item returns the possession in the slot, or nil.
func (a *Anchor) Item() Possession { return a.held }

// HoldsDucat reports whether the slot carries a single ducat.
func (a *Anchor) HoldsDucat() bool { return a.coin }

// Empty reports whether nothing occupies the slot.
func (a *Anchor) Empty() bool { return a.held == nil && !a.coin }

// load is what the slot adds to its creature's used capacity.
func (a *Anchor) load() measure.Weight {
	switch {
	case a.held != nil:
		return load(a.held)
	case a.coin:
		return ducat.UnitWeight
	}
	return 0
}

// AnchorSet is the fixed set of slots on one creature. Its slot names are
// chosen at construction and never change.
type AnchorSet struct {
	owner  *Creature
	order  []*Anchor
	byName map[string]*Anchor
}

func newAnchorSet(owner *Creature, names []string) (*AnchorSet, error) {
	if len(names) == 0 {
		return nil, fail(ErrInvalidConstruction, nil, "a creature needs at least one anchor")
	}
	s := &AnchorSet{owner: owner, byName: make(map[string]*Anchor, len(names))}
	for _, n := range names {
		if n == "" {
			return nil, fail(ErrInvalidConstruction, nil, "empty anchor name")
		}
		if _, dup := s.byName[n]; dup {
			return nil, fail(ErrInvalidConstruction, []any{"anchor", n}, "duplicate anchor %q", n)
		}
		a := &Anchor{owner: owner, name: n}
		s.order = append(s.order, a)
		s.byName[n] = a
	}
	return s, nil
}

// Names returns the slot names in construction order.
func (s *AnchorSet) Names() []string {
	out := make([]string, len(s.order))
	for i, a := range s.order {
		out[i] = a.name
	}
	return out
}

// All returns the anchors in construction order.
func (s *AnchorSet) All() []*Anchor {
	out := make([]*Anchor, len(s.order))
	copy(out, s.order)
	return out
}

// At returns the anchor called name.
func (s *AnchorSet) At(name string) (*Anchor, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Free returns the names of empty slots in construction order.
func (s *AnchorSet) Free() []string {
	var out []string
	for _, a := range s.order {
		if a.Empty() {
			out = append(out, a.name)
		}
	}
	return out
}

// slot resolves name to an empty-or-not anchor on a living owner.
func (s *AnchorSet) slot(name string) (*Anchor, error) {
	kv := []any{"creature", s.owner.name, "anchor", name}
	if s.owner.killed {
		return nil, fail(ErrInvalidAnchor, kv, "%s is killed", s.owner.name)
	}
	a, ok := s.byName[name]
	if !ok {
		return nil, fail(ErrInvalidAnchor, kv, "%s has no anchor %q", s.owner.name, name)
	}
	return a, nil
}

func (s *AnchorSet) checkAssign(p Possession, name string) (*Anchor, error) {
	a, err := s.slot(name)
	if err != nil {
		return nil, err
	}
	kv := []any{"creature", s.owner.name, "anchor", name}
	if !a.Empty() {
		return nil, fail(ErrInvalidAnchor, kv, "anchor %q is occupied", name)
	}
	if p == nil {
		return nil, fail(ErrInvalidAnchor, kv, "nil possession")
	}
	it := p.core()
	kv = append(kv, "id", it.id, "kind", KindName(it.kind))
	if it.terminated {
		return nil, fail(ErrInvalidAnchor, kv, "%s %d is terminated", KindName(it.kind), it.id)
	}
	if it.holder != nil || !p.CanHaveAsHolder(a) {
		return nil, fail(ErrInvalidAnchor, kv, "%s %d is already held", KindName(it.kind), it.id)
	}
	if (s.owner.used() + load(p)).Exceeds(s.owner.maxCapacity()) {
		return nil, fail(ErrInvalidAnchor, kv, "%s %d exceeds %s's capacity", KindName(it.kind), it.id, s.owner.name)
	}
	if !s.owner.profile.accepts(s.owner, p) {
		return nil, fail(ErrInvalidAnchor, kv, "%s refuses %s %d", s.owner.name, KindName(it.kind), it.id)
	}
	return a, nil
}

// CanAssign reports whether Assign(p, name) would succeed.
func (s *AnchorSet) CanAssign(p Possession, name string) bool {
	_, err := s.checkAssign(p, name)
	return err == nil
}

// Assign puts the unheld possession p on the slot called name.
func (s *AnchorSet) Assign(p Possession, name string) error {
	a, err := s.checkAssign(p, name)
	if err != nil {
		return err
	}
	a.held = p
	p.core().holder = a
	return nil
}

// CanAssignDucat reports whether AssignDucat(name) would succeed.
func (s *AnchorSet) CanAssignDucat(name string) bool {
	a, err := s.slot(name)
	if err != nil || !a.Empty() {
		return false
	}
	return !(s.owner.used() + ducat.UnitWeight).Exceeds(s.owner.maxCapacity())
}

// AssignDucat puts a single ducat on the slot called name.
func (s *AnchorSet) AssignDucat(name string) error {
	a, err := s.slot(name)
	if err != nil {
		return err
	}
	if !s.CanAssignDucat(name) {
		return fail(ErrInvalidAnchor, []any{"creature", s.owner.name, "anchor", name},
			"anchor %q cannot take a ducat", name)
	}
	a.coin = true
	return nil
}

// Clear empties the slot called name. It returns the possession it held,
// now unheld, or the ducat taken off the slot. The caller owns that ducat:
// it is no longer counted on the creature.
func (s *AnchorSet) Clear(name string) (Possession, ducat.Ducat, error) {
	a, err := s.slot(name)
	if err != nil {
		return nil, ducat.Zero, err
	}
	var coin ducat.Ducat
	if a.coin {
		coin, a.coin = 1, false
	}
	p := a.held
	if p != nil {
		detach(p)
	}
	return p, coin, nil
}

// carried finds the anchor of this set holding p directly.
func (s *AnchorSet) carried(p Possession) (*Anchor, error) {
	kv := []any{"creature", s.owner.name}
	if s.owner.killed {
		return nil, fail(ErrInvalidAnchor, kv, "%s is killed", s.owner.name)
	}
	if p == nil {
		return nil, fail(ErrInvalidAnchor, kv, "nil possession")
	}
	if err := p.core().alive(); err != nil {
		return nil, err
	}
	a, ok := p.core().holder.(*Anchor)
	if !ok || a.owner != s.owner {
		return nil, fail(ErrInvalidAnchor, append(kv, "id", p.ID()),
			"%s %d is not on an anchor of %s", KindName(p.Kind()), p.ID(), s.owner.name)
	}
	return a, nil
}

// TransferTo moves p from one of this creature's anchors onto the slot
// called name of other. Either both steps happen or neither does.
func (s *AnchorSet) TransferTo(p Possession, other *Creature, name string) error {
	from, err := s.carried(p)
	if err != nil {
		return err
	}
	if other == nil {
		return fail(ErrInvalidAnchor, []any{"creature", s.owner.name}, "nil target creature")
	}
	detach(p)
	if err := other.anchors.Assign(p, name); err != nil {
		from.held = p
		p.core().holder = from
		return err
	}
	return nil
}

// TransferToContainer moves p from one of this creature's anchors into c.
// Either both steps happen or neither does.
func (s *AnchorSet) TransferToContainer(p Possession, c Container) error {
	from, err := s.carried(p)
	if err != nil {
		return err
	}
	if c == nil {
		return fail(ErrAdmissionDenied, []any{"creature", s.owner.name}, "nil container")
	}
	detach(p)
	if err := c.Admit(p); err != nil {
		from.held = p
		p.core().holder = from
		return err
	}
	return nil
}
