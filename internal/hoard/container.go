package hoard

import (
	"slices"

	"loot-arena/internal/ducat"
	"loot-arena/internal/measure"
	"loot-arena/internal/registry"
)

// Container is a possession that holds other possessions and/or ducats.
//
// Every container keeps an identity index covering its whole transitive
// contents, so Contains answers without walking the tree. Admit and Release
// keep the index of the container and of every container above it in sync.
type Container interface {
	Possession
	Holder

	MaximumCapacity(u measure.Unit) (float64, error)
	// UsedCapacity is the container's own weight plus everything inside it.
	UsedCapacity(u measure.Unit) (float64, error)

	CanAdmit(p Possession) bool
	Admit(p Possession) error
	CanRelease(p Possession) bool
	Release(p Possession) error

	CanAdmitDucats(d ducat.Ducat) bool
	AdmitDucats(d ducat.Ducat) error
	CanReleaseDucats(d ducat.Ducat) bool
	ReleaseDucats(d ducat.Ducat) error
	// Ducats is the total held directly and in nested containers.
	Ducats() (ducat.Ducat, error)

	Entries() ([]Possession, error)
	Contains(p Possession) bool
	Lookup(k Kind, id registry.ID) []Possession
	EmptyAll() ([]Possession, ducat.Ducat, error)

	contents() *vault
}

// Ident names a possession: identities are only unique within a kind, so
// backpack 3 and armor 3 are different keys.
type Ident struct {
	Kind Kind
	ID   registry.ID
}

func identOf(p Possession) Ident { return Ident{Kind: p.Kind(), ID: p.ID()} }

// vault is the storage shared by backpacks and purses.
type vault struct {
	owner    Container
	capacity measure.Weight
	entries  []Possession
	coins    ducat.Ducat
	index    map[Ident][]Possession
}

func newVault(owner Container, capacity measure.Weight) vault {
	return vault{
		owner:    owner,
		capacity: capacity,
		index:    make(map[Ident][]Possession),
	}
}

func (v *vault) holds()           {}
func (v *vault) contents() *vault { return v }

func (v *vault) live() error { return v.owner.core().alive() }

// used is the owner's weight plus the weight of everything it holds.
func (v *vault) used() measure.Weight {
	w := v.owner.core().weight + v.coins.Weight()
	for _, e := range v.entries {
		w += load(e)
	}
	return w
}

// total is every ducat reachable from this vault.
func (v *vault) total() ducat.Ducat {
	sum := v.coins
	for _, e := range v.entries {
		if c, ok := e.(Container); ok {
			sum += c.contents().total()
		}
	}
	return sum
}

// members lists the transitive contents, depth first in entry order.
func (v *vault) members() []Possession {
	var out []Possession
	for _, e := range v.entries {
		out = append(out, reach(e)...)
	}
	return out
}

// reach is p followed by everything p contains.
func reach(p Possession) []Possession {
	out := []Possession{p}
	if c, ok := p.(Container); ok {
		out = append(out, c.contents().members()...)
	}
	return out
}

// lineage is c followed by every container above it.
func lineage(c Container) []Container {
	var out []Container
	var h Holder = c
	for h != nil {
		cur, ok := h.(Container)
		if !ok {
			break
		}
		out = append(out, cur)
		h = cur.core().holder
	}
	return out
}

// fits reports whether adding w under c keeps c, its ancestors and its
// creature within capacity. skipSelf leaves c's own limit to the caller.
func fits(c Container, w measure.Weight, skipSelf bool) bool {
	for i, a := range lineage(c) {
		if i == 0 && skipSelf {
			continue
		}
		v := a.contents()
		if (v.used() + w).Exceeds(v.capacity) {
			return false
		}
	}
	if u := ultimate(c); u != nil {
		if (u.used() + w).Exceeds(u.maxCapacity()) {
			return false
		}
	}
	return true
}

func (v *vault) register(ps []Possession) {
	for _, p := range ps {
		key := identOf(p)
		v.index[key] = append(v.index[key], p)
	}
}

func (v *vault) unregister(ps []Possession) {
	for _, p := range ps {
		key := identOf(p)
		list := slices.DeleteFunc(v.index[key], func(q Possession) bool { return q == p })
		if len(list) == 0 {
			delete(v.index, key)
			continue
		}
		v.index[key] = list
	}
}

// attach makes p a direct entry and indexes it up the whole lineage.
func (v *vault) attach(p Possession) {
	p.core().holder = v.owner
	v.entries = append(v.entries, p)
	ps := reach(p)
	for _, a := range lineage(v.owner) {
		a.contents().register(ps)
	}
}

// remove drops direct entry p and unindexes it up the whole lineage.
// The caller clears p's holder.
func (v *vault) remove(p Possession) {
	v.entries = slices.DeleteFunc(v.entries, func(q Possession) bool { return q == p })
	ps := reach(p)
	for _, a := range lineage(v.owner) {
		a.contents().unregister(ps)
	}
}

func (v *vault) checkAdmit(p Possession) error {
	if err := v.live(); err != nil {
		return err
	}
	owner := v.owner.core()
	kv := []any{"container", owner.id}
	if p == nil {
		return fail(ErrAdmissionDenied, kv, "nil possession")
	}
	it := p.core()
	kv = append(kv, "id", it.id, "kind", KindName(it.kind))
	if err := it.alive(); err != nil {
		return err
	}
	if it.holder != nil {
		return fail(ErrAdmissionDenied, kv, "%s %d is already held", KindName(it.kind), it.id)
	}
	for _, a := range lineage(v.owner) {
		if Possession(a) == p {
			return fail(ErrAdmissionDenied, kv, "%s %d would contain itself", KindName(it.kind), it.id)
		}
	}
	if !p.CanHaveAsHolder(v.owner) {
		return fail(ErrAdmissionDenied, kv, "%s %d cannot be held here", KindName(it.kind), it.id)
	}
	if !fits(v.owner, load(p), false) {
		return fail(ErrAdmissionDenied, kv, "%s %d exceeds capacity", KindName(it.kind), it.id)
	}
	if u := ultimate(v.owner); u != nil && !u.profile.accepts(u, p) {
		return fail(ErrAdmissionDenied, kv, "%s refuses %s %d", u.name, KindName(it.kind), it.id)
	}
	return nil
}

// CanAdmit reports whether Admit(p) would succeed.
func (v *vault) CanAdmit(p Possession) bool { return v.checkAdmit(p) == nil }

// Admit stores the unheld possession p directly in this container.
func (v *vault) Admit(p Possession) error {
	if err := v.checkAdmit(p); err != nil {
		return err
	}
	v.attach(p)
	return nil
}

// Contains reports whether p sits anywhere inside this container.
func (v *vault) Contains(p Possession) bool {
	if p == nil {
		return false
	}
	return slices.Contains(v.index[identOf(p)], p)
}

// Lookup returns every possession of kind k inside this container carrying id.
func (v *vault) Lookup(k Kind, id registry.ID) []Possession {
	return slices.Clone(v.index[Ident{Kind: k, ID: id}])
}

// CanRelease reports whether p can be taken out of this container.
func (v *vault) CanRelease(p Possession) bool {
	return v.live() == nil && v.Contains(p)
}

// Release takes p out of this container or any container nested in it.
// p ends up unheld.
func (v *vault) Release(p Possession) error {
	if err := v.live(); err != nil {
		return err
	}
	if !v.Contains(p) {
		kv := []any{"container", v.owner.core().id}
		if p != nil {
			kv = append(kv, "id", p.ID())
		}
		return fail(ErrReleaseDenied, kv, "possession not in container %d", v.owner.ID())
	}
	detach(p)
	return nil
}

// CanAdmitDucats reports whether AdmitDucats(d) would succeed.
func (v *vault) CanAdmitDucats(d ducat.Ducat) bool {
	if v.live() != nil {
		return false
	}
	if _, err := v.coins.Add(d); err != nil {
		return false
	}
	return fits(v.owner, d.Weight(), false)
}

// AdmitDucats merges d into this container's single coin stack.
func (v *vault) AdmitDucats(d ducat.Ducat) error {
	if err := v.live(); err != nil {
		return err
	}
	if !v.CanAdmitDucats(d) {
		return fail(ErrAdmissionDenied, []any{"container", v.owner.ID(), "ducats", d},
			"%v does not fit", d)
	}
	v.coins += d
	return nil
}

// CanReleaseDucats reports whether d ducats are reachable from here.
func (v *vault) CanReleaseDucats(d ducat.Ducat) bool {
	return v.live() == nil && v.total() >= d
}

// ReleaseDucats withdraws d ducats: first from the direct stack, then from
// each entry in order, depth first. The coins leave the graph.
func (v *vault) ReleaseDucats(d ducat.Ducat) error {
	if err := v.live(); err != nil {
		return err
	}
	if !v.CanReleaseDucats(d) {
		return fail(ErrReleaseDenied, []any{"container", v.owner.ID(), "ducats", d},
			"only %v of %v available", v.total(), d)
	}
	v.drain(d)
	return nil
}

// drain removes up to need ducats and returns how many it took.
func (v *vault) drain(need ducat.Ducat) ducat.Ducat {
	taken := v.coins.Min(need)
	v.coins -= taken
	for _, e := range v.entries {
		if taken == need {
			break
		}
		if c, ok := e.(Container); ok {
			taken += c.contents().drain(need - taken)
		}
	}
	return taken
}

// Ducats returns every ducat reachable from this container.
func (v *vault) Ducats() (ducat.Ducat, error) {
	if err := v.live(); err != nil {
		return 0, err
	}
	return v.total(), nil
}

// Entries returns the direct contents in insertion order.
func (v *vault) Entries() ([]Possession, error) {
	if err := v.live(); err != nil {
		return nil, err
	}
	return slices.Clone(v.entries), nil
}

// MaximumCapacity returns the container's weight limit, own weight included.
func (v *vault) MaximumCapacity(u measure.Unit) (float64, error) {
	if err := v.live(); err != nil {
		return 0, err
	}
	return v.capacity.In(u), nil
}

// UsedCapacity returns own weight plus the weight of all contents.
func (v *vault) UsedCapacity(u measure.Unit) (float64, error) {
	if err := v.live(); err != nil {
		return 0, err
	}
	return v.used().In(u), nil
}

// EmptyAll releases every direct entry and the direct coin stack.
// It returns what was released; afterwards UsedCapacity equals own weight.
func (v *vault) EmptyAll() ([]Possession, ducat.Ducat, error) {
	if err := v.live(); err != nil {
		return nil, 0, err
	}
	released := slices.Clone(v.entries)
	for _, e := range released {
		detach(e)
	}
	coins := v.coins
	v.coins = 0
	return released, coins, nil
}
