// Package registry mints per-kind identities. A Registry is the explicit
// context that replaces process-wide id lists: every possession built through
// the same Registry draws from the same per-kind counters.
package registry

import (
	"errors"
	"fmt"
)

// ID identifies a possession within its kind. The zero ID is never issued.
type ID uint64

// NilID is the zero value. No valid possession carries it.
const NilID ID = 0

// Kind is a small integer key naming a family of identities.
type Kind uint8

// ErrInvalidID is returned when an explicit id breaks the kind's rule.
var ErrInvalidID = errors.New("registry: invalid id")

// ErrTaken is returned when a unique kind is asked for an id already in use.
var ErrTaken = errors.New("registry: id already taken")

// ErrExhausted is returned when a kind has no ids left to mint.
var ErrExhausted = errors.New("registry: ids exhausted")

// Rule describes which ids a kind may carry and whether they must be unique.
type Rule struct {
	Sequence Sequence
	Unique   bool
}

// Registry tracks the last minted id and the ids in use, per kind.
type Registry struct {
	rules map[Kind]Rule
	last  map[Kind]ID
	taken map[Kind]map[ID]int
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		rules: make(map[Kind]Rule),
		last:  make(map[Kind]ID),
		taken: make(map[Kind]map[ID]int),
	}
}

// Define installs the rule for kind k. Redefining a kind keeps its counter.
func (r *Registry) Define(k Kind, rule Rule) {
	if rule.Sequence == nil {
		rule.Sequence = Counter()
	}
	r.rules[k] = rule
	if r.taken[k] == nil {
		r.taken[k] = make(map[ID]int)
	}
}

func (r *Registry) rule(k Kind) Rule {
	rule, ok := r.rules[k]
	if !ok {
		r.Define(k, Rule{})
		rule = r.rules[k]
	}
	return rule
}

// Mint issues the next free id of kind k and marks it in use.
func (r *Registry) Mint(k Kind) (ID, error) {
	rule := r.rule(k)
	id, ok := rule.Sequence.Next(r.last[k])
	for ok && rule.Unique && r.taken[k][id] > 0 {
		id, ok = rule.Sequence.Next(id)
	}
	if !ok {
		return NilID, fmt.Errorf("%w: kind %d after %d", ErrExhausted, k, r.last[k])
	}
	r.last[k] = id
	r.taken[k][id]++
	return id, nil
}

// Claim marks an explicitly chosen id of kind k as in use.
func (r *Registry) Claim(k Kind, id ID) error {
	rule := r.rule(k)
	if id == NilID || !rule.Sequence.Valid(id) {
		return fmt.Errorf("%w: %d for kind %d", ErrInvalidID, id, k)
	}
	if rule.Unique && r.taken[k][id] > 0 {
		return fmt.Errorf("%w: %d for kind %d", ErrTaken, id, k)
	}
	r.taken[k][id]++
	return nil
}

// Release gives one use of id back to kind k.
func (r *Registry) Release(k Kind, id ID) {
	store := r.taken[k]
	if store == nil || store[id] == 0 {
		return
	}
	store[id]--
	if store[id] == 0 {
		delete(store, id)
	}
}

// Taken reports whether id is currently in use for kind k.
func (r *Registry) Taken(k Kind, id ID) bool {
	return r.taken[k][id] > 0
}

// Count returns the number of live ids of kind k, counting shared ids once per holder.
func (r *Registry) Count(k Kind) int {
	n := 0
	for _, c := range r.taken[k] {
		n += c
	}
	return n
}
