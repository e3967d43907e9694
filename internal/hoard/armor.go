package hoard

import (
	"loot-arena/internal/ducat"
)

// Armor is a possession that adds protection when worn.
type Armor struct {
	item
	full    int
	current int
	value   ducat.Ducat
}

// Protection returns the armor's current protection.
func (a *Armor) Protection() (int, error) {
	if err := a.alive(); err != nil {
		return 0, err
	}
	return a.current, nil
}

// FullProtection returns the protection of undamaged armor.
func (a *Armor) FullProtection() (int, error) {
	if err := a.alive(); err != nil {
		return 0, err
	}
	return a.full, nil
}

// Wear lowers current protection by n, never below zero.
func (a *Armor) Wear(n int) error {
	if err := a.alive(); err != nil {
		return err
	}
	if n < 0 {
		return fail(ErrInvalidConstruction, []any{"id", a.id}, "negative wear %d", n)
	}
	a.current = max(0, a.current-n)
	return nil
}

// Repair restores current protection by n, never above full.
func (a *Armor) Repair(n int) error {
	if err := a.alive(); err != nil {
		return err
	}
	if n < 0 {
		return fail(ErrInvalidConstruction, []any{"id", a.id}, "negative repair %d", n)
	}
	a.current = min(a.full, a.current+n)
	return nil
}

// Value scales the full value by how much protection is left.
func (a *Armor) Value() (ducat.Ducat, error) {
	if err := a.alive(); err != nil {
		return 0, err
	}
	if a.full == 0 {
		return 0, nil
	}
	return ducat.Ducat(uint64(a.value) * uint64(a.current) / uint64(a.full)), nil
}

// Terminate destroys the armor, dropping it from whoever holds it.
func (a *Armor) Terminate() error {
	if err := a.alive(); err != nil {
		return err
	}
	a.terminate()
	return nil
}
