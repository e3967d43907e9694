package hoard

import (
	"loot-arena/internal/ducat"
)

// Weapon limits.
const (
	MinWeaponDamage = 1
	MaxWeaponDamage = 100
	MaxWeaponValue  = 200
)

// Weapon is a possession that adds damage when wielded.
type Weapon struct {
	item
	damage int
	value  ducat.Ducat
}

// Damage returns the damage the weapon adds to a strike.
func (w *Weapon) Damage() (int, error) {
	if err := w.alive(); err != nil {
		return 0, err
	}
	return w.damage, nil
}

// Value returns the weapon's worth.
func (w *Weapon) Value() (ducat.Ducat, error) {
	if err := w.alive(); err != nil {
		return 0, err
	}
	return w.value, nil
}

// Terminate destroys the weapon, dropping it from whoever holds it.
func (w *Weapon) Terminate() error {
	if err := w.alive(); err != nil {
		return err
	}
	w.terminate()
	return nil
}
