package hoard

import (
	"loot-arena/internal/ducat"
)

// Backpack is a general-purpose container for possessions and ducats.
type Backpack struct {
	item
	vault
	value ducat.Ducat
}

// Value is the backpack's own worth plus the worth of everything inside it,
// counting each ducat at face value.
func (b *Backpack) Value() (ducat.Ducat, error) {
	if err := b.alive(); err != nil {
		return 0, err
	}
	return b.worth(), nil
}

func (b *Backpack) worth() ducat.Ducat {
	sum := b.value + b.coins
	for _, e := range b.entries {
		if v, err := e.Value(); err == nil {
			sum += v
		}
	}
	return sum
}

// Terminate destroys the backpack. Its contents are dropped first and end up unheld.
func (b *Backpack) Terminate() error {
	if err := b.alive(); err != nil {
		return err
	}
	if _, _, err := b.EmptyAll(); err != nil {
		return err
	}
	b.terminate()
	return nil
}
