// Package ducat is the currency value type. A Ducat amount is immutable:
// arithmetic returns new values and never goes below zero.
package ducat

import (
	"errors"
	"fmt"
	"math"

	"loot-arena/internal/measure"
)

// ErrNegative is returned when a subtraction would drop below zero.
var ErrNegative = errors.New("ducat: amount would become negative")

// ErrOverflow is returned when an addition does not fit.
var ErrOverflow = errors.New("ducat: amount overflows")

// UnitWeight is the mass of a single ducat coin.
var UnitWeight = measure.Of(50, measure.Gram)

// Ducat is a non-negative number of coins.
type Ducat uint64

// Zero is the empty amount.
const Zero Ducat = 0

// Add returns d+o.
func (d Ducat) Add(o Ducat) (Ducat, error) {
	if uint64(o) > math.MaxUint64-uint64(d) {
		return d, ErrOverflow
	}
	return d + o, nil
}

// Sub returns d-o, or ErrNegative when o is larger than d.
func (d Ducat) Sub(o Ducat) (Ducat, error) {
	if o > d {
		return d, fmt.Errorf("%w: %d - %d", ErrNegative, d, o)
	}
	return d - o, nil
}

// Min returns the smaller of d and o.
func (d Ducat) Min(o Ducat) Ducat {
	if o < d {
		return o
	}
	return d
}

// IsZero reports whether d holds no coins.
func (d Ducat) IsZero() bool { return d == 0 }

// Weight is the total mass of the coins.
func (d Ducat) Weight() measure.Weight { return measure.Weight(float64(d)) * UnitWeight }

func (d Ducat) String() string { return fmt.Sprintf("%dd", uint64(d)) }
