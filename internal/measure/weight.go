package measure

import "fmt"

// Unit is a mass unit. Weights are stored in kilograms and converted on read.
type Unit uint8

const (
	Kilogram Unit = iota
	Gram
	Pound
)

// perKilogram is how many of each unit make up one kilogram.
var perKilogram = [...]float64{
	Kilogram: 1,
	Gram:     1000,
	Pound:    2.20462262185,
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool { return int(u) < len(perKilogram) }

func (u Unit) String() string {
	switch u {
	case Kilogram:
		return "kg"
	case Gram:
		return "g"
	case Pound:
		return "lb"
	default:
		return fmt.Sprintf("unit(%d)", uint8(u))
	}
}

// ParseUnit maps a short unit name ("kg", "g", "lb") to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "kg":
		return Kilogram, nil
	case "g":
		return Gram, nil
	case "lb":
		return Pound, nil
	}
	return 0, fmt.Errorf("unknown weight unit %q", s)
}

// Weight is a non-negative mass in kilograms.
type Weight float64

// Of converts v expressed in unit u to a Weight.
func Of(v float64, u Unit) Weight {
	if !u.Valid() {
		u = Kilogram
	}
	return Weight(v / perKilogram[u])
}

// In returns the weight expressed in unit u.
func (w Weight) In(u Unit) float64 {
	if !u.Valid() {
		u = Kilogram
	}
	return float64(w) * perKilogram[u]
}

// epsilon absorbs float drift when many small weights are summed.
const epsilon = 1e-9

// Exceeds reports whether w is strictly heavier than limit.
func (w Weight) Exceeds(limit Weight) bool { return float64(w)-float64(limit) > epsilon }

func (w Weight) String() string { return fmt.Sprintf("%.3fkg", float64(w)) }
