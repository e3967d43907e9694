package ducat

import (
	"errors"
	"math"
	"testing"

	"loot-arena/internal/measure"
)

func TestAddSub(t *testing.T) {
	sum, err := Ducat(90).Add(20)
	if err != nil || sum != 110 {
		t.Fatalf("90+20 = %v, %v; want 110", sum, err)
	}
	diff, err := sum.Sub(10)
	if err != nil || diff != 100 {
		t.Fatalf("110-10 = %v, %v; want 100", diff, err)
	}
}

func TestSubBelowZeroFails(t *testing.T) {
	d := Ducat(5)
	got, err := d.Sub(6)
	if !errors.Is(err, ErrNegative) {
		t.Fatalf("expected ErrNegative, got %v", err)
	}
	if got != d {
		t.Fatalf("failed subtraction must return the receiver unchanged; got %v", got)
	}
}

func TestAddOverflow(t *testing.T) {
	if _, err := Ducat(math.MaxUint64).Add(1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestWeight(t *testing.T) {
	if got := Ducat(20).Weight().In(measure.Kilogram); math.Abs(got-1) > 1e-9 {
		t.Fatalf("20 ducats weigh %vkg; want 1", got)
	}
	if !Zero.IsZero() || Ducat(1).IsZero() {
		t.Fatal("IsZero misreports")
	}
}
