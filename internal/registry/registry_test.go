package registry

import (
	"errors"
	"testing"
)

const (
	kindA Kind = 1
	kindB Kind = 2
)

func mustMint(t *testing.T, r *Registry, k Kind) ID {
	t.Helper()
	id, err := r.Mint(k)
	if err != nil {
		t.Fatalf("Mint(%d): %v", k, err)
	}
	return id
}

func TestMintSkipsNilID(t *testing.T) {
	r := New()
	id := mustMint(t, r, kindA)
	if id == NilID {
		t.Fatal("expected non-nil id")
	}
	if !r.Taken(kindA, id) {
		t.Fatal("minted id should be taken")
	}
}

func TestKindsCountIndependently(t *testing.T) {
	r := New()
	a := mustMint(t, r, kindA)
	b := mustMint(t, r, kindB)
	if a != 1 || b != 1 {
		t.Fatalf("expected both kinds to start at 1; got %d and %d", a, b)
	}
	if r.Taken(kindB, 2) {
		t.Fatal("kind B should not see kind A's ids")
	}
}

func TestMultiplesSequence(t *testing.T) {
	r := New()
	r.Define(kindA, Rule{Sequence: Multiples(6), Unique: true})
	for i, want := range []ID{6, 12, 18} {
		if got := mustMint(t, r, kindA); got != want {
			t.Fatalf("mint %d = %d; want %d", i, got, want)
		}
	}
	if err := r.Claim(kindA, 7); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for 7, got %v", err)
	}
}

func TestUniqueClaimRejectsDuplicate(t *testing.T) {
	r := New()
	r.Define(kindA, Rule{Sequence: Multiples(6), Unique: true})
	if err := r.Claim(kindA, 24); err != nil {
		t.Fatalf("Claim(24): %v", err)
	}
	if err := r.Claim(kindA, 24); !errors.Is(err, ErrTaken) {
		t.Fatalf("expected ErrTaken, got %v", err)
	}
	r.Release(kindA, 24)
	if err := r.Claim(kindA, 24); err != nil {
		t.Fatalf("Claim after Release: %v", err)
	}
}

func TestMintSkipsClaimedUniqueIDs(t *testing.T) {
	r := New()
	r.Define(kindA, Rule{Sequence: Fibonacci(), Unique: true})
	if err := r.Claim(kindA, 2); err != nil {
		t.Fatal(err)
	}
	if got := mustMint(t, r, kindA); got != 1 {
		t.Fatalf("first mint = %d; want 1", got)
	}
	if got := mustMint(t, r, kindA); got != 3 {
		t.Fatalf("second mint = %d; want 3 (2 is claimed)", got)
	}
}

func TestSharedKindAllowsDuplicates(t *testing.T) {
	r := New()
	r.Define(kindB, Rule{Sequence: Primes()})
	if err := r.Claim(kindB, 7); err != nil {
		t.Fatal(err)
	}
	if err := r.Claim(kindB, 7); err != nil {
		t.Fatalf("shared kind should accept duplicate: %v", err)
	}
	if n := r.Count(kindB); n != 2 {
		t.Fatalf("Count = %d; want 2", n)
	}
	r.Release(kindB, 7)
	if !r.Taken(kindB, 7) {
		t.Fatal("one holder still uses 7")
	}
}

func TestReleaseUnknownIsNoop(t *testing.T) {
	r := New()
	// Releasing an id that was never minted must not panic.
	r.Release(Kind(99), 5)
}

func TestSequences(t *testing.T) {
	primes := Primes()
	for _, p := range []ID{2, 3, 5, 7, 11, 13, 97} {
		if !primes.Valid(p) {
			t.Errorf("%d should be prime", p)
		}
	}
	for _, n := range []ID{0, 1, 4, 9, 91} {
		if primes.Valid(n) {
			t.Errorf("%d should not be prime", n)
		}
	}
	if got, _ := primes.Next(13); got != 17 {
		t.Errorf("Next(13) = %d; want 17", got)
	}
	fib := Fibonacci()
	if got, _ := fib.Next(8); got != 13 {
		t.Errorf("fib Next(8) = %d; want 13", got)
	}
	if fib.Valid(4) || !fib.Valid(21) {
		t.Error("fibonacci validity wrong")
	}
}

func TestFibonacciMintStopsAtLargestID(t *testing.T) {
	const largest ID = 12200160415121876738
	r := New()
	r.Define(kindA, Rule{Sequence: Fibonacci(), Unique: true})
	var last ID
	for i := range 92 {
		id := mustMint(t, r, kindA)
		if id <= last {
			t.Fatalf("mint %d = %d; not above %d", i, id, last)
		}
		last = id
	}
	if last != largest {
		t.Fatalf("last id = %d; want %d", last, largest)
	}
	if _, err := r.Mint(kindA); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if Fibonacci().Valid(largest + 1) {
		t.Error("no Fibonacci number lies above the largest one")
	}
}

func TestSequencesReportExhaustion(t *testing.T) {
	const maxID ID = 1<<64 - 1
	cases := map[string]struct {
		seq  Sequence
		prev ID
	}{
		"counter":   {Counter(), maxID},
		"multiples": {Multiples(6), maxID - 3},
		"primes":    {Primes(), maxID - 1},
	}
	for name, tc := range cases {
		if id, ok := tc.seq.Next(tc.prev); ok {
			t.Errorf("%s: Next(%d) = %d; want exhaustion", name, tc.prev, id)
		}
	}
}
