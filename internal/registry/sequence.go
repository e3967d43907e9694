package registry

import "math"

// Sequence enumerates the ids a kind may carry, in increasing order.
type Sequence interface {
	// Next returns the smallest valid id strictly greater than prev, or
	// false when no such id fits in an ID.
	Next(prev ID) (ID, bool)
	// Valid reports whether id belongs to the sequence.
	Valid(id ID) bool
}

type counter struct{}

// Counter accepts every positive integer.
func Counter() Sequence { return counter{} }

func (counter) Next(prev ID) (ID, bool) {
	if prev == math.MaxUint64 {
		return NilID, false
	}
	return prev + 1, true
}

func (counter) Valid(id ID) bool { return id > 0 }

type multiples struct{ step ID }

// Multiples accepts positive multiples of step.
func Multiples(step uint64) Sequence {
	if step == 0 {
		step = 1
	}
	return multiples{step: ID(step)}
}

func (m multiples) Next(prev ID) (ID, bool) {
	n := prev/m.step + 1
	if n > math.MaxUint64/m.step {
		return NilID, false
	}
	return n * m.step, true
}

func (m multiples) Valid(id ID) bool { return id > 0 && id%m.step == 0 }

type primes struct{}

// Primes accepts prime numbers.
func Primes() Sequence { return primes{} }

func (primes) Next(prev ID) (ID, bool) {
	for id := prev + 1; id > prev; id++ {
		if isPrime(uint64(id)) {
			return id, true
		}
	}
	return NilID, false
}

func (primes) Valid(id ID) bool { return isPrime(uint64(id)) }

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

type fibonacci struct{}

// Fibonacci accepts the positive Fibonacci numbers (1, 2, 3, 5, 8, ...).
// The largest one that fits in an ID is F(93).
func Fibonacci() Sequence { return fibonacci{} }

func (fibonacci) Next(prev ID) (ID, bool) {
	a, b := ID(1), ID(2)
	for a <= prev {
		if b < a {
			return NilID, false
		}
		a, b = b, a+b
	}
	return a, true
}

func (fibonacci) Valid(id ID) bool {
	a, b := ID(1), ID(2)
	for a < id {
		if b < a {
			return false
		}
		a, b = b, a+b
	}
	return a == id
}
