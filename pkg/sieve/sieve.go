package sieve

import "fmt"

// Mark is the resolution state of one index in the elimination grid.
type Mark uint8

const (
	Unknown   Mark = iota // Index has not been resolved yet.
	Composite             // Index has a divisor other than 1 and itself.
	Prime                 // Index is prime.
)

func (m Mark) String() string {
	switch m {
	case Unknown:
		return "unknown"
	case Composite:
		return "composite"
	case Prime:
		return "prime"
	}
	return fmt.Sprintf("mark(%d)", uint8(m))
}

// Sieve is an elimination grid over [0, bound]. Construction resolves every
// index, so a finished grid holds no Unknown entries: each index in
// [2, bound] ends up exactly one of Composite or Prime, and 0 and 1 are
// always Composite.
type Sieve struct {
	bound uint64
	marks []Mark
}

// New builds a fully resolved sieve for [0, bound].
//
// Algorithm:
//  1. Mark 0 and 1 Composite and take 2 as the current prime.
//  2. Mark every multiple of the current prime above itself Composite.
//  3. Scan forward from the current prime for the next Unknown index; it has
//     survived elimination by every smaller prime, so mark it Prime and make
//     it current.
//  4. Repeat from step 2 until the scan passes the bound.
//
// Marking costs O(bound * log log bound); the grid is O(bound) bytes.
// A bound below 2 yields a grid with no primes, which is valid.
func New(bound uint64) *Sieve {
	s := &Sieve{
		bound: bound,
		marks: make([]Mark, bound+1),
	}

	if bound < 2 {
		for i := range s.marks {
			s.marks[i] = Composite
		}
		return s
	}
	s.marks[0], s.marks[1] = Composite, Composite

	current := uint64(2)
	s.marks[current] = Prime
	for {
		for m := current * 2; m <= bound; m += current {
			s.marks[m] = Composite
		}

		next := current + 1
		for next <= bound && s.marks[next] != Unknown {
			next++
		}
		if next > bound {
			break
		}
		s.marks[next] = Prime
		current = next
	}
	return s
}

// Bound returns the highest index the grid covers.
func (s *Sieve) Bound() uint64 {
	return s.bound
}

// IsPrime reports whether n is marked Prime. Values beyond the bound are
// outside the grid and report false.
func (s *Sieve) IsPrime(n uint64) bool {
	if n > s.bound {
		return false
	}
	return s.marks[n] == Prime
}

// Primes extracts every index marked Prime, ascending.
func (s *Sieve) Primes() []uint64 {
	var primes []uint64
	for i, m := range s.marks {
		if m == Prime {
			primes = append(primes, uint64(i))
		}
	}
	return primes
}

// Generate returns the ordered list of all primes <= bound.
func Generate(bound uint64) []uint64 {
	return New(bound).Primes()
}
