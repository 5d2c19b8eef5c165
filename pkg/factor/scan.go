package factor

import (
	"sort"

	"github.com/odvcencio/sift/pkg/sieve"
)

// Largest computes the largest prime factor of target.
//
// The run has three stages:
//  1. Enumerate the proper factors of target by bounded trial division.
//  2. An empty factor set means target itself is prime; that is a
//     first-class outcome reported through Result.TargetPrime, not an error.
//  3. Otherwise scan the factors in descending order and return the first
//     prime among them, which is maximal by construction.
//
// The only error paths are ErrInvalidTarget for a target below 2 and the
// ErrNoPrimeFactor invariant check.
func Largest(target uint64) (Result, error) {
	if target < 2 {
		return Result{}, ErrInvalidTarget
	}

	var st Stats
	factors := enumerate(target, &st)
	if len(factors) == 0 {
		return Result{TargetPrime: true, Stats: st}, nil
	}

	f, ok := scanLargest(factors, &st)
	if !ok {
		return Result{Stats: st}, ErrNoPrimeFactor
	}
	return Result{Factor: f, Stats: st}, nil
}

// scanLargest sorts factors descending and returns the first prime among
// them. Descending order makes the first hit the maximum, so no separate
// max-tracking pass is needed. The primality oracle is a sieve built once
// over floor(sqrt(highest)), enough to certify every factor in the set.
func scanLargest(factors []uint64, st *Stats) (uint64, bool) {
	sort.Slice(factors, func(i, j int) bool { return factors[i] > factors[j] })

	highest := factors[0]
	st.SieveBound = isqrt(highest)
	primes := sieve.Generate(st.SieveBound)
	st.PrimesSieved = len(primes)

	for _, f := range factors {
		st.FactorsScanned++
		if provenPrime(f, primes, st) {
			return f, true
		}
	}
	return 0, false
}

// provenPrime trial-divides f by every listed prime below f, stopping at
// the first exact division. The list covers [2, sqrt(highest)] and any
// composite f <= highest has a prime divisor <= sqrt(f) <= sqrt(highest),
// so surviving the whole list proves f prime.
func provenPrime(f uint64, primes []uint64, st *Stats) bool {
	for _, p := range primes {
		if p >= f {
			break
		}
		st.Divisions++
		if f%p == 0 {
			return false
		}
	}
	return true
}
