package factor

import "math"

// maxRoot is the largest integer whose square still fits in a uint64.
const maxRoot = 1<<32 - 1

// Enumerate returns every proper factor of target discovered by trial
// division against a shrinking search bound seeded with floor(sqrt(target)).
// Each dividing candidate contributes itself and its co-factor, so the
// result is in discovery order with pairs adjacent. An empty result means
// target is prime: no divisor exists in [2, floor(sqrt(target))].
//
// The set is deduplicated; a perfect square stores its root once. At most
// O(sqrt(target)) divisions are performed.
func Enumerate(target uint64) ([]uint64, error) {
	if target < 2 {
		return nil, ErrInvalidTarget
	}
	var st Stats
	return enumerate(target, &st), nil
}

// enumerate runs the bounded trial division, recording work in st. The
// caller guarantees target >= 2.
func enumerate(target uint64, st *Stats) []uint64 {
	bound := isqrt(target)

	var factors []uint64
	for candidate := uint64(2); candidate <= bound; candidate++ {
		st.Divisions++
		if target%candidate != 0 {
			continue
		}

		factors = append(factors, candidate)
		cofactor := target / candidate
		// Candidates ascend and co-factors descend with the square root
		// between them, so the self-pair at the root is the only possible
		// duplicate; store it once.
		if cofactor != candidate {
			factors = append(factors, cofactor)
		}
		// A co-factor inside the search window caps every remaining
		// candidate: nothing above it can still form a pair below it.
		if cofactor < bound {
			bound = cofactor
		}
	}

	st.FactorsFound = len(factors)
	return factors
}

// isqrt returns floor(sqrt(n)) exactly. The float64 estimate can land one
// off near perfect squares for large n, so it is corrected in integer steps.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
