package factor

import "errors"

var (
	// ErrInvalidTarget indicates a target below 2, for which factorization
	// is not defined. No computation is attempted.
	ErrInvalidTarget = errors.New("target must be at least 2")
	// ErrNoPrimeFactor indicates the descending scan exhausted a non-empty
	// factor set without finding a prime. Every composite integer has a
	// prime factor, so seeing this error means the sieve bound computation
	// is broken; it is not a recoverable condition.
	ErrNoPrimeFactor = errors.New("no prime factor found for composite target")
)

// Result holds the outcome of a largest-prime-factor run.
type Result struct {
	TargetPrime bool   // Target has no proper factor; Factor is unset.
	Factor      uint64 // Largest prime factor when TargetPrime is false.
	Stats       Stats  // Work counters for the run.
}

// Stats counts the arithmetic work a run performed. The enumeration bound
// and the descending scan exist to keep these numbers small relative to the
// target, so they are reported rather than discarded.
type Stats struct {
	Divisions      uint64 // Trial divisions across enumeration and scanning.
	FactorsFound   int    // Size of the deduplicated factor set.
	FactorsScanned int    // Factors examined before the scan returned.
	SieveBound     uint64 // Bound the primality sieve was built over.
	PrimesSieved   int    // Primes the sieve produced for the scan.
}
