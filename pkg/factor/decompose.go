package factor

// Decompose returns the complete prime factorization of target, ascending,
// with repeated primes listed once per occurrence. It applies Largest
// repeatedly: extract the largest prime factor, divide it out, and recurse
// on the quotient until the remainder is itself prime. Multiplying the
// returned primes together reconstructs target exactly.
func Decompose(target uint64) ([]uint64, error) {
	if target < 2 {
		return nil, ErrInvalidTarget
	}

	var primes []uint64
	rest := target
	for {
		res, err := Largest(rest)
		if err != nil {
			return nil, err
		}
		if res.TargetPrime {
			primes = append(primes, rest)
			break
		}
		primes = append(primes, res.Factor)
		// The quotient of a composite by its largest prime factor is at
		// least 2, so the loop always terminates on a prime remainder.
		rest /= res.Factor
	}

	// Extraction runs largest-first, so the list is non-increasing;
	// reverse it into ascending order.
	for i, j := 0, len(primes)-1; i < j; i, j = i+1, j-1 {
		primes[i], primes[j] = primes[j], primes[i]
	}
	return primes, nil
}
