package sieve

import (
	"reflect"
	"testing"
)

// isPrimeByDivision checks primality by direct trial division. It is the
// ground truth the grid is checked against.
func isPrimeByDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestGenerate_Bound30(t *testing.T) {
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	got := Generate(30)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Generate(30) = %v, want %v", got, want)
	}
}

func TestGenerate_BoundBelowTwo(t *testing.T) {
	for _, bound := range []uint64{0, 1} {
		if got := Generate(bound); len(got) != 0 {
			t.Errorf("Generate(%d) = %v, want empty", bound, got)
		}
	}
}

func TestGenerate_SmallBounds(t *testing.T) {
	tests := []struct {
		bound uint64
		want  []uint64
	}{
		{bound: 2, want: []uint64{2}},
		{bound: 3, want: []uint64{2, 3}},
		{bound: 4, want: []uint64{2, 3}},
		{bound: 10, want: []uint64{2, 3, 5, 7}},
		{bound: 13, want: []uint64{2, 3, 5, 7, 11, 13}},
	}

	for _, tc := range tests {
		got := Generate(tc.bound)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Generate(%d) = %v, want %v", tc.bound, got, tc.want)
		}
	}
}

func TestGenerate_MatchesTrialDivision(t *testing.T) {
	const bound = 500

	primes := Generate(bound)

	// Every returned value must be prime.
	seen := make(map[uint64]bool, len(primes))
	for _, p := range primes {
		if !isPrimeByDivision(p) {
			t.Errorf("Generate(%d) returned composite %d", bound, p)
		}
		seen[p] = true
	}

	// Every prime <= bound must be returned, and nothing else.
	for n := uint64(0); n <= bound; n++ {
		if isPrimeByDivision(n) != seen[n] {
			t.Errorf("membership mismatch at %d: trial division says %v", n, isPrimeByDivision(n))
		}
	}

	// Ascending, no duplicates.
	for i := 1; i < len(primes); i++ {
		if primes[i-1] >= primes[i] {
			t.Fatalf("primes not strictly ascending at index %d: %d >= %d", i, primes[i-1], primes[i])
		}
	}
}

func TestNew_GridFullyResolved(t *testing.T) {
	for _, bound := range []uint64{0, 1, 2, 3, 100, 997} {
		s := New(bound)
		for i, m := range s.marks {
			if m == Unknown {
				t.Fatalf("New(%d): index %d left unknown", bound, i)
			}
		}
		if bound >= 1 && (s.marks[0] == Prime || s.marks[1] == Prime) {
			t.Fatalf("New(%d): 0 or 1 marked prime", bound)
		}
	}
}

func TestSieve_IsPrime(t *testing.T) {
	s := New(100)

	for n := uint64(0); n <= 100; n++ {
		if got, want := s.IsPrime(n), isPrimeByDivision(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}

	// Beyond the bound the grid has no answer; IsPrime reports false even
	// for a prime value.
	if s.IsPrime(101) {
		t.Error("IsPrime(101) beyond bound = true, want false")
	}
}

func TestSieve_Bound(t *testing.T) {
	if got := New(42).Bound(); got != 42 {
		t.Fatalf("Bound() = %d, want 42", got)
	}
}

func TestMark_String(t *testing.T) {
	tests := []struct {
		mark Mark
		want string
	}{
		{Unknown, "unknown"},
		{Composite, "composite"},
		{Prime, "prime"},
		{Mark(9), "mark(9)"},
	}
	for _, tc := range tests {
		if got := tc.mark.String(); got != tc.want {
			t.Errorf("Mark(%d).String() = %q, want %q", uint8(tc.mark), got, tc.want)
		}
	}
}
