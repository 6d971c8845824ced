package prime

import "math"

// IsPrime reports whether n is prime, by trial division over 6k±1 divisors
// up to √n. It is independent of the sieve and returns false for n < 2.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Factors returns the prime factors of n in ascending order, repeated with
// their multiplicity, so the product of the result is n. Values below 2
// have no factorization and return nil.
func Factors(n int64) []int64 {
	return appendFactors(nil, n)
}

// Each level either recognizes the remainder as prime or divides it by the
// smallest prime from a stream bounded just past √remainder.
func appendFactors(acc []int64, n int64) []int64 {
	if n < 2 {
		return acc
	}
	if IsPrime(n) {
		return append(acc, n)
	}

	bound := isqrt(n) + 1
	if bound < 4 {
		// PrimesBelow treats bounds under the seeded range as empty;
		// the smallest composite still needs the factor 2.
		bound = 4
	}
	ps := PrimesBelow(bound)
	for ps.Next() {
		p := ps.Value()
		if n%p == 0 {
			return appendFactors(append(acc, p), n/p)
		}
	}
	// Unreachable: a composite has a prime factor not above its root.
	return append(acc, n)
}

// isqrt returns the integer square root of n, exact for the full int64
// range where float64 rounding would drift.
func isqrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for (r+1) <= n/(r+1) {
		r++
	}
	return r
}
