// Package palindrome finds palindromic numbers and palindromic products.
package palindrome

// IsPal reports whether n reads the same forwards and backwards in decimal.
// Only the right half of the digits is reversed, so no division past the
// middle is done.
func IsPal(n int64) bool {
	if n < 0 {
		return false
	}
	if n < 10 {
		return true
	}
	// A number ending in zero cannot start with one.
	if n%10 == 0 {
		return false
	}
	var rev int64
	for n > rev {
		rev = rev*10 + n%10
		n /= 10
	}
	return n == rev || n == rev/10
}

// LargestProduct returns the largest palindromic product of two factors
// with the given digit count, along with the factors that produce it.
// Digit counts outside 1..9 (the int64-safe range) give a zero result.
func LargestProduct(digits int) (product, a, b int64) {
	if digits < 1 || digits > 9 {
		return 0, 0, 0
	}
	hi := pow10(digits) - 1
	lo := pow10(digits - 1)

	var bestP, bestA, bestB int64
	for x := hi; x >= lo; x-- {
		if x*x <= bestP {
			break
		}
		for y := x; y >= lo; y-- {
			p := x * y
			if p <= bestP {
				break
			}
			if IsPal(p) {
				bestP, bestA, bestB = p, x, y
			}
		}
	}
	return bestP, bestA, bestB
}

func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
