package engine

import "math/bits"

// FindFactor returns a divisor d of n using Pollard's rho with Floyd cycle
// detection.
//
// For even n the result is always 2. For odd composite n the result is
// normally a non-trivial divisor (1 < d < n); when the tortoise and hare meet
// modulo n itself the result is n. The deadline is checked before every
// iteration, and a *DeadlineExceededError is returned once it has passed.
func FindFactor(n uint64, d *Deadline) (uint64, error) {
	factor, _, err := findFactor(n, d)
	return factor, err
}

// findFactor is FindFactor plus the number of iterations taken.
func findFactor(n uint64, d *Deadline) (uint64, int, error) {
	if n < 2 {
		return 0, 0, &InvalidInputError{N: n}
	}
	if n%2 == 0 {
		return 2, 0, nil
	}

	x, y, g := uint64(2), uint64(2), uint64(1)
	steps := 0
	for g == 1 {
		if err := d.Check(n); err != nil {
			return 0, steps, err
		}
		x = next(x, n)
		y = next(next(y, n), n)
		g = gcd(absDiff(x, y), n)
		steps++
	}
	return g, steps, nil
}

// next computes (v*v + 1) mod n with a 128-bit intermediate.
func next(v, n uint64) uint64 {
	hi, lo := bits.Mul64(v, v)
	lo, carry := bits.Add64(lo, 1, 0)
	return bits.Rem64(hi+carry, lo, n)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// gcd returns the greatest common divisor. gcd(0, n) == n.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
