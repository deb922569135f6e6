// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"golang.org/x/exp/constraints"
)

// Gcd computes a greatest common divisor of a and b with the Euclidean
// algorithm. The result is determined up to multiplication by a unit; it is
// normalized to have a positive real part when possible.
func Gcd[T constraints.Signed](a, b GaussianInt[T]) GaussianInt[T] {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	for !b.IsZero() {
		_, r := a.c.QuoRem(b.c)
		a, b = b, GaussianInt[T]{c: r}
	}

	return normalizeGcd(a)
}

// normalizeGcd multiplies by -1 where needed so the result has a positive
// real part, or a positive imaginary part when the real part is zero.
func normalizeGcd[T constraints.Signed](g GaussianInt[T]) GaussianInt[T] {
	var zero T
	if g.c.Re < zero {
		return g.Neg()
	}
	if g.c.Re == zero && g.c.Im < zero {
		return g.Neg()
	}
	return g
}
