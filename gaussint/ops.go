// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"math"
)

func (z GaussianInt[T]) Add(w GaussianInt[T]) GaussianInt[T] {
	return GaussianInt[T]{c: z.c.Add(w.c)}
}

func (z GaussianInt[T]) Sub(w GaussianInt[T]) GaussianInt[T] {
	return GaussianInt[T]{c: z.c.Sub(w.c)}
}

func (z GaussianInt[T]) Mul(w GaussianInt[T]) GaussianInt[T] {
	return GaussianInt[T]{c: z.c.Mul(w.c)}
}

func (z GaussianInt[T]) Neg() GaussianInt[T] {
	return GaussianInt[T]{c: z.c.Neg()}
}

// Conj returns the complex conjugate a - bi.
func (z GaussianInt[T]) Conj() GaussianInt[T] {
	return GaussianInt[T]{c: z.c.Conj()}
}

// AddAssign sets z to z + w.
func (z *GaussianInt[T]) AddAssign(w GaussianInt[T]) {
	z.c = z.c.Add(w.c)
}

// SubAssign sets z to z - w.
func (z *GaussianInt[T]) SubAssign(w GaussianInt[T]) {
	z.c = z.c.Sub(w.c)
}

// MulAssign sets z to z * w.
func (z *GaussianInt[T]) MulAssign(w GaussianInt[T]) {
	z.c = z.c.Mul(w.c)
}

// IsRational reports whether z is a rational integer, i.e. has zero
// imaginary part.
func (z GaussianInt[T]) IsRational() bool {
	var zero T
	return z.c.Im == zero
}

// Polar returns the polar form (r, θ) of z, such that z = r·exp(iθ).
func (z GaussianInt[T]) Polar() (r, theta float64) {
	a, b := float64(z.c.Re), float64(z.c.Im)
	return math.Hypot(a, b), math.Atan2(b, a)
}
