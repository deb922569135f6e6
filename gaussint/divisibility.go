// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"github.com/pkg/errors"
)

// Divides reports whether z divides w exactly, i.e. whether w/z is itself a
// Gaussian integer. The zero element divides only the zero element; that is
// a defined boolean outcome, not a fault.
func (z GaussianInt[T]) Divides(w GaussianInt[T]) bool {
	if z.IsZero() {
		return w.IsZero()
	}
	// w/z = w*conj(z) / norm(z); the quotient is a Gaussian integer iff
	// norm(z) divides both components of w*conj(z).
	a, b := int64(w.c.Re), int64(w.c.Im)
	c, d := int64(z.c.Re), int64(z.c.Im)
	n := c*c + d*d
	return (a*c+b*d)%n == 0 && (b*c-a*d)%n == 0
}

// Div returns the exact quotient z/w. It fails with ErrDivisionByZero when w
// is zero and with ErrInexactDivision when w does not divide z.
func (z GaussianInt[T]) Div(w GaussianInt[T]) (GaussianInt[T], error) {
	if w.IsZero() {
		return Zero[T](), errors.Wrapf(ErrDivisionByZero, "dividing %s", z)
	}
	q, r := z.c.QuoRem(w.c)
	if !r.IsZero() {
		return Zero[T](), errors.Wrapf(ErrInexactDivision, "%s does not divide %s", w, z)
	}
	return GaussianInt[T]{c: q}, nil
}

// QuoRem performs the Euclidean division step z = q*w + r with
// norm(r) < norm(w). It fails with ErrDivisionByZero when w is zero.
func (z GaussianInt[T]) QuoRem(w GaussianInt[T]) (q, r GaussianInt[T], err error) {
	if w.IsZero() {
		return Zero[T](), Zero[T](), errors.Wrapf(ErrDivisionByZero, "dividing %s", z)
	}
	qc, rc := z.c.QuoRem(w.c)
	return GaussianInt[T]{c: qc}, GaussianInt[T]{c: rc}, nil
}

// Congruent reports whether z ≡ w (mod modulus), i.e. whether modulus
// divides z - w. Congruence modulo zero reduces to equality.
func (z GaussianInt[T]) Congruent(w, modulus GaussianInt[T]) bool {
	if modulus.IsZero() {
		return z.c == w.c
	}
	return modulus.Divides(z.Sub(w))
}

// IsEven reports whether 1+i divides z. 1+i is the unique prime above 2 (up
// to units), so this is the notion of parity in Z[i].
func (z GaussianInt[T]) IsEven() bool {
	return New[T](1, 1).Divides(z)
}

// IsOdd reports whether z is not even.
func (z GaussianInt[T]) IsOdd() bool {
	return !z.IsEven()
}
