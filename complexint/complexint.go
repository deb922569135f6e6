// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

// Package complexint provides a generic complex-number pair whose real and
// imaginary components are machine integers. It supplies exact ring
// arithmetic and the Euclidean division step; all number theory lives in
// package gaussint on top of it.
package complexint

import (
	"golang.org/x/exp/constraints"
)

// Complex is a two-component integer value a + bi. It has value semantics
// and is comparable with ==.
type Complex[T constraints.Signed] struct {
	Re, Im T
}

func New[T constraints.Signed](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Zero returns the additive identity 0+0i.
func Zero[T constraints.Signed]() Complex[T] {
	return Complex[T]{}
}

// One returns the multiplicative identity 1+0i.
func One[T constraints.Signed]() Complex[T] {
	return Complex[T]{Re: 1}
}

func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate a - bi.
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: z.Re, Im: -z.Im}
}

func (z Complex[T]) Equal(w Complex[T]) bool {
	return z == w
}

func (z Complex[T]) IsZero() bool {
	var zero T
	return z.Re == zero && z.Im == zero
}

// QuoRem performs the Gaussian Euclidean step z = q*d + r. The quotient
// components are z*conj(d)/norm(d) rounded to the nearest integer, which
// guarantees norm(r) < norm(d). d must be nonzero; intermediate products are
// taken in int64, so components must stay within ±2^31 for the widest T.
func (z Complex[T]) QuoRem(d Complex[T]) (q, r Complex[T]) {
	a, b := int64(z.Re), int64(z.Im)
	c, e := int64(d.Re), int64(d.Im)
	n := c*c + e*e

	q = Complex[T]{
		Re: T(roundQuo(a*c+b*e, n)),
		Im: T(roundQuo(b*c-a*e, n)),
	}
	r = z.Sub(q.Mul(d))
	return q, r
}

// roundQuo divides a by n (n > 0) rounding to the nearest integer,
// ties away from zero.
func roundQuo(a, n int64) int64 {
	q := a / n
	r := a - q*n
	if 2*r >= n {
		q++
	} else if -2*r >= n {
		q--
	}
	return q
}
