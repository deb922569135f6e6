// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"golang.org/x/exp/constraints"

	"github.com/pierwill/gaussiant/complexint"
)

// A GaussianInt is a complex number whose real and imaginary parts are both
// integers. It has value semantics and is comparable with ==.
//
// Components are held in any signed machine integer type T. Norms and
// intermediate products are taken in 64-bit arithmetic, so components must
// stay within ±2^31 for the widest T.
type GaussianInt[T constraints.Signed] struct {
	c complexint.Complex[T]
}

func New[T constraints.Signed](re, im T) GaussianInt[T] {
	return GaussianInt[T]{c: complexint.New(re, im)}
}

// Real returns the Gaussian integer n + 0i.
func Real[T constraints.Signed](n T) GaussianInt[T] {
	return New(n, 0)
}

// Zero returns the additive identity 0+0i.
func Zero[T constraints.Signed]() GaussianInt[T] {
	return GaussianInt[T]{}
}

// One returns the multiplicative identity 1+0i.
func One[T constraints.Signed]() GaussianInt[T] {
	return New[T](1, 0)
}

// I returns the imaginary unit 0+1i.
func I[T constraints.Signed]() GaussianInt[T] {
	return New[T](0, 1)
}

// FromComplex wraps an integer complex pair.
func FromComplex[T constraints.Signed](c complexint.Complex[T]) GaussianInt[T] {
	return GaussianInt[T]{c: c}
}

func (z GaussianInt[T]) Re() T {
	return z.c.Re
}

func (z GaussianInt[T]) Im() T {
	return z.c.Im
}

// Complex returns the underlying integer complex pair.
func (z GaussianInt[T]) Complex() complexint.Complex[T] {
	return z.c
}

func (z GaussianInt[T]) Equal(w GaussianInt[T]) bool {
	return z.c == w.c
}

func (z GaussianInt[T]) IsZero() bool {
	return z.c.IsZero()
}

// Norm returns re² + im². The norm is always non-negative and
// multiplicative: norm(z*w) == norm(z)*norm(w). It is the measure all
// divisibility and primality reasoning in this package is built on.
func (z GaussianInt[T]) Norm() uint64 {
	a, b := int64(z.c.Re), int64(z.c.Im)
	return uint64(a*a + b*b)
}

// Units returns the four invertible elements of Z[i]: 1, -1, i, -i.
func Units[T constraints.Signed]() [4]GaussianInt[T] {
	return [4]GaussianInt[T]{
		New[T](1, 0),
		New[T](-1, 0),
		New[T](0, 1),
		New[T](0, -1),
	}
}

// IsUnit reports whether z is one of the four units, i.e. has norm 1.
func (z GaussianInt[T]) IsUnit() bool {
	return z.Norm() == 1
}

// IsAssociated reports whether w equals z multiplied by some unit.
// Associates generate the same ideal; the relation is reflexive and
// symmetric, and zero is associated only to zero.
func (z GaussianInt[T]) IsAssociated(w GaussianInt[T]) bool {
	for _, u := range Units[T]() {
		if z.Mul(u) == w {
			return true
		}
	}
	return false
}
