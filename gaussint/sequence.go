// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"iter"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Positives returns an infinite sequence of all Gaussian integers with
// strictly positive real part, ordered by increasing norm and then by
// increasing imaginary part. The sequence is a pure cursor: each range over
// it starts again from the beginning.
func Positives[T constraints.Signed]() iter.Seq[GaussianInt[T]] {
	return func(yield func(GaussianInt[T]) bool) {
		for n := uint64(1); ; n++ {
			for _, z := range normShell[T](n) {
				if !yield(z) {
					return
				}
			}
		}
	}
}

// PositivePrimes returns an infinite sequence of all Gaussian primes with
// strictly positive real part, in the same order as Positives.
func PositivePrimes[T constraints.Signed]() iter.Seq[GaussianInt[T]] {
	return func(yield func(GaussianInt[T]) bool) {
		for z := range Positives[T]() {
			if z.IsGaussianPrime() && !yield(z) {
				return
			}
		}
	}
}

// normShell returns the Gaussian integers of norm n with positive real
// part, ordered by increasing imaginary part, then real part.
func normShell[T constraints.Signed](n uint64) []GaussianInt[T] {
	var zs []GaussianInt[T]
	for a := uint64(1); a*a <= n; a++ {
		b2 := n - a*a
		b := isqrt(b2)
		if b*b != b2 {
			continue
		}
		zs = append(zs, New(T(a), T(b)))
		if b != 0 {
			zs = append(zs, New(T(a), -T(b)))
		}
	}
	sort.Slice(zs, func(i, j int) bool {
		if zs[i].Im() != zs[j].Im() {
			return zs[i].Im() < zs[j].Im()
		}
		return zs[i].Re() < zs[j].Re()
	})
	return zs
}

// isqrt returns the integer square root of n, corrected for float64
// truncation near perfect squares.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
