// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"github.com/pierwill/gaussiant/common"
)

var primalityTester common.PrimalityTester = common.NewBPSWTester()

// SetPrimalityTester replaces the rational-integer primality test used by
// IsGaussianPrime. Must be called before any primality queries are issued;
// it is not synchronized against concurrent use.
func SetPrimalityTester(t common.PrimalityTester) {
	if t == nil {
		return
	}
	primalityTester = t
}

// IsGaussianPrime reports whether z is a prime element of Z[i].
//
// A Gaussian integer a+bi is a Gaussian prime iff either:
//
//  1. one of a, b is zero and the absolute value of the other is a rational
//     prime of the form 4n+3, or
//  2. both a and b are nonzero and a²+b² is a rational prime (which is then
//     2 or of the form 4n+1).
//
// In particular the rational prime 2 = -i(1+i)² is not a Gaussian prime,
// while 1+i and its associates are.
func (z GaussianInt[T]) IsGaussianPrime() bool {
	a, b := int64(z.c.Re), int64(z.c.Im)
	switch {
	case a == 0 && b == 0:
		return false
	case a == 0 || b == 0:
		p := abs64(a + b) // one of the two is zero
		return p%4 == 3 && primalityTester.IsPrime(uint64(p))
	default:
		return primalityTester.IsPrime(z.Norm())
	}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
