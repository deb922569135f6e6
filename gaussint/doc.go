// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

// Package gaussint implements exact arithmetic and elementary number theory
// over the ring of Gaussian integers Z[i]: complex numbers a+bi whose real
// and imaginary parts are both integers.
//
// The centerpiece is GaussianInt, a generic value type over any signed
// machine integer, with divisibility, congruence, associates, parity and a
// Gaussian-primality test built on the classification theorem for primes of
// Z[i]. Rational-integer primality is delegated to a pluggable
// common.PrimalityTester.
//
// All operations are pure functions on immutable values; the only failure
// modes are malformed text (ErrParse) and explicit division by the zero
// element (ErrDivisionByZero, ErrInexactDivision).
package gaussint
