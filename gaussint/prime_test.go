// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pierwill/gaussiant/common"
	. "github.com/pierwill/gaussiant/gaussint"
)

func TestIsGaussianPrime(t *testing.T) {
	tests := []struct {
		name string
		z    GaussianInt[int]
		want bool
	}{
		{"zero", Zero[int](), false},
		{"one", One[int](), false},
		{"i", I[int](), false},
		{"minus one", Real(-1), false},
		{"1+i", New(1, 1), true},
		{"1-i", New(1, -1), true},
		{"2 factors as -i(1+i)²", Real(2), false},
		{"3 is 3 mod 4", Real(3), true},
		{"-3", Real(-3), true},
		{"3i", New(0, 3), true},
		{"-3i", New(0, -3), true},
		{"5 factors", Real(5), false},
		{"5i", New(0, 5), false},
		{"7 is 3 mod 4", Real(7), true},
		{"11 is 3 mod 4", Real(11), true},
		{"13 factors", Real(13), false},
		{"19 is 3 mod 4", Real(19), true},
		{"2+i has norm 5", New(2, 1), true},
		{"2-i", New(2, -1), true},
		{"2+3i has norm 13", New(2, 3), true},
		{"2+7i has norm 53", New(2, 7), true},
		{"3+4i has norm 25", New(3, 4), false},
		{"4+9i has norm 97", New(4, 9), true},
		{"9", Real(9), false},
		{"21", Real(21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.z.IsGaussianPrime())
		})
	}
}

func TestGaussianPrimeAssociates(t *testing.T) {
	for _, z := range []GaussianInt[int]{New(1, 1), Real(7), New(2, 1)} {
		for _, u := range Units[int]() {
			assert.Truef(t, z.Mul(u).IsGaussianPrime(), "z=%s u=%s", z, u)
		}
	}
}

// A rational prime p is Gaussian-prime iff p ≡ 3 (mod 4).
func TestRationalPrimeCongruenceClass(t *testing.T) {
	seven := Real(7)
	assert.Equal(t,
		seven.Congruent(Real(3), Real(4)),
		seven.IsGaussianPrime())

	five := Real(5)
	assert.Equal(t,
		five.Congruent(Real(3), Real(4)),
		five.IsGaussianPrime())
}

func TestSetPrimalityTester(t *testing.T) {
	defer SetPrimalityTester(common.NewBPSWTester())

	SetPrimalityTester(common.NewSieveTester(1000))
	assert.True(t, Real(7).IsGaussianPrime())
	assert.True(t, New(2, 7).IsGaussianPrime())
	assert.False(t, Real(5).IsGaussianPrime())

	// nil is ignored
	SetPrimalityTester(nil)
	assert.True(t, Real(7).IsGaussianPrime())
}
