// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package complexint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/pierwill/gaussiant/complexint"
)

func norm(z Complex[int]) int {
	return z.Re*z.Re + z.Im*z.Im
}

func TestArithmetic(t *testing.T) {
	z := New(1, 1)
	w := New(1, -1)

	assert.Equal(t, New(2, 0), z.Add(w))
	assert.Equal(t, New(0, 2), z.Sub(w))
	assert.Equal(t, New(2, 0), z.Mul(w))
	assert.Equal(t, New(-1, -1), z.Neg())
	assert.Equal(t, New(1, -1), z.Conj())
	assert.Equal(t, New(0, 2), z.Mul(z)) // (1+i)² = 2i
}

func TestIdentities(t *testing.T) {
	z := New(3, -4)
	assert.Equal(t, z, z.Add(Zero[int]()))
	assert.Equal(t, z, z.Mul(One[int]()))
	assert.True(t, Zero[int]().IsZero())
	assert.False(t, One[int]().IsZero())
	assert.True(t, z.Equal(New(3, -4)))
	assert.False(t, z.Equal(New(3, 4)))
}

func TestQuoRemExact(t *testing.T) {
	// 5 = (1+2i)(1-2i)
	q, r := New(5, 0).QuoRem(New(1, 2))
	assert.Equal(t, New(1, -2), q)
	assert.True(t, r.IsZero())
}

func TestQuoRemEuclidean(t *testing.T) {
	zs := []Complex[int]{
		New(0, 0), New(1, 0), New(-1, 7), New(12, 8), New(-5, -3),
		New(100, -47), New(7, 0), New(0, 9),
	}
	ds := []Complex[int]{
		New(1, 1), New(2, 0), New(3, -2), New(-4, 1), New(0, -5),
	}
	for _, z := range zs {
		for _, d := range ds {
			q, r := z.QuoRem(d)
			require.Equalf(t, z, q.Mul(d).Add(r), "z=%v d=%v", z, d)
			require.Lessf(t, norm(r), norm(d), "z=%v d=%v r=%v", z, d, r)
		}
	}
}
