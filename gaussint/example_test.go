// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint_test

import (
	"fmt"

	"github.com/pierwill/gaussiant/gaussint"
)

func ExampleNew() {
	z := gaussint.New(2, 7)
	fmt.Println(z)
	fmt.Println(z.Norm())
	// Output:
	// 2+7i
	// 53
}

func ExampleParse() {
	z, _ := gaussint.Parse[int64]("1-i")
	fmt.Println(z.Re(), z.Im())
	// Output: 1 -1
}

func ExampleGaussianInt_IsGaussianPrime() {
	fmt.Println(gaussint.Real(7).IsGaussianPrime())
	fmt.Println(gaussint.Real(5).IsGaussianPrime())
	fmt.Println(gaussint.New(2, 1).IsGaussianPrime())
	// Output:
	// true
	// false
	// true
}

func ExampleGaussianInt_Mul() {
	z := gaussint.New(1, 1)
	w := z.Conj()
	fmt.Println(z.Mul(w))
	// Output: 2
}

func ExamplePositivePrimes() {
	n := 0
	for z := range gaussint.PositivePrimes[int64]() {
		fmt.Println(z)
		if n++; n == 4 {
			break
		}
	}
	// Output:
	// 1-i
	// 1+i
	// 1-2i
	// 2-i
}
