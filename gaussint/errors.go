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

var (
	// ErrParse is wrapped by Parse when text does not conform to the
	// Gaussian-integer grammar.
	ErrParse = errors.New("malformed gaussian integer")

	// ErrDivisionByZero is returned by explicit quotient operations when
	// the divisor is the zero element.
	ErrDivisionByZero = errors.New("division by zero gaussian integer")

	// ErrInexactDivision is returned by Div when the divisor does not
	// divide the dividend exactly.
	ErrInexactDivision = errors.New("inexact gaussian integer division")
)
