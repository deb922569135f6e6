// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"strconv"
)

// String renders z in the same grammar Parse accepts: the imaginary term is
// omitted when zero, the real term is omitted when zero and an imaginary
// term exists, unit coefficients render as "i"/"-i", and a negative
// imaginary part renders "a-bi", never "a+-bi".
func (z GaussianInt[T]) String() string {
	a, b := int64(z.c.Re), int64(z.c.Im)
	switch {
	case b == 0:
		return strconv.FormatInt(a, 10)
	case a == 0:
		return imagString(b)
	case b < 0:
		return strconv.FormatInt(a, 10) + imagString(b)
	}
	return strconv.FormatInt(a, 10) + "+" + imagString(b)
}

func imagString(b int64) string {
	switch b {
	case 1:
		return "i"
	case -1:
		return "-i"
	}
	return strconv.FormatInt(b, 10) + "i"
}
