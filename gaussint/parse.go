// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package gaussint

import (
	"regexp"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/pierwill/gaussiant/common"
)

// Grammar: "a", "bi" (coefficient optional: "i", "-i"), and "a±bi" where the
// imaginary coefficient must carry its sign and may be omitted when it is 1.
var (
	realOnlyRx = regexp.MustCompile(`^[+-]?\d+$`)
	imagOnlyRx = regexp.MustCompile(`^([+-]?\d*)i$`)
	fullRx     = regexp.MustCompile(`^([+-]?\d+)([+-]\d*)i$`)
)

// Parse converts a textual Gaussian integer to a value. Recognized forms are
// "a+bi", "a-bi", "a", "bi" and "-bi", with optional unit coefficients
// ("1-i", "-i"). Failure wraps ErrParse.
func Parse[T constraints.Signed](s string) (GaussianInt[T], error) {
	switch {
	case realOnlyRx.MatchString(s):
		re, err := parseComponent(s)
		if err != nil {
			return Zero[T](), errors.Wrapf(ErrParse, "parsing %q: %v", s, err)
		}
		return New(T(re), 0), nil

	case imagOnlyRx.MatchString(s):
		m := imagOnlyRx.FindStringSubmatch(s)
		im, err := parseCoefficient(m[1])
		if err != nil {
			return Zero[T](), errors.Wrapf(ErrParse, "parsing %q: %v", s, err)
		}
		return New(0, T(im)), nil

	case fullRx.MatchString(s):
		m := fullRx.FindStringSubmatch(s)
		re, err := parseComponent(m[1])
		if err != nil {
			return Zero[T](), errors.Wrapf(ErrParse, "parsing %q: %v", s, err)
		}
		im, err := parseCoefficient(m[2])
		if err != nil {
			return Zero[T](), errors.Wrapf(ErrParse, "parsing %q: %v", s, err)
		}
		return New(T(re), T(im)), nil
	}
	return Zero[T](), errors.Wrapf(ErrParse, "parsing %q", s)
}

// MustParse is like Parse but panics on malformed input.
func MustParse[T constraints.Signed](s string) GaussianInt[T] {
	z, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return z
}

// ParseAll parses a batch of textual Gaussian integers, returning the values
// that parsed and an aggregate of the failures.
func ParseAll[T constraints.Signed](texts ...string) ([]GaussianInt[T], error) {
	var merr *multierror.Error
	out := make([]GaussianInt[T], 0, len(texts))
	for _, s := range texts {
		z, err := Parse[T](s)
		if err != nil {
			common.Logger.Debugf("ParseAll: %v", err)
			merr = multierror.Append(merr, err)
			continue
		}
		out = append(out, z)
	}
	return out, merr.ErrorOrNil()
}

func parseComponent(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseCoefficient handles the sign-only and empty coefficients of a
// trailing "i" term: "" and "+" mean 1, "-" means -1.
func parseCoefficient(s string) (int64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
