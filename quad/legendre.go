// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "github.com/cpmech/gosl/chk"

// MaxLegendre is the highest Legendre polynomial order this module
// tabulates. Requesting n >= MaxLegendre+1 is a domain violation: the
// closed-form table would have to be extended first (§9).
const MaxLegendre = 8

// Legendre evaluates the Legendre polynomial P_n(x) for n in [0,8] using
// the closed-form coefficients (not a recurrence, matching the source).
// Calling with n > MaxLegendre is fatal.
func Legendre(n int, x float64) (float64, error) {
	x2 := x * x
	switch n {
	case 0:
		return 1, nil
	case 1:
		return x, nil
	case 2:
		return (3*x2 - 1) / 2, nil
	case 3:
		return (5*x2*x - 3*x) / 2, nil
	case 4:
		return (35*x2*x2 - 30*x2 + 3) / 8, nil
	case 5:
		return (63*x2*x2*x - 70*x2*x + 15*x) / 8, nil
	case 6:
		x3 := x2 * x2 * x2
		return (231*x3 - 315*x2*x2 + 105*x2 - 5) / 16, nil
	case 7:
		x3 := x2 * x2 * x2
		return (429*x3*x - 693*x2*x2*x + 315*x2*x - 35*x) / 16, nil
	case 8:
		x4 := x2 * x2 * x2 * x2
		return (6435*x4 - 12012*x2*x2*x2 + 6930*x2*x2 - 1260*x2 + 35) / 128, nil
	}
	return 0, chk.Err("quad.Legendre: order n=%d exceeds the tabulated maximum %d", n, MaxLegendre)
}

// NodalCoefficient returns the coefficient of the i-th Legendre mode at
// the j-th Gauss-Legendre node of the line rule: W_j * P_i(x_j) * (2i+1)/2.
// This builds the nodal charge-density basis used to expand a segment's
// unknown over its 8 collocation nodes.
func NodalCoefficient(i, j int) (float64, error) {
	p, err := Legendre(i, LinePoints[j])
	if err != nil {
		return 0, err
	}
	return LineWeights[j] * p * float64(2*i+1) / 2, nil
}
