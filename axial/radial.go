// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axial builds the on-axis derivative expansions (§4.D) used by
// the fast field evaluators in package field: the radial ring-on-axis
// derivative recurrence, and the 3D Fourier-radial coefficient
// accumulation.
package axial

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/quad"
)

// RadialDerivatives tabulates, for every target z in zs and every
// segment/charge pair, the nine successive on-axis derivatives
// D0..D8 of the ring potential kernel evaluated on the axis of
// symmetry, accumulating weighted contributions from every segment into
// derivs[k][0..8]. derivs must be pre-allocated to len(zs) rows of
// model.DerivMax columns, zeroed by the caller.
//
// The recurrence
//
//	D[n+1] = -(1/R^2)*((2n+1)*(z0-z)*D[n] + n^2*D[n-1])
//
// bootstrapped with D0=1/R, D1=-(z0-z)/R^3, is used exactly as given in
// §4.D; this is not approximated via numerical differentiation.
func RadialDerivatives(derivs [][model.DerivMax]float64, segments []model.Segment, charges [][model.NQuad2D]float64, zs []float64) error {
	if len(derivs) != len(zs) {
		return chk.Err("axial: derivs has %d rows, expected len(zs)=%d", len(derivs), len(zs))
	}
	if len(charges) != len(segments) {
		return chk.Err("axial: charges has %d rows, expected len(segments)=%d", len(charges), len(segments))
	}
	for _, seg := range segments {
		if !seg.Finite() {
			return chk.Err("axial: non-finite segment %v", seg)
		}
	}
	for i, z0 := range zs {
		if !geomutil.Finite(z0) {
			return chk.Err("axial: non-finite target z[%d]=%v", i, z0)
		}
		for j, seg := range segments {
			v1, v2 := seg[0][:], seg[1][:]
			for k := 0; k < quad.NLine; k++ {
				r, z, weight := quad.LineSum(v1, v2, k)
				R := geomutil.Norm2D(z0-z, r)

				var D [model.DerivMax]float64
				D[0] = 1 / R
				D[1] = -(z0 - z) / (R * R * R)
				for n := 1; n+1 < model.DerivMax; n++ {
					D[n+1] = -1 / (R * R) * (float64(2*n+1)*(z0-z)*D[n] + float64(n*n)*D[n-1])
				}

				q := charges[j][k]
				scale := weight * math.Pi * r / 2 * q
				for l := 0; l < model.DerivMax; l++ {
					derivs[i][l] += scale * D[l]
				}
			}
		}
	}
	return nil
}
