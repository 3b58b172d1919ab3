// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axial

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/quad"
)

// ThetaCoeffs is the precomputed cubic spline-of-theta basis
// C[nu][m][4] (coefficients t^3..t^0) for one theta interval. Fitting
// this basis from a full 3D solve is an external, host-language
// concern (§1); this package only consumes it.
type ThetaCoeffs [model.NUMax][model.MMax][4]float64

// Coefficients3D accumulates, for every target z in zs, the cosine (A)
// and sine (B) Fourier-radial coefficients A[k][nu][m], B[k][nu][m] by
// summing every triangle's nine-point quadrature contribution (§4.D).
// thetaGrid must be uniform (dtheta = thetaGrid[1]-thetaGrid[0]) and
// thetaCoeffs[i] gives the spline valid on [thetaGrid[i], thetaGrid[i+1]).
func Coefficients3D(A, B [][model.NUMax][model.MMax]float64, triangles []model.Triangle, charges []float64, zs []float64, thetaGrid []float64, thetaCoeffs []ThetaCoeffs) error {
	if len(A) != len(zs) || len(B) != len(zs) {
		return chk.Err("axial: output coefficient tables must have len(zs)=%d rows", len(zs))
	}
	if len(charges) != len(triangles) {
		return chk.Err("axial: charges has %d entries, expected len(triangles)=%d", len(charges), len(triangles))
	}
	if len(thetaGrid) < 2 || len(thetaCoeffs) != len(thetaGrid)-1 {
		return chk.Err("axial: thetaCoeffs must have len(thetaGrid)-1=%d entries, got %d", len(thetaGrid)-1, len(thetaCoeffs))
	}
	theta0 := thetaGrid[0]
	dtheta := thetaGrid[1] - thetaGrid[0]

	for h, tri := range triangles {
		if !tri.Finite() {
			return chk.Err("axial: non-finite triangle %v", tri)
		}
		v1, v2, v3 := tri[0][:], tri[1][:], tri[2][:]
		area := geomutil.TriangleArea(v1, v2, v3)
		q := charges[h]

		for i, z0 := range zs {
			for k := 0; k < quad.NTriangle; k++ {
				x, y, z, w := quad.TrianglePoint(v1, v2, v3, k)

				r := geomutil.Norm3D(x, y, z-z0)
				theta := math.Atan2(z-z0, geomutil.Norm2D(x, y))
				mu := math.Atan2(y, x)

				index := int((theta - theta0) / dtheta)
				if index < 0 {
					index = 0
				}
				if index >= len(thetaCoeffs) {
					index = len(thetaCoeffs) - 1
				}
				t := theta - thetaGrid[index]
				C := thetaCoeffs[index]

				for nu := 0; nu < model.NUMax; nu++ {
					for m := 0; m < model.MMax; m++ {
						base := t*t*t*C[nu][m][0] + t*t*C[nu][m][1] + t*C[nu][m][2] + C[nu][m][3]
						rdep := math.Pow(r, float64(-2*nu-m-1))
						contrib := q * area * w * base * rdep
						A[i][nu][m] += contrib * math.Cos(float64(m)*mu)
						B[i][nu][m] += contrib * math.Sin(float64(m)*mu)
					}
				}
			}
		}
	}
	return nil
}
