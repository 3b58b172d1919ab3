// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/kernel"
	"github.com/tobiasgobel/traceon/model"
)

// RadialSpline is one z-interval's quintic spline coefficients (a5..a0)
// for each of the nine on-axis derivatives D0..D8 (§3).
type RadialSpline = [model.DerivMax][6]float64

// horner5 evaluates a quintic a5*x^5+...+a0 stored high-to-low, the
// layout C[i][0..5] = a5..a0 of §4.D/§4.E.
func horner5(c [6]float64, x float64) float64 {
	v := c[0]
	for i := 1; i < 6; i++ {
		v = v*x + c[i]
	}
	return v
}

// evalDerivs locates the z-interval containing z and evaluates the nine
// on-axis derivatives there by Horner's method. ok is false when z lies
// outside the grid, in which case the caller must treat the field/
// potential there as zero (§7): this is a deliberate design choice, not
// an error.
func evalDerivs(zGrid []float64, coeffs []RadialSpline, z float64) (derivs [model.DerivMax]float64, ok bool) {
	z0, zLast := zGrid[0], zGrid[len(zGrid)-1]
	if !(z0 < z && z < zLast) {
		return derivs, false
	}
	dz := zGrid[1] - zGrid[0]
	index := int((z - z0) / dz)
	diffz := z - zGrid[index]
	C := coeffs[index]
	for i := 0; i < model.DerivMax; i++ {
		derivs[i] = horner5(C[i], diffz)
	}
	return derivs, true
}

// PotentialRadialDerivs evaluates the axisymmetric potential at (r,z)
// from the precomputed on-axis derivative expansion (§4.E). Returns 0
// outside the z-grid.
func PotentialRadialDerivs(point [2]float64, zGrid []float64, coeffs []RadialSpline) (float64, error) {
	if len(zGrid) < 2 {
		return 0, chk.Err("field: z-grid must have at least 2 points, got %d", len(zGrid))
	}
	r, z := point[0], point[1]
	d, ok := evalDerivs(zGrid, coeffs, z)
	if !ok {
		return 0, nil
	}
	r2 := r * r
	r4 := r2 * r2
	r6 := r4 * r2
	r8 := r4 * r4
	return d[0] - r2/4*d[2] + r4/64*d[4] - r6/2304*d[6] + r8/147456*d[8], nil
}

// FieldRadialDerivs evaluates the axisymmetric field at point from the
// precomputed on-axis derivative expansion. Returns zero field outside
// the z-grid.
func FieldRadialDerivs(point [3]float64, zGrid []float64, coeffs []RadialSpline) (out [3]float64, err error) {
	if len(zGrid) < 2 {
		return out, chk.Err("field: z-grid must have at least 2 points, got %d", len(zGrid))
	}
	r, z := point[0], point[1]
	d, ok := evalDerivs(zGrid, coeffs, z)
	if !ok {
		return out, nil
	}
	r2 := r * r
	r4 := r2 * r2
	r6 := r4 * r2
	out[0] = r / 2 * (d[2] - r2/8*d[4] + r4/192*d[6] - r6/9216*d[8])
	out[1] = -d[1] + r2/4*d[3] - r4/64*d[5] + r6/2304*d[7]
	out[2] = 0
	return out, nil
}

// ThreeDSpline is one z-interval's cubic spline coefficients (a3..a0)
// for the A (cos) and B (sin) Fourier-radial coefficient tables.
type ThreeDSpline = [2][model.NUMax][model.MMax][4]float64

func horner3(c [4]float64, x float64) (value, deriv float64) {
	value = c[0]*x*x*x + c[1]*x*x + c[2]*x + c[3]
	deriv = 3*c[0]*x*x + 2*c[1]*x + c[2]
	return
}

func evalThreeD(zGrid []float64, coeffs []ThreeDSpline, z float64) (A, B, Adiff, Bdiff [model.NUMax][model.MMax]float64, ok bool) {
	z0, zLast := zGrid[0], zGrid[len(zGrid)-1]
	if !(z0 < z && z < zLast) {
		return A, B, Adiff, Bdiff, false
	}
	dz := zGrid[1] - zGrid[0]
	index := int((z - z0) / dz)
	zr := z - zGrid[index]
	C := coeffs[index]
	for nu := 0; nu < model.NUMax; nu++ {
		for m := 0; m < model.MMax; m++ {
			A[nu][m], Adiff[nu][m] = horner3(C[0][nu][m], zr)
			B[nu][m], Bdiff[nu][m] = horner3(C[1][nu][m], zr)
		}
	}
	return A, B, Adiff, Bdiff, true
}

// PotentialThreeDDerivs evaluates the 3D potential from the precomputed
// Fourier-radial expansion. Returns 0 outside the z-grid.
func PotentialThreeDDerivs(point [3]float64, zGrid []float64, coeffs []ThreeDSpline) (float64, error) {
	if len(zGrid) < 2 {
		return 0, chk.Err("field: z-grid must have at least 2 points, got %d", len(zGrid))
	}
	A, B, _, _, ok := evalThreeD(zGrid, coeffs, point[2])
	if !ok {
		return 0, nil
	}
	r := geomutil.Norm2D(point[0], point[1])
	phi := math.Atan2(point[1], point[0])
	sum := 0.0
	for nu := 0; nu < model.NUMax; nu++ {
		for m := 0; m < model.MMax; m++ {
			exp := m + 2*nu
			sum += (A[nu][m]*math.Cos(float64(m)*phi) + B[nu][m]*math.Sin(float64(m)*phi)) * math.Pow(r, float64(exp))
		}
	}
	return sum, nil
}

// FieldThreeDDerivs evaluates the 3D field from the precomputed
// Fourier-radial expansion. Near the axis (r < kernel.MinDistanceAxis)
// it uses the closed-form axis-limit branch instead of dividing by r.
func FieldThreeDDerivs(point [3]float64, zGrid []float64, coeffs []ThreeDSpline) (out [3]float64, err error) {
	if len(zGrid) < 2 {
		return out, chk.Err("field: z-grid must have at least 2 points, got %d", len(zGrid))
	}
	A, B, Adiff, Bdiff, ok := evalThreeD(zGrid, coeffs, point[2])
	if !ok {
		return out, nil
	}
	xp, yp := point[0], point[1]
	r := geomutil.Norm2D(xp, yp)
	phi := math.Atan2(yp, xp)

	if r < kernel.MinDistanceAxis {
		out[0] = -A[0][1]
		out[1] = -B[0][1]
		out[2] = -Adiff[0][0]
		return out, nil
	}

	for nu := 0; nu < model.NUMax; nu++ {
		for m := 0; m < model.MMax; m++ {
			exp := 2*nu + m
			cosv, sinv := math.Cos(float64(m)*phi), math.Sin(float64(m)*phi)
			diffR := (A[nu][m]*cosv + B[nu][m]*sinv) * float64(exp) * math.Pow(r, float64(exp-1))
			diffTheta := float64(m) * (-A[nu][m]*sinv + B[nu][m]*cosv) * math.Pow(r, float64(exp))

			out[0] -= diffR*xp/r + diffTheta*(-yp)/(r*r)
			out[1] -= diffR*yp/r + diffTheta*xp/(r*r)
			out[2] -= (Adiff[nu][m]*cosv + Bdiff[nu][m]*sinv) * math.Pow(r, float64(exp))
		}
	}
	return out, nil
}
