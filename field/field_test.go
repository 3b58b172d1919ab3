// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/model"
)

// TestAxialIdentity checks property 4: the radial-derivs evaluator at
// r=0 must return exactly (0, -D1) for (Er, Ez) -- the on-axis field is
// exactly -D1 along z-hat.
func TestAxialIdentity(tst *testing.T) {
	chk.PrintTitle("on-axis field identity")
	zGrid := []float64{0, 1, 2, 3}
	coeffs := make([]RadialSpline, 3)
	// D1's constant term (a0) at interval 0 is an arbitrary nonzero probe
	// value; every other derivative is left at zero.
	coeffs[0][1][5] = 3.25

	out, err := FieldRadialDerivs([3]float64{0, 0.5, 0}, zGrid, coeffs)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "Er on axis", 1e-15, out[0], 0)
	chk.Scalar(tst, "Ez on axis", 1e-15, out[1], -3.25)
}

// TestDirectRadialSmoke is a smoke test that the direct radial evaluator
// produces a nonzero potential on a trivial one-segment configuration.
func TestDirectRadialSmoke(tst *testing.T) {
	segments := []model.Segment{{{1, -0.01, 0}, {1, 0.01, 0}}}
	charges := [][model.NQuad2D]float64{{1, 1, 1, 1, 1, 1, 1, 1}}
	phi, err := PotentialRadial([3]float64{0, 2, 0}, segments, charges)
	if err != nil {
		tst.Fatal(err)
	}
	if phi == 0 {
		tst.Errorf("expected a nonzero potential contribution")
	}
}

// TestDirectThreeDSmoke is the 3D peer of TestDirectRadialSmoke: a
// single triangle away from the observation point must produce a
// finite, nonzero potential and field.
func TestDirectThreeDSmoke(tst *testing.T) {
	triangles := []model.Triangle{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	charges := []float64{1}

	phi, err := PotentialAt3D([3]float64{0, 0, 2}, triangles, charges)
	if err != nil {
		tst.Fatal(err)
	}
	if phi == 0 {
		tst.Errorf("expected a nonzero potential contribution")
	}

	out, err := FieldAt3D([3]float64{0, 0, 2}, triangles, charges)
	if err != nil {
		tst.Fatal(err)
	}
	if out[2] == 0 {
		tst.Errorf("expected a nonzero Ez contribution, got %v", out)
	}
}

// TestThreeDAxisLimit checks the near-axis branch of FieldThreeDDerivs:
// r < kernel.MinDistanceAxis must return exactly (-A[0][1], -B[0][1],
// -dA[0][0]/dz), the 3D peer of TestAxialIdentity.
func TestThreeDAxisLimit(tst *testing.T) {
	chk.PrintTitle("3D on-axis field identity")
	zGrid := []float64{0, 1, 2, 3}
	coeffs := make([]ThreeDSpline, 3)
	coeffs[0][0][0][1][3] = 2.0 // A[nu=0][m=1] constant term
	coeffs[0][0][0][0][2] = 5.0 // A[nu=0][m=0] linear-in-zr coefficient

	out, err := FieldThreeDDerivs([3]float64{0, 0, 0.5}, zGrid, coeffs)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "Ex on axis", 1e-15, out[0], -2.0)
	chk.Scalar(tst, "Ey on axis", 1e-15, out[1], 0)
	chk.Scalar(tst, "Ez on axis", 1e-15, out[2], -5.0)
}

// TestPotentialThreeDDerivsOutsideGridIsZero checks §7's deliberate
// silent-zero policy for expansion evaluators queried outside their
// z-grid.
func TestPotentialThreeDDerivsOutsideGridIsZero(tst *testing.T) {
	zGrid := []float64{0, 1, 2, 3}
	coeffs := make([]ThreeDSpline, 3)
	coeffs[0][0][0][1][3] = 2.0

	phi, err := PotentialThreeDDerivs([3]float64{0, 0, 10}, zGrid, coeffs)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "Phi outside z-grid", 0, phi, 0)

	out, err := FieldThreeDDerivs([3]float64{0, 0, 10}, zGrid, coeffs)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "Ex outside z-grid", 0, out[0], 0)
	chk.Scalar(tst, "Ey outside z-grid", 0, out[1], 0)
	chk.Scalar(tst, "Ez outside z-grid", 0, out[2], 0)
}
