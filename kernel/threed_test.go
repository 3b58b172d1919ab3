// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/diff/fd"
)

// TestPotential3DDerivsMatchFiniteDifferences cross-checks the closed-form
// partials Potential3DDx/Dy/Dz against gonum/diff/fd central differences of
// Potential3D itself, holding the source point and the other two target
// coordinates fixed.
func TestPotential3DDerivsMatchFiniteDifferences(tst *testing.T) {
	chk.PrintTitle("3D point kernel derivatives vs finite differences")

	x0, y0, z0 := 0.3, -0.2, 0.7
	x, y, z := 2.0, 1.5, -1.0

	dx := fd.Derivative(func(xi float64) float64 {
		return Potential3D(xi, y0, z0, x, y, z)
	}, x0, &fd.Settings{Formula: fd.Central})
	dy := fd.Derivative(func(yi float64) float64 {
		return Potential3D(x0, yi, z0, x, y, z)
	}, y0, &fd.Settings{Formula: fd.Central})
	dz := fd.Derivative(func(zi float64) float64 {
		return Potential3D(x0, y0, zi, x, y, z)
	}, z0, &fd.Settings{Formula: fd.Central})

	chk.Scalar(tst, "dPhi/dx0", 1e-6, Potential3DDx(x0, y0, z0, x, y, z), dx)
	chk.Scalar(tst, "dPhi/dy0", 1e-6, Potential3DDy(x0, y0, z0, x, y, z), dy)
	chk.Scalar(tst, "dPhi/dz0", 1e-6, Potential3DDz(x0, y0, z0, x, y, z), dz)
}

// TestFieldDotNormal3DUnitNormals checks FieldDotNormal3D against the
// gradient components directly along each axis-aligned unit normal.
func TestFieldDotNormal3DUnitNormals(tst *testing.T) {
	chk.PrintTitle("3D field-dot-normal against axis-aligned normals")

	x0, y0, z0 := 0.1, 0.4, -0.3
	x, y, z := 1.2, -0.8, 0.5

	ex := -Potential3DDx(x0, y0, z0, x, y, z)
	ey := -Potential3DDy(x0, y0, z0, x, y, z)
	ez := -Potential3DDz(x0, y0, z0, x, y, z)

	chk.Scalar(tst, "E.x", 1e-12, FieldDotNormal3D(x0, y0, z0, x, y, z, [3]float64{1, 0, 0}), ex)
	chk.Scalar(tst, "E.y", 1e-12, FieldDotNormal3D(x0, y0, z0, x, y, z, [3]float64{0, 1, 0}), ey)
	chk.Scalar(tst, "E.z", 1e-12, FieldDotNormal3D(x0, y0, z0, x, y, z, [3]float64{0, 0, 1}), ez)
}

// TestFunc3DEvalDispatch checks that each Func3D tag dispatches to the
// matching standalone kernel function.
func TestFunc3DEvalDispatch(tst *testing.T) {
	chk.PrintTitle("Func3D dispatch")

	x0, y0, z0 := 0.2, 0.1, -0.4
	x, y, z := 1.0, 2.0, 3.0

	cases := []struct {
		kind Func3D
		want float64
	}{
		{KernelPotential3D, Potential3D(x0, y0, z0, x, y, z)},
		{KernelDx3D, Potential3DDx(x0, y0, z0, x, y, z)},
		{KernelDy3D, Potential3DDy(x0, y0, z0, x, y, z)},
		{KernelDz3D, Potential3DDz(x0, y0, z0, x, y, z)},
	}
	for _, c := range cases {
		chk.Scalar(tst, "Func3D.Eval", 0, c.kind.Eval(x0, y0, z0, x, y, z), c.want)
	}
}
