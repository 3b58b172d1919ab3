// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/kernel"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/quad"
)

// ThreeDMatrixView wraps a caller-owned flat buffer of length N*N (one
// unknown per triangle, unlike the radial case's per-node unknowns) as
// a gonum dense matrix, without copying.
func ThreeDMatrixView(buf []float64, n int) (*mat.Dense, error) {
	if len(buf) != n*n {
		return nil, chk.Err("bem: matrix buffer has %d entries, expected N*N=%d*%d=%d", len(buf), n, n, n*n)
	}
	return mat.NewDense(n, n, buf), nil
}

func centroid(t model.Triangle) [3]float64 {
	return [3]float64{
		(t[0][0] + t[1][0] + t[2][0]) / 3,
		(t[0][1] + t[1][1] + t[2][1]) / 3,
		(t[0][2] + t[1][2] + t[2][2]) / 3,
	}
}

// triangleIntegrate applies the fixed 9-point triangle rule of quad, and
// sums f evaluated at each sample point scaled by the triangle's area
// once, per the convention fixed in quad.TrianglePoint (its weights
// already sum to one).
func triangleIntegrate(t model.Triangle, f kernel.Func3D, target [3]float64) float64 {
	v1, v2, v3 := t[0][:], t[1][:], t[2][:]
	area := geomutil.TriangleArea(v1, v2, v3)
	sum := 0.0
	for k := 0; k < quad.NTriangle; k++ {
		x, y, z, w := quad.TrianglePoint(v1, v2, v3, k)
		sum += w * f.Eval(target[0], target[1], target[2], x, y, z)
	}
	return sum * area
}

// triangleIntegrateNormal is triangleIntegrate specialized for the
// field-dot-normal kernel, which additionally needs the panel's own
// outward normal (§4.F dielectric rows).
func triangleIntegrateNormal(t model.Triangle, target, normal [3]float64) (float64, error) {
	v1, v2, v3 := t[0][:], t[1][:], t[2][:]
	area := geomutil.TriangleArea(v1, v2, v3)
	sum := 0.0
	for k := 0; k < quad.NTriangle; k++ {
		x, y, z, w := quad.TrianglePoint(v1, v2, v3, k)
		sum += w * kernel.FieldDotNormal3D(target[0], target[1], target[2], x, y, z, normal)
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, chk.Err("bem: non-finite field-dot-normal integral")
	}
	return sum * area, nil
}

// FillMatrixThreeD fills rows [rowStart, rowEnd] (inclusive, triangle
// indices) of the 3D boundary-element matrix (§4.F). Unlike the radial
// case, voltage rows here include the j==i (self) term directly through
// the same point-kernel triangle integral used for every other column:
// the 3D point-Coulomb kernel integrated over its own triangle is only
// weakly (1/r) singular and the 9-point rule handles it without a
// dedicated singular quadrature.
func FillMatrixThreeD(matrix *mat.Dense, triangles []model.Triangle, types []model.ExcitationKind, values []float64, rowStart, rowEnd int) error {
	n := len(triangles)
	rows, cols := matrix.Dims()
	if rows != n || cols != n {
		return chk.Err("bem: matrix is %dx%d, expected %dx%d", rows, cols, n, n)
	}
	if len(types) != n || len(values) != n {
		return chk.Err("bem: types/values must have %d entries, got %d/%d", n, len(types), len(values))
	}
	if rowStart < 0 || rowEnd >= n || rowStart > rowEnd {
		return chk.Err("bem: invalid row range [%d, %d] for %d triangles", rowStart, rowEnd, n)
	}
	for _, t := range triangles {
		if !t.Finite() {
			return chk.Err("bem: non-finite triangle %v", t)
		}
	}

	for i := rowStart; i <= rowEnd; i++ {
		if err := types[i].Validate(); err != nil {
			return err
		}
		target := centroid(triangles[i])

		switch types[i] {
		case model.VoltageFixed, model.VoltageFunctional, model.FloatingConductor:
			if Verbose {
				io.Pf(">> bem: assembling 3d voltage row %d\n", i)
			}
			for j := 0; j < n; j++ {
				matrix.Set(i, j, triangleIntegrate(triangles[j], kernel.KernelPotential3D, target))
			}

		case model.Dielectric:
			v1, v2, v3 := triangles[i][0][:], triangles[i][1][:], triangles[i][2][:]
			normalArr, err := geomutil.Normal3D(v1, v2, v3)
			if err != nil {
				return err
			}
			K := values[i]
			factor := (2*K - 2) / (math.Pi * (1 + K))
			for j := 0; j < n; j++ {
				val, err := triangleIntegrateNormal(triangles[j], target, normalArr)
				if err != nil {
					return err
				}
				val *= factor
				if i == j {
					val -= 1.0
				}
				matrix.Set(i, j, val)
			}

		default:
			return chk.Err("bem: unknown excitation kind %d at triangle %d", types[i], i)
		}
	}
	return nil
}
