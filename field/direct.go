// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the field and potential evaluators of §4.E:
// direct panel sums (radial and 3D) and the on-axis/Fourier-radial
// expansion evaluators that are cheap enough to call once per
// Runge-Kutta stage inside the tracer.
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/kernel"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/quad"
)

// PotentialRadial evaluates the axisymmetric potential at (r,z) (the
// third point coordinate is accepted and ignored, matching the
// point[3] signature of §6) by direct Gauss-Legendre summation over
// every segment's nodal charges.
func PotentialRadial(point [3]float64, segments []model.Segment, charges [][model.NQuad2D]float64) (float64, error) {
	if len(charges) != len(segments) {
		return 0, chk.Err("field: charges has %d rows, expected len(segments)=%d", len(charges), len(segments))
	}
	sum := 0.0
	for i, seg := range segments {
		v1, v2 := seg[0][:], seg[1][:]
		for j := 0; j < quad.NLine; j++ {
			x, y, w := quad.LineSum(v1, v2, j)
			phi, err := kernel.RingPotential(point[0], point[1], x, y)
			if err != nil {
				return 0, err
			}
			sum += w * charges[i][j] * phi
		}
	}
	return sum, nil
}

// FieldRadial evaluates the axisymmetric field (Er, Ez, Ephi=0) at point
// by direct Gauss-Legendre summation, negating the gradient of each
// source's ring potential.
func FieldRadial(point [3]float64, segments []model.Segment, charges [][model.NQuad2D]float64) (out [3]float64, err error) {
	if len(charges) != len(segments) {
		return out, chk.Err("field: charges has %d rows, expected len(segments)=%d", len(charges), len(segments))
	}
	for i, seg := range segments {
		v1, v2 := seg[0][:], seg[1][:]
		for k := 0; k < quad.NLine; k++ {
			x, y, w := quad.LineSum(v1, v2, k)
			dr, e := kernel.RingPotentialDr(point[0], point[1], x, y)
			if e != nil {
				return out, e
			}
			dz, e := kernel.RingPotentialDz(point[0], point[1], x, y)
			if e != nil {
				return out, e
			}
			out[0] -= w * charges[i][k] * dr
			out[1] -= w * charges[i][k] * dz
		}
	}
	return out, nil
}

// PotentialAt3D evaluates the 3D potential at point by direct 9-point
// triangle summation over every triangle's scalar charge.
func PotentialAt3D(point [3]float64, triangles []model.Triangle, charges []float64) (float64, error) {
	if len(charges) != len(triangles) {
		return 0, chk.Err("field: charges has %d entries, expected len(triangles)=%d", len(charges), len(triangles))
	}
	sum := 0.0
	for i, tri := range triangles {
		v1, v2, v3 := tri[0][:], tri[1][:], tri[2][:]
		area := geomutil.TriangleArea(v1, v2, v3)
		inner := 0.0
		for k := 0; k < quad.NTriangle; k++ {
			x, y, z, w := quad.TrianglePoint(v1, v2, v3, k)
			inner += w * kernel.Potential3D(point[0], point[1], point[2], x, y, z)
		}
		sum += charges[i] * area * inner
	}
	return sum, nil
}

// FieldAt3D evaluates the 3D field at point by direct 9-point triangle
// summation over every triangle's scalar charge.
func FieldAt3D(point [3]float64, triangles []model.Triangle, charges []float64) (out [3]float64, err error) {
	if len(charges) != len(triangles) {
		return out, chk.Err("field: charges has %d entries, expected len(triangles)=%d", len(charges), len(triangles))
	}
	for i, tri := range triangles {
		v1, v2, v3 := tri[0][:], tri[1][:], tri[2][:]
		area := geomutil.TriangleArea(v1, v2, v3)
		var innerX, innerY, innerZ float64
		for k := 0; k < quad.NTriangle; k++ {
			x, y, z, w := quad.TrianglePoint(v1, v2, v3, k)
			innerX += w * kernel.Potential3DDx(point[0], point[1], point[2], x, y, z)
			innerY += w * kernel.Potential3DDy(point[0], point[1], point[2], x, y, z)
			innerZ += w * kernel.Potential3DDz(point[0], point[1], point[2], x, y, z)
		}
		out[0] -= charges[i] * area * innerX
		out[1] -= charges[i] * area * innerY
		out[2] -= charges[i] * area * innerZ
	}
	return out, nil
}
