// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geomutil implements the small 2D/3D vector arithmetic shared by
// every other package in this module: norms, outward normals and triangle
// area. None of it allocates; all helpers operate on fixed-size arrays or
// plain float64 slices the caller owns.
package geomutil

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Norm2D returns the Euclidean length of (x,y).
func Norm2D(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Norm3D returns the Euclidean length of (x,y,z).
func Norm3D(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// Length2D returns the distance between two points given as (r,z) or (x,y)
// pairs, ignoring any trailing coordinates (segments are stored as 3-vectors
// with the third component preserved but unused in the axisymmetric plane).
func Length2D(p1, p2 []float64) float64 {
	return Norm2D(p2[0]-p1[0], p2[1]-p1[1])
}

// Normal2D returns the unit outward normal of the segment p1->p2, rotating
// the tangent by -90 degrees: n = (ty, -tx)/|t|. Returns a typed error if
// the segment is degenerate (zero length), since a zero-length panel is a
// domain violation (§7).
func Normal2D(p1, p2 []float64) (n [2]float64, err error) {
	tx, ty := p2[0]-p1[0], p2[1]-p1[1]
	nx, ny := ty, -tx
	length := Norm2D(nx, ny)
	if length == 0 {
		return n, chk.Err("geomutil: zero-length segment between %v and %v", p1, p2)
	}
	n[0], n[1] = nx/length, ny/length
	return n, nil
}

// Normal3D returns the unit outward normal of the triangle (p1,p2,p3) as
// (v2-v1)x(v3-v1), normalized. Vertex order defines orientation.
func Normal3D(p1, p2, p3 []float64) (n [3]float64, err error) {
	ax, ay, az := p2[0]-p1[0], p2[1]-p1[1], p2[2]-p1[2]
	bx, by, bz := p3[0]-p1[0], p3[1]-p1[1], p3[2]-p1[2]
	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx
	length := Norm3D(nx, ny, nz)
	if length == 0 {
		return n, chk.Err("geomutil: degenerate triangle (%v, %v, %v)", p1, p2, p3)
	}
	n[0], n[1], n[2] = nx/length, ny/length, nz/length
	return n, nil
}

// TriangleArea returns the area of the triangle (p1,p2,p3) in 3-space via the
// magnitude of half the cross product of its edge vectors.
func TriangleArea(p1, p2, p3 []float64) float64 {
	ax, ay, az := p2[0]-p1[0], p2[1]-p1[1], p2[2]-p1[2]
	bx, by, bz := p3[0]-p1[0], p3[1]-p1[1], p3[2]-p1[2]
	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx
	return 0.5 * Norm3D(nx, ny, nz)
}

// Finite reports whether every value in xs is finite (not NaN, not Inf).
// axial.RadialDerivatives applies it to its target z values; the field
// evaluators do not check their inputs for finiteness.
func Finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
