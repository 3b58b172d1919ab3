// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traceonc is the flat-buffer export surface (§6): one function
// per backend entry point, each operating on plain slices and fixed-size
// arrays so the package can be wrapped by a C ABI (via //export, in a
// separate cgo-enabled build) without this package itself depending on
// cgo or doing anything unsafe.
package traceonc

import (
	"github.com/tobiasgobel/traceon/axial"
	"github.com/tobiasgobel/traceon/bem"
	"github.com/tobiasgobel/traceon/elliptic"
	"github.com/tobiasgobel/traceon/field"
	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/trace"
)

// Compile-time shape constants mirrored from model for callers
// that only link against this package.
const (
	Deriv2DMax       = model.DerivMax
	NUMax            = model.NUMax
	MMax             = model.MMax
	NQuad2D          = model.NQuad2D
	TracingBlockSize = model.NBlock
)

// Ellipk evaluates the complete elliptic integral of the first kind.
func Ellipk(m float64) (float64, error) { return elliptic.K(m) }

// Ellipe evaluates the complete elliptic integral of the second kind.
func Ellipe(m float64) (float64, error) { return elliptic.E(m) }

// Normal2D returns the unit outward normal of the line segment p1->p2.
func Normal2D(p1, p2 []float64) ([2]float64, error) { return geomutil.Normal2D(p1, p2) }

// Normal3D returns the unit outward normal of the triangle (p1,p2,p3).
func Normal3D(p1, p2, p3 []float64) ([3]float64, error) { return geomutil.Normal3D(p1, p2, p3) }

// AxialDerivativesRadialRing fills derivs[i] with the nine on-axis
// potential derivatives at zs[i], for the given ring segments and their
// nodal charges.
func AxialDerivativesRadialRing(derivs [][model.DerivMax]float64, segments []model.Segment, charges [][model.NQuad2D]float64, zs []float64) error {
	return axial.RadialDerivatives(derivs, segments, charges, zs)
}

// PotentialRadial evaluates the axisymmetric potential directly, by
// panel quadrature.
func PotentialRadial(point [3]float64, segments []model.Segment, charges [][model.NQuad2D]float64) (float64, error) {
	return field.PotentialRadial(point, segments, charges)
}

// FieldRadial evaluates the axisymmetric field directly, by panel
// quadrature.
func FieldRadial(point [3]float64, segments []model.Segment, charges [][model.NQuad2D]float64) ([3]float64, error) {
	return field.FieldRadial(point, segments, charges)
}

// PotentialRadialDerivs evaluates the axisymmetric potential from a
// precomputed on-axis derivative expansion.
func PotentialRadialDerivs(point [2]float64, zGrid []float64, coeffs []field.RadialSpline) (float64, error) {
	return field.PotentialRadialDerivs(point, zGrid, coeffs)
}

// FieldRadialDerivs evaluates the axisymmetric field from a precomputed
// on-axis derivative expansion.
func FieldRadialDerivs(point [3]float64, zGrid []float64, coeffs []field.RadialSpline) ([3]float64, error) {
	return field.FieldRadialDerivs(point, zGrid, coeffs)
}

// Potential3D evaluates the 3D potential directly, by panel quadrature.
func Potential3D(point [3]float64, triangles []model.Triangle, charges []float64) (float64, error) {
	return field.PotentialAt3D(point, triangles, charges)
}

// Field3D evaluates the 3D field directly, by panel quadrature.
func Field3D(point [3]float64, triangles []model.Triangle, charges []float64) ([3]float64, error) {
	return field.FieldAt3D(point, triangles, charges)
}

// Potential3DDerivs evaluates the 3D potential from a precomputed
// Fourier-radial expansion.
func Potential3DDerivs(point [3]float64, zGrid []float64, coeffs []field.ThreeDSpline) (float64, error) {
	return field.PotentialThreeDDerivs(point, zGrid, coeffs)
}

// Field3DDerivs evaluates the 3D field from a precomputed Fourier-radial
// expansion.
func Field3DDerivs(point [3]float64, zGrid []float64, coeffs []field.ThreeDSpline) ([3]float64, error) {
	return field.FieldThreeDDerivs(point, zGrid, coeffs)
}

// FillMatrixRadial fills rows [rowStart, rowEnd] of the axisymmetric
// boundary-element matrix backed by buf (length N*NQuad2D squared).
func FillMatrixRadial(buf []float64, segments []model.Segment, types []model.ExcitationKind, values []float64, rowStart, rowEnd int) error {
	matrix, err := bem.RadialMatrixView(buf, len(segments))
	if err != nil {
		return err
	}
	return bem.FillMatrixRadial(matrix, segments, types, values, rowStart, rowEnd)
}

// FillMatrix3D fills rows [rowStart, rowEnd] of the 3D boundary-element
// matrix backed by buf (length N*N).
func FillMatrix3D(buf []float64, triangles []model.Triangle, types []model.ExcitationKind, values []float64, rowStart, rowEnd int) error {
	matrix, err := bem.ThreeDMatrixView(buf, len(triangles))
	if err != nil {
		return err
	}
	return bem.FillMatrixThreeD(matrix, triangles, types, values, rowStart, rowEnd)
}

// TraceParticleRadial traces one particle through an axisymmetric field
// given directly by panel quadrature (slow path, used for validation).
func TraceParticleRadial(y0 []float64, segments []model.Segment, charges [][model.NQuad2D]float64, bounds trace.BoundsFunc, policy trace.StepPolicy, atol float64) (*trace.Result, error) {
	fieldFunc := func(pos []float64) ([]float64, error) {
		out, err := field.FieldRadial([3]float64{pos[0], pos[1], 0}, segments, charges)
		if err != nil {
			return nil, err
		}
		return []float64{out[0], out[1]}, nil
	}
	return trace.Trace(y0, 2, fieldFunc, bounds, policy, atol)
}

// TraceParticleRadialDerivs traces one particle through an axisymmetric
// field given by a precomputed on-axis derivative expansion (fast path).
func TraceParticleRadialDerivs(y0 []float64, zGrid []float64, coeffs []field.RadialSpline, bounds trace.BoundsFunc, policy trace.StepPolicy, atol float64) (*trace.Result, error) {
	return trace.Trace(y0, 2, trace.RadialFieldFromExpansion(zGrid, coeffs), bounds, policy, atol)
}

// TraceParticle3D traces one particle through a 3D field given directly
// by panel quadrature (slow path, used for validation), the 3D peer of
// TraceParticleRadial.
func TraceParticle3D(y0 []float64, triangles []model.Triangle, charges []float64, bounds trace.BoundsFunc, policy trace.StepPolicy, atol float64) (*trace.Result, error) {
	return trace.Trace(y0, 3, trace.ThreeDFieldFromTriangles(triangles, charges), bounds, policy, atol)
}

// TraceParticle3DDerivs traces one particle through a 3D field given by
// a precomputed Fourier-radial expansion (fast path).
func TraceParticle3DDerivs(y0 []float64, zGrid []float64, coeffs []field.ThreeDSpline, bounds trace.BoundsFunc, policy trace.StepPolicy, atol float64) (*trace.Result, error) {
	return trace.Trace(y0, 3, trace.ThreeDFieldFromExpansion(zGrid, coeffs), bounds, policy, atol)
}

// XYPlaneIntersection2D finds where a traced axisymmetric trajectory
// crosses z=zStar.
func XYPlaneIntersection2D(positions [][]float64, zStar float64) ([]float64, bool) {
	return trace.PlaneIntersection2D(positions, zStar)
}

// XYPlaneIntersection3D finds where a traced 3D trajectory crosses
// z=zStar.
func XYPlaneIntersection3D(positions [][]float64, zStar float64) ([]float64, bool) {
	return trace.PlaneIntersection3D(positions, zStar)
}
