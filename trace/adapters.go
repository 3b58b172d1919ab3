// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"github.com/tobiasgobel/traceon/field"
	"github.com/tobiasgobel/traceon/model"
)

// RadialFieldFromExpansion adapts the fast axial-derivative field
// evaluator into a FieldFunc suitable for the axisymmetric tracer
// (posDim=2, pos=[r,z]).
func RadialFieldFromExpansion(zGrid []float64, coeffs []field.RadialSpline) FieldFunc {
	return func(pos []float64) ([]float64, error) {
		out, err := field.FieldRadialDerivs([3]float64{pos[0], pos[1], 0}, zGrid, coeffs)
		if err != nil {
			return nil, err
		}
		return []float64{out[0], out[1]}, nil
	}
}

// ThreeDFieldFromExpansion adapts the fast Fourier-radial field
// evaluator into a FieldFunc suitable for the 3D tracer (posDim=3,
// pos=[x,y,z]).
func ThreeDFieldFromExpansion(zGrid []float64, coeffs []field.ThreeDSpline) FieldFunc {
	return func(pos []float64) ([]float64, error) {
		out, err := field.FieldThreeDDerivs([3]float64{pos[0], pos[1], pos[2]}, zGrid, coeffs)
		if err != nil {
			return nil, err
		}
		return []float64{out[0], out[1], out[2]}, nil
	}
}

// ThreeDFieldFromTriangles adapts the direct (un-accelerated) 3D panel
// quadrature evaluator into a FieldFunc, the slow-path peer of
// ThreeDFieldFromExpansion used to validate the fast tracer against the
// same triangles/charges used to assemble the boundary-element matrix.
func ThreeDFieldFromTriangles(triangles []model.Triangle, charges []float64) FieldFunc {
	return func(pos []float64) ([]float64, error) {
		out, err := field.FieldAt3D([3]float64{pos[0], pos[1], pos[2]}, triangles, charges)
		if err != nil {
			return nil, err
		}
		return []float64{out[0], out[1], out[2]}, nil
	}
}
