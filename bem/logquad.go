// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bem assembles the dense boundary-element matrix (§4.F):
// voltage/dielectric/floating rows for the axisymmetric and 3D
// discretizations, including the log-singular self-panel quadrature.
package bem

import (
	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/kernel"
	"github.com/tobiasgobel/traceon/quad"
)

// logIntegral evaluates the self-panel coupling between collocation node
// l and nodal-basis mode k of one segment, via the nested double
// quadrature of §12 / original_source/traceon-backend.c's log_integral:
// the panel is split into a "left" and "right" sub-interval around its
// own l-th collocation node, each integrated with the 7-point Gauss-log
// rule against every one of the 8 Legendre modes of the nodal basis.
// This is what gives the correct finite value for a panel's coupling
// with itself, where the plain Gauss-Legendre rule used for i != j rows
// would sample arbitrarily close to the kernel's log singularity.
func logIntegral(v1, v2 []float64, l, k int) (float64, error) {
	length := geomutil.Length2D(v1, v2)
	lengthFactor := quad.LinePoints[l]/2 + 0.5
	singularX := v1[0] + lengthFactor*(v2[0]-v1[0])
	singularY := v1[1] + lengthFactor*(v2[1]-v1[1])
	singularLength := length * lengthFactor

	sum := 0.0
	for o := 0; o < quad.NLog; o++ {
		p := quad.LogPoints[o]
		w := quad.LogWeights[o]

		// left of the singular point
		lengthLeft := singularLength - singularLength*p
		sampledX := v1[0] + lengthLeft/length*(v2[0]-v1[0])
		sampledY := v1[1] + lengthLeft/length*(v2[1]-v1[1])
		legendreArgLeft := 2*lengthLeft/length - 1

		potLeft, err := kernel.RingPotential(singularX, singularY, sampledX, sampledY)
		if err != nil {
			return 0, err
		}

		// right of the singular point
		lengthRight := singularLength + (length-singularLength)*p
		sampledX2 := v1[0] + lengthRight/length*(v2[0]-v1[0])
		sampledY2 := v1[1] + lengthRight/length*(v2[1]-v1[1])
		legendreArgRight := 2*lengthRight/length - 1

		potRight, err := kernel.RingPotential(singularX, singularY, sampledX2, sampledY2)
		if err != nil {
			return 0, err
		}

		for m := 0; m < quad.NLine; m++ {
			coeff, err := quad.NodalCoefficient(m, k)
			if err != nil {
				return 0, err
			}
			legLeft, err := quad.Legendre(m, legendreArgLeft)
			if err != nil {
				return 0, err
			}
			legRight, err := quad.Legendre(m, legendreArgRight)
			if err != nil {
				return 0, err
			}
			sum += w * singularLength * coeff * legLeft * potLeft
			sum += w * (length - singularLength) * coeff * legRight * potRight
		}
	}
	return sum, nil
}
