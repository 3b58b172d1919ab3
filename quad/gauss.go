// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad holds the fixed, compile-time quadrature rules this module
// integrates panel kernels with: an 8-point Gauss-Legendre rule on a line
// panel, a 9-point symmetric rule on a reference triangle, a 7-point
// Gauss-log rule used only for self-panel (singular) integration, and the
// Legendre polynomials P0..P8 used to build the nodal basis for the
// log-singular self-coupling block.
package quad

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// NLine is the number of Gauss-Legendre nodes used on every line panel.
const NLine = 8

// LinePoints and LineWeights are the 8-point Gauss-Legendre rule on [-1,1].
var LinePoints = [NLine]float64{
	-0.1834346424956498, 0.1834346424956498,
	-0.5255324099163290, 0.5255324099163290,
	-0.7966664774136267, 0.7966664774136267,
	-0.9602898564975363, 0.9602898564975363,
}

var LineWeights = [NLine]float64{
	0.3626837833783620, 0.3626837833783620,
	0.3137066458778873, 0.3137066458778873,
	0.2223810344533745, 0.2223810344533745,
	0.1012285362903763, 0.1012285362903763,
}

// NTriangle is the number of quadrature nodes on the reference triangle.
const NTriangle = 9

// TriB1, TriB2 and TriWeights are the barycentric coordinates and weights
// of the 9-point symmetric triangle rule.
var TriB1 = [NTriangle]float64{
	0.124949503233232, 0.437525248383384, 0.437525248383384,
	0.797112651860071, 0.797112651860071, 0.165409927389841,
	0.165409927389841, 0.037477420750088, 0.037477420750088,
}

var TriB2 = [NTriangle]float64{
	0.437525248383384, 0.124949503233232, 0.437525248383384,
	0.165409927389841, 0.037477420750088, 0.797112651860071,
	0.037477420750088, 0.797112651860071, 0.165409927389841,
}

var TriWeights = [NTriangle]float64{
	0.205950504760887, 0.205950504760887, 0.205950504760887,
	0.063691414286223, 0.063691414286223, 0.063691414286223,
	0.063691414286223, 0.063691414286223, 0.063691414286223,
}

// NLog is the number of nodes in the Gauss-log rule.
const NLog = 7

// LogPoints and LogWeights are John A. Crow's 1993 quadrature of
// integrands with a logarithmic singularity, on [0,1].
var LogPoints = [NLog]float64{
	0.175965211846577428056264284949e-2,
	0.244696507125133674276453373497e-1,
	0.106748056858788954180259781083,
	0.275807641295917383077859512057,
	0.517855142151833716158668961982,
	0.771815485362384900274646869494,
	0.952841340581090558994306588503,
}

var LogWeights = [NLog]float64{
	0.663266631902570511783904989051e-2,
	0.457997079784753341255767348120e-1,
	0.123840208071318194550489564922,
	0.212101926023811930107914875456,
	0.261390645672007725646580606859,
	0.231636180290909384318815526104,
	0.118598665644451726132783641957,
}

// LineSum returns the line rule's node position at index k mapped from
// [-1,1] onto the segment [v1,v2]: used by every panel integral.
func LineSum(v1, v2 []float64, k int) (x, y, weight float64) {
	factor := LinePoints[k]/2 + 0.5
	x = v1[0] + factor*(v2[0]-v1[0])
	y = v1[1] + factor*(v2[1]-v1[1])
	length := distance2D(v1, v2)
	weight = LineWeights[k] * length / 2
	return
}

func distance2D(p1, p2 []float64) float64 {
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// TrianglePoint returns the triangle rule's k-th quadrature point mapped
// onto the triangle (v1,v2,v3) and its bare weight (summing to 1 over the
// reference triangle). The caller multiplies the weighted sum by the
// triangle's area once, as §4.C's triangle_integral formula does.
func TrianglePoint(v1, v2, v3 []float64, k int) (x, y, z, weight float64) {
	b1, b2 := TriB1[k], TriB2[k]
	x = v1[0] + b1*(v2[0]-v1[0]) + b2*(v3[0]-v1[0])
	y = v1[1] + b1*(v2[1]-v1[1]) + b2*(v3[1]-v1[1])
	z = v1[2] + b1*(v2[2]-v1[2]) + b2*(v3[2]-v1[2])
	weight = TriWeights[k]
	return
}

// Validate returns a typed error if any quadrature table fails to sum
// to its expected total, the invariant exercised by §8 property test 5.
func Validate() error {
	sum := floats.Sum(LineWeights[:])
	if math.Abs(sum-2) > 1e-12 {
		return chk.Err("quad: line weights sum to %v, expected 2", sum)
	}
	sum = floats.Sum(TriWeights[:])
	if math.Abs(sum-1) > 1e-12 {
		return chk.Err("quad: triangle weights sum to %v, expected 1", sum)
	}
	return nil
}
