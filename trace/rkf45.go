// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace implements the adaptive particle tracer (§4.G) and the
// plane-intersection helper (§4.H) built on top of it.
package trace

// em is the charge-to-mass ratio scaling folded into the Lorentz RHS,
// in the module's (ns, mm) unit system. Grounded on
// original_source/traceon/backend/traceon-backend.c's EM constant.
const em = -0.1758820022723908

// nStages is the number of RKF45 stages (a 6-stage, Cash-Karp-like
// embedded pair).
const nStages = 6

// rkfA are the stage abscissae.
var rkfA = [nStages]float64{0, 2.0 / 9, 1.0 / 3, 3.0 / 4, 1, 5.0 / 6}

// rkfCoeff[index] holds the coefficients multiplying ks[0..index-1] when
// building ys[index]; rkfCoeff[0] is unused (the first stage is y
// itself).
var rkfCoeff = [nStages][]float64{
	nil,
	{2.0 / 9},
	{1.0 / 12, 1.0 / 4},
	{69.0 / 128, -243.0 / 128, 135.0 / 64},
	{-17.0 / 12, 27.0 / 4, -27.0 / 5, 16.0 / 15},
	{65.0 / 432, -5.0 / 16, 13.0 / 16, 4.0 / 27, 5.0 / 144},
}

// rkfCH are the 5th-order solution weights.
var rkfCH = [nStages]float64{47.0 / 450, 0, 12.0 / 25, 32.0 / 225, 1.0 / 30, 6.0 / 25}

// rkfCT are the error-estimate weights (difference between the 5th and
// 4th order solutions).
var rkfCT = [nStages]float64{-1.0 / 150, 0, 3.0 / 100, -16.0 / 75, -1.0 / 20, 6.0 / 25}

// produceNewY builds the index-th intermediate state from y and the
// stage slopes ks[0..index-1] (§4.G). index 0 is y itself and is never
// passed here.
func produceNewY(y []float64, ks [][]float64, index int, out []float64) {
	coeffs := rkfCoeff[index]
	copy(out, y)
	for j, c := range coeffs {
		for i := range out {
			out[i] += c * ks[j][i]
		}
	}
}

// produceNewK evaluates the index-th stage slope at the just-built
// intermediate state ys[index] (the "ys-based" form resolved in
// DESIGN.md as the correct one): the velocity half of ks is h times the
// intermediate velocity, and the acceleration half is h*em times the
// field evaluated at the intermediate position.
func produceNewK(ys []float64, h float64, posDim int, field FieldFunc, out []float64) error {
	pos := ys[:posDim]
	vel := ys[posDim : 2*posDim]
	fld, err := field(pos)
	if err != nil {
		return err
	}
	if len(fld) != posDim {
		panic("trace: field function returned wrong dimension")
	}
	for i := 0; i < posDim; i++ {
		out[i] = h * vel[i]
		out[posDim+i] = h * em * fld[i]
	}
	return nil
}
