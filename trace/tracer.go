// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/model"
)

// FieldFunc evaluates the field at a position (length posDim: 2 for the
// axisymmetric tracer, 3 for the 3D tracer) and returns a vector of the
// same dimension.
type FieldFunc func(pos []float64) ([]float64, error)

// BoundsFunc reports whether pos (length posDim) is still inside the
// region being traced. Tracing stops, without error, the first time it
// returns false.
type BoundsFunc func(pos []float64) bool

// StepPolicy controls the adaptive step-size behavior of Trace. Two
// policies are carried because the reference backend shipped two
// mutually inconsistent ones (see DESIGN.md); both are exposed rather
// than silently picking one.
type StepPolicy struct {
	// StepMax bounds h times the particle's initial speed: hmax is
	// StepMax/|v0|, computed once, so the spatial step per iteration can
	// exceed StepMax once the particle speeds up.
	StepMax float64
	// HMin is the floor below which h is never reduced. Zero means no
	// floor: the step is simply capped at hmax and allowed to shrink
	// without bound, the behavior of the unclamped reference variant.
	HMin float64
}

// DefaultStepPolicy is the no-floor, hmax=0.01 policy, paired with the
// ys-based stage update that DESIGN.md resolves as the correct pairing.
var DefaultStepPolicy = StepPolicy{StepMax: 0.01, HMin: 0}

// ClampedStepPolicy is the alternative hmax=0.085, hmin-floored policy
// carried only because the reference source shipped it; it is paired in
// the original with the incorrect ks-based stage update, which this
// port does not implement, so using ClampedStepPolicy here is not
// bit-for-bit identical to that file's behavior.
var ClampedStepPolicy = StepPolicy{StepMax: 0.085, HMin: 0.085 / 1e10}

// Result holds the sampled trajectory of a single traced particle.
type Result struct {
	// Positions holds one full state vector (length posDim*2) per
	// accepted step, including the initial condition.
	Positions [][]float64
	Times     []float64
}

// Trace integrates the Lorentz-force ODE from y0 (length 2*posDim:
// position then velocity) using adaptive RKF45 (§4.G), sampling an
// accepted state after every successful step until bounds reports the
// particle has left the region, or model.NBlock samples have
// accumulated.
func Trace(y0 []float64, posDim int, field FieldFunc, bounds BoundsFunc, policy StepPolicy, atol float64) (*Result, error) {
	if posDim != 2 && posDim != 3 {
		return nil, chk.Err("trace: posDim must be 2 or 3, got %d", posDim)
	}
	width := 2 * posDim
	if len(y0) != width {
		return nil, chk.Err("trace: y0 must have %d entries for posDim=%d, got %d", width, posDim, len(y0))
	}
	if atol <= 0 {
		return nil, chk.Err("trace: atol must be positive, got %v", atol)
	}
	if policy.StepMax <= 0 {
		return nil, chk.Err("trace: policy.StepMax must be positive, got %v", policy.StepMax)
	}

	y := append([]float64(nil), y0...)
	result := &Result{
		Positions: [][]float64{append([]float64(nil), y...)},
		Times:     []float64{0},
	}

	ks := make([][]float64, nStages)
	ys := make([][]float64, nStages)
	for i := range ks {
		ks[i] = make([]float64, width)
		ys[i] = make([]float64, width)
	}

	// v and hmax are computed once, from the initial velocity, and never
	// revisited: both original backends do the same, even though the
	// particle's speed may change afterward when the field does work on
	// it.
	v := norm(y0[posDim:width])
	if v == 0 {
		return nil, chk.Err("trace: particle has zero velocity, cannot choose a time step")
	}
	hmax := policy.StepMax / v

	t := 0.0
	h := hmax

	for len(result.Positions) < model.NBlock {
		if !bounds(y[:posDim]) {
			return result, nil
		}

		copy(ys[0], y)
		if err := produceNewK(ys[0], h, posDim, field, ks[0]); err != nil {
			return nil, err
		}
		for index := 1; index < nStages; index++ {
			produceNewY(y, ks, index, ys[index])
			if err := produceNewK(ys[index], h, posDim, field, ks[index]); err != nil {
				return nil, err
			}
		}

		te := 0.0
		for i := 0; i < width; i++ {
			sum := 0.0
			for j := 0; j < nStages; j++ {
				sum += rkfCT[j] * ks[j][i]
			}
			if a := math.Abs(sum); a > te {
				te = a
			}
		}

		accept := te <= atol || (policy.HMin > 0 && h == policy.HMin)
		if accept {
			for i := 0; i < width; i++ {
				for j := 0; j < nStages; j++ {
					y[i] += rkfCH[j] * ks[j][i]
				}
			}
			t += h
			result.Positions = append(result.Positions, append([]float64(nil), y...))
			result.Times = append(result.Times, t)
		}

		factor := 0.9 * math.Pow(atol/te, 0.2)
		if policy.HMin > 0 {
			switch {
			case te > atol/10:
				h = math.Min(factor*h, hmax)
				if h < policy.HMin {
					h = policy.HMin
				}
			case te < atol/100:
				h = hmax
			}
		} else {
			h = math.Min(factor*h, hmax)
		}
	}
	return result, nil
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}
	return math.Sqrt(sum)
}
