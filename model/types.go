// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the shared data-model types and compile-time shape
// constants of the boundary-element core (§3): segments, triangles,
// excitation kinds, and the RadialMatrixSize shape check, so that a
// shape mismatch between NM and N*Q is caught at the boundary instead of
// silently corrupting memory. It has no row-major offset helpers; the
// nested buffers are typed as fixed-size Go arrays instead.
package model

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// NQuad2D is the number of Gauss-Legendre nodal unknowns per segment (Q
// in §3/§4.F).
const NQuad2D = 8

// DerivMax is the number of successive on-axis derivatives D0..D8 carried
// per axial expansion interval (§4.D).
const DerivMax = 9

// NUMax and MMax bound the 3D Fourier-radial expansion's (nu, m) modes.
const (
	NUMax = 4
	MMax  = 8
)

// NBlock is the tracer's pre-allocated sample block size (§4.G, §5).
const NBlock = 100000

// Segment is an axisymmetric boundary element: two endpoints in (r,z),
// embedded as 3-vectors (the third coordinate is ignored but preserved
// for layout, per §3).
type Segment [2][3]float64

// Triangle is a 3D boundary element: three vertices in (x,y,z). Vertex
// order defines the orientation used to compute the outward normal.
type Triangle [3][3]float64

// Finite reports whether every coordinate of the segment is finite.
func (s Segment) Finite() bool {
	for _, v := range s {
		for _, c := range v {
			if isNonFinite(c) {
				return false
			}
		}
	}
	return true
}

// Finite reports whether every coordinate of the triangle is finite.
func (t Triangle) Finite() bool {
	for _, v := range t {
		for _, c := range v {
			if isNonFinite(c) {
				return false
			}
		}
	}
	return true
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ExcitationKind tags a boundary-element row's physical condition (§4.F,
// §6). The zero value is intentionally not a valid kind, so a
// zero-initialized buffer is caught as a domain violation rather than
// silently treated as VoltageFixed.
type ExcitationKind uint8

const (
	// VoltageFixed prescribes a constant voltage on the panel.
	VoltageFixed ExcitationKind = 1
	// VoltageFunctional prescribes a voltage given by a callback.
	VoltageFunctional ExcitationKind = 2
	// Dielectric imposes a permittivity-jump condition.
	Dielectric ExcitationKind = 3
	// FloatingConductor prescribes an unknown-but-uniform voltage.
	FloatingConductor ExcitationKind = 4
)

// Validate returns a typed error if k is not one of the four known
// excitation kinds. An unknown tag is fatal per §4.F/§7: the matrix is
// ill-defined and the row must not be silently zeroed.
func (k ExcitationKind) Validate() error {
	switch k {
	case VoltageFixed, VoltageFunctional, Dielectric, FloatingConductor:
		return nil
	default:
		return chk.Err("model: unknown excitation kind %d", k)
	}
}

// IsVoltageLike reports whether k is one of the kinds assembled via the
// direct potential-collocation row (fixed/functional/floating), as
// opposed to the dielectric field-dot-normal row.
func (k ExcitationKind) IsVoltageLike() bool {
	return k == VoltageFixed || k == VoltageFunctional || k == FloatingConductor
}

// RadialMatrixSize returns NM = N*NQuad2D, validating it against an
// explicitly supplied NM so callers that pass a pre-sized buffer get a
// boundary check instead of a silent shape mismatch (§9).
func RadialMatrixSize(n, nm int) (int, error) {
	want := n * NQuad2D
	if nm != want {
		return 0, chk.Err("model: NM=%d does not equal N*NQuad2D=%d*%d=%d", nm, n, NQuad2D, want)
	}
	return want, nil
}
