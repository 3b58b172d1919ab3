// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the singular Green's-function kernels this
// module integrates over panels: the axisymmetric ring potential
// (expressed through the complete elliptic integrals) and its
// derivatives, and the 3D point-charge Coulomb kernel and its gradient.
//
// Kernels are stateless functions of (target, source). For the 3D
// kernel, polymorphism across "which kernel to integrate" (potential vs
// x/y/z-derivative) is expressed as a small tagged-variant Func3D type
// rather than C-style function pointers or heap-allocated closures
// (§9); the axisymmetric kernels below are few enough in number that
// each is just called directly by name.
package kernel

import (
	"math"

	"github.com/tobiasgobel/traceon/elliptic"
	"github.com/tobiasgobel/traceon/geomutil"
)

// MinDistanceAxis is the radial distance below which a target is
// considered to lie on the axis of symmetry (§3 invariant).
const MinDistanceAxis = 1e-10

// RingPotential returns Phi(r0,z0; r,z) = r*K(t)/sqrt((r+r0)^2+(z-z0)^2),
// with t = 4*r*r0/((r+r0)^2+(z-z0)^2).
func RingPotential(r0, z0, r, z float64) (float64, error) {
	rz2 := (r+r0)*(r+r0) + (z-z0)*(z-z0)
	t := 4.0 * r * r0 / rz2
	Kt, err := elliptic.K(t)
	if err != nil {
		return 0, err
	}
	return Kt * r / math.Sqrt(rz2), nil
}

// RingPotentialDr returns dPhi/dr0, the radial derivative of the ring
// potential. Short-circuits to 0 when the target radius r0 lies on the
// axis of symmetry, per the no-self-step rule in §3.
func RingPotentialDr(r0, z0, r, z float64) (float64, error) {
	if math.Abs(r0) < MinDistanceAxis {
		return 0, nil
	}
	s := geomutil.Norm2D(z-z0, r+r0)
	s1 := (r0 + r) / s
	t := 4.0 * r * r0 / (s * s)
	A, err := elliptic.E(t)
	if err != nil {
		return 0, err
	}
	B, err := elliptic.K(t)
	if err != nil {
		return 0, err
	}
	ellipeTerm := -(2.0*r*r0*s1 - r*s) / (2.0*r0*s*s - 8.0*r0*r0*r)
	ellipkTerm := -r / (2.0 * r0 * s)
	return A*ellipeTerm + B*ellipkTerm, nil
}

// RingPotentialDz returns dPhi/dz0, the axial derivative of the ring
// potential.
func RingPotentialDz(r0, z0, r, z float64) (float64, error) {
	rz2 := (r+r0)*(r+r0) + (z-z0)*(z-z0)
	t := 4.0 * r * r0 / rz2
	E, err := elliptic.E(t)
	if err != nil {
		return 0, err
	}
	numerator := r * (z - z0) * E
	denominator := ((z-z0)*(z-z0) + (r-r0)*(r-r0)) * math.Sqrt(rz2)
	return numerator / denominator, nil
}

// FieldDotNormalRadial returns -grad(Phi).n for the ring kernel, i.e.
// normal[0]*Er + normal[1]*Ez with Er=-dPhi/dr0, Ez=-dPhi/dz0.
func FieldDotNormalRadial(r0, z0, r, z float64, normal [2]float64) (float64, error) {
	dr, err := RingPotentialDr(r0, z0, r, z)
	if err != nil {
		return 0, err
	}
	dz, err := RingPotentialDz(r0, z0, r, z)
	if err != nil {
		return 0, err
	}
	Er, Ez := -dr, -dz
	return normal[0]*Er + normal[1]*Ez, nil
}
