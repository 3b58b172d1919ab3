// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// TestRingOnAxis reproduces scenario S1: a unit ring of radius 1mm at
// z=0, observed on-axis at (0,0,2), should read back pi/(2*sqrt(5)).
func TestRingOnAxis(tst *testing.T) {
	chk.PrintTitle("S1 ring-on-axis potential")
	phi, err := RingPotential(0, 2, 1, 0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "Phi(0,2;1,0)", 1e-6, phi, math.Pi/(2*math.Sqrt(5)))
}

// TestRingPotentialSymmetry checks property 2: Phi(r0,z0;r,z) =
// Phi(r,z;r0,z0)*(r/r0), at random finite nodes.
func TestRingPotentialSymmetry(tst *testing.T) {
	rnd.Init(0)
	for i := 0; i < 20; i++ {
		r0 := 0.1 + rnd.Float64(0, 5)
		z0 := rnd.Float64(-5, 5)
		r := 0.1 + rnd.Float64(0, 5)
		z := rnd.Float64(-5, 5)

		lhs, err := RingPotential(r0, z0, r, z)
		if err != nil {
			tst.Fatal(err)
		}
		rhs, err := RingPotential(r, z, r0, z0)
		if err != nil {
			tst.Fatal(err)
		}
		rhs *= r / r0
		chk.Scalar(tst, "ring potential symmetry", 1e-8, lhs, rhs)
	}
}

func TestRingPotentialDrAxisGuard(tst *testing.T) {
	dr, err := RingPotentialDr(0, 1, 2, 3)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "dPhi/dr0 on axis", 0, dr, 0)
}
