// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elliptic

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEllipticAtZero(tst *testing.T) {
	chk.PrintTitle("ellipk(0) and ellipe(0) equal pi/2")
	k, err := K(0)
	if err != nil {
		tst.Fatal(err)
	}
	e, err := E(0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "K(0)", 1e-10, k, math.Pi/2)
	chk.Scalar(tst, "E(0)", 1e-10, e, math.Pi/2)
}

func TestEllipticAtOne(tst *testing.T) {
	e, err := E(1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "E(1)", 1e-15, e, 1)
}

func TestEllipticSanity(tst *testing.T) {
	// S2 (elliptic sanity)
	k, err := K(0.5)
	if err != nil {
		tst.Fatal(err)
	}
	e, err := E(0.5)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "K(0.5)", 1e-9, k, 1.8540746773)
	chk.Scalar(tst, "E(0.5)", 1e-9, e, 1.3506438810)
}

func TestEllipticKGrowsNearOne(tst *testing.T) {
	prev := 0.0
	for _, m := range []float64{0.9, 0.99, 0.999, 0.9999} {
		k, err := K(m)
		if err != nil {
			tst.Fatal(err)
		}
		if k <= prev {
			tst.Errorf("K(%v)=%v did not increase from previous %v", m, k, prev)
		}
		prev = k
	}
}

func TestEllipticKDomainViolation(tst *testing.T) {
	if _, err := K(1); err == nil {
		tst.Errorf("expected K(1) to be a domain violation")
	}
	if _, err := K(math.NaN()); err == nil {
		tst.Errorf("expected K(NaN) to be a domain violation")
	}
}
