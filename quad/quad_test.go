// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestWeightSums(tst *testing.T) {
	chk.PrintTitle("quadrature weight sums")
	if err := Validate(); err != nil {
		tst.Fatal(err)
	}
}

func TestLegendreOrderCap(tst *testing.T) {
	if _, err := Legendre(9, 0.3); err == nil {
		tst.Errorf("expected Legendre(9, .) to be fatal past the tabulated maximum")
	}
	if _, err := Legendre(8, 0.3); err != nil {
		tst.Errorf("Legendre(8, .) should be valid: %v", err)
	}
}

func TestLegendreP0P1(tst *testing.T) {
	p0, _ := Legendre(0, 0.7)
	p1, _ := Legendre(1, 0.7)
	chk.Scalar(tst, "P0(0.7)", 1e-15, p0, 1)
	chk.Scalar(tst, "P1(0.7)", 1e-15, p1, 0.7)
}
