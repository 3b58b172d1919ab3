// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traceonc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEllipkAtZero(tst *testing.T) {
	chk.PrintTitle("traceonc ellipk")
	v, err := Ellipk(0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "K(0)", 1e-12, v, math.Pi/2)
}

func TestNormal2D(tst *testing.T) {
	n, err := Normal2D([]float64{0, 0, 0}, []float64{1, 0, 0})
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "nx", 1e-12, n[0], 0)
	chk.Scalar(tst, "ny", 1e-12, n[1], -1)
}
