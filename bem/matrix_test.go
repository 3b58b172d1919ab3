// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tobiasgobel/traceon/model"
)

// TestRadialSelfBlockFinite checks that the log-singular self coupling
// block of the first of two voltage segments has no exactly-zero entry.
func TestRadialSelfBlockFinite(tst *testing.T) {
	chk.PrintTitle("radial self block")
	segments := []model.Segment{
		{{1, -0.05, 0}, {1, 0.05, 0}},
		{{1, 0.95, 0}, {1, 1.05, 0}},
	}
	types := []model.ExcitationKind{model.VoltageFixed, model.VoltageFixed}
	values := []float64{1, 0}

	n := len(segments)
	nm := n * model.NQuad2D
	buf := make([]float64, nm*nm)
	matrix, err := RadialMatrixView(buf, n)
	if err != nil {
		tst.Fatal(err)
	}
	if err := FillMatrixRadial(matrix, segments, types, values, 0, n-1); err != nil {
		tst.Fatal(err)
	}

	for l := 0; l < model.NQuad2D; l++ {
		for k := 0; k < model.NQuad2D; k++ {
			v := matrix.At(l, k)
			if v == 0 {
				tst.Errorf("self block (%d,%d) is exactly zero", l, k)
			}
		}
	}
}

// TestRadialDielectricSelfRefused checks that a dielectric row is refused
// rather than silently assembled with a guessed self-quadrature.
func TestRadialDielectricSelfRefused(tst *testing.T) {
	segments := []model.Segment{
		{{1, -0.05, 0}, {1, 0.05, 0}},
	}
	types := []model.ExcitationKind{model.Dielectric}
	values := []float64{2.0}
	buf := make([]float64, model.NQuad2D*model.NQuad2D)
	matrix, err := RadialMatrixView(buf, 1)
	if err != nil {
		tst.Fatal(err)
	}
	if err := FillMatrixRadial(matrix, segments, types, values, 0, 0); err == nil {
		tst.Fatal("expected dielectric row to be refused, got nil error")
	}
}

// TestThreeDDielectricDiagonal checks property: a single dielectric
// triangle's diagonal entry includes the -1 subtraction.
func TestThreeDDielectricDiagonal(tst *testing.T) {
	chk.PrintTitle("3d dielectric diagonal")
	triangles := []model.Triangle{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}
	types := []model.ExcitationKind{model.Dielectric}
	values := []float64{3.0}
	buf := make([]float64, 1)
	matrix, err := ThreeDMatrixView(buf, 1)
	if err != nil {
		tst.Fatal(err)
	}
	if err := FillMatrixThreeD(matrix, triangles, types, values, 0, 0); err != nil {
		tst.Fatal(err)
	}
	if matrix.At(0, 0) >= 0 {
		tst.Errorf("expected diagonal entry dominated by the -1 subtraction to be negative, got %v", matrix.At(0, 0))
	}
}

// TestRadialVoltageBlockSymmetric reproduces scenario S6: two disjoint,
// equal-length segments both held at VoltageFixed=1. The total coupling
// from segment 0's cross-block onto segment 1 must equal the total
// coupling from segment 1 onto segment 0, a discretized statement of
// reciprocity for equal panels, to within 1e-9.
func TestRadialVoltageBlockSymmetric(tst *testing.T) {
	chk.PrintTitle("S6 radial voltage block symmetry")
	segments := []model.Segment{
		{{1, -0.05, 0}, {1, 0.05, 0}},
		{{1, 0.95, 0}, {1, 1.05, 0}},
	}
	types := []model.ExcitationKind{model.VoltageFixed, model.VoltageFixed}
	values := []float64{1, 1}

	n := len(segments)
	nm := n * model.NQuad2D
	buf := make([]float64, nm*nm)
	matrix, err := RadialMatrixView(buf, n)
	if err != nil {
		tst.Fatal(err)
	}
	if err := FillMatrixRadial(matrix, segments, types, values, 0, n-1); err != nil {
		tst.Fatal(err)
	}

	Q := model.NQuad2D
	var sum01, sum10 float64
	for l := 0; l < Q; l++ {
		for k := 0; k < Q; k++ {
			sum01 += matrix.At(l, Q+k)
			sum10 += matrix.At(Q+l, k)
		}
	}
	chk.Scalar(tst, "cross-block sum(0,1) vs sum(1,0)", 1e-9, sum01, sum10)
}

// TestThreeDVoltageIncludesSelf checks that, unlike the radial case, the
// 3D voltage row's j==i entry is populated through the same point-kernel
// integral used for every other column (no self-block special case).
func TestThreeDVoltageIncludesSelf(tst *testing.T) {
	triangles := []model.Triangle{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		{{2, 0, 0}, {3, 0, 0}, {2, 1, 0}},
	}
	types := []model.ExcitationKind{model.VoltageFixed, model.VoltageFixed}
	values := []float64{1, 1}
	buf := make([]float64, 4)
	matrix, err := ThreeDMatrixView(buf, 2)
	if err != nil {
		tst.Fatal(err)
	}
	if err := FillMatrixThreeD(matrix, triangles, types, values, 0, 1); err != nil {
		tst.Fatal(err)
	}
	if matrix.At(0, 0) == 0 {
		tst.Errorf("expected nonzero self-coupling entry")
	}
}
