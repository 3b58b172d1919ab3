// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tobiasgobel/traceon/bem"
	"github.com/tobiasgobel/traceon/field"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/trace"
)

func main() {

	// catch errors
	verbose := true
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nTraceon -- charged-particle optics boundary-element core\n\n")
	io.Pf("Copyright 2024 The Traceon Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	flag.BoolVar(&verbose, "v", true, "print progress while assembling")
	flag.Parse()
	bem.Verbose = verbose

	// two coaxial unit-radius rings at z=0 and z=1, both held at a fixed
	// voltage: a minimal but non-trivial smoke configuration exercising
	// assembly, field evaluation and tracing end to end.
	segments := []model.Segment{
		{{1, -0.01, 0}, {1, 0.01, 0}},
		{{1, 0.99, 0}, {1, 1.01, 0}},
	}
	types := []model.ExcitationKind{model.VoltageFixed, model.VoltageFixed}
	values := []float64{1, -1}

	n := len(segments)
	nm := n * model.NQuad2D
	buf := make([]float64, nm*nm)
	matrix, err := bem.RadialMatrixView(buf, n)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := bem.FillMatrixRadial(matrix, segments, types, values, 0, n-1); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf(">> assembled %d x %d boundary-element matrix\n", nm, nm)

	// a uniform unit nodal charge on every node, purely to exercise the
	// field evaluator (a real run solves the assembled matrix for these
	// charges against the prescribed voltages).
	charges := make([][model.NQuad2D]float64, n)
	for i := range charges {
		for k := 0; k < model.NQuad2D; k++ {
			charges[i][k] = 1
		}
	}

	phi, err := field.PotentialRadial([3]float64{0, 0.5, 0}, segments, charges)
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pf(">> potential at (r=0, z=0.5): %v\n", phi)

	fieldFunc := func(pos []float64) ([]float64, error) {
		out, err := field.FieldRadial([3]float64{pos[0], pos[1], 0}, segments, charges)
		if err != nil {
			return nil, err
		}
		return []float64{out[0], out[1]}, nil
	}
	bounds := func(pos []float64) bool { return pos[1] > -5 && pos[1] < 5 }
	result, err := trace.Trace([]float64{0.5, -2, 0, 1}, 2, fieldFunc, bounds, trace.DefaultStepPolicy, 1e-8)
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pf(">> traced %d samples\n", len(result.Positions))
}
