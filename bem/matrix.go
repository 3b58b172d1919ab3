// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/tobiasgobel/traceon/geomutil"
	"github.com/tobiasgobel/traceon/kernel"
	"github.com/tobiasgobel/traceon/model"
	"github.com/tobiasgobel/traceon/quad"
)

// Verbose, when true, makes FillMatrixRadial/FillMatrixThreeD emit a
// progress line for every voltage row they assemble, the way the teacher's fem/domain.go logs
// ">> ..." progress during assembly.
var Verbose = false

// RadialMatrixView wraps a caller-owned, pre-allocated flat buffer of
// length NM*NM (NM = N*model.NQuad2D) as a gonum dense matrix, without
// copying or allocating: §5 forbids dynamic allocation in the assembly
// hot path, and mat.NewDense accepts the caller's backing slice
// directly, so this is purely a typed view (§9) over memory the caller
// still owns.
func RadialMatrixView(buf []float64, n int) (*mat.Dense, error) {
	want := n * model.NQuad2D
	if len(buf) != want*want {
		return nil, chk.Err("bem: matrix buffer has %d entries, expected NM*NM=%d*%d=%d", len(buf), want, want, want*want)
	}
	return mat.NewDense(want, want, buf), nil
}

// FillMatrixRadial fills the rows [rowStart, rowEnd] (inclusive, segment
// indices, not node indices) of the axisymmetric boundary-element matrix
// (§4.F). Non-overlapping row ranges may be filled concurrently by
// distinct goroutines on the same matrix, since each goroutine only
// writes rows it owns (§5).
func FillMatrixRadial(matrix *mat.Dense, segments []model.Segment, types []model.ExcitationKind, values []float64, rowStart, rowEnd int) error {
	n := len(segments)
	nm, _ := matrix.Dims()
	if _, err := model.RadialMatrixSize(n, nm); err != nil {
		return err
	}
	if len(types) != n || len(values) != n {
		return chk.Err("bem: types/values must have %d entries, got %d/%d", n, len(types), len(values))
	}
	if rowStart < 0 || rowEnd >= n || rowStart > rowEnd {
		return chk.Err("bem: invalid row range [%d, %d] for %d segments", rowStart, rowEnd, n)
	}
	for _, seg := range segments {
		if !seg.Finite() {
			return chk.Err("bem: non-finite segment %v", seg)
		}
	}

	Q := model.NQuad2D
	for i := rowStart; i <= rowEnd; i++ {
		if err := types[i].Validate(); err != nil {
			return err
		}
		targetV1, targetV2 := segments[i][0][:], segments[i][1][:]

		switch {
		case types[i].IsVoltageLike():
			if Verbose {
				io.Pf(">> bem: assembling voltage row block %d\n", i)
			}
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				v1, v2 := segments[j][0][:], segments[j][1][:]
				sourceLength := geomutil.Length2D(v1, v2)
				for l := 0; l < Q; l++ {
					targetX, targetY, _ := quad.LineSum(targetV1, targetV2, l)
					for k := 0; k < Q; k++ {
						lengthFactor := quad.LinePoints[k]/2 + 0.5
						sourceX := v1[0] + lengthFactor*(v2[0]-v1[0])
						sourceY := v1[1] + lengthFactor*(v2[1]-v1[1])
						weight := quad.LineWeights[k] * sourceLength / 2

						phi, err := kernel.RingPotential(targetX, targetY, sourceX, sourceY)
						if err != nil {
							return err
						}
						matrix.Set(Q*i+l, Q*j+k, weight*phi)
					}
				}
			}
			// self block: log-singular quadrature
			for l := 0; l < Q; l++ {
				for k := 0; k < Q; k++ {
					val, err := logIntegral(targetV1, targetV2, l, k)
					if err != nil {
						return err
					}
					matrix.Set(Q*i+l, Q*i+k, val)
				}
			}

		case types[i] == model.Dielectric:
			normal, err := geomutil.Normal2D(targetV1, targetV2)
			if err != nil {
				return err
			}
			K := values[i]
			factor := (2*K - 2) / (math.Pi * (1 + K))
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				v1, v2 := segments[j][0][:], segments[j][1][:]
				sourceLength := geomutil.Length2D(v1, v2)
				for l := 0; l < Q; l++ {
					targetX, targetY, _ := quad.LineSum(targetV1, targetV2, l)
					for k := 0; k < Q; k++ {
						lengthFactor := quad.LinePoints[k]/2 + 0.5
						sourceX := v1[0] + lengthFactor*(v2[0]-v1[0])
						sourceY := v1[1] + lengthFactor*(v2[1]-v1[1])
						weight := quad.LineWeights[k] * sourceLength / 2

						val, err := kernel.FieldDotNormalRadial(targetX, targetY, sourceX, sourceY, normal)
						if err != nil {
							return err
						}
						matrix.Set(Q*i+l, Q*j+k, factor*weight*val)
					}
				}
			}
			// Off-diagonal entries are now filled; only the
			// self-coupling block (i==j) is refused, since no
			// self-panel quadrature for the field-dot-normal kernel is
			// specified anywhere in the reference source (DESIGN.md,
			// "Dielectric rows in radial assembly").
			return chk.Err("bem: dielectric row at segment %d has no self-coupling quadrature (i==j) at Q=%d; refusing rather than silently leaving the diagonal block zero", i, Q)

		default:
			return chk.Err("bem: unknown excitation kind %d at segment %d", types[i], i)
		}
	}
	return nil
}
