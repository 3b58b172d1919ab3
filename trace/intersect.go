// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import "math"

// planeIntersection walks a stored trajectory backward looking for the
// last pair of consecutive samples that straddle z=zStar along the
// component at zIndex, and linearly interpolates the full state vector
// there (§4.H). Grounded on
// original_source/traceon/backend/traceon-backend.c's
// xy_plane_intersection_2d/3d, including the exact ratio formula
// |(zStar-z1)/(z1-z2)|. For a pair that straddles zStar this equals
// (zStar-z1)/(z2-z1) whichever direction z runs, so the interpolated
// point is the same for particles moving toward increasing or
// decreasing z.
func planeIntersection(positions [][]float64, zIndex int, zStar float64) ([]float64, bool) {
	for i := len(positions) - 1; i >= 1; i-- {
		z1 := positions[i-1][zIndex]
		z2 := positions[i][zIndex]
		if (z1-zStar)*(z2-zStar) > 0 {
			continue
		}
		if z1 == z2 {
			continue
		}
		ratio := math.Abs((zStar - z1) / (z1 - z2))
		width := len(positions[i])
		out := make([]float64, width)
		for k := 0; k < width; k++ {
			out[k] = positions[i-1][k] + ratio*(positions[i][k]-positions[i-1][k])
		}
		return out, true
	}
	return nil, false
}

// PlaneIntersection2D finds where a traced axisymmetric trajectory
// (state [r,z,vr,vz] per sample) crosses the plane z=zStar.
func PlaneIntersection2D(positions [][]float64, zStar float64) ([]float64, bool) {
	return planeIntersection(positions, 1, zStar)
}

// PlaneIntersection3D finds where a traced 3D trajectory (state
// [x,y,z,vx,vy,vz] per sample) crosses the plane z=zStar.
func PlaneIntersection3D(positions [][]float64, zStar float64) ([]float64, bool) {
	return planeIntersection(positions, 2, zStar)
}
