// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/tobiasgobel/traceon/geomutil"

// Potential3D returns the 3D point potential 1/(4*r), r = |target-source|.
func Potential3D(x0, y0, z0, x, y, z float64) float64 {
	r := geomutil.Norm3D(x-x0, y-y0, z-z0)
	return 1 / (4 * r)
}

// Potential3DDx, Potential3DDy, Potential3DDz return the three partial
// derivatives of Potential3D with respect to the target point (x0,y0,z0):
// (xi - xi0)/(4*r^3).
func Potential3DDx(x0, y0, z0, x, y, z float64) float64 {
	r := geomutil.Norm3D(x-x0, y-y0, z-z0)
	return (x - x0) / (4 * r * r * r)
}

func Potential3DDy(x0, y0, z0, x, y, z float64) float64 {
	r := geomutil.Norm3D(x-x0, y-y0, z-z0)
	return (y - y0) / (4 * r * r * r)
}

func Potential3DDz(x0, y0, z0, x, y, z float64) float64 {
	r := geomutil.Norm3D(x-x0, y-y0, z-z0)
	return (z - z0) / (4 * r * r * r)
}

// FieldDotNormal3D returns -grad(Phi).n for the 3D point kernel.
func FieldDotNormal3D(x0, y0, z0, x, y, z float64, normal [3]float64) float64 {
	Ex := -Potential3DDx(x0, y0, z0, x, y, z)
	Ey := -Potential3DDy(x0, y0, z0, x, y, z)
	Ez := -Potential3DDz(x0, y0, z0, x, y, z)
	return normal[0]*Ex + normal[1]*Ey + normal[2]*Ez
}

// Func3D is the small tagged-variant kernel abstraction referenced in §9:
// rather than a C-style function pointer parameterised on an opaque void*
// context, each 3D source-point kernel used during triangle integration is
// identified by one of these constants and dispatched through Eval.
type Func3D int

const (
	// KernelPotential3D evaluates Potential3D.
	KernelPotential3D Func3D = iota
	// KernelDx3D evaluates Potential3DDx.
	KernelDx3D
	// KernelDy3D evaluates Potential3DDy.
	KernelDy3D
	// KernelDz3D evaluates Potential3DDz.
	KernelDz3D
)

// Eval dispatches to the kernel this Func3D value names.
func (f Func3D) Eval(x0, y0, z0, x, y, z float64) float64 {
	switch f {
	case KernelPotential3D:
		return Potential3D(x0, y0, z0, x, y, z)
	case KernelDx3D:
		return Potential3DDx(x0, y0, z0, x, y, z)
	case KernelDy3D:
		return Potential3DDy(x0, y0, z0, x, y, z)
	case KernelDz3D:
		return Potential3DDz(x0, y0, z0, x, y, z)
	default:
		panic("kernel: unknown Func3D variant")
	}
}
