// Copyright 2024 The Traceon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elliptic implements the complete elliptic integrals K(m) and
// E(m) on all real m < 1, using the Chebyshev-like approximants of
// W. J. Cody, "Chebyshev approximations for the complete elliptic
// integrals K and E", Math. Comp. 19 (1965), augmented with the Landen
// transformation tricks used by SciPy's ellipk/ellipe to extend the
// series to negative m.
//
// Argument convention: m is the parameter (not the modulus k); K is
// singular at m=1 and is never evaluated there by construction (panels
// in this module's boundary-element problems are disjoint, so the
// self-distance that would produce m=1 never arises).
package elliptic

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// codyAK and codyBK are the eight-term coefficient tables for K's series in
// eta = 1-m; codyAK carries the polynomial part, codyBK the log(1/eta) part.
var codyAK = [8]float64{
	math.Ln2 * 2, // log(4.0)
	9.65736020516771e-2,
	3.08909633861795e-2,
	1.52618320622534e-2,
	1.25565693543211e-2,
	1.68695685967517e-2,
	1.09423810688623e-2,
	1.40704915496101e-3,
}

var codyBK = [8]float64{
	1.0 / 2.0,
	1.24999998585309e-1,
	7.03114105853296e-2,
	4.87379510945218e-2,
	3.57218443007327e-2,
	2.09857677336790e-2,
	5.81807961871996e-3,
	3.42805719229748e-4,
}

var codyAE = [8]float64{
	1,
	4.43147193467733e-1,
	5.68115681053803e-2,
	2.21862206993846e-2,
	1.56847700239786e-2,
	1.92284389022977e-2,
	1.21819481486695e-2,
	1.55618744745296e-3,
}

var codyBE = [8]float64{
	0,
	2.49999998448655e-1,
	9.37488062098189e-2,
	5.84950297066166e-2,
	4.09074821593164e-2,
	2.35091602564984e-2,
	6.45682247315060e-3,
	3.78886487349367e-4,
}

func codySeries(eta float64, A, B *[8]float64) float64 {
	L := math.Log(1 / eta)
	sum := 0.0
	etaPow := 1.0
	for i := 0; i < 8; i++ {
		sum += (A[i] + L*B[i]) * etaPow
		etaPow *= eta
	}
	return sum
}

// kSingularity evaluates the Cody series for K directly at m, valid for
// eta = 1-m in (0,2), i.e. m in (-1, 1).
func kSingularity(m float64) float64 {
	return codySeries(1-m, &codyAK, &codyBK)
}

// eZeroOne evaluates the Cody series for E directly at m, valid for m in
// [0,1].
func eZeroOne(m float64) float64 {
	return codySeries(1-m, &codyAE, &codyBE)
}

// K returns the complete elliptic integral of the first kind at parameter
// m. m must be finite and strictly less than 1; this is a domain
// precondition the caller must guarantee (panels are disjoint by
// construction, so self-distance m=1 never occurs in this module's own
// call sites).
func K(m float64) (float64, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, chk.Err("elliptic.K: non-finite argument m=%v", m)
	}
	if m >= 1 {
		return 0, chk.Err("elliptic.K: argument m=%v >= 1 is singular", m)
	}
	if m > -1 {
		return kSingularity(m), nil
	}
	return kSingularity(1-1/(1-m)) / math.Sqrt(1-m), nil
}

// E returns the complete elliptic integral of the second kind at
// parameter m. m must be finite; E is well-defined (and this port's
// formula valid) for all m < 1, with the convention E(1) = 1.
func E(m float64) (float64, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, chk.Err("elliptic.E: non-finite argument m=%v", m)
	}
	if m == 1 {
		return 1, nil
	}
	if m > 1 {
		return 0, chk.Err("elliptic.E: argument m=%v > 1 is out of domain", m)
	}
	if 0 <= m && m <= 1 {
		return eZeroOne(m), nil
	}
	return eZeroOne(m/(m-1)) * math.Sqrt(1-m), nil
}
