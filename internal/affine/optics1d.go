// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affine implements the one-dimensional phase-space affine
// group used to represent optical systems: position/angle pairs
// (p,a) mapped by p' = pp*p + pa*a + cp, a' = ap*p + aa*a + ca.
package affine

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// singularTol is the determinant tolerance below which Invert refuses
// to produce a result.
const singularTol = 1e-12

// Optics1D is a one-dimensional affine phase-space map. The linear
// part is (pp,pa; ap,aa); the translation part is (cp,ca).
type Optics1D struct {
	Pp, Pa float64
	Ap, Aa float64
	Cp, Ca float64
}

// Identity returns the neutral element of the affine group.
func Identity() Optics1D {
	return Optics1D{Pp: 1, Aa: 1}
}

// Translation returns free-space propagation by distance q.
func Translation(q float64) Optics1D {
	return Optics1D{Pp: 1, Pa: q, Aa: 1}
}

// Refraction returns a thin lens of focal length f centred at c.
// f must be non-zero.
func Refraction(f, c float64) (Optics1D, error) {
	if f == 0 {
		return Optics1D{}, chk.Err("refraction: focal length must be non-zero\n")
	}
	return Optics1D{
		Pp: 1,
		Ap: -1 / f,
		Aa: 1,
		Ca: c / f,
	}, nil
}

// Det returns the determinant pp*aa - pa*ap of the linear part.
func (o Optics1D) Det() float64 {
	return o.Pp*o.Aa - o.Pa*o.Ap
}

// Apply evaluates the affine map at phase-space point (p,a).
func (o Optics1D) Apply(p, a float64) (pOut, aOut float64) {
	pOut = o.Pp*p + o.Pa*a + o.Cp
	aOut = o.Ap*p + o.Aa*a + o.Ca
	return
}

// Compose returns L∘R, i.e. the map x ↦ L(R(x)). Aliasing-safe: l and
// r may be the same value the result is assigned to, since every field
// is computed from l/r locals before out is written.
func Compose(l, r Optics1D) Optics1D {
	var out Optics1D
	out.Pp = l.Pp*r.Pp + l.Pa*r.Ap
	out.Pa = l.Pp*r.Pa + l.Pa*r.Aa
	out.Ap = l.Ap*r.Pp + l.Aa*r.Ap
	out.Aa = l.Ap*r.Pa + l.Aa*r.Aa
	out.Cp, out.Ca = l.Apply(r.Cp, r.Ca)
	return out
}

// Invert returns the inverse of o. It fails iff |Det(o)| is below a
// fixed tolerance.
func Invert(o Optics1D) (Optics1D, error) {
	d := o.Det()
	if math.Abs(d) < singularTol {
		return Optics1D{}, chk.Err("affine: optics element is singular (det=%v)\n", d)
	}
	pp := o.Aa / d
	aa := o.Pp / d
	pa := -o.Pa / d
	ap := -o.Ap / d
	cp := -(pp*o.Cp + pa*o.Ca)
	ca := -(ap*o.Cp + aa*o.Ca)
	return Optics1D{Pp: pp, Pa: pa, Ap: ap, Aa: aa, Cp: cp, Ca: ca}, nil
}
