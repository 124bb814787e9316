// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package angular implements the angular sampling plane: a set of
// view directions tagged with a basis and a parameterisation.
package angular

import "github.com/cpmech/gosl/chk"

// Basis is the assumed sample footprint in the phase-space cell.
type Basis int

const (
	// Uninit marks a plane that has not been set up.
	Uninit Basis = iota
	// Dirac is a point-like angular sample.
	Dirac
	// Pillbox is a uniform-square-support angular sample.
	Pillbox
)

// String implements fmt.Stringer.
func (b Basis) String() string {
	switch b {
	case Dirac:
		return "Dirac"
	case Pillbox:
		return "Pillbox"
	default:
		return "Uninit"
	}
}

// Parameterisation selects whether the angular plane's coordinates
// index position or angle.
type Parameterisation int

const (
	// Spatial indexes position.
	Spatial Parameterisation = iota
	// Angular indexes angle.
	Angular
)

// String implements fmt.Stringer.
func (p Parameterisation) String() string {
	if p == Angular {
		return "Angular"
	}
	return "Spatial"
}

// Plane is the set of view samples {(u_i, v_i, w_i)} sharing a basis
// and parameterisation tag. The plane owns its point arrays: Setup
// deep-copies the caller's slices, and Destroy releases them.
type Plane struct {
	Du, Dv           float64
	basis            Basis
	parameterisation Parameterisation
	u, v, w          []float64
}

// Init resets the plane to its uninitialised, safely-destructible
// state.
func (p *Plane) Init() {
	*p = Plane{}
}

// Basis returns the plane's current basis tag.
func (p *Plane) Basis() Basis { return p.basis }

// Parameterisation returns the plane's current parameterisation tag.
func (p *Plane) Parameterisation() Parameterisation { return p.parameterisation }

// NumPoints returns the number of view samples, or 0 if uninitialised.
func (p *Plane) NumPoints() int { return len(p.u) }

// U returns the u-coordinate of view i.
func (p *Plane) U(i int) float64 { return p.u[i] }

// V returns the v-coordinate of view i.
func (p *Plane) V(i int) float64 { return p.v[i] }

// W returns the integration weight of view i.
func (p *Plane) W(i int) float64 { return p.w[i] }

// Setup deep-copies u, v, w into the plane, releasing any previously
// owned arrays first. u, v, w must have equal, positive length. On
// failure the plane is left in a safely-destructible state (as if
// Init had just been called).
func (p *Plane) Setup(du, dv float64, basis Basis, parameterisation Parameterisation, u, v, w []float64) error {
	n := len(u)
	if n == 0 || len(v) != n || len(w) != n {
		p.Init()
		return chk.Err("angular: u, v, w must have equal, positive length (got %d, %d, %d)\n", len(u), len(v), len(w))
	}
	if basis == Uninit {
		p.Init()
		return chk.Err("angular: basis must not be Uninit\n")
	}
	uu := make([]float64, n)
	vv := make([]float64, n)
	ww := make([]float64, n)
	copy(uu, u)
	copy(vv, v)
	copy(ww, w)
	p.Du, p.Dv = du, dv
	p.basis = basis
	p.parameterisation = parameterisation
	p.u, p.v, p.w = uu, vv, ww
	return nil
}

// Destroy releases owned arrays and resets the basis to Uninit.
func (p *Plane) Destroy() {
	p.Init()
}
