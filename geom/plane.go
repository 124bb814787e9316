// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom declares the discrete sampling lattice that an image
// plane is defined on.
package geom

import "github.com/cpmech/gosl/chk"

// PlaneGeometry is a value type describing the s,t sampling lattice of
// an image plane: sample counts, pitch, and fractional origin offset.
type PlaneGeometry struct {
	Ns, Nt           int     // sample counts
	Ds, Dt           float64 // sample pitch, in plane units
	OffsetS, OffsetT float64 // sample-origin shift, in fractions of a sample
}

// New validates and returns a plane geometry. Ns, Nt must be positive
// and Ds, Dt must be positive, matching §3's invariant.
func New(ns, nt int, ds, dt, offsetS, offsetT float64) (PlaneGeometry, error) {
	if ns <= 0 || nt <= 0 {
		return PlaneGeometry{}, chk.Err("geom: sample counts must be positive (ns=%d, nt=%d)\n", ns, nt)
	}
	if ds <= 0 || dt <= 0 {
		return PlaneGeometry{}, chk.Err("geom: sample pitch must be positive (ds=%v, dt=%v)\n", ds, dt)
	}
	return PlaneGeometry{Ns: ns, Nt: nt, Ds: ds, Dt: dt, OffsetS: offsetS, OffsetT: offsetT}, nil
}

// Ws returns the continuous s-coordinate of the lattice centre.
func (g PlaneGeometry) Ws() float64 {
	return (float64(g.Ns)-1)/2 + g.OffsetS
}

// Wt returns the continuous t-coordinate of the lattice centre.
func (g PlaneGeometry) Wt() float64 {
	return (float64(g.Nt)-1)/2 + g.OffsetT
}

// CoordS returns the continuous s-coordinate of sample index i.
func (g PlaneGeometry) CoordS(i int) float64 {
	return (float64(i) - g.Ws()) * g.Ds
}

// CoordT returns the continuous t-coordinate of sample index j.
func (g PlaneGeometry) CoordT(j int) float64 {
	return (float64(j) - g.Wt()) * g.Dt
}

// NumSamples returns ns*nt, the flat image length.
func (g PlaneGeometry) NumSamples() int {
	return g.Ns * g.Nt
}
