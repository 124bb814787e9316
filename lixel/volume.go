// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lixel computes the closed-form phase-space cell volume
// ("lixel volume") used to normalise the transport integral, for each
// of the four (basis, parameterisation) combinations.
package lixel

import (
	"math"

	"github.com/greyhill/lightfield/angular"
	"github.com/greyhill/lightfield/geom"
	"github.com/greyhill/lightfield/internal/affine"
)

// Volume returns the lixel volume for the plane's angular basis and
// parameterisation, given the plane geometry and the s-axis, t-axis
// optics relating the plane to its angular reference. It returns NaN
// for any (basis, parameterisation) combination not covered by §4.D,
// including an uninitialised angular plane.
func Volume(pg geom.PlaneGeometry, ap *angular.Plane, toPlaneS, toPlaneT affine.Optics1D) float64 {
	switch ap.Basis() {
	case angular.Dirac:
		switch ap.Parameterisation() {
		case angular.Spatial:
			return diracSpatial(pg, ap, toPlaneS, toPlaneT)
		case angular.Angular:
			return diracAngular(pg, ap, toPlaneS, toPlaneT)
		}
	case angular.Pillbox:
		switch ap.Parameterisation() {
		case angular.Spatial:
			return pillboxSpatial(pg, ap, toPlaneS, toPlaneT)
		case angular.Angular:
			return pillboxAngular(pg, ap, toPlaneS, toPlaneT)
		}
	}
	return math.NaN()
}

func diracSpatial(pg geom.PlaneGeometry, ap *angular.Plane, os, ot affine.Optics1D) float64 {
	vx := math.Abs(ap.Du/os.Pa) * pg.Ds
	vy := math.Abs(ap.Dv/ot.Pa) * pg.Dt
	return vx * vy
}

func diracAngular(pg geom.PlaneGeometry, ap *angular.Plane, os, ot affine.Optics1D) float64 {
	vx := math.Abs(ap.Du/os.Aa) * pg.Ds
	vy := math.Abs(ap.Dv/ot.Aa) * pg.Dt
	return vx * vy
}

func pillboxSpatial(pg geom.PlaneGeometry, ap *angular.Plane, os, ot affine.Optics1D) float64 {
	mx := math.Max(ap.Du/2/math.Abs(os.Pa), pg.Ds/2*math.Abs(os.Pp/os.Pa))
	hx := math.Min(pg.Ds, ap.Du/math.Abs(os.Pp))
	my := math.Max(ap.Dv/2/math.Abs(ot.Pa), pg.Dt/2*math.Abs(ot.Pp/ot.Pa))
	hy := math.Min(pg.Dt, ap.Dv/math.Abs(ot.Pp))
	return (4 * mx * hx) * (4 * my * hy)
}

func pillboxAngular(pg geom.PlaneGeometry, ap *angular.Plane, os, ot affine.Optics1D) float64 {
	mx := math.Max(ap.Du/2/math.Abs(os.Aa), pg.Ds/2*math.Abs(os.Ap/os.Aa))
	hx := math.Min(pg.Ds, ap.Du/math.Abs(os.Ap))
	my := math.Max(ap.Dv/2/math.Abs(ot.Aa), pg.Dt/2*math.Abs(ot.Ap/ot.Aa))
	hy := math.Min(pg.Dt, ap.Dv/math.Abs(ot.Ap))
	return (4 * mx * hx) * (4 * my * hy)
}
