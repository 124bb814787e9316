// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lixel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/greyhill/lightfield/angular"
	"github.com/greyhill/lightfield/geom"
	"github.com/greyhill/lightfield/internal/affine"
)

func Test_lixel_dirac_spatial(tst *testing.T) {
	chk.PrintTitle("lixel volume dirac/spatial")
	pg, err := geom.New(8, 8, 0.1, 0.1, 0, 0)
	if err != nil {
		tst.Errorf("geom.New failed: %v", err)
		return
	}
	var ap angular.Plane
	ap.Init()
	if err := ap.Setup(0.2, 0.2, angular.Dirac, angular.Spatial, []float64{0}, []float64{0}, []float64{1}); err != nil {
		tst.Errorf("setup failed: %v", err)
		return
	}
	os := affine.Optics1D{Pa: 0.5, Pp: 1, Aa: 1}
	ot := affine.Optics1D{Pa: 0.5, Pp: 1, Aa: 1}
	v := Volume(pg, &ap, os, ot)
	chk.Scalar(tst, "volume", 1e-12, v, 0.0016)
}

func Test_lixel_positivity_and_swap(tst *testing.T) {
	chk.PrintTitle("lixel volume positivity and s<->t swap invariance")
	pg, err := geom.New(8, 8, 0.1, 0.2, 0, 0)
	if err != nil {
		tst.Errorf("geom.New failed: %v", err)
		return
	}
	pgSwap, err := geom.New(8, 8, 0.2, 0.1, 0, 0)
	if err != nil {
		tst.Errorf("geom.New failed: %v", err)
		return
	}
	for _, basis := range []angular.Basis{angular.Dirac, angular.Pillbox} {
		for _, param := range []angular.Parameterisation{angular.Spatial, angular.Angular} {
			var ap, apSwap angular.Plane
			ap.Init()
			apSwap.Init()
			ap.Setup(0.2, 0.3, basis, param, []float64{0}, []float64{0}, []float64{1})
			apSwap.Setup(0.3, 0.2, basis, param, []float64{0}, []float64{0}, []float64{1})
			os := affine.Optics1D{Pp: 1, Pa: 0.5, Ap: -0.5, Aa: 1}
			ot := affine.Optics1D{Pp: 1, Pa: 0.7, Ap: -0.3, Aa: 1}
			v := Volume(pg, &ap, os, ot)
			vSwap := Volume(pgSwap, &apSwap, ot, os)
			if v <= 0 {
				tst.Errorf("expected positive volume for basis=%v param=%v, got %v", basis, param, v)
			}
			chk.Scalar(tst, "swap invariance", 1e-10, v, vSwap)
		}
	}
}

func Test_lixel_unknown_combination_is_nan(tst *testing.T) {
	chk.PrintTitle("lixel volume unknown combination returns NaN")
	pg, _ := geom.New(4, 4, 0.1, 0.1, 0, 0)
	var ap angular.Plane
	ap.Init() // left Uninit
	os := affine.Optics1D{Pp: 1, Pa: 0.5, Aa: 1}
	v := Volume(pg, &ap, os, os)
	if !math.IsNaN(v) {
		tst.Errorf("expected NaN for uninitialised angular plane, got %v", v)
	}
}
