// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angular

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_angular_setup_deep_copy(tst *testing.T) {
	chk.PrintTitle("angular plane setup deep copy")
	u := []float64{0, 1, 2}
	v := []float64{3, 4, 5}
	w := []float64{1, 1, 1}
	var p Plane
	p.Init()
	if err := p.Setup(0.1, 0.1, Dirac, Spatial, u, v, w); err != nil {
		tst.Errorf("setup failed: %v", err)
		return
	}
	// mutate caller's arrays: stored values must not change
	u[0] = 999
	v[0] = 999
	w[0] = 999
	chk.Scalar(tst, "u[0]", 1e-15, p.U(0), 0)
	chk.Scalar(tst, "v[0]", 1e-15, p.V(0), 3)
	chk.Scalar(tst, "w[0]", 1e-15, p.W(0), 1)
}

func Test_angular_setup_twice_releases_first(tst *testing.T) {
	chk.PrintTitle("angular plane setup twice")
	var p Plane
	p.Init()
	if err := p.Setup(0.1, 0.1, Dirac, Spatial, []float64{1}, []float64{1}, []float64{1}); err != nil {
		tst.Errorf("first setup failed: %v", err)
		return
	}
	if err := p.Setup(0.2, 0.2, Pillbox, Angular, []float64{1, 2}, []float64{3, 4}, []float64{5, 6}); err != nil {
		tst.Errorf("second setup failed: %v", err)
		return
	}
	if p.NumPoints() != 2 {
		tst.Errorf("expected 2 points, got %d", p.NumPoints())
	}
	if p.Basis() != Pillbox || p.Parameterisation() != Angular {
		tst.Errorf("basis/parameterisation not updated")
	}
}

func Test_angular_destroy(tst *testing.T) {
	chk.PrintTitle("angular plane destroy")
	var p Plane
	p.Init()
	p.Setup(0.1, 0.1, Dirac, Spatial, []float64{1}, []float64{1}, []float64{1})
	p.Destroy()
	if p.Basis() != Uninit {
		tst.Errorf("expected Uninit after destroy")
	}
	if p.NumPoints() != 0 {
		tst.Errorf("expected 0 points after destroy")
	}
}

func Test_angular_setup_rejects_mismatched_lengths(tst *testing.T) {
	chk.PrintTitle("angular plane rejects mismatched lengths")
	var p Plane
	p.Init()
	err := p.Setup(0.1, 0.1, Dirac, Spatial, []float64{1, 2}, []float64{1}, []float64{1})
	if err == nil {
		tst.Errorf("expected failure for mismatched lengths")
	}
	if p.Basis() != Uninit {
		tst.Errorf("expected plane left safely-destructible (Uninit) on failure")
	}
}
