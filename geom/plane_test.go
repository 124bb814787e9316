// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_plane_centre(tst *testing.T) {
	chk.PrintTitle("plane centre")
	g, err := New(8, 8, 0.1, 0.1, 0, 0)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.Scalar(tst, "w_s", 1e-15, g.Ws(), 3.5)
}

func Test_plane_centre_with_offset(tst *testing.T) {
	chk.PrintTitle("plane centre with offset")
	g, err := New(8, 4, 0.1, 0.2, 0.25, 0)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.Scalar(tst, "w_s", 1e-15, g.Ws(), 3.75)
	chk.Scalar(tst, "w_t", 1e-15, g.Wt(), 1.5)
}

func Test_plane_rejects_bad_input(tst *testing.T) {
	chk.PrintTitle("plane geometry rejects bad input")
	if _, err := New(0, 8, 0.1, 0.1, 0, 0); err == nil {
		tst.Errorf("expected failure for ns=0")
	}
	if _, err := New(8, 8, -0.1, 0.1, 0, 0); err == nil {
		tst.Errorf("expected failure for negative ds")
	}
}

func Test_plane_coords(tst *testing.T) {
	chk.PrintTitle("plane sample coordinates")
	g, err := New(4, 4, 0.5, 0.5, 0, 0)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.Scalar(tst, "coord(0)", 1e-15, g.CoordS(0), -0.75)
	chk.Scalar(tst, "coord(3)", 1e-15, g.CoordS(3), 0.75)
	chk.Scalar(tst, "numSamples", 1e-15, float64(g.NumSamples()), 16)
}
