// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lightfield-demo wires the geometry, optics, angular plane
// and transport packages together and resamples a small synthetic
// image through each view of a two-view angular plane, using the CPU
// reference device.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/greyhill/lightfield/angular"
	"github.com/greyhill/lightfield/device/cpuref"
	"github.com/greyhill/lightfield/geom"
	"github.com/greyhill/lightfield/internal/affine"
	"github.com/greyhill/lightfield/transport"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nlightfield-demo -- separable light-field resampling\n\n")

	srcPlane, err := geom.New(64, 64, 1.0, 1.0, 0, 0)
	if err != nil {
		chk.Panic("plane geometry setup failed: %v", err)
	}
	dstPlane := srcPlane // same sensor geometry front and back of a free-space hop

	lens, err := affine.Refraction(50, 0)
	if err != nil {
		chk.Panic("lens setup failed: %v", err)
	}
	hop := affine.Translation(25)
	srcToRoot := affine.Compose(hop, lens)

	var ang angular.Plane
	if err := ang.Setup(0.01, 0.01, angular.Dirac, angular.Angular,
		[]float64{0, 0.02}, []float64{0, 0}, []float64{1, 1}); err != nil {
		chk.Panic("angular plane setup failed: %v", err)
	}
	defer ang.Destroy()

	env := cpuref.New()
	defer env.Destroy()

	xport, err := transport.New(srcPlane, dstPlane, &ang,
		srcToRoot, srcToRoot, srcToRoot, srcToRoot, env)
	if err != nil {
		chk.Panic("transport setup failed: %v", err)
	}
	defer xport.Destroy()

	src := make([]float64, srcPlane.NumSamples())
	for j := 0; j < srcPlane.Nt; j++ {
		for i := 0; i < srcPlane.Ns; i++ {
			if i > srcPlane.Ns/4 && i < 3*srcPlane.Ns/4 && j > srcPlane.Nt/4 && j < 3*srcPlane.Nt/4 {
				src[j*srcPlane.Ns+i] = 1
			}
		}
	}
	dst := make([]float64, dstPlane.NumSamples())
	tmp := make([]float64, xport.TmpSize())

	defer utl.DoProf(false)()
	for i := 0; i < ang.NumPoints(); i++ {
		if err := xport.ForwView(i, src, dst, tmp); err != nil {
			transport.LogIllPosedView(i, err)
			continue
		}
		var total float64
		for _, v := range dst {
			total += v
		}
		io.Pf("view %d: sum(dst) = %v\n", i, total)
	}

	plotSamplingPlane(&ang)
}

// plotSamplingPlane renders a scatter plot of the angular plane's view
// directions, for inspecting sampling coverage. This plots the sample
// layout, not a light-field image, so it sits outside rendering.
func plotSamplingPlane(ang *angular.Plane) {
	u := make([]float64, ang.NumPoints())
	v := make([]float64, ang.NumPoints())
	for i := range u {
		u[i] = ang.U(i)
		v[i] = ang.V(i)
	}
	plt.Reset()
	plt.Plot(u, v, "'o', color='b', ls='none'")
	plt.AxisXrange(-1, 1)
	plt.AxisYrange(-1, 1)
	plt.Gll("$u$", "$v$", "")
	plt.Title("angular sampling plane", "")
	plt.Save("/tmp", "lightfield-angular-samples")
}
