// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transport implements the transport kernel (§4.E): it binds
// a source plane, a destination plane, an angular plane and the four
// borrowed 1-D optics relating each image plane to a shared root
// frame, precomputes the composed source<->destination optics, and
// for each view dispatches a two-pass separable resample through an
// external compute device.
package transport

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/greyhill/lightfield/angular"
	"github.com/greyhill/lightfield/device"
	"github.com/greyhill/lightfield/geom"
	"github.com/greyhill/lightfield/internal/affine"
)

// State is the transport's lifecycle stage (§4.E.6).
type State int

const (
	// Uninitialised is the zero value: no compute is valid.
	Uninitialised State = iota
	// Configured means New succeeded; ForwView/BackView are valid.
	Configured
	// Destroyed means Destroy was called; no compute is valid.
	Destroyed
)

// Transport is the engine's §4.E orchestrator. It keeps its own copies
// of the two plane geometries and the four src/dst-to-root optics, and
// borrows the angular plane, which it never mutates; it is invalidated
// if that angular plane is mutated or released out from under it.
type Transport struct {
	state State

	srcPlane geom.PlaneGeometry
	dstPlane geom.PlaneGeometry
	ang      *angular.Plane

	srcToRootS, srcToRootT affine.Optics1D
	dstToRootS, dstToRootT affine.Optics1D

	srcToDstS, srcToDstT affine.Optics1D
	dstToSrcS, dstToSrcT affine.Optics1D

	scale float64

	env device.Environment
}

// New binds the source/destination plane geometries, the angular
// plane, and the four borrowed 1-D optics, and precomputes the
// composed source<->destination optics (§4.E.1). It fails if ang is
// nil or has basis Uninit, if env is nil, or if either composed
// direction is singular.
func New(srcPlane, dstPlane geom.PlaneGeometry, ang *angular.Plane,
	srcToRootS, srcToRootT, dstToRootS, dstToRootT affine.Optics1D,
	env device.Environment) (*Transport, error) {

	if ang == nil || ang.Basis() == angular.Uninit {
		return nil, chk.Err("transport: angular plane must be set up before Setup\n")
	}
	if env == nil {
		return nil, chk.Err("transport: environment must not be nil\n")
	}

	invDstRootS, err := affine.Invert(dstToRootS)
	if err != nil {
		return nil, chk.Err("transport: dst_to_root_s is singular: %v\n", err)
	}
	invDstRootT, err := affine.Invert(dstToRootT)
	if err != nil {
		return nil, chk.Err("transport: dst_to_root_t is singular: %v\n", err)
	}
	invSrcRootS, err := affine.Invert(srcToRootS)
	if err != nil {
		return nil, chk.Err("transport: src_to_root_s is singular: %v\n", err)
	}
	invSrcRootT, err := affine.Invert(srcToRootT)
	if err != nil {
		return nil, chk.Err("transport: src_to_root_t is singular: %v\n", err)
	}

	t := &Transport{
		state:      Configured,
		srcPlane:   srcPlane,
		dstPlane:   dstPlane,
		ang:        ang,
		srcToRootS: srcToRootS, srcToRootT: srcToRootT,
		dstToRootS: dstToRootS, dstToRootT: dstToRootT,
		srcToDstS: affine.Compose(invDstRootS, srcToRootS),
		srcToDstT: affine.Compose(invDstRootT, srcToRootT),
		dstToSrcS: affine.Compose(invSrcRootS, dstToRootS),
		dstToSrcT: affine.Compose(invSrcRootT, dstToRootT),
		scale:     1 / (ang.Du * ang.Dv),
		env:       env,
	}
	return t, nil
}

// TmpSize reports the minimum scratch buffer length required by
// ForwView/BackView: dst_nt * src_ns (§4.E.1).
func (t *Transport) TmpSize() int {
	return t.dstPlane.Nt * t.srcPlane.Ns
}

// Destroy tears the transport down; no state outlives it, and any
// further ForwView/BackView call fails without touching memory.
func (t *Transport) Destroy() {
	*t = Transport{state: Destroyed}
}

// State returns the transport's current lifecycle stage.
func (t *Transport) State() State { return t.state }

// ForwView computes view i's destination image from the source image
// (§4.E.3/§4.E.4). tmp must have length >= TmpSize().
func (t *Transport) ForwView(i int, src, dst, tmp []float64) error {
	if t.state != Configured {
		return chk.Err("transport: ForwView on a %v transport\n", t.state)
	}
	if err := t.checkView(i); err != nil {
		return err
	}
	if len(src) != t.srcPlane.NumSamples() {
		return chk.Err("transport: source image has wrong length (want %d, got %d)\n", t.srcPlane.NumSamples(), len(src))
	}
	if len(dst) != t.dstPlane.NumSamples() {
		return chk.Err("transport: destination image has wrong length (want %d, got %d)\n", t.dstPlane.NumSamples(), len(dst))
	}
	if len(tmp) < t.TmpSize() {
		return chk.Err("transport: scratch buffer too small (want >= %d, got %d)\n", t.TmpSize(), len(tmp))
	}
	return t.resample(i,
		t.srcPlane, t.dstPlane,
		t.srcToDstS, t.srcToDstT,
		t.srcToRootS, t.srcToRootT,
		t.dstToRootS, t.dstToRootT,
		src, dst, tmp)
}

// BackView computes view i's source image from the destination image
// (§4.E.5): the same algorithm with the roles reversed, using the
// dst_to_src optics.
func (t *Transport) BackView(i int, dst, src, tmp []float64) error {
	if t.state != Configured {
		return chk.Err("transport: BackView on a %v transport\n", t.state)
	}
	if err := t.checkView(i); err != nil {
		return err
	}
	if len(dst) != t.dstPlane.NumSamples() {
		return chk.Err("transport: destination image has wrong length (want %d, got %d)\n", t.dstPlane.NumSamples(), len(dst))
	}
	if len(src) != t.srcPlane.NumSamples() {
		return chk.Err("transport: source image has wrong length (want %d, got %d)\n", t.srcPlane.NumSamples(), len(src))
	}
	if len(tmp) < t.srcPlane.Nt*t.dstPlane.Ns {
		return chk.Err("transport: scratch buffer too small for back_view\n")
	}
	return t.resample(i,
		t.dstPlane, t.srcPlane,
		t.dstToSrcS, t.dstToSrcT,
		t.dstToRootS, t.dstToRootT,
		t.srcToRootS, t.srcToRootT,
		dst, src, tmp)
}

func (t *Transport) checkView(i int) error {
	if i < 0 || i >= t.ang.NumPoints() {
		return chk.Err("transport: view index %d out of range [0,%d)\n", i, t.ang.NumPoints())
	}
	return nil
}

// String implements fmt.Stringer for State.
func (s State) String() string {
	switch s {
	case Configured:
		return "Configured"
	case Destroyed:
		return "Destroyed"
	default:
		return "Uninitialised"
	}
}

// perAxisParams derives (α, β) for one axis from §4.E.2's spatial or
// angular formula, given R' (composed plane-to-plane optics), Rp
// (in-plane-to-root optics) and the angular sample coordinate (u or
// v). It fails if the view is ill-posed (Rp's divisor is zero).
func perAxisParams(param angular.Parameterisation, rPrime, rp affine.Optics1D, coord float64) (alpha, beta float64, err error) {
	switch param {
	case angular.Angular:
		if rp.Aa == 0 {
			return 0, 0, chk.Err("transport: ill-posed view (Rp.aa == 0)\n")
		}
		alpha = rPrime.Pp - rp.Ap*rPrime.Pa/rp.Aa
		beta = rPrime.Pa * (coord - rp.Ca) / rp.Aa
	default: // Spatial
		if rp.Pa == 0 {
			return 0, 0, chk.Err("transport: ill-posed view (Rp.pa == 0)\n")
		}
		alpha = rPrime.Pp - rp.Pp*rPrime.Pa/rp.Pa
		beta = rPrime.Pa * (coord - rp.Cp) / rp.Pa
	}
	return
}

// axisH derives the kernel amplitude h for one axis from §4.E.2,
// given Rq (out-of-plane-to-root optics) and the angular cell extent
// d (du or dv).
func axisH(param angular.Parameterisation, rq affine.Optics1D, d float64) (float64, error) {
	switch param {
	case angular.Angular:
		if rq.Aa == 0 {
			return 0, chk.Err("transport: ill-posed view (Rq.aa == 0)\n")
		}
		return math.Abs(d / rq.Aa), nil
	default: // Spatial
		if rq.Pa == 0 {
			return 0, chk.Err("transport: ill-posed view (Rq.pa == 0)\n")
		}
		return math.Abs(d / rq.Pa), nil
	}
}

// tauBounds returns the axis-consistent τ0 <= τ1 window (§4.E.2, and
// §9's Open Question resolution: each axis pass uses its own
// destination pitch and β exclusively, never the other axis's).
func tauBounds(dstPitch, beta float64) (tau0, tau1 float64) {
	tau0 = dstPitch/2 - beta
	tau1 = -dstPitch/2 - beta
	if tau0 > tau1 {
		tau0, tau1 = tau1, tau0
	}
	return
}

// pillboxHalfWidths derives (Mx, hx)-style half-widths for the
// Pillbox triangle tap (§4.D/§4.E.4), from the in-plane pitch, the
// angular cell extent, and the in-plane-to-root optics.
func pillboxHalfWidths(param angular.Parameterisation, pitch, d float64, o affine.Optics1D) (outer, inner float64, err error) {
	switch param {
	case angular.Angular:
		if o.Aa == 0 {
			return 0, 0, chk.Err("transport: ill-posed Pillbox view (o.aa == 0)\n")
		}
		outer = math.Max(d/(2*math.Abs(o.Aa)), pitch/2*math.Abs(o.Ap/o.Aa))
		if o.Ap == 0 {
			return 0, 0, chk.Err("transport: ill-posed Pillbox view (o.ap == 0)\n")
		}
		inner = math.Min(pitch, d/math.Abs(o.Ap))
	default: // Spatial
		if o.Pa == 0 {
			return 0, 0, chk.Err("transport: ill-posed Pillbox view (o.pa == 0)\n")
		}
		outer = math.Max(d/(2*math.Abs(o.Pa)), pitch/2*math.Abs(o.Pp/o.Pa))
		if o.Pp == 0 {
			return 0, 0, chk.Err("transport: ill-posed Pillbox view (o.pp == 0)\n")
		}
		inner = math.Min(pitch, d/math.Abs(o.Pp))
	}
	return
}

// resample runs the two-pass separable filter (§4.E.3/§4.E.4) that
// reads inImg on inPlane and writes outImg on outPlane, using the
// composed rPrime optics, the in-plane-to-root optics rp, and the
// out-of-plane-to-root optics rq. For ForwView, inPlane/rp is the
// source side and outPlane/rq is the destination side; BackView
// passes the same shape with the roles swapped.
func (t *Transport) resample(i int,
	inPlane, outPlane geom.PlaneGeometry,
	rPrimeS, rPrimeT affine.Optics1D,
	rpS, rpT affine.Optics1D,
	rqS, rqT affine.Optics1D,
	inImg, outImg, tmp []float64) error {

	param := t.ang.Parameterisation()
	u := t.ang.U(i)
	v := t.ang.V(i)
	w := t.ang.W(i)

	alphaS, betaS, err := perAxisParams(param, rPrimeS, rpS, u)
	if err != nil {
		return err
	}
	alphaT, betaT, err := perAxisParams(param, rPrimeT, rpT, v)
	if err != nil {
		return err
	}
	hS, err := axisH(param, rqS, t.ang.Du)
	if err != nil {
		return err
	}
	hT, err := axisH(param, rqT, t.ang.Dv)
	if err != nil {
		return err
	}

	tau0S, tau1S := tauBounds(outPlane.Ds, betaS)
	tau0T, tau1T := tauBounds(outPlane.Dt, betaT)

	q := t.env.Queue()
	srcBuf := q.NewBuffer(len(inImg))
	if err := q.WriteBuffer(srcBuf, inImg); err != nil {
		return chk.Err("transport: write src buffer failed: %v\n", err)
	}
	tmpBuf := q.NewBuffer(inPlane.Ns * outPlane.Nt)
	dstBuf := q.NewBuffer(len(outImg))

	base := device.FilterArgs{
		NsSrc: inPlane.Ns, S1Src: inPlane.Ns,
		NtSrc: inPlane.Nt, T1Src: inPlane.Nt,
		DsSrc: inPlane.Ds, WsSrc: inPlane.Ws(),
		DtSrc: inPlane.Dt, WtSrc: inPlane.Wt(),
		NsDst: outPlane.Ns, S1Dst: outPlane.Ns,
		NtDst: outPlane.Nt, T1Dst: outPlane.Nt,
		DsDst: outPlane.Ds, WsDst: outPlane.Ws(),
		DtDst: outPlane.Dt, WtDst: outPlane.Wt(),
	}

	switch t.ang.Basis() {
	case angular.Dirac:
		passT := base
		passT.NsDst, passT.S1Dst = inPlane.Ns, inPlane.Ns // s preserved in pass 1
		passT.WsDst = inPlane.Ws()
		passT.CoordScale = 1 / alphaT
		passT.Tau0, passT.Tau1 = tau0T, tau1T
		passT.Scale = hT
		passT.Src, passT.Dst = srcBuf, tmpBuf
		if err := q.EnqueueFilterT(passT); err != nil {
			return chk.Err("transport: filter_t failed: %v\n", err)
		}

		passS := base
		passS.NtSrc, passS.T1Src = outPlane.Nt, outPlane.Nt // t already filtered by pass 1
		passS.DtSrc, passS.WtSrc = outPlane.Dt, outPlane.Wt()
		passS.CoordScale = 1 / alphaS
		passS.Tau0, passS.Tau1 = tau0S, tau1S
		passS.Scale = t.scale * w * hS
		passS.Src, passS.Dst = tmpBuf, dstBuf
		if err := q.EnqueueFilterS(passS); err != nil {
			return chk.Err("transport: filter_s failed: %v\n", err)
		}

	case angular.Pillbox:
		outerT, innerT, err := pillboxHalfWidths(param, inPlane.Dt, t.ang.Dv, rpT)
		if err != nil {
			return err
		}
		outerS, innerS, err := pillboxHalfWidths(param, inPlane.Ds, t.ang.Du, rpS)
		if err != nil {
			return err
		}

		passT := device.PillboxFilterArgs{FilterArgs: base, HalfWidthOuter: outerT, HalfWidthInner: innerT}
		passT.NsDst, passT.S1Dst = inPlane.Ns, inPlane.Ns
		passT.WsDst = inPlane.Ws()
		passT.CoordScale = 1 / alphaT
		passT.Tau0, passT.Tau1 = tau0T, tau1T
		passT.Scale = hT
		passT.Src, passT.Dst = srcBuf, tmpBuf
		if err := q.EnqueuePillboxFilterT(passT); err != nil {
			return chk.Err("transport: pillbox filter_t failed: %v\n", err)
		}

		passS := device.PillboxFilterArgs{FilterArgs: base, HalfWidthOuter: outerS, HalfWidthInner: innerS}
		passS.NtSrc, passS.T1Src = outPlane.Nt, outPlane.Nt
		passS.DtSrc, passS.WtSrc = outPlane.Dt, outPlane.Wt()
		passS.CoordScale = 1 / alphaS
		passS.Tau0, passS.Tau1 = tau0S, tau1S
		passS.Scale = t.scale * w * hS
		passS.Src, passS.Dst = tmpBuf, dstBuf
		if err := q.EnqueuePillboxFilterS(passS); err != nil {
			return chk.Err("transport: pillbox filter_s failed: %v\n", err)
		}

	default:
		return chk.Err("transport: angular plane has no basis set\n")
	}

	if err := q.Finish(); err != nil {
		return chk.Err("transport: queue finish failed: %v\n", err)
	}
	if err := q.ReadBuffer(dstBuf, outImg); err != nil {
		return chk.Err("transport: read dst buffer failed: %v\n", err)
	}
	return nil
}

// LogIllPosedView is for callers that want to skip a failing view in a
// batch rather than abort it (§7: a degenerate view leaves the
// transport usable for other views).
func LogIllPosedView(i int, err error) {
	io.Pfyel("lightfield: view %d skipped: %v\n", i, err)
}
