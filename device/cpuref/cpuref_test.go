// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpuref

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/greyhill/lightfield/device"
)

func Test_cpuref_buffer_roundtrip(tst *testing.T) {
	chk.PrintTitle("cpuref buffer write/read roundtrip")
	env := New()
	defer env.Destroy()
	q := env.Queue()

	want := []float64{1, 2, 3, 4, 5}
	buf := q.NewBuffer(len(want))
	if err := q.WriteBuffer(buf, want); err != nil {
		tst.Errorf("WriteBuffer failed: %v", err)
		return
	}
	got := make([]float64, len(want))
	if err := q.ReadBuffer(buf, got); err != nil {
		tst.Errorf("ReadBuffer failed: %v", err)
		return
	}
	diff := make([]float64, len(want))
	for i := range want {
		diff[i] = got[i] - want[i]
	}
	chk.Scalar(tst, "||got-want||", 1e-15, la.VecNorm(diff), 0)
}

func Test_cpuref_filter_t_identity_box(tst *testing.T) {
	chk.PrintTitle("cpuref filter_t identity box")
	env := New()
	defer env.Destroy()
	q := env.Queue()

	// 1 x 4 image (ns=1, nt=4), identity mapping along t.
	src := []float64{10, 20, 30, 40}
	srcBuf := q.NewBuffer(len(src))
	q.WriteBuffer(srcBuf, src)
	dstBuf := q.NewBuffer(len(src))

	args := device.FilterArgs{
		NsSrc: 1, NtSrc: 4,
		DsSrc: 1, WsSrc: 0,
		DtSrc: 1, WtSrc: 1.5,
		NsDst: 1, NtDst: 4,
		DsDst: 1, WsDst: 0,
		DtDst: 1, WtDst: 1.5,
		CoordScale: 1,
		Tau0:       -0.5, Tau1: 0.5,
		Scale: 1,
		Src:   srcBuf, Dst: dstBuf,
	}
	if err := q.EnqueueFilterT(args); err != nil {
		tst.Errorf("EnqueueFilterT failed: %v", err)
		return
	}
	if err := q.Finish(); err != nil {
		tst.Errorf("Finish failed: %v", err)
		return
	}
	got := make([]float64, len(src))
	q.ReadBuffer(dstBuf, got)
	for i := range src {
		chk.Scalar(tst, "identity box tap", 1e-12, got[i], src[i])
	}
}

func Test_trapezoid_weight_integrates_to_volume(tst *testing.T) {
	chk.PrintTitle("trapezoid weight integral matches 4*a*b")
	a, b := 0.3, 0.1
	n := 200000
	lo, hi := -(a + b), a+b
	du := (hi - lo) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		u := lo + (float64(i)+0.5)*du
		sum += trapezoidWeight(u, a, b) * du
	}
	chk.Scalar(tst, "integral", 1e-3, sum, 4*a*b)
}

func Test_trapezoid_weight_symmetric_and_peak(tst *testing.T) {
	chk.PrintTitle("trapezoid weight symmetry and peak value")
	a, b := 0.4, 0.25
	chk.Scalar(tst, "w(0)", 1e-12, trapezoidWeight(0, a, b), 2*b)
	chk.Scalar(tst, "w(u)==w(-u)", 1e-12, trapezoidWeight(0.3, a, b), trapezoidWeight(-0.3, a, b))
	chk.Scalar(tst, "w(outside)==0", 0, trapezoidWeight(a+b+0.01, a, b), 0)
}
