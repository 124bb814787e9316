// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device declares the compute-device collaborator the core
// delegates to (§6): an opaque context/queue pair and the two named
// kernels the Dirac transport needs, plus their optional Pillbox
// counterparts. None of the device/queue lifecycle, kernel source
// compilation or caching lives in this module's hard core — only the
// interface the transport dispatches through.
package device

// LocalDims is the fixed workgroup shape the core's kernels declare.
var LocalDims = [2]int{32, 8}

// RoundUpGlobalDims expands each entry of global up to the next
// multiple of the corresponding entry of local, as required before
// enqueuing filter_t/filter_s (lightfield_cl.h's LFCL_fix_size).
func RoundUpGlobalDims(global, local [2]int) [2]int {
	var out [2]int
	for i := range global {
		if local[i] <= 0 {
			out[i] = global[i]
			continue
		}
		out[i] = (global[i] + local[i] - 1) / local[i] * local[i]
	}
	return out
}

// DeviceBuffer is an opaque handle to device-resident memory backing
// one image or scratch buffer.
type DeviceBuffer interface {
	Len() int
}

// FilterArgs packs the argument list for the Dirac filter_t/filter_s
// kernels (§6), in the order the kernel expects them.
type FilterArgs struct {
	NsSrc, S0Src, S1Src int
	NtSrc, T0Src, T1Src int
	DsSrc, WsSrc        float64
	DtSrc, WtSrc        float64

	NsDst, S0Dst, S1Dst int
	NtDst, T0Dst, T1Dst int
	DsDst, WsDst        float64
	DtDst, WtDst        float64

	CoordScale float64
	Tau0, Tau1 float64
	Scale      float64

	Src, Dst DeviceBuffer
}

// PillboxFilterArgs extends FilterArgs with the two rect half-widths
// (from §4.D's Mx, hx) whose convolution forms the triangle/trapezoid
// tap kernel.
type PillboxFilterArgs struct {
	FilterArgs
	HalfWidthOuter float64 // Mx (or My)
	HalfWidthInner float64 // hx (or hy)
}

// Queue is the single external command queue: the only concurrent
// element in the core (§5). Submissions are ordered in submission
// time; pass 2 of a view depends on pass 1 via the tmp buffer.
type Queue interface {
	NewBuffer(n int) DeviceBuffer
	WriteBuffer(buf DeviceBuffer, data []float64) error
	ReadBuffer(buf DeviceBuffer, data []float64) error
	EnqueueFilterT(args FilterArgs) error
	EnqueueFilterS(args FilterArgs) error
	EnqueuePillboxFilterT(args PillboxFilterArgs) error
	EnqueuePillboxFilterS(args PillboxFilterArgs) error
	Finish() error
}

// Environment is the compute device context/queue pair.
type Environment interface {
	Queue() Queue
	Destroy()
}
