// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpuref is a CPU reference implementation of the device
// collaborator (§6). It is not a GPU driver: it executes the
// filter_t/filter_s kernel bodies directly as Go loops over []float64
// backing arrays standing in for device buffers, so the transport's
// two-pass resample (§4.E) can be exercised and tested end to end
// without a real accelerator.
package cpuref

import (
	"math"

	"github.com/greyhill/lightfield/device"
)

// Buffer is a device.DeviceBuffer backed by a plain float64 slice.
type Buffer struct {
	Data []float64
}

// Len implements device.DeviceBuffer.
func (b *Buffer) Len() int { return len(b.Data) }

// NewBufferFrom wraps an existing slice (e.g. a caller's image array)
// as a device.DeviceBuffer without copying.
func NewBufferFrom(data []float64) *Buffer {
	return &Buffer{Data: data}
}

// Environment is a CPU-only stand-in for a device context/queue pair.
type Environment struct {
	queue *Queue
}

// New returns a freshly allocated CPU reference environment.
func New() *Environment {
	return &Environment{queue: &Queue{}}
}

// Queue returns the environment's single command queue.
func (e *Environment) Queue() device.Queue { return e.queue }

// Destroy releases the environment. The CPU reference holds no
// off-heap resources, so this is a no-op kept for interface parity.
func (e *Environment) Destroy() {}

// Queue is the CPU reference command queue. Every Enqueue* call runs
// synchronously, which trivially satisfies §5's submission ordering
// and the pass-1-before-pass-2 dependency.
type Queue struct{}

// NewBuffer allocates a zeroed buffer of length n.
func (q *Queue) NewBuffer(n int) device.DeviceBuffer {
	return &Buffer{Data: make([]float64, n)}
}

// WriteBuffer copies data into buf, standing in for a host-to-device
// transfer.
func (q *Queue) WriteBuffer(buf device.DeviceBuffer, data []float64) error {
	copy(asBuffer(buf).Data, data)
	return nil
}

// ReadBuffer copies buf's contents into data, standing in for a
// device-to-host transfer.
func (q *Queue) ReadBuffer(buf device.DeviceBuffer, data []float64) error {
	copy(data, asBuffer(buf).Data)
	return nil
}

func asBuffer(b device.DeviceBuffer) *Buffer {
	buf, ok := b.(*Buffer)
	if !ok {
		panic("cpuref: device.DeviceBuffer is not a *cpuref.Buffer")
	}
	return buf
}

// EnqueueFilterT runs the Dirac pass-1 (filter along t) kernel.
func (q *Queue) EnqueueFilterT(a device.FilterArgs) error {
	return runDirac(a, true)
}

// EnqueueFilterS runs the Dirac pass-2 (filter along s) kernel.
func (q *Queue) EnqueueFilterS(a device.FilterArgs) error {
	return runDirac(a, false)
}

// EnqueuePillboxFilterT runs the Pillbox pass-1 (filter along t) kernel.
func (q *Queue) EnqueuePillboxFilterT(a device.PillboxFilterArgs) error {
	return runPillbox(a, true)
}

// EnqueuePillboxFilterS runs the Pillbox pass-2 (filter along s) kernel.
func (q *Queue) EnqueuePillboxFilterS(a device.PillboxFilterArgs) error {
	return runPillbox(a, false)
}

// Finish blocks until all enqueued work completes. The CPU reference
// runs everything synchronously, so there is nothing to wait for.
func (q *Queue) Finish() error { return nil }

// runDirac implements §4.E.3's box-accumulation rect kernel for either
// pass. alongT selects pass 1 (filter along t, s index preserved) vs
// pass 2 (filter along s, t index preserved).
func runDirac(a device.FilterArgs, alongT bool) error {
	src := asBuffer(a.Src).Data
	dst := asBuffer(a.Dst).Data

	if alongT {
		// src is [NsSrc x NtSrc] (t slow), dst is [NsSrc x NtDst] (t slow)
		for s := 0; s < a.NsSrc; s++ {
			for kt := 0; kt < a.NtDst; kt++ {
				tDst := (float64(kt) - a.WtDst) * a.DtDst
				lower := tDst + a.Tau0
				upper := tDst + a.Tau1
				sum := 0.0
				for jt := 0; jt < a.NtSrc; jt++ {
					tSrc := (float64(jt) - a.WtSrc) * a.DtSrc
					x := tSrc * a.CoordScale
					if x >= lower && x < upper {
						sum += src[jt*a.NsSrc+s]
					}
				}
				dst[kt*a.NsSrc+s] = a.Scale * sum
			}
		}
		return nil
	}

	// pass 2: src is [NsSrc x NtDst] (tmp), dst is [NsDst x NtDst]
	for kt := 0; kt < a.NtDst; kt++ {
		for ks := 0; ks < a.NsDst; ks++ {
			sDst := (float64(ks) - a.WsDst) * a.DsDst
			lower := sDst + a.Tau0
			upper := sDst + a.Tau1
			sum := 0.0
			for js := 0; js < a.NsSrc; js++ {
				sSrc := (float64(js) - a.WsSrc) * a.DsSrc
				x := sSrc * a.CoordScale
				if x >= lower && x < upper {
					sum += src[kt*a.NsSrc+js]
				}
			}
			dst[kt*a.NsDst+ks] = a.Scale * sum
		}
	}
	return nil
}

// trapezoidWeight evaluates the triangle/trapezoid tap obtained by
// convolving two rects of half-widths a and b (§4.E.4), at offset u
// from the tap centre. Its integral over u is 4*a*b, matching §4.D's
// Pillbox lixel-volume contribution for a single axis.
func trapezoidWeight(u, a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	absU := math.Abs(u)
	full := a + b
	if absU >= full {
		return 0
	}
	flat := a - b
	peak := 2 * b
	if absU <= flat {
		return peak
	}
	ramp := full - flat // = 2b, guaranteed > 0 here since absU > flat implies b>0
	return peak * (full - absU) / ramp
}

// runPillbox implements §4.E.4's trapezoid-weighted box accumulation.
func runPillbox(a device.PillboxFilterArgs, alongT bool) error {
	src := asBuffer(a.Src).Data
	dst := asBuffer(a.Dst).Data
	outer, inner := a.HalfWidthOuter, a.HalfWidthInner

	if alongT {
		for s := 0; s < a.NsSrc; s++ {
			for kt := 0; kt < a.NtDst; kt++ {
				tDst := (float64(kt) - a.WtDst) * a.DtDst
				sum := 0.0
				for jt := 0; jt < a.NtSrc; jt++ {
					tSrc := (float64(jt) - a.WtSrc) * a.DtSrc
					x := tSrc*a.CoordScale - tDst
					sum += src[jt*a.NsSrc+s] * trapezoidWeight(x, outer, inner)
				}
				dst[kt*a.NsSrc+s] = a.Scale * sum
			}
		}
		return nil
	}

	for kt := 0; kt < a.NtDst; kt++ {
		for ks := 0; ks < a.NsDst; ks++ {
			sDst := (float64(ks) - a.WsDst) * a.DsDst
			sum := 0.0
			for js := 0; js < a.NsSrc; js++ {
				sSrc := (float64(js) - a.WsSrc) * a.DsSrc
				x := sSrc*a.CoordScale - sDst
				sum += src[kt*a.NsSrc+js] * trapezoidWeight(x, outer, inner)
			}
			dst[kt*a.NsDst+ks] = a.Scale * sum
		}
	}
	return nil
}
