// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affine

// Optics2D packs two independent 1-D optics elements, one per axis,
// used to represent an optical system acting on the (s,t) image
// plane. The two axes never couple: composition and inversion are
// block-diagonal applications of the 1-D routines.
type Optics2D struct {
	S Optics1D
	T Optics1D
}

// Identity2D returns the neutral element for both axes.
func Identity2D() Optics2D {
	return Optics2D{S: Identity(), T: Identity()}
}

// Compose2D returns L∘R axis-wise.
func Compose2D(l, r Optics2D) Optics2D {
	return Optics2D{
		S: Compose(l.S, r.S),
		T: Compose(l.T, r.T),
	}
}

// Invert2D inverts both axes; fails if either axis is singular.
func Invert2D(o Optics2D) (Optics2D, error) {
	s, err := Invert(o.S)
	if err != nil {
		return Optics2D{}, err
	}
	t, err := Invert(o.T)
	if err != nil {
		return Optics2D{}, err
	}
	return Optics2D{S: s, T: t}, nil
}
