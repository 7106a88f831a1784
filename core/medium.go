// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/dacunni/fluxrt/math32"

// Medium is a participating medium: an index of refraction and a
// per-channel Beer's-law absorption coefficient.
type Medium struct {
	IOR         float32
	Attenuation math32.Color
}

// Vacuum is the medium at the bottom of every MediumStack: IOR 1, no
// attenuation.
var Vacuum = Medium{IOR: 1, Attenuation: math32.Color{}}

// MediumStack is the sequence of media ordered outermost-to-innermost
// along the current ray's path. It is never empty: Vacuum sits at index 0.
// Stack depth parity names the ray's current transition: an odd depth
// (e.g. just Vacuum, depth 1) means the next refractive hit is an entry;
// even means the ray is inside a medium and the hit is an exit.
type MediumStack struct {
	media []Medium
}

// NewMediumStack returns a stack containing only Vacuum.
func NewMediumStack() MediumStack {
	return MediumStack{media: []Medium{Vacuum}}
}

// Top returns the innermost (current) medium.
func (s MediumStack) Top() Medium {
	return s.media[len(s.media)-1]
}

// IsLeaving reports whether the stack's depth parity means a refractive hit
// is leaving the current medium (even depth) rather than entering a new one
// (odd depth — the starting depth of 1, Vacuum alone, is odd: the first
// refractive hit is always an entry).
func (s MediumStack) IsLeaving() bool {
	return len(s.media)%2 == 0
}

// Pushed returns a copy of the stack with medium m pushed on top (entering m).
func (s MediumStack) Pushed(m Medium) MediumStack {

	next := make([]Medium, len(s.media)+1)
	copy(next, s.media)
	next[len(s.media)] = m
	return MediumStack{media: next}
}

// Popped returns a copy of the stack with its top medium removed (leaving
// it), unless only Vacuum remains, in which case the stack is returned
// unchanged (the vacuum floor is never popped).
func (s MediumStack) Popped() MediumStack {

	if len(s.media) <= 1 {
		return s
	}
	next := make([]Medium, len(s.media)-1)
	copy(next, s.media[:len(s.media)-1])
	return MediumStack{media: next}
}

// Attenuate applies Beer's-law attenuation over distance d through the
// stack's current top medium to radiance L.
func (s MediumStack) Attenuate(L math32.Color, d float32) math32.Color {

	att := s.Top().Attenuation
	return L.Times(math32.ExpNegative(att.Scaled(d)))
}
