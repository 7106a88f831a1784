// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envmap

import "github.com/dacunni/fluxrt/math32"

// Trivial is the default environment: a constant background radiance
// (zero value is black) with no importance sampling support.
type Trivial struct {
	Radiance math32.Color
}

func (t Trivial) SampleRay(d math32.Vector3) math32.Color {
	return t.Radiance
}

func (t Trivial) CanImportanceSample() bool {
	return false
}

func (t Trivial) ImportanceSampleDirection(u1, u2 float32) (math32.Vector3, math32.Color, float32) {
	return math32.Vector3{}, math32.Color{}, 0
}
