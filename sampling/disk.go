// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import "github.com/dacunni/fluxrt/math32"

// ConcentricDisk maps two uniform random numbers in [0,1) to a point in the
// unit disk via Shirley's concentric mapping, which avoids the distortion
// of polar (r=sqrt(u), theta=2*pi*v) sampling near the disk's center.
func ConcentricDisk(u1, u2 float32) (x, y float32) {

	// Remap to [-1, 1].
	ox := 2*u1 - 1
	oy := 2*u2 - 1

	if ox == 0 && oy == 0 {
		return 0, 0
	}

	var r, theta float32
	if math32.Abs(ox) > math32.Abs(oy) {
		r = ox
		theta = (math32.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math32.Pi / 2) - (math32.Pi/4)*(ox/oy)
	}
	return r * math32.Cos(theta), r * math32.Sin(theta)
}
