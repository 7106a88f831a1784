// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import "github.com/dacunni/fluxrt/math32"

// CosineHemisphere draws a direction from the cosine-weighted hemisphere
// distribution around normal (Malley's method: sample a disk, project up),
// matching the Lambertian BRDF's importance distribution. Returns the
// direction and its pdf with respect to solid angle (cos(theta)/pi).
func CosineHemisphere(u1, u2 float32, tangent, bitangent, normal math32.Vector3) (dir math32.Vector3, pdf float32) {

	x, y := ConcentricDisk(u1, u2)
	z := math32.Sqrt(math32.Max(0, 1-x*x-y*y))
	local := math32.Vector3{X: x, Y: y, Z: z}

	return localToWorld(local, tangent, bitangent, normal), CosineHemispherePDF(z)
}

// CosineHemispherePDF returns the cosine-weighted hemisphere pdf for a
// direction whose cosine with the normal is cosTheta.
func CosineHemispherePDF(cosTheta float32) float32 {
	return math32.Max(0, cosTheta) / math32.Pi
}
