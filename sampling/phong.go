// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import "github.com/dacunni/fluxrt/math32"

// Phong draws a direction from the Phong specular lobe around reflection
// direction reflectDir, with exponent n. Returns the direction and its pdf
// with respect to solid angle.
//
// The pdf returned is the true Phong-lobe pdf, (n+1)/(2*pi) * cos(alpha)^n,
// where alpha is the angle to the reflection direction — not the constant
// 1.0 a naively-normalized sampler might use. Reusing it directly as a
// direct-light estimator weight without this pdf would bias glossy
// reflections bright at low sample counts.
func Phong(u1, u2, n float32, tangent, bitangent, reflectDir math32.Vector3) (dir math32.Vector3, pdf float32) {

	cosAlpha := math32.Pow(u1, 1/(n+1))
	sinAlpha := math32.Sqrt(math32.Max(0, 1-cosAlpha*cosAlpha))
	phi := 2 * math32.Pi * u2

	local := math32.Vector3{
		X: sinAlpha * math32.Cos(phi),
		Y: sinAlpha * math32.Sin(phi),
		Z: cosAlpha,
	}

	return localToWorld(local, tangent, bitangent, reflectDir), PhongPDF(cosAlpha, n)
}

// PhongPDF returns the Phong-lobe pdf for a direction whose cosine with the
// reflection direction is cosAlpha, given exponent n.
func PhongPDF(cosAlpha, n float32) float32 {

	if cosAlpha <= 0 {
		return 0
	}
	return (n + 1) / (2 * math32.Pi) * math32.Pow(cosAlpha, n)
}
