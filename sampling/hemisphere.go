// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sampling implements the importance samplers used by the
// integrator to draw outgoing directions and disk points: cosine-weighted
// and Phong-lobe hemisphere sampling, uniform hemisphere sampling (used by
// ambient occlusion), and concentric disk sampling (used by depth-of-field
// lens sampling and by the cosine-weighted hemisphere sampler).
package sampling

import "github.com/dacunni/fluxrt/math32"

// localToWorld maps a direction expressed in the local frame (x,y,z) with z
// along the normal into world space via the given orthonormal basis.
func localToWorld(local math32.Vector3, tangent, bitangent, normal math32.Vector3) math32.Vector3 {

	t := tangent
	t.MultiplyScalar(local.X)
	b := bitangent
	b.MultiplyScalar(local.Y)
	n := normal
	n.MultiplyScalar(local.Z)

	t.Add(&b)
	t.Add(&n)
	return t
}

// UniformHemisphere draws a direction uniformly over the hemisphere around
// normal, given two uniform random numbers in [0,1). Returns the direction
// and its pdf with respect to solid angle (constant: 1/(2*pi)).
func UniformHemisphere(u1, u2 float32, tangent, bitangent, normal math32.Vector3) (dir math32.Vector3, pdf float32) {

	z := u1
	r := math32.Sqrt(math32.Max(0, 1-z*z))
	phi := 2 * math32.Pi * u2
	local := math32.Vector3{X: r * math32.Cos(phi), Y: r * math32.Sin(phi), Z: z}

	return localToWorld(local, tangent, bitangent, normal), 1 / (2 * math32.Pi)
}

// UniformHemispherePDF is the constant pdf of UniformHemisphere.
func UniformHemispherePDF() float32 {
	return 1 / (2 * math32.Pi)
}
