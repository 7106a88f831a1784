// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envmap holds the environment map capability set (a ray escaping
// the scene samples radiance from one of these) and its two
// implementations: Trivial (a constant, usually black, background) and
// LatLon (a latitude/longitude texture with importance sampling).
package envmap

import "github.com/dacunni/fluxrt/math32"

// EnvironmentMap is the capability set an environment implementation may
// offer. Every implementation must support SampleRay; importance sampling
// is optional (CanImportanceSample reports whether
// ImportanceSampleDirection is meaningful to call).
type EnvironmentMap interface {
	// SampleRay returns the radiance seen by a ray escaping the scene along
	// direction d (world space, unit length).
	SampleRay(d math32.Vector3) math32.Color

	// CanImportanceSample reports whether this environment supports
	// importance-sampled direct lighting.
	CanImportanceSample() bool

	// ImportanceSampleDirection draws a direction from the environment's
	// radiance distribution given two uniform random numbers in [0,1), and
	// returns the direction, its radiance, and its pdf with respect to
	// solid angle.
	ImportanceSampleDirection(u1, u2 float32) (dir math32.Vector3, radiance math32.Color, pdf float32)
}
