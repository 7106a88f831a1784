// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core holds the cross-cutting ray-tracing types shared by every
// other package: the Ray and RayIntersection records, the participating
// medium stack, and the free-function helpers (barycentric interpolation,
// Fresnel/Snell optics) that don't belong to any one shape or material.
package core

import "github.com/dacunni/fluxrt/math32"

// Ray is an oriented half-line: an origin point and a unit-length direction.
// A signed distance t along the ray names the point origin + direction*t.
type Ray struct {
	Origin    math32.Vector3
	Direction math32.Vector3
}

// NewRay creates a Ray with the given origin and (not necessarily unit)
// direction, normalizing the direction.
func NewRay(origin, direction math32.Vector3) Ray {

	direction.NormalizeOrKeep()
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math32.Vector3 {

	p := r.Direction
	p.MultiplyScalar(t)
	p.Add(&r.Origin)
	return p
}

// RayIntersection is the result of a successful hit: the originating ray,
// the hit position, the surface frame (normal, tangent, bitangent forming a
// right-handed basis), the hit distance, a material id, and texture
// coordinates.
type RayIntersection struct {
	Ray            Ray
	Position       math32.Vector3
	Normal         math32.Vector3
	Tangent        math32.Vector3
	Bitangent      math32.Vector3
	Distance       float32
	MaterialID     int
	TexCoord       math32.Vector2
	HasTexCoord    bool
}

// FaceForward flips Normal (and the frame with it) so that
// dot(Normal, Wo) >= 0, where Wo = -ray.Direction is the outgoing direction
// toward the ray origin. Per spec this is applied once, at shading time.
func (ri *RayIntersection) FaceForward() {

	wo := ri.Ray.Direction
	wo.MultiplyScalar(-1)
	if ri.Normal.Dot(&wo) < 0 {
		ri.Normal.MultiplyScalar(-1)
		ri.Tangent.MultiplyScalar(-1)
	}
}
