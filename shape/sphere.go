// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

// Sphere is a ray-traceable sphere in object space: a center, a radius, and
// the material id applied uniformly over its surface.
type Sphere struct {
	Center     math32.Vector3
	Radius     float32
	MaterialID int
}

// NewSphere builds a Sphere.
func NewSphere(center math32.Vector3, radius float32, materialID int) Sphere {
	return Sphere{Center: center, Radius: radius, MaterialID: materialID}
}

// quadratic solves at^2 + bt + c = 0 for its two real roots, t0 <= t1.
// Returns ok=false when the discriminant is negative (no real roots).
func quadratic(a, b, c float32) (t0, t1 float32, ok bool) {

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math32.Sqrt(disc)

	// Numerically stable form: avoid catastrophic cancellation when b and
	// sqrt(disc) are close in magnitude.
	var q float32
	if b < 0 {
		q = -0.5 * (b - sq)
	} else {
		q = -0.5 * (b + sq)
	}
	t0 = q / a
	t1 = c / q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

func (s Sphere) roots(ray core.Ray) (t0, t1 float32, ok bool) {

	oc := ray.Origin
	oc.Sub(&s.Center)

	a := ray.Direction.Dot(&ray.Direction)
	b := 2 * ray.Direction.Dot(&oc)
	c := oc.Dot(&oc) - s.Radius*s.Radius
	return quadratic(a, b, c)
}

// Intersects reports whether the ray hits the sphere within [minDist, maxDist].
func (s Sphere) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	t0, t1, ok := s.roots(ray)
	if !ok {
		return false
	}
	if t0 >= minDist && t0 <= maxDist {
		return true
	}
	return t1 >= minDist && t1 <= maxDist
}

// FindIntersection returns the nearest root at or beyond minDist.
func (s Sphere) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	t0, t1, ok := s.roots(ray)
	if !ok {
		return core.RayIntersection{}, false
	}

	t := t0
	if t < minDist {
		t = t1
		if t < minDist {
			return core.RayIntersection{}, false
		}
	}

	var ri core.RayIntersection
	ri.Ray = ray
	ri.Distance = t
	ri.Position = ray.At(t)
	ri.MaterialID = s.MaterialID

	n := ri.Position
	n.Sub(&s.Center)
	n.MultiplyScalar(1 / s.Radius)
	ri.Normal = n
	ri.Tangent, ri.Bitangent = math32.BuildOrthonormalBasis(ri.Normal)

	// Spherical (u,v) texture coordinates: u from azimuth, v from polar angle.
	u := 0.5 + math32.Atan2(n.Z, n.X)/(2*math32.Pi)
	v := 0.5 - math32.Asin(math32.Clamp(n.Y, -1, 1))/math32.Pi
	ri.TexCoord = math32.Vector2{X: u, Y: v}
	ri.HasTexCoord = true

	return ri, true
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s Sphere) BoundingBox() Slab {

	r := math32.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	min := s.Center
	min.Sub(&r)
	max := s.Center
	max.Add(&r)
	return NewSlab(min, max, s.MaterialID)
}
