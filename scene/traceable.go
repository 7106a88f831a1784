// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the renderable scene graph: Traceable (a shape plus
// its world transform), the object-level k-d tree built over a scene's
// traceables, and the Scene container that ties traceables, lights,
// materials, textures, and the environment map together for the integrator.
package scene

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/shape"
)

// Traceable bridges a shape (defined in its own object space) into world
// space via an affine Transform. Rays are transformed into object space for
// the intersection test; hits are transformed back into world space.
type Traceable struct {
	Shape     shape.Shape
	Transform math32.Transform
	// Medium, when non-nil, names the participating medium entered when a
	// ray crosses this traceable's surface from outside to inside.
	Medium *core.Medium
}

// NewTraceable wraps shape s with the given world transform.
func NewTraceable(s shape.Shape, transform math32.Transform) Traceable {
	return Traceable{Shape: s, Transform: transform}
}

// toObjectSpace transforms a world-space ray into the traceable's object space.
func (t Traceable) toObjectSpace(ray core.Ray) core.Ray {

	return core.Ray{
		Origin:    t.Transform.TransformPositionReverse(ray.Origin),
		Direction: t.Transform.TransformDirectionReverse(ray.Direction),
	}
}

// Intersects reports whether the world-space ray hits the shape within
// [minDist, maxDist].
func (t Traceable) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	return t.Shape.Intersects(t.toObjectSpace(ray), minDist, maxDist)
}

// FindIntersection returns the nearest hit, transformed back into world
// space, at or beyond minDist.
func (t Traceable) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	objRay := t.toObjectSpace(ray)
	// minDist is a world-space distance: map the world point at minDist into
	// object space and measure it from the object-space ray origin.
	objMinPoint := t.Transform.TransformPositionReverse(ray.At(minDist))
	ri, ok := t.Shape.FindIntersection(objRay, objMinPoint.DistanceTo(&objRay.Origin))
	if !ok {
		return core.RayIntersection{}, false
	}

	ri.Ray = ray
	ri.Position = t.Transform.TransformPosition(ri.Position)
	ri.Distance = ri.Position.DistanceTo(&ray.Origin)
	ri.Normal = t.Transform.TransformNormal(ri.Normal)
	ri.Tangent = t.Transform.TransformDirection(ri.Tangent)
	ri.Bitangent = t.Transform.TransformDirection(ri.Bitangent)
	return ri, true
}

// BoundingBox returns the traceable's world-space bounding box, computed by
// transforming the eight corners of the shape's object-space box and
// re-enclosing them (the simplest correct bound under an arbitrary affine
// transform, at the cost of looseness under rotation).
func (t Traceable) BoundingBox() shape.Slab {

	ob := t.Shape.BoundingBox()
	corners := [8]math32.Vector3{
		{X: ob.Min.X, Y: ob.Min.Y, Z: ob.Min.Z},
		{X: ob.Max.X, Y: ob.Min.Y, Z: ob.Min.Z},
		{X: ob.Min.X, Y: ob.Max.Y, Z: ob.Min.Z},
		{X: ob.Max.X, Y: ob.Max.Y, Z: ob.Min.Z},
		{X: ob.Min.X, Y: ob.Min.Y, Z: ob.Max.Z},
		{X: ob.Max.X, Y: ob.Min.Y, Z: ob.Max.Z},
		{X: ob.Min.X, Y: ob.Max.Y, Z: ob.Max.Z},
		{X: ob.Max.X, Y: ob.Max.Y, Z: ob.Max.Z},
	}

	world := shape.EmptySlab()
	world.MaterialID = ob.MaterialID
	for _, c := range corners {
		world = world.ExpandByPoint(t.Transform.TransformPosition(c))
	}
	return world
}
