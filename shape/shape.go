// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the renderer's ray/shape intersection
// primitives (sphere, slab, triangle, triangle mesh) and the triangle-mesh
// octree acceleration structure over a mesh's triangles.
//
// The teacher's OO virtual-dispatch Traceable hierarchy (one C++ base class,
// one subclass per shape) is replaced here by a Go interface: each
// concrete shape type implements Shape directly, and callers dispatch
// through the interface rather than a tagged union switch.
package shape

import "github.com/dacunni/fluxrt/core"

// Shape is the common ray-intersection contract for every primitive.
type Shape interface {
	// Intersects is the fast visibility predicate: does any hit lie in
	// [minDist, maxDist]?
	Intersects(ray core.Ray, minDist, maxDist float32) bool
	// FindIntersection returns the nearest hit at or beyond minDist.
	FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool)
	// BoundingBox returns the shape's axis-aligned bounding box in its
	// own (object) space.
	BoundingBox() Slab
}
