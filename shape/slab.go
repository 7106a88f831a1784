// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

// Slab is an axis-aligned box. Construction always canonicalizes so that
// Min <= Max per axis, regardless of the order the two corners were given in.
type Slab struct {
	Min, Max   math32.Vector3
	MaterialID int
}

// NewSlab builds a canonical Slab from two arbitrary corner points.
func NewSlab(a, b math32.Vector3, materialID int) Slab {

	return Slab{
		Min: math32.Vector3{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)},
		Max: math32.Vector3{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)},
		MaterialID: materialID,
	}
}

// EmptySlab returns a Slab with inverted bounds, suitable as the identity
// element for repeated Union calls.
func EmptySlab() Slab {
	return Slab{
		Min: math32.Vector3{X: math32.Infinity, Y: math32.Infinity, Z: math32.Infinity},
		Max: math32.Vector3{X: -math32.Infinity, Y: -math32.Infinity, Z: -math32.Infinity},
	}
}

// Union returns the smallest Slab containing both s and other.
func (s Slab) Union(other Slab) Slab {

	return Slab{
		Min: math32.Vector3{X: math32.Min(s.Min.X, other.Min.X), Y: math32.Min(s.Min.Y, other.Min.Y), Z: math32.Min(s.Min.Z, other.Min.Z)},
		Max: math32.Vector3{X: math32.Max(s.Max.X, other.Max.X), Y: math32.Max(s.Max.Y, other.Max.Y), Z: math32.Max(s.Max.Z, other.Max.Z)},
		MaterialID: s.MaterialID,
	}
}

// ExpandByPoint grows the slab, if needed, to contain p.
func (s Slab) ExpandByPoint(p math32.Vector3) Slab {

	return Slab{
		Min: math32.Vector3{X: math32.Min(s.Min.X, p.X), Y: math32.Min(s.Min.Y, p.Y), Z: math32.Min(s.Min.Z, p.Z)},
		Max: math32.Vector3{X: math32.Max(s.Max.X, p.X), Y: math32.Max(s.Max.Y, p.Y), Z: math32.Max(s.Max.Z, p.Z)},
		MaterialID: s.MaterialID,
	}
}

// Center returns the midpoint of the slab.
func (s Slab) Center() math32.Vector3 {
	return math32.Vector3{X: (s.Min.X + s.Max.X) / 2, Y: (s.Min.Y + s.Max.Y) / 2, Z: (s.Min.Z + s.Max.Z) / 2}
}

// ContainsPoint reports whether p lies within the slab (inclusive).
func (s Slab) ContainsPoint(p math32.Vector3) bool {
	return p.X >= s.Min.X && p.X <= s.Max.X &&
		p.Y >= s.Min.Y && p.Y <= s.Max.Y &&
		p.Z >= s.Min.Z && p.Z <= s.Max.Z
}

// Axis normals, indexed [axis][0]=negative face, [1]=positive face.
var slabNormals = [3][2]math32.Vector3{
	{{X: -1}, {X: 1}},
	{{Y: -1}, {Y: 1}},
	{{Z: -1}, {Z: 1}},
}

// slabInterval computes the entry/exit t for a single axis of the slab test.
func slabInterval(originC, dirC, minC, maxC float32) (tEnter, tExit float32, enterIsMin bool) {

	if dirC == 0 {
		if originC < minC || originC > maxC {
			return math32.Infinity, -math32.Infinity, true
		}
		return -math32.Infinity, math32.Infinity, true
	}
	inv := 1 / dirC
	t0 := (minC - originC) * inv
	t1 := (maxC - originC) * inv
	if t0 <= t1 {
		return t0, t1, true
	}
	return t1, t0, false
}

// Intersects implements the classic slab method: track the running max of
// axis entries and min of axis exits; a miss occurs when the running
// max-entry exceeds the running min-exit.
func (s Slab) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	_, _, hit := s.intersectSlab(ray, minDist, maxDist)
	return hit
}

// axisEntry records which axis and which side (min/max face) produced the
// slab's final entry or exit distance, so the hit normal can be recovered.
type axisEntry struct {
	axis  int
	isMin bool
}

func (s Slab) intersectSlab(ray core.Ray, minDist, maxDist float32) (tHit float32, which axisEntry, ok bool) {

	origins := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float32{s.Min.X, s.Min.Y, s.Min.Z}
	maxs := [3]float32{s.Max.X, s.Max.Y, s.Max.Z}

	tMaxEntry := minDist
	tMinExit := maxDist
	var entryAxis, exitAxis axisEntry
	entryAxis = axisEntry{0, true}
	exitAxis = axisEntry{0, false}

	for axis := 0; axis < 3; axis++ {
		t0, t1, enterIsMin := slabInterval(origins[axis], dirs[axis], mins[axis], maxs[axis])
		if t0 > tMaxEntry {
			tMaxEntry = t0
			entryAxis = axisEntry{axis, enterIsMin}
		}
		if t1 < tMinExit {
			tMinExit = t1
			exitAxis = axisEntry{axis, !enterIsMin}
		}
	}

	if tMaxEntry > tMinExit {
		return 0, axisEntry{}, false
	}
	if tMaxEntry > minDist {
		return tMaxEntry, entryAxis, true
	}
	return tMinExit, exitAxis, true
}

// FindIntersection returns the nearest entry point when the ray origin is
// outside the slab, or the exit point when the ray originates inside it.
func (s Slab) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	t, which, hit := s.intersectSlab(ray, minDist, math32.Infinity)
	if !hit {
		return core.RayIntersection{}, false
	}

	var ri core.RayIntersection
	ri.Ray = ray
	ri.Distance = t
	ri.Position = ray.At(t)
	ri.MaterialID = s.MaterialID

	side := 0
	if which.isMin {
		side = 0
	} else {
		side = 1
	}
	ri.Normal = slabNormals[which.axis][side]
	ri.Tangent, ri.Bitangent = math32.BuildOrthonormalBasis(ri.Normal)
	ri.HasTexCoord = false
	return ri, true
}

// BoundingBox returns the slab itself.
func (s Slab) BoundingBox() Slab {
	return s
}
