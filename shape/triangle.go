// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

// Triangle is a single traceable triangle in object space, with a flat
// (non-interpolated) normal and no per-vertex data. TriangleMesh is used
// when per-vertex normals/texcoords and shared vertex storage are needed.
type Triangle struct {
	V0, V1, V2 math32.Vector3
	MaterialID int
}

// NewTriangle builds a Triangle.
func NewTriangle(v0, v1, v2 math32.Vector3, materialID int) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, MaterialID: materialID}
}

const triangleEpsilon = 1e-8

// mollerTrumbore returns the hit distance t and barycentric (u,v) such that
// the hit point is v0 + u*(v1-v0) + v*(v2-v0), or ok=false when the ray is
// parallel to the triangle's plane or the hit lies outside the triangle.
func mollerTrumbore(ray core.Ray, v0, v1, v2 math32.Vector3) (t, u, v float32, ok bool) {

	edge1 := v1
	edge1.Sub(&v0)
	edge2 := v2
	edge2.Sub(&v0)

	pvec := ray.Direction
	pvec.Cross(&edge2)
	det := edge1.Dot(&pvec)

	if math32.Abs(det) < triangleEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := ray.Origin
	tvec.Sub(&v0)
	u = tvec.Dot(&pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec
	qvec.Cross(&edge1)
	v = ray.Direction.Dot(&qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = edge2.Dot(&qvec) * invDet
	return t, u, v, true
}

// Intersects reports whether the ray hits the triangle within [minDist, maxDist].
func (tr Triangle) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	t, _, _, ok := mollerTrumbore(ray, tr.V0, tr.V1, tr.V2)
	return ok && t >= minDist && t <= maxDist
}

// FindIntersection returns the hit, if any, at or beyond minDist.
func (tr Triangle) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	t, u, v, ok := mollerTrumbore(ray, tr.V0, tr.V1, tr.V2)
	if !ok || t < minDist {
		return core.RayIntersection{}, false
	}

	var ri core.RayIntersection
	ri.Ray = ray
	ri.Distance = t
	ri.Position = ray.At(t)
	ri.MaterialID = tr.MaterialID

	edge1 := tr.V1
	edge1.Sub(&tr.V0)
	edge2 := tr.V2
	edge2.Sub(&tr.V0)
	n := edge1
	n.Cross(&edge2)
	n.NormalizeOrKeep()
	ri.Normal = n
	ri.Tangent, ri.Bitangent = math32.BuildOrthonormalBasis(ri.Normal)

	// Barycentric weights in the (w0,w1,w2) = (1-u-v, u, v) convention,
	// matching core.Barycentric's (u,v,w) ordering against (a,b,c) = (V0,V1,V2).
	ri.HasTexCoord = false
	_ = u
	_ = v

	return ri, true
}

// BoundingBox returns the triangle's axis-aligned bounding box.
func (tr Triangle) BoundingBox() Slab {

	s := EmptySlab()
	s.MaterialID = tr.MaterialID
	s = s.ExpandByPoint(tr.V0)
	s = s.ExpandByPoint(tr.V1)
	s = s.ExpandByPoint(tr.V2)
	return s
}
