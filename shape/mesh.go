// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

// NoTexCoord is the sentinel texture-coordinate index meaning "this vertex
// has no texture coordinate".
const NoTexCoord = -1

// FaceIndices names, for one triangular face, the indices into MeshData's
// shared vertex/normal/texcoord arrays for each of its three corners.
type FaceIndices struct {
	Vertex     [3]int
	Normal     [3]int
	TexCoord   [3]int // NoTexCoord when the mesh carries no texture coordinates
	MaterialID int
}

// MeshData is the shared, immutable backing store for one or more
// TriangleMesh instances: deduplicated vertex positions, normals, and
// texture coordinates, plus one FaceIndices per triangle. Many TriangleMesh
// instances (e.g. instanced geometry under different transforms) may
// reference the same MeshData.
type MeshData struct {
	Vertices   []math32.Vector3
	Normals    []math32.Vector3
	TexCoords  []math32.Vector2
	Faces      []FaceIndices

	bounds      Slab
	boundsReady bool
}

// NewMeshData builds a MeshData from the given shared arrays and face list.
func NewMeshData(vertices, normals []math32.Vector3, texCoords []math32.Vector2, faces []FaceIndices) *MeshData {

	return &MeshData{Vertices: vertices, Normals: normals, TexCoords: texCoords, Faces: faces}
}

// Bounds returns the mesh's object-space bounding box, computing and caching
// it from the vertex array on first use.
func (md *MeshData) Bounds() Slab {

	if md.boundsReady {
		return md.bounds
	}
	s := EmptySlab()
	for _, v := range md.Vertices {
		s = s.ExpandByPoint(v)
	}
	md.bounds = s
	md.boundsReady = true
	return md.bounds
}

// FaceTriangle returns the three vertex positions of face i.
func (md *MeshData) FaceTriangle(i int) (a, b, c math32.Vector3) {

	f := md.Faces[i]
	return md.Vertices[f.Vertex[0]], md.Vertices[f.Vertex[1]], md.Vertices[f.Vertex[2]]
}

// TriangleMesh is a Shape backed by a MeshData and, optionally, a material
// id override applied uniformly in place of each face's own material.
type TriangleMesh struct {
	Data               *MeshData
	MaterialIDOverride int // NoTexture-style sentinel: < 0 means "use per-face material"
}

// NewTriangleMesh wraps data with no material override (per-face materials apply).
func NewTriangleMesh(data *MeshData) *TriangleMesh {
	return &TriangleMesh{Data: data, MaterialIDOverride: -1}
}

func (m *TriangleMesh) materialFor(f FaceIndices) int {
	if m.MaterialIDOverride >= 0 {
		return m.MaterialIDOverride
	}
	return f.MaterialID
}

// intersectFace tests the ray against a single face by index, returning a
// populated RayIntersection on a hit at or beyond minDist. materialID is
// the resolved material to stamp on the hit (a mesh-level override, or the
// face's own material).
func intersectFace(data *MeshData, faceIdx int, materialID int, ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	f := data.Faces[faceIdx]
	v0, v1, v2 := data.FaceTriangle(faceIdx)

	t, u, v, ok := mollerTrumbore(ray, v0, v1, v2)
	if !ok || t < minDist {
		return core.RayIntersection{}, false
	}
	w := 1 - u - v

	var ri core.RayIntersection
	ri.Ray = ray
	ri.Distance = t
	ri.Position = ray.At(t)
	ri.MaterialID = materialID

	if f.Normal[0] >= 0 {
		n0 := data.Normals[f.Normal[0]]
		n1 := data.Normals[f.Normal[1]]
		n2 := data.Normals[f.Normal[2]]
		ri.Normal = core.InterpolateVec3(w, u, v, n0, n1, n2)
		ri.Normal.NormalizeOrKeep()
	} else {
		edge1 := v1
		edge1.Sub(&v0)
		edge2 := v2
		edge2.Sub(&v0)
		n := edge1
		n.Cross(&edge2)
		n.NormalizeOrKeep()
		ri.Normal = n
	}
	ri.Tangent, ri.Bitangent = math32.BuildOrthonormalBasis(ri.Normal)

	if f.TexCoord[0] != NoTexCoord {
		tc0 := data.TexCoords[f.TexCoord[0]]
		tc1 := data.TexCoords[f.TexCoord[1]]
		tc2 := data.TexCoords[f.TexCoord[2]]
		ri.TexCoord = core.InterpolateVec2(w, u, v, tc0, tc1, tc2)
		ri.HasTexCoord = true
	}

	return ri, true
}

// Intersects reports whether the ray hits any face within [minDist, maxDist],
// by brute-force scan over every face. Scenes with large meshes should
// instead build a TriangleMeshOctree over Data.
func (m *TriangleMesh) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	for i, f := range m.Data.Faces {
		if ri, ok := intersectFace(m.Data, i, m.materialFor(f), ray, minDist); ok && ri.Distance <= maxDist {
			return true
		}
	}
	return false
}

// FindIntersection returns the nearest face hit at or beyond minDist, by
// brute-force scan over every face.
func (m *TriangleMesh) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	best := core.RayIntersection{}
	found := false
	for i, f := range m.Data.Faces {
		if ri, ok := intersectFace(m.Data, i, m.materialFor(f), ray, minDist); ok {
			if !found || ri.Distance < best.Distance {
				best = ri
				found = true
			}
		}
	}
	return best, found
}

// BoundingBox returns the mesh's object-space bounding box.
func (m *TriangleMesh) BoundingBox() Slab {
	return m.Data.Bounds()
}
