// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

const (
	octreeBuildCutOffNumTriangles = 32
	octreeBuildMaxLevel           = 8
)

// octreeNode is one node of the flat node array backing a
// TriangleMeshOctree. Children are named by an LLL..HHH bit code: bit 0 is
// the X half (L=low/H=high), bit 1 is Y, bit 2 is Z, matching the 3-bit
// octant index used to index Children.
type octreeNode struct {
	bounds   Slab
	children [8]int32 // -1 when the child is absent (no triangles reach it)
	isLeaf   bool
	faces    []int32 // triangle indices into the mesh's Faces array, leaf only
}

// TriangleMeshOctree is a spatial acceleration structure over one MeshData's
// triangles: an octree of axis-aligned boxes, built top-down, with the root
// at node index 0.
//
// The overlap test used while building is a vertex test: a triangle is
// assigned to every child octant that any of its three vertices falls in
// (rather than computing an exact triangle/box overlap), so a triangle
// whose vertices lie in several octants is duplicated into each of them.
// A triangle that crosses an octant without having a vertex inside it is
// not assigned to that octant.
//
// Traversal visits the children of a node in the front-to-back order
// implied by the ray's direction sign, tests each child's box with a slab
// test before descending, and descends into every child that passes.
type TriangleMeshOctree struct {
	Data  *MeshData
	nodes []octreeNode
}

// BuildTriangleMeshOctree builds an octree over every face of data.
func BuildTriangleMeshOctree(data *MeshData) *TriangleMeshOctree {

	o := &TriangleMeshOctree{Data: data}
	o.nodes = append(o.nodes, octreeNode{}) // index 0 is always the root
	all := make([]int32, len(data.Faces))
	for i := range all {
		all[i] = int32(i)
	}
	o.nodes[0] = o.buildNode(data.Bounds(), all, 0)
	return o
}

// buildNode recursively builds one node (and its subtree) over the given
// candidate face list within bounds, returning the node (its children, if
// any, are appended to o.nodes and referenced by index).
func (o *TriangleMeshOctree) buildNode(bounds Slab, faces []int32, level int) octreeNode {

	if len(faces) <= octreeBuildCutOffNumTriangles || level >= octreeBuildMaxLevel {
		return octreeNode{bounds: bounds, isLeaf: true, faces: faces}
	}

	center := bounds.Center()
	var childFaces [8][]int32

	for _, fi := range faces {
		v0, v1, v2 := o.Data.FaceTriangle(int(fi))
		mask := 0
		for octant := 0; octant < 8; octant++ {
			if octantOverlapsTriangle(octant, center, v0, v1, v2) {
				mask |= 1 << octant
			}
		}
		for octant := 0; octant < 8; octant++ {
			if mask&(1<<octant) != 0 {
				childFaces[octant] = append(childFaces[octant], fi)
			}
		}
	}

	node := octreeNode{bounds: bounds}
	for octant := 0; octant < 8; octant++ {
		cf := childFaces[octant]
		if len(cf) == 0 {
			node.children[octant] = -1
			continue
		}
		childBounds := octantBounds(bounds, center, octant)
		childNode := o.buildNode(childBounds, cf, level+1)
		idx := int32(len(o.nodes))
		o.nodes = append(o.nodes, childNode)
		node.children[octant] = idx
	}
	return node
}

// octantBounds returns the sub-box of parent named by octant, split at center.
func octantBounds(parent Slab, center math32.Vector3, octant int) Slab {

	min, max := parent.Min, parent.Max
	if octant&1 == 0 {
		max.X = center.X
	} else {
		min.X = center.X
	}
	if octant&2 == 0 {
		max.Y = center.Y
	} else {
		min.Y = center.Y
	}
	if octant&4 == 0 {
		max.Z = center.Z
	} else {
		min.Z = center.Z
	}
	return NewSlab(min, max, parent.MaterialID)
}

// octantOverlapsTriangle is the over-inclusive build-time overlap test: true
// if any of the triangle's three vertices lies within the half-space
// defined by octant relative to center on every axis.
func octantOverlapsTriangle(octant int, center, v0, v1, v2 math32.Vector3) bool {

	return vertexInOctant(octant, center, v0) ||
		vertexInOctant(octant, center, v1) ||
		vertexInOctant(octant, center, v2)
}

func vertexInOctant(octant int, center, p math32.Vector3) bool {

	if octant&1 == 0 {
		if p.X > center.X {
			return false
		}
	} else {
		if p.X < center.X {
			return false
		}
	}
	if octant&2 == 0 {
		if p.Y > center.Y {
			return false
		}
	} else {
		if p.Y < center.Y {
			return false
		}
	}
	if octant&4 == 0 {
		if p.Z > center.Z {
			return false
		}
	} else {
		if p.Z < center.Z {
			return false
		}
	}
	return true
}

// octantOrder returns the 8 octant indices in front-to-back order for a ray
// with the given direction: the octant nearest the ray origin along each
// axis's sign is visited first, by XOR-ing the axis sign bits into the
// natural 0..7 traversal order.
func octantOrder(dir math32.Vector3) [8]int {

	bit := func(c float32) int {
		if c < 0 {
			return 1
		}
		return 0
	}
	flip := bit(dir.X) | bit(dir.Y)<<1 | bit(dir.Z)<<2
	var order [8]int
	for i := 0; i < 8; i++ {
		order[i] = i ^ flip
	}
	return order
}

// Intersects reports whether the ray hits any face within [minDist, maxDist].
func (o *TriangleMeshOctree) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	if !o.nodes[0].bounds.Intersects(ray, minDist, maxDist) {
		return false
	}
	return o.intersectsNode(0, ray, minDist, maxDist)
}

func (o *TriangleMeshOctree) intersectsNode(idx int32, ray core.Ray, minDist, maxDist float32) bool {

	node := &o.nodes[idx]
	if node.isLeaf {
		for _, fi := range node.faces {
			f := o.Data.Faces[fi]
			if ri, ok := intersectFace(o.Data, int(fi), f.MaterialID, ray, minDist); ok && ri.Distance <= maxDist {
				return true
			}
		}
		return false
	}

	order := octantOrder(ray.Direction)
	for _, octant := range order {
		child := node.children[octant]
		if child < 0 {
			continue
		}
		if !o.nodes[child].bounds.Intersects(ray, minDist, maxDist) {
			continue
		}
		if o.intersectsNode(child, ray, minDist, maxDist) {
			return true
		}
	}
	return false
}

// FindIntersection returns the nearest hit across the whole mesh at or
// beyond minDist, descending the octree in front-to-back order and stopping
// a branch early once its entry distance exceeds the closest hit found so
// far.
func (o *TriangleMeshOctree) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	if !o.nodes[0].bounds.Intersects(ray, minDist, math32.Infinity) {
		return core.RayIntersection{}, false
	}
	best := core.RayIntersection{Distance: math32.Infinity}
	found := false
	o.findNode(0, ray, minDist, &best, &found)
	return best, found
}

func (o *TriangleMeshOctree) findNode(idx int32, ray core.Ray, minDist float32, best *core.RayIntersection, found *bool) {

	node := &o.nodes[idx]

	if node.isLeaf {
		for _, fi := range node.faces {
			f := o.Data.Faces[fi]
			if ri, ok := intersectFace(o.Data, int(fi), f.MaterialID, ray, minDist); ok {
				if !*found || ri.Distance < best.Distance {
					*best = ri
					*found = true
				}
			}
		}
		return
	}

	order := octantOrder(ray.Direction)
	for _, octant := range order {
		child := node.children[octant]
		if child < 0 {
			continue
		}
		maxDist := math32.Infinity
		if *found {
			maxDist = best.Distance
		}
		if !o.nodes[child].bounds.Intersects(ray, minDist, maxDist) {
			continue
		}
		o.findNode(child, ray, minDist, best, found)
	}
}

// BoundingBox returns the octree's overall (root) bounding box.
func (o *TriangleMeshOctree) BoundingBox() Slab {
	return o.nodes[0].bounds
}
