// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/shape"
)

const (
	kdTreeMinObjects    = 4   // stop splitting once a node holds fewer objects than this
	kdTreeMaxDepth      = 4   // stop splitting past this depth
	kdTreeBloatFactor   = 1.5 // stop splitting once the children's combined object count would exceed this multiple of the parent's
)

// kdNode is one node of the object-level k-d tree: either a leaf holding
// object indices directly, or an interior node with two children.
type kdNode struct {
	bounds       shape.Slab
	objects      []int32 // leaf only: indices into Tree.objects
	left, right  int32   // interior only: -1 when absent
	isLeaf       bool
}

// Tree is a k-d tree over a fixed set of Traceables, used to accelerate
// top-level scene traversal the same way TriangleMeshOctree accelerates
// traversal within one mesh. The split axis cycles X, Y, Z by tree depth;
// each split is at the midpoint of the node's bounding box on that axis,
// and any object whose bounding box straddles the split plane is duplicated
// into both children (rather than assigned to one side by its centroid),
// trading a looser leaf-object count for a simpler, branchless build.
type Tree struct {
	objects []Traceable
	nodes   []kdNode
}

// BuildTree builds a k-d tree over objects. With fewer than
// kdTreeMinObjects objects the tree degenerates to a single leaf.
func BuildTree(objects []Traceable) *Tree {

	t := &Tree{objects: objects}
	bounds := shape.EmptySlab()
	for _, o := range objects {
		bounds = bounds.Union(o.BoundingBox())
	}

	all := make([]int32, len(objects))
	for i := range all {
		all[i] = int32(i)
	}

	t.nodes = append(t.nodes, kdNode{})
	t.nodes[0] = t.buildNode(bounds, all, 0)
	return t
}

func (t *Tree) boundsOf(idx int32) shape.Slab {
	return t.objects[idx].BoundingBox()
}

func (t *Tree) buildNode(bounds shape.Slab, objIdx []int32, depth int) kdNode {

	if len(objIdx) < kdTreeMinObjects || depth > kdTreeMaxDepth {
		return kdNode{bounds: bounds, isLeaf: true, objects: objIdx, left: -1, right: -1}
	}

	axis := depth % 3
	var mid float32
	switch axis {
	case 0:
		mid = (bounds.Min.X + bounds.Max.X) / 2
	case 1:
		mid = (bounds.Min.Y + bounds.Max.Y) / 2
	default:
		mid = (bounds.Min.Z + bounds.Max.Z) / 2
	}

	var leftIdx, rightIdx []int32
	for _, idx := range objIdx {
		ob := t.boundsOf(idx)
		lo, hi := axisRange(ob, axis)
		if lo <= mid {
			leftIdx = append(leftIdx, idx)
		}
		if hi >= mid || lo > mid {
			rightIdx = append(rightIdx, idx)
		}
	}

	// Stop if the split made no progress (everything landed in one side)
	// or if straddler duplication bloated the object count too much.
	total := len(leftIdx) + len(rightIdx)
	stalled := len(leftIdx) == len(objIdx) || len(rightIdx) == len(objIdx)
	bloated := float32(total) > kdTreeBloatFactor*float32(len(objIdx))
	if stalled || bloated {
		return kdNode{bounds: bounds, isLeaf: true, objects: objIdx, left: -1, right: -1}
	}

	leftBounds, rightBounds := splitBounds(bounds, axis, mid)

	leftNode := t.buildNode(leftBounds, leftIdx, depth+1)
	leftI := int32(len(t.nodes))
	t.nodes = append(t.nodes, leftNode)

	rightNode := t.buildNode(rightBounds, rightIdx, depth+1)
	rightI := int32(len(t.nodes))
	t.nodes = append(t.nodes, rightNode)

	return kdNode{bounds: bounds, isLeaf: false, left: leftI, right: rightI}
}

func axisRange(s shape.Slab, axis int) (lo, hi float32) {
	switch axis {
	case 0:
		return s.Min.X, s.Max.X
	case 1:
		return s.Min.Y, s.Max.Y
	default:
		return s.Min.Z, s.Max.Z
	}
}

func splitBounds(bounds shape.Slab, axis int, mid float32) (left, right shape.Slab) {

	left, right = bounds, bounds
	switch axis {
	case 0:
		left.Max.X, right.Min.X = mid, mid
	case 1:
		left.Max.Y, right.Min.Y = mid, mid
	default:
		left.Max.Z, right.Min.Z = mid, mid
	}
	return left, right
}

// Intersects reports whether the ray hits any object within [minDist, maxDist].
func (t *Tree) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	if len(t.nodes) == 0 || !t.nodes[0].bounds.Intersects(ray, minDist, maxDist) {
		return false
	}
	return t.intersectsNode(0, ray, minDist, maxDist)
}

func (t *Tree) intersectsNode(idx int32, ray core.Ray, minDist, maxDist float32) bool {

	n := &t.nodes[idx]
	if n.isLeaf {
		for _, oi := range n.objects {
			if t.objects[oi].Intersects(ray, minDist, maxDist) {
				return true
			}
		}
		return false
	}

	if n.left >= 0 && t.nodes[n.left].bounds.Intersects(ray, minDist, maxDist) && t.intersectsNode(n.left, ray, minDist, maxDist) {
		return true
	}
	if n.right >= 0 && t.nodes[n.right].bounds.Intersects(ray, minDist, maxDist) && t.intersectsNode(n.right, ray, minDist, maxDist) {
		return true
	}
	return false
}

// FindIntersection returns the nearest hit across all objects at or beyond
// minDist, along with the index of the hit Traceable.
func (t *Tree) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, int, bool) {

	if len(t.nodes) == 0 {
		return core.RayIntersection{}, -1, false
	}
	best := core.RayIntersection{}
	bestIdx := -1
	found := false
	t.findNode(0, ray, minDist, &best, &bestIdx, &found)
	return best, bestIdx, found
}

func (t *Tree) findNode(idx int32, ray core.Ray, minDist float32, best *core.RayIntersection, bestIdx *int, found *bool) {

	n := &t.nodes[idx]
	maxDist := rayFarMax(*found, *best)
	if !n.bounds.Intersects(ray, minDist, maxDist) {
		return
	}

	if n.isLeaf {
		for _, oi := range n.objects {
			if ri, ok := t.objects[oi].FindIntersection(ray, minDist); ok {
				if !*found || ri.Distance < best.Distance {
					*best = ri
					*bestIdx = int(oi)
					*found = true
				}
			}
		}
		return
	}

	if n.left >= 0 {
		t.findNode(n.left, ray, minDist, best, bestIdx, found)
	}
	if n.right >= 0 {
		t.findNode(n.right, ray, minDist, best, bestIdx, found)
	}
}

func rayFarMax(found bool, ri core.RayIntersection) float32 {
	if found {
		return ri.Distance
	}
	return math32.Infinity
}
