// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/envmap"
	"github.com/dacunni/fluxrt/light"
	"github.com/dacunni/fluxrt/material"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/texture"
)

// Scene owns every resource the integrator needs to trace a frame:
// traceable geometry (optionally accelerated by a top-level k-d tree),
// point and disk lights, the material and texture tables hit records index
// into, and the environment map sampled when a ray escapes the scene.
type Scene struct {
	Traceables []Traceable
	tree       *Tree

	PointLights []light.Point
	DiskLights  []light.Disk

	Materials []material.Material
	Textures  []*texture.Texture2D

	Environment envmap.EnvironmentMap
}

// NewScene returns an empty scene with a trivial (black) environment map.
func NewScene() *Scene {
	return &Scene{Environment: envmap.Trivial{}}
}

// BuildAccelerator builds a k-d tree over the scene's current Traceables.
// Call this once scene construction is finished and before rendering; it is
// optional; without it, Intersects/FindIntersection fall back to a
// brute-force scan of Traceables.
func (s *Scene) BuildAccelerator() {
	s.tree = BuildTree(s.Traceables)
}

// Intersects reports whether the ray hits any scene geometry within
// [minDist, maxDist].
func (s *Scene) Intersects(ray core.Ray, minDist, maxDist float32) bool {

	if s.tree != nil {
		return s.tree.Intersects(ray, minDist, maxDist)
	}
	for _, t := range s.Traceables {
		if t.Intersects(ray, minDist, maxDist) {
			return true
		}
	}
	return false
}

// FindIntersection returns the nearest scene hit at or beyond minDist.
func (s *Scene) FindIntersection(ray core.Ray, minDist float32) (core.RayIntersection, bool) {

	if s.tree != nil {
		ri, _, ok := s.tree.FindIntersection(ray, minDist)
		return ri, ok
	}

	best := core.RayIntersection{}
	found := false
	for _, t := range s.Traceables {
		if ri, ok := t.FindIntersection(ray, minDist); ok {
			if !found || ri.Distance < best.Distance {
				best = ri
				found = true
			}
		}
	}
	return best, found
}

// MaterialAt returns the material for a hit's material id, or a zero-value
// default material if the id is out of range.
func (s *Scene) MaterialAt(id int) material.Material {

	if id < 0 || id >= len(s.Materials) {
		return material.DefaultMaterial()
	}
	return s.Materials[id]
}

// Evaluate resolves a Param at a hit's texture coordinates against the
// scene's texture table, falling back to the Param's constant when the hit
// carries no texture coordinate at all.
func (s *Scene) Evaluate(p material.Param, ri core.RayIntersection) math32.Color {

	if !ri.HasTexCoord {
		return p.Constant
	}
	return p.Evaluate(ri.TexCoord.X, ri.TexCoord.Y, s.Textures)
}

// EvaluateAlpha is the AlphaParam counterpart of Evaluate.
func (s *Scene) EvaluateAlpha(p material.AlphaParam, ri core.RayIntersection) float32 {

	if !ri.HasTexCoord {
		return p.Constant
	}
	return p.Evaluate(ri.TexCoord.X, ri.TexCoord.Y, s.Textures)
}
