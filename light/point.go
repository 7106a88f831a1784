// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package light holds the renderer's light source variants: point lights
// and disk (area) lights.
package light

import "github.com/dacunni/fluxrt/math32"

// Point is a point light: a position and a radiant intensity in
// watts/steradian. It has no size and cannot be hit directly by a camera ray.
type Point struct {
	Position  math32.Vector3
	Intensity math32.Color
}

// NewPoint creates a point light with the given position and radiant intensity.
func NewPoint(position math32.Vector3, intensity math32.Color) *Point {
	return &Point{Position: position, Intensity: intensity}
}

// RadianceAt returns the radiance contribution at distance d along the
// direction to the light (inverse-square falloff).
func (p *Point) RadianceAt(d float32) math32.Color {

	if d <= 0 {
		return math32.Color{}
	}
	return p.Intensity.Scaled(1 / (d * d))
}
