// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifacts

import "github.com/dacunni/fluxrt/math32"

// AOVSet holds the renderer's auxiliary output variables: per-pixel data
// alongside the beauty image, useful for compositing and debugging. Each
// field is nil until its With* method allocates it, so renders that don't
// need a given AOV pay nothing for it.
type AOVSet struct {
	Width, Height int

	Hit         []bool
	Distance    []float32
	Normal      []math32.Vector3
	Tangent     []math32.Vector3
	Bitangent   []math32.Vector3
	TexCoord    []math32.Vector2
	Diffuse     []math32.Color
	Specular    []math32.Color
	AO          []float32
	WallClock   []float32 // seconds spent rendering this pixel
}

// NewAOVSet allocates an empty AOVSet; call the With* methods to enable
// individual AOVs before use.
func NewAOVSet(width, height int) *AOVSet {
	return &AOVSet{Width: width, Height: height}
}

func (a *AOVSet) index(x, y int) int {
	return y*a.Width + x
}

func (a *AOVSet) WithHit() *AOVSet       { a.Hit = make([]bool, a.Width*a.Height); return a }
func (a *AOVSet) WithDistance() *AOVSet  { a.Distance = make([]float32, a.Width*a.Height); return a }
func (a *AOVSet) WithNormal() *AOVSet    { a.Normal = make([]math32.Vector3, a.Width*a.Height); return a }
func (a *AOVSet) WithTangent() *AOVSet   { a.Tangent = make([]math32.Vector3, a.Width*a.Height); return a }
func (a *AOVSet) WithBitangent() *AOVSet { a.Bitangent = make([]math32.Vector3, a.Width*a.Height); return a }
func (a *AOVSet) WithTexCoord() *AOVSet  { a.TexCoord = make([]math32.Vector2, a.Width*a.Height); return a }
func (a *AOVSet) WithDiffuse() *AOVSet   { a.Diffuse = make([]math32.Color, a.Width*a.Height); return a }
func (a *AOVSet) WithSpecular() *AOVSet  { a.Specular = make([]math32.Color, a.Width*a.Height); return a }
func (a *AOVSet) WithAO() *AOVSet        { a.AO = make([]float32, a.Width*a.Height); return a }
func (a *AOVSet) WithWallClock() *AOVSet { a.WallClock = make([]float32, a.Width*a.Height); return a }

func (a *AOVSet) SetHit(x, y int, v bool) {
	if a.Hit != nil {
		a.Hit[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetDistance(x, y int, v float32) {
	if a.Distance != nil {
		a.Distance[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetNormal(x, y int, v math32.Vector3) {
	if a.Normal != nil {
		a.Normal[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetTangent(x, y int, v math32.Vector3) {
	if a.Tangent != nil {
		a.Tangent[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetBitangent(x, y int, v math32.Vector3) {
	if a.Bitangent != nil {
		a.Bitangent[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetTexCoord(x, y int, v math32.Vector2) {
	if a.TexCoord != nil {
		a.TexCoord[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetDiffuse(x, y int, v math32.Color) {
	if a.Diffuse != nil {
		a.Diffuse[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetSpecular(x, y int, v math32.Color) {
	if a.Specular != nil {
		a.Specular[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetAO(x, y int, v float32) {
	if a.AO != nil {
		a.AO[a.index(x, y)] = v
	}
}

func (a *AOVSet) SetWallClock(x, y int, v float32) {
	if a.WallClock != nil {
		a.WallClock[a.index(x, y)] = v
	}
}

// NormalAsColor maps a unit normal's [-1,1] components to a displayable
// [0,1] color, the conventional "normal map" visualization.
func NormalAsColor(n math32.Vector3) math32.Color {
	return math32.Color{R: n.X*0.5 + 0.5, G: n.Y*0.5 + 0.5, B: n.Z*0.5 + 0.5}
}
