// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package light

import "github.com/dacunni/fluxrt/math32"

// Disk is a flat, circular area light: emissive uniformly over its disk
// from both sides of its plane's normal is not assumed — emission is
// one-sided, along Normal.
type Disk struct {
	Center   math32.Vector3
	Normal   math32.Vector3
	Radius   float32
	Emission math32.Color
}

// NewDisk builds a Disk light, normalizing Normal.
func NewDisk(center, normal math32.Vector3, radius float32, emission math32.Color) *Disk {

	normal.NormalizeOrKeep()
	return &Disk{Center: center, Normal: normal, Radius: radius, Emission: emission}
}

// Area returns the disk's surface area.
func (d *Disk) Area() float32 {
	return math32.Pi * d.Radius * d.Radius
}

// SamplePoint draws a uniformly-distributed point on the disk from two
// uniform random numbers in [0,1), returning the point and the constant pdf
// with respect to area (1/Area).
func (d *Disk) SamplePoint(x, y float32) (p math32.Vector3, pdfArea float32) {

	// Concentric disk mapping, scaled by radius, then placed in the plane
	// spanned by an arbitrary tangent frame around Normal.
	ox := 2*x - 1
	oy := 2*y - 1
	var r, theta float32
	if ox == 0 && oy == 0 {
		r, theta = 0, 0
	} else if math32.Abs(ox) > math32.Abs(oy) {
		r = ox
		theta = (math32.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math32.Pi / 2) - (math32.Pi/4)*(ox/oy)
	}

	tangent, bitangent := math32.BuildOrthonormalBasis(d.Normal)
	dx := r * math32.Cos(theta) * d.Radius
	dy := r * math32.Sin(theta) * d.Radius

	t := tangent
	t.MultiplyScalar(dx)
	b := bitangent
	b.MultiplyScalar(dy)

	p = d.Center
	p.Add(&t)
	p.Add(&b)

	return p, 1 / d.Area()
}
