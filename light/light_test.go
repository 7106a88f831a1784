// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package light

import (
	"math/rand"
	"testing"

	"github.com/dacunni/fluxrt/math32"
)

func TestPointRadianceAtInverseSquare(t *testing.T) {

	p := NewPoint(math32.Vector3{}, math32.Color{R: 4, G: 4, B: 4})

	r1 := p.RadianceAt(1)
	r2 := p.RadianceAt(2)

	if math32.Abs(r1.R/r2.R-4) > 1e-4 {
		t.Fatalf("RadianceAt(1)/RadianceAt(2) = %v, want 4 (inverse square law)", r1.R/r2.R)
	}
}

func TestPointRadianceAtZeroDistanceIsZero(t *testing.T) {

	p := NewPoint(math32.Vector3{}, math32.Color{R: 1, G: 1, B: 1})
	if got := p.RadianceAt(0); got != (math32.Color{}) {
		t.Fatalf("RadianceAt(0) = %v, want zero (avoid dividing by zero)", got)
	}
}

func TestNewDiskNormalizesNormal(t *testing.T) {

	d := NewDisk(math32.Vector3{}, math32.Vector3{X: 0, Y: 3, Z: 0}, 1, math32.Color{})
	if l := d.Normal.Length(); math32.Abs(l-1) > 1e-5 {
		t.Fatalf("Disk.Normal length = %v, want 1 after construction", l)
	}
}

func TestDiskAreaMatchesRadius(t *testing.T) {

	d := NewDisk(math32.Vector3{}, math32.Vector3{X: 0, Y: 1, Z: 0}, 2, math32.Color{})
	want := float32(math32.Pi * 4)
	if math32.Abs(d.Area()-want) > 1e-4 {
		t.Fatalf("Disk.Area() = %v, want %v", d.Area(), want)
	}
}

func TestDiskSamplePointStaysWithinRadiusAndPlane(t *testing.T) {

	center := math32.Vector3{X: 1, Y: 2, Z: 3}
	normal := math32.Vector3{X: 0, Y: 1, Z: 0}
	d := NewDisk(center, normal, 2.5, math32.Color{})

	rng := rand.New(rand.NewSource(500))
	for i := 0; i < 5000; i++ {
		p, pdfArea := d.SamplePoint(rng.Float32(), rng.Float32())

		offset := p
		offset.Sub(&center)
		distFromCenter := offset.Length()
		if distFromCenter > d.Radius+1e-3 {
			t.Fatalf("sample %d: point %v is %v from center, want <= radius %v", i, p, distFromCenter, d.Radius)
		}

		distFromPlane := offset.Dot(&normal)
		if math32.Abs(distFromPlane) > 1e-3 {
			t.Fatalf("sample %d: point %v is %v off the disk's plane, want 0", i, p, distFromPlane)
		}

		wantPdf := 1 / d.Area()
		if math32.Abs(pdfArea-wantPdf) > 1e-5 {
			t.Fatalf("sample %d: pdfArea = %v, want constant %v", i, pdfArea, wantPdf)
		}
	}
}

// TestDiskSamplePointIsUniformOverArea checks that SamplePoint's draws are
// spread roughly evenly between the inner and outer halves of the disk's
// area (each half has equal area, so each should receive close to half the
// samples), a basic area-uniformity sanity check beyond "stays in bounds".
func TestDiskSamplePointIsUniformOverArea(t *testing.T) {

	d := NewDisk(math32.Vector3{}, math32.Vector3{X: 0, Y: 1, Z: 0}, 1, math32.Color{})
	rng := rand.New(rand.NewSource(501))

	// The radius splitting the disk into two equal-area rings is 1/sqrt(2).
	splitRadius := float32(1) / math32.Sqrt(2)

	const n = 20000
	inner := 0
	for i := 0; i < n; i++ {
		p, _ := d.SamplePoint(rng.Float32(), rng.Float32())
		if p.Length() < splitRadius {
			inner++
		}
	}
	fraction := float32(inner) / float32(n)
	if math32.Abs(fraction-0.5) > 0.03 {
		t.Fatalf("fraction of samples in the inner half-area ring = %v, want close to 0.5", fraction)
	}
}
