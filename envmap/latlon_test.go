// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envmap

import (
	"math/rand"
	"testing"

	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/texture"
)

// brightSpotTexture builds a small equirectangular texture that is mostly
// dim with one bright rectangular patch, so an importance sampler should
// concentrate most of its draws there.
func brightSpotTexture(w, h int) *texture.Texture2D {

	data := make([]float32, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float32(0.01)
			if x >= w/4 && x < w/4+w/8 && y >= h/3 && y < h/3+h/8 {
				v = 10.0
			}
			base := (y*w + x) * 3
			data[base], data[base+1], data[base+2] = v, v, v
		}
	}
	return texture.NewTexture2DFromData(w, h, 3, texture.WrapClamp, data)
}

func TestLatLonCanImportanceSample(t *testing.T) {

	flat := texture.NewTexture2D(8, 4, 3, texture.WrapClamp)
	env := NewLatLon(flat)
	if env.CanImportanceSample() {
		t.Fatal("an all-zero environment should report no importance sampling support")
	}

	bright := NewLatLon(brightSpotTexture(64, 32))
	if !bright.CanImportanceSample() {
		t.Fatal("an environment with nonzero luminance should support importance sampling")
	}
}

// TestImportanceSampleDirectionConcentratesOnBrightRegion checks that the
// CDF-based sampler draws directions from the texture's bright patch far
// more often than chance would predict from its pixel-area fraction alone,
// the basic sanity check that importance sampling is actually weighting by
// luminance rather than sampling uniformly.
func TestImportanceSampleDirectionConcentratesOnBrightRegion(t *testing.T) {

	const w, h = 64, 32
	env := NewLatLon(brightSpotTexture(w, h))
	rng := rand.New(rand.NewSource(42))

	const n = 20000
	inBrightPatch := 0
	for i := 0; i < n; i++ {
		dir, radiance, pdf := env.ImportanceSampleDirection(rng.Float32(), rng.Float32())
		if pdf <= 0 {
			t.Fatalf("sample %d: pdf = %v, want > 0 for a luminous environment", i, pdf)
		}
		if radiance.Luminance() <= 0 {
			t.Fatalf("sample %d: sampled radiance %v has no luminance", i, radiance)
		}
		if dir.Length() < 0.99 || dir.Length() > 1.01 {
			t.Fatalf("sample %d: direction %v is not unit length", i, dir)
		}

		u, v := uvFromDirection(dir)
		x, y := int(u*w), int(v*h)
		if x >= w/4 && x < w/4+w/8 && y >= h/3 && y < h/3+h/8 {
			inBrightPatch++
		}
	}

	// The bright patch covers 1/64 of the texture's pixel area but carries
	// essentially all of its luminance, so importance sampling should land
	// there the overwhelming majority of the time.
	fraction := float32(inBrightPatch) / float32(n)
	if fraction < 0.9 {
		t.Fatalf("only %v of samples landed in the bright patch, want > 0.9 (importance sampling should concentrate there)", fraction)
	}
}

// TestImportanceSampleDirectionPDFIsUnbiasedEstimatorOfLuminance checks the
// defining property of the CDF construction: the Monte Carlo estimator
// radiance/pdf, averaged over many draws, converges to the environment's
// mean radiance (the zeroth moment), confirming the pdf truly reports the
// sampling density used to draw each direction.
func TestImportanceSampleDirectionPDFIsUnbiasedEstimatorOfLuminance(t *testing.T) {

	const w, h = 32, 16
	env := NewLatLon(brightSpotTexture(w, h))
	rng := rand.New(rand.NewSource(43))

	const n = 100000
	var sum float32
	for i := 0; i < n; i++ {
		_, radiance, pdf := env.ImportanceSampleDirection(rng.Float32(), rng.Float32())
		if pdf <= 0 {
			continue
		}
		sum += radiance.Luminance() / pdf
	}
	// The mean of radiance/pdf estimates the integral of radiance over the
	// full sphere's solid angle (4*pi); divided by 4*pi it is the mean
	// radiance.
	estimate := sum / float32(n) / (4 * math32.Pi)

	// Approximate the mean-radiance reference by
	// brute-force averaging over the same texture's texels, solid-angle
	// weighted the same way buildCDF does.
	var refSum, weightSum float32
	for y := 0; y < h; y++ {
		theta := (float32(y) + 0.5) / float32(h) * math32.Pi
		sinTheta := math32.Sin(theta)
		for x := 0; x < w; x++ {
			lum := env.Tex.TexelRGB(x, y).Luminance()
			refSum += lum * sinTheta
			weightSum += sinTheta
		}
	}
	reference := refSum / weightSum

	if math32.Abs(estimate-reference)/reference > 0.1 {
		t.Fatalf("importance-sampled mean radiance estimate = %v, want close to texel-average reference %v", estimate, reference)
	}
}

func TestDirectionUVRoundTrip(t *testing.T) {

	rng := rand.New(rand.NewSource(44))
	for i := 0; i < 1000; i++ {
		u := rng.Float32()
		v := 0.02 + rng.Float32()*0.96 // avoid the poles where phi is undefined
		dir := directionFromUV(u, v)
		gotU, gotV := uvFromDirection(dir)
		if math32.Abs(gotU-u) > 1e-3 || math32.Abs(gotV-v) > 1e-3 {
			t.Fatalf("uvFromDirection(directionFromUV(%v,%v)) = (%v,%v), want round-trip", u, v, gotU, gotV)
		}
	}
}

func TestFindInCDF(t *testing.T) {

	cdf := []float32{0, 0.25, 0.5, 0.75, 1.0}

	cases := []struct {
		u         float32
		wantIndex int
	}{
		{0.0, 0},
		{0.1, 0},
		{0.26, 1},
		{0.5, 2},
		{0.99, 3},
	}
	for _, c := range cases {
		idx, frac := findInCDF(cdf, c.u)
		if idx != c.wantIndex {
			t.Errorf("findInCDF(%v, %v) index = %d, want %d", cdf, c.u, idx, c.wantIndex)
		}
		if frac < 0 || frac > 1 {
			t.Errorf("findInCDF(%v, %v) frac = %v, want in [0,1]", cdf, c.u, frac)
		}
	}
}
