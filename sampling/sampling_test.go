// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"math/rand"
	"testing"

	"github.com/dacunni/fluxrt/math32"
)

var (
	tangentX   = math32.Vector3{X: 1, Y: 0, Z: 0}
	bitangentY = math32.Vector3{X: 0, Y: 1, Z: 0}
	normalZ    = math32.Vector3{X: 0, Y: 0, Z: 1}
)

func TestConcentricDiskStaysInUnitDisk(t *testing.T) {

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x, y := ConcentricDisk(rng.Float32(), rng.Float32())
		if x*x+y*y > 1.0001 {
			t.Fatalf("ConcentricDisk produced a point outside the unit disk: (%v,%v)", x, y)
		}
	}
}

func TestCosineHemispherePDFMatchesDirection(t *testing.T) {

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		dir, pdf := CosineHemisphere(rng.Float32(), rng.Float32(), tangentX, bitangentY, normalZ)
		cosTheta := dir.Dot(&normalZ)
		want := CosineHemispherePDF(cosTheta)
		if math32.Abs(pdf-want) > 1e-4 {
			t.Fatalf("CosineHemisphere pdf %v does not match CosineHemispherePDF(%v) = %v", pdf, cosTheta, want)
		}
		if cosTheta < -1e-4 {
			t.Fatalf("CosineHemisphere produced a direction below the hemisphere: cosTheta=%v", cosTheta)
		}
	}
}

func TestUniformHemisphereStaysAboveSurface(t *testing.T) {

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		dir, pdf := UniformHemisphere(rng.Float32(), rng.Float32(), tangentX, bitangentY, normalZ)
		if dir.Dot(&normalZ) < -1e-4 {
			t.Fatalf("UniformHemisphere produced a direction below the hemisphere: %v", dir)
		}
		if math32.Abs(pdf-UniformHemispherePDF()) > 1e-6 {
			t.Fatalf("UniformHemisphere pdf %v != UniformHemispherePDF() %v", pdf, UniformHemispherePDF())
		}
	}
}

// TestUniformHemisphereConvergesToCosineIntegral checks
// that importance-sampling the known identity integral(cosTheta dOmega) = pi
// over a hemisphere with a uniform-hemisphere sampler converges to pi.
func TestUniformHemisphereConvergesToCosineIntegral(t *testing.T) {

	rng := rand.New(rand.NewSource(4))
	const n = 200000
	var sum float32
	for i := 0; i < n; i++ {
		dir, pdf := UniformHemisphere(rng.Float32(), rng.Float32(), tangentX, bitangentY, normalZ)
		cosTheta := math32.Max(0, dir.Dot(&normalZ))
		sum += cosTheta / pdf
	}
	estimate := sum / float32(n)
	want := float32(math32.Pi)
	if math32.Abs(estimate-want)/want > 0.05 {
		t.Fatalf("Monte Carlo estimate of integral(cosTheta dOmega) via uniform hemisphere sampling = %v, want close to pi (%v)", estimate, want)
	}
}

// TestCosineHemisphereConvergesToHemisphereSolidAngle checks the known
// identity integral(1 dOmega) = 2*pi over a hemisphere, estimated by
// importance sampling with the cosine-weighted pdf.
func TestCosineHemisphereConvergesToHemisphereSolidAngle(t *testing.T) {

	rng := rand.New(rand.NewSource(5))
	const n = 200000
	var sum float32
	for i := 0; i < n; i++ {
		_, pdf := CosineHemisphere(rng.Float32(), rng.Float32(), tangentX, bitangentY, normalZ)
		if pdf <= 0 {
			continue
		}
		sum += 1 / pdf
	}
	estimate := sum / float32(n)
	want := float32(2 * math32.Pi)
	if math32.Abs(estimate-want)/want > 0.1 {
		t.Fatalf("Monte Carlo estimate of the hemisphere's solid angle via cosine sampling = %v, want close to 2*pi (%v)", estimate, want)
	}
}

func TestPhongConcentratesAroundReflectionAtHighExponent(t *testing.T) {

	rng := rand.New(rand.NewSource(6))
	reflectDir := normalZ
	const n = 2000
	var meanCos float32
	for i := 0; i < n; i++ {
		dir, _ := Phong(rng.Float32(), rng.Float32(), 200, tangentX, bitangentY, reflectDir)
		meanCos += dir.Dot(&reflectDir)
	}
	meanCos /= n
	if meanCos < 0.9 {
		t.Fatalf("Phong lobe with a high exponent strayed far from the reflection direction: mean cos = %v, want > 0.9", meanCos)
	}
}

func TestPhongPDFZeroBehindReflection(t *testing.T) {

	if pdf := PhongPDF(-0.1, 10); pdf != 0 {
		t.Fatalf("PhongPDF with a negative cosAlpha = %v, want 0", pdf)
	}
}

func TestPhongPDFMatchesDrawnDirection(t *testing.T) {

	rng := rand.New(rand.NewSource(7))
	reflectDir := normalZ
	for i := 0; i < 500; i++ {
		dir, pdf := Phong(rng.Float32(), rng.Float32(), 20, tangentX, bitangentY, reflectDir)
		cosAlpha := dir.Dot(&reflectDir)
		want := PhongPDF(cosAlpha, 20)
		if math32.Abs(pdf-want) > 1e-3 {
			t.Fatalf("Phong pdf %v does not match PhongPDF(%v, 20) = %v", pdf, cosAlpha, want)
		}
	}
}
