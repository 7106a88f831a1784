// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math/rand"

	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/light"
	"github.com/dacunni/fluxrt/material"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/scene"
)

// shadowEpsilon offsets shadow-ray origins and shortens their max distance
// to avoid self-intersection ("shadow acne") at the shading point and at
// the light itself.
const shadowEpsilon = 1e-3

// occluded reports whether the scene blocks the segment from p toward a
// point at distance dist along dir.
func occluded(scn *scene.Scene, p, dir math32.Vector3, dist float32) bool {

	ray := core.Ray{Origin: p, Direction: dir}
	return scn.Intersects(ray, shadowEpsilon, dist-shadowEpsilon)
}

// directLighting estimates the single-scatter direct lighting contribution
// at a shading point with outgoing direction wo (pointing away from the
// surface, toward the ray origin), summing next-event estimates from every
// point light, every disk light, and (if present) an importance-sampleable
// environment map.
func directLighting(scn *scene.Scene, ri core.RayIntersection, wo math32.Vector3, mat material.Material, rng *rand.Rand) math32.Color {

	var sum math32.Color

	for i := range scn.PointLights {
		sum = sum.Added(directFromPoint(scn, ri, wo, mat, &scn.PointLights[i]))
	}
	for i := range scn.DiskLights {
		sum = sum.Added(directFromDisk(scn, ri, wo, mat, &scn.DiskLights[i], rng))
	}
	if scn.Environment != nil && scn.Environment.CanImportanceSample() {
		sum = sum.Added(directFromEnvironment(scn, ri, wo, mat, rng))
	}

	return sum
}

func brdfValue(mat material.Material, diffuseColor, specularColor math32.Color, normal, wi, wo math32.Vector3) math32.Color {

	value := diffuseBRDF(diffuseColor)
	if mat.SpecularExponent > 0.01 {
		reflectDir := core.Reflect(negated(wo), normal)
		cosAlpha := wi.Dot(&reflectDir)
		value = value.Added(specularBRDF(specularColor, mat.SpecularExponent, cosAlpha))
	}
	return value
}

func negated(v math32.Vector3) math32.Vector3 {
	n := v
	n.MultiplyScalar(-1)
	return n
}

func directFromPoint(scn *scene.Scene, ri core.RayIntersection, wo math32.Vector3, mat material.Material, l *light.Point) math32.Color {

	toLight := l.Position
	toLight.Sub(&ri.Position)
	dist := toLight.Length()
	if dist <= 0 {
		return math32.Color{}
	}
	wi := toLight
	wi.MultiplyScalar(1 / dist)

	cosTheta := ri.Normal.Dot(&wi)
	if cosTheta <= 0 {
		return math32.Color{}
	}
	if occluded(scn, ri.Position, wi, dist) {
		return math32.Color{}
	}

	diffuse := scn.Evaluate(mat.Diffuse, ri)
	specular := scn.Evaluate(mat.Specular, ri)
	brdf := brdfValue(mat, diffuse, specular, ri.Normal, wi, wo)

	radiance := l.RadianceAt(dist)
	return radiance.Times(brdf).Scaled(cosTheta)
}

func directFromDisk(scn *scene.Scene, ri core.RayIntersection, wo math32.Vector3, mat material.Material, l *light.Disk, rng *rand.Rand) math32.Color {

	p, pdfArea := l.SamplePoint(rng.Float32(), rng.Float32())

	toLight := p
	toLight.Sub(&ri.Position)
	dist := toLight.Length()
	if dist <= 1e-6 {
		return math32.Color{}
	}
	wi := toLight
	wi.MultiplyScalar(1 / dist)

	cosTheta := ri.Normal.Dot(&wi)
	if cosTheta <= 0 {
		return math32.Color{}
	}
	// cosine at the light's surface, facing back toward the shading point.
	negWi := negated(wi)
	cosLight := l.Normal.Dot(&negWi)
	if cosLight <= 0 {
		return math32.Color{}
	}
	if occluded(scn, ri.Position, wi, dist) {
		return math32.Color{}
	}

	// Convert the disk's area-measure pdf to solid angle: pdf_omega =
	// pdf_area * dist^2 / cosLight.
	pdfSolidAngle := pdfArea * dist * dist / cosLight
	if pdfSolidAngle <= 0 {
		return math32.Color{}
	}

	diffuse := scn.Evaluate(mat.Diffuse, ri)
	specular := scn.Evaluate(mat.Specular, ri)
	brdf := brdfValue(mat, diffuse, specular, ri.Normal, wi, wo)

	return l.Emission.Times(brdf).Scaled(cosTheta / pdfSolidAngle)
}

func directFromEnvironment(scn *scene.Scene, ri core.RayIntersection, wo math32.Vector3, mat material.Material, rng *rand.Rand) math32.Color {

	dir, radiance, pdf := scn.Environment.ImportanceSampleDirection(rng.Float32(), rng.Float32())
	if pdf <= 0 {
		return math32.Color{}
	}

	cosTheta := ri.Normal.Dot(&dir)
	if cosTheta <= 0 {
		return math32.Color{}
	}
	if occluded(scn, ri.Position, dir, math32.Infinity) {
		return math32.Color{}
	}

	diffuse := scn.Evaluate(mat.Diffuse, ri)
	specular := scn.Evaluate(mat.Specular, ri)
	brdf := brdfValue(mat, diffuse, specular, ri.Normal, dir, wo)

	return radiance.Times(brdf).Scaled(cosTheta / pdf)
}
