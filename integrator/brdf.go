// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the renderer's Monte Carlo path tracer:
// the recursive shading loop (traceRay), the direct-light estimators it
// calls at each bounce, and the ambient occlusion integrator used for the
// AO AOV.
package integrator

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/material"
	"github.com/dacunni/fluxrt/math32"
)

// diffuseBRDF evaluates the Lambertian BRDF value (constant over the
// hemisphere): diffuseColor / pi.
func diffuseBRDF(diffuseColor math32.Color) math32.Color {
	return diffuseColor.Scaled(1 / math32.Pi)
}

// specularBRDF evaluates the (unnormalized-energy-correct) Phong specular
// BRDF given the angle between the sampled direction wi and the ideal
// mirror reflection direction of wo about normal.
func specularBRDF(specularColor math32.Color, exponent, cosAlpha float32) math32.Color {

	if cosAlpha <= 0 {
		return math32.Color{}
	}
	norm := (exponent + 2) / (2 * math32.Pi)
	return specularColor.Scaled(norm * math32.Pow(cosAlpha, exponent))
}

// fresnelWeight returns the probability of taking the specular/reflective
// branch at a shading point: for refractive materials this is the true
// dielectric Fresnel reflectance; for opaque materials it is the Schlick
// approximation evaluated against the material's specular color, averaged
// to a scalar lobe-selection probability.
func fresnelWeight(mat material.Material, cosI float32, mediumIOR float32) float32 {

	if mat.IsRefractive {
		innerIOR := mat.Inner.IOR
		if innerIOR <= 0 {
			innerIOR = 1.5
		}
		return core.FresnelDielectric(cosI, mediumIOR, innerIOR)
	}
	f0 := mat.Specular.Constant
	schlick := core.SchlickApprox(f0, cosI)
	return math32.Clamp(schlick.Average(), 0.02, 0.98)
}
