// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math/rand"

	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/material"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/sampling"
	"github.com/dacunni/fluxrt/scene"
)

// Config holds the path tracer's depth and termination parameters.
type Config struct {
	// MaxDepth caps the number of bounces regardless of Russian roulette;
	// 0 means only direct camera-ray hits (and their emission) are seen.
	MaxDepth int
	// RussianRouletteStartDepth is the bounce depth at which Russian
	// roulette termination begins; bounces before it always continue.
	RussianRouletteStartDepth int
	// RussianRouletteChance is the fixed per-bounce termination
	// probability applied from RussianRouletteStartDepth on (the
	// trace_scene -rr flag). Surviving paths are compensated by dividing
	// by (1 - RussianRouletteChance) to keep the estimator unbiased.
	RussianRouletteChance float32
	// ForceBothBranches disables the Fresnel-weighted stochastic choice
	// between the specular/refractive branch and the diffuse branch (and,
	// for refractive materials, between reflection and refraction): both
	// are traced and summed, each weighted by its own probability rather
	// than by Russian-roulette selection (trace_scene
	// -nomontecarlorefraction).
	ForceBothBranches bool
	// DisableCosineSampling replaces cosine-weighted hemisphere sampling
	// of the diffuse bounce with uniform hemisphere sampling
	// (trace_scene -nosamplecosine).
	DisableCosineSampling bool
	// DisableSpecularSampling replaces Phong-lobe importance sampling of
	// glossy reflections with a single sample straight down the mirror
	// direction (trace_scene -nosamplespecular).
	DisableSpecularSampling bool
}

// DefaultConfig returns the renderer's default path tracer parameters.
func DefaultConfig() Config {
	return Config{MaxDepth: 8, RussianRouletteStartDepth: 3, RussianRouletteChance: 0.1}
}

// TraceRay is the path tracer's entry point: it returns the estimated
// radiance arriving back along ray, for a primary ray against scene scn,
// using rng for every Monte Carlo decision. A camera ray has not yet had any
// light next-event-estimated against it, so both emission and the
// environment map are accumulated on the first hit.
func TraceRay(cfg Config, scn *scene.Scene, ray core.Ray, rng *rand.Rand) math32.Color {

	return traceRay(cfg, scn, ray, rng, 0, core.NewMediumStack(), true, true)
}

// traceRay estimates the radiance arriving back along ray. accumEmission and
// accumEnvMap say whether, on a miss or on a surface hit, the environment
// map or that surface's emission should be added: they are false exactly
// when the previous hit's directLighting call already next-event-estimated
// that light class, so this bounce's implicit discovery of the same light
// isn't double-counted.
func traceRay(cfg Config, scn *scene.Scene, ray core.Ray, rng *rand.Rand, depth int, media core.MediumStack, accumEmission, accumEnvMap bool) math32.Color {

	if depth > cfg.MaxDepth {
		return math32.Color{}
	}

	// Russian roulette termination: checked before doing any intersection
	// or shading work, with a fixed probability past the start depth.
	if depth >= cfg.RussianRouletteStartDepth && rng.Float32() < cfg.RussianRouletteChance {
		return math32.Color{}
	}

	ri, hit := scn.FindIntersection(ray, 1e-4)
	if !hit {
		if accumEnvMap {
			return scn.Environment.SampleRay(ray.Direction)
		}
		return math32.Color{}
	}

	mat := scn.MaterialAt(ri.MaterialID)

	// Alpha transparency: with probability (1-alpha) the ray passes
	// through the surface entirely unaffected, as if it wasn't there. No
	// new shading event happened, so the accumulation flags carry through
	// unchanged.
	alpha := scn.EvaluateAlpha(mat.Alpha, ri)
	if alpha < 1 && rng.Float32() > alpha {
		passThrough := core.NewRay(ri.Position, ray.Direction)
		radiance := traceRay(cfg, scn, passThrough, rng, depth, media, accumEmission, accumEnvMap)
		return media.Attenuate(radiance, ri.Distance)
	}

	ri.FaceForward()
	normal, tangent, bitangent := mat.PerturbFrame(ri.TexCoord.X, ri.TexCoord.Y, ri.Normal, ri.Tangent, ri.Bitangent)
	ri.Normal, ri.Tangent, ri.Bitangent = normal, tangent, bitangent

	wo := negatedDir(ray.Direction)
	cosI := normal.Dot(&wo)

	direct := directLighting(scn, ri, wo, mat, rng)

	// directLighting just next-event-estimated every point/disk light and,
	// when the environment supports it, the environment map too: suppress
	// re-accumulating emission and/or the environment map on the bounce
	// that follows, or the same light gets counted twice.
	nextAccumEmission := false
	nextAccumEnvMap := !scn.Environment.CanImportanceSample()

	// Choose between the reflective/refractive branch and the diffuse
	// branch by the Fresnel (or Schlick-approximated) reflectance,
	// Russian-roulette style: the branch not taken is compensated for by
	// dividing its sibling's weight by the probability it was taken.
	reflectProb := fresnelWeight(mat, cosI, media.Top().IOR)

	var indirect math32.Color
	if cfg.ForceBothBranches {
		specular := traceSpecularBranch(cfg, scn, ray, rng, depth, media, mat, ri, normal, tangent, bitangent, wo, nextAccumEmission, nextAccumEnvMap)
		diffuse := traceDiffuseBranch(cfg, scn, rng, depth, media, mat, ri, normal, tangent, bitangent, nextAccumEmission, nextAccumEnvMap)
		indirect = specular.Scaled(reflectProb).Added(diffuse.Scaled(1 - reflectProb))
	} else if rng.Float32() < reflectProb {
		indirect = traceSpecularBranch(cfg, scn, ray, rng, depth, media, mat, ri, normal, tangent, bitangent, wo, nextAccumEmission, nextAccumEnvMap).Scaled(1 / reflectProb)
	} else {
		indirect = traceDiffuseBranch(cfg, scn, rng, depth, media, mat, ri, normal, tangent, bitangent, nextAccumEmission, nextAccumEnvMap).Scaled(1 / (1 - reflectProb))
	}

	// Attenuation along the medium traversed applies to light that
	// originated beyond this surface (direct and indirect); emission
	// originates at the surface itself and is added after, unattenuated.
	result := media.Attenuate(direct.Added(indirect), ri.Distance)
	if accumEmission {
		result = result.Added(mat.Emission)
	}

	if depth >= cfg.RussianRouletteStartDepth {
		result = result.Scaled(1 / (1 - cfg.RussianRouletteChance))
	}

	return result
}

func negatedDir(d math32.Vector3) math32.Vector3 {
	n := d
	n.MultiplyScalar(-1)
	return n
}

// traceSpecularBranch handles the reflective/refractive lobe: a perfect
// mirror or glossy Phong reflection for opaque materials, or a Fresnel
// dielectric reflect-or-refract decision for refractive ones (the choice to
// take this branch at all was already made upstream by the Fresnel weight).
func traceSpecularBranch(cfg Config, scn *scene.Scene, ray core.Ray, rng *rand.Rand, depth int, media core.MediumStack,
	mat material.Material, ri core.RayIntersection, normal, tangent, bitangent, wo math32.Vector3, accumEmission, accumEnvMap bool) math32.Color {

	if mat.IsRefractive {
		return traceRefraction(cfg, scn, rng, depth, media, mat, ri, normal, accumEmission, accumEnvMap)
	}

	reflectDir := core.Reflect(negatedDir(wo), normal)

	dir := reflectDir
	pdf := float32(1)
	if !mat.IsMirror() && !cfg.DisableSpecularSampling {
		dir, pdf = sampling.Phong(rng.Float32(), rng.Float32(), mat.SpecularExponent, tangent, bitangent, reflectDir)
	}

	cosOut := normal.Dot(&dir)
	if cosOut <= 0 || pdf <= 0 {
		return math32.Color{}
	}

	newRay := core.NewRay(ri.Position, dir)
	incoming := traceRay(cfg, scn, newRay, rng, depth+1, media, accumEmission, accumEnvMap)

	specular := scn.Evaluate(mat.Specular, ri)
	if mat.IsMirror() {
		return incoming.Times(specular)
	}
	cosAlpha := dir.Dot(&reflectDir)
	brdf := specularBRDF(specular, mat.SpecularExponent, cosAlpha)
	return incoming.Times(brdf).Scaled(cosOut / pdf)
}

func traceDiffuseBranch(cfg Config, scn *scene.Scene, rng *rand.Rand, depth int, media core.MediumStack,
	mat material.Material, ri core.RayIntersection, normal, tangent, bitangent math32.Vector3, accumEmission, accumEnvMap bool) math32.Color {

	var dir math32.Vector3
	var pdf float32
	if cfg.DisableCosineSampling {
		dir, pdf = sampling.UniformHemisphere(rng.Float32(), rng.Float32(), tangent, bitangent, normal)
	} else {
		dir, pdf = sampling.CosineHemisphere(rng.Float32(), rng.Float32(), tangent, bitangent, normal)
	}
	if pdf <= 0 {
		return math32.Color{}
	}

	newRay := core.NewRay(ri.Position, dir)
	incoming := traceRay(cfg, scn, newRay, rng, depth+1, media, accumEmission, accumEnvMap)

	diffuse := scn.Evaluate(mat.Diffuse, ri)
	brdf := diffuseBRDF(diffuse)
	cosOut := math32.Max(0, normal.Dot(&dir))
	return incoming.Times(brdf).Scaled(cosOut / pdf)
}

// traceRefraction resolves a dielectric hit: push or pop the medium stack
// to match whether the ray is entering or leaving mat's inner medium, then
// reflect off the boundary with the Fresnel reflectance's probability and
// refract through it otherwise (always reflecting on total internal
// reflection).
func traceRefraction(cfg Config, scn *scene.Scene, rng *rand.Rand, depth int, media core.MediumStack,
	mat material.Material, ri core.RayIntersection, normal math32.Vector3, accumEmission, accumEnvMap bool) math32.Color {

	var nextMedia core.MediumStack
	if media.IsLeaving() {
		nextMedia = media.Popped()
	} else {
		inner := core.Medium{IOR: mat.Inner.IOR, Attenuation: mat.Inner.Attenuation}
		if inner.IOR <= 0 {
			inner.IOR = 1.5
		}
		nextMedia = media.Pushed(inner)
	}

	eta := media.Top().IOR / nextMedia.Top().IOR
	refractDir, ok := core.Refract(ri.Ray.Direction, normal, eta)
	reflectDir := core.Reflect(ri.Ray.Direction, normal)

	if !ok {
		// Total internal reflection: must reflect, regardless of the
		// branch choice upstream, and the ray stays in its current medium.
		newRay := core.NewRay(ri.Position, reflectDir)
		return traceRay(cfg, scn, newRay, rng, depth+1, media, accumEmission, accumEnvMap)
	}

	fresnel := fresnelWeight(mat, math32.Abs(normal.Dot(&ri.Ray.Direction)), media.Top().IOR)
	if cfg.ForceBothBranches {
		reflectRay := core.NewRay(ri.Position, reflectDir)
		refractRay := core.NewRay(ri.Position, refractDir)
		reflected := traceRay(cfg, scn, reflectRay, rng, depth+1, media, accumEmission, accumEnvMap)
		refracted := traceRay(cfg, scn, refractRay, rng, depth+1, nextMedia, accumEmission, accumEnvMap)
		return reflected.Scaled(fresnel).Added(refracted.Scaled(1 - fresnel))
	}

	if rng.Float32() < fresnel {
		// Reflection stays in the current medium.
		newRay := core.NewRay(ri.Position, reflectDir)
		return traceRay(cfg, scn, newRay, rng, depth+1, media, accumEmission, accumEnvMap)
	}

	newRay := core.NewRay(ri.Position, refractDir)
	return traceRay(cfg, scn, newRay, rng, depth+1, nextMedia, accumEmission, accumEnvMap)
}
