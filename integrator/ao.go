// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math/rand"

	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/sampling"
	"github.com/dacunni/fluxrt/scene"
)

// AOConfig holds ambient occlusion's sample count and occlusion test range.
type AOConfig struct {
	Samples int
	MaxDist float32
	// Cosine selects cosine-weighted hemisphere sampling (trace_scene
	// -aocosine, the default); false falls back to uniform hemisphere
	// sampling, matching the original's --aocosine toggle.
	Cosine bool
}

// DefaultAOConfig returns the renderer's default ambient occlusion parameters.
func DefaultAOConfig() AOConfig {
	return AOConfig{Samples: 16, MaxDist: 10, Cosine: true}
}

// AmbientOcclusion estimates the ambient occlusion AOV at a camera ray's
// first hit: the fraction of hemisphere rays from the hit point (cosine-
// weighted when cfg.Cosine is set, uniform otherwise) that travel MaxDist
// without hitting anything, 1 meaning
// fully unoccluded and 0 meaning fully occluded. Returns ok=false when the
// ray doesn't hit any geometry at all (there is no surface to shade).
func AmbientOcclusion(cfg AOConfig, scn *scene.Scene, ray core.Ray, rng *rand.Rand) (ao float32, ok bool) {

	ri, hit := scn.FindIntersection(ray, 1e-4)
	if !hit {
		return 0, false
	}
	ri.FaceForward()

	if cfg.Samples <= 0 {
		return 1, true
	}

	var unoccluded int
	for i := 0; i < cfg.Samples; i++ {
		var dir math32.Vector3
		if cfg.Cosine {
			dir, _ = sampling.CosineHemisphere(rng.Float32(), rng.Float32(), ri.Tangent, ri.Bitangent, ri.Normal)
		} else {
			dir, _ = sampling.UniformHemisphere(rng.Float32(), rng.Float32(), ri.Tangent, ri.Bitangent, ri.Normal)
		}
		testRay := core.Ray{Origin: ri.Position, Direction: dir}
		if !scn.Intersects(testRay, shadowEpsilon, cfg.MaxDist) {
			unoccluded++
		}
	}

	return float32(unoccluded) / float32(cfg.Samples), true
}
