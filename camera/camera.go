// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera implements the renderer's two ray-generating cameras,
// Pinhole (with optional thin-lens depth of field) and Orthographic. Both
// satisfy the Camera interface, which takes normalized image-plane
// coordinates plus a lens sample and returns a world-space Ray.
package camera

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

// Camera generates primary rays for the renderer.
type Camera interface {
	// GenerateRay returns the ray for normalized image-plane coordinates
	// (ndcX, ndcY), each in [-1, 1] (0,0 is image center), and a lens
	// sample (lensU, lensV) in [0,1) used by cameras that model a finite
	// aperture. Cameras without depth of field ignore the lens sample.
	GenerateRay(ndcX, ndcY, lensU, lensV float32) core.Ray
}

// basis is the shared look-direction frame every camera builds from a
// position, a look-at target, and a world-up hint.
type basis struct {
	position           math32.Vector3
	forward, right, up math32.Vector3
}

func newBasis(position, lookAt, worldUp math32.Vector3) basis {

	forward := lookAt
	forward.Sub(&position)
	forward.NormalizeOrKeep()

	right := forward
	right.Cross(&worldUp)
	right.NormalizeOrKeep()

	up := right
	up.Cross(&forward)
	up.NormalizeOrKeep()

	return basis{position: position, forward: forward, right: right, up: up}
}
