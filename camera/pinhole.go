// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/sampling"
)

// Pinhole is a perspective camera: rays fan out from a single point (the
// eye) through an image plane one unit in front of it, scaled by the
// tangent of the half field of view. Setting FocusDistance > 0 and
// LensRadius > 0 turns it into a thin-lens camera: the image plane moves
// out to FocusDistance and the ray origin is jittered over a disk of
// LensRadius, producing depth-of-field blur for points away from the focal
// plane.
type Pinhole struct {
	basis

	// halfTanH, halfTanV are tan(hfov/2), tan(vfov/2), precomputed so
	// GenerateRay is a handful of multiplies.
	halfTanH, halfTanV float32

	FocusDistance float32 // 0 disables depth of field
	LensRadius    float32
}

// NewPinhole builds a Pinhole camera at position, looking toward lookAt,
// with worldUp as the up-direction hint, a horizontal field of view hfovDeg
// in degrees, and an image aspect ratio (width/height).
func NewPinhole(position, lookAt, worldUp math32.Vector3, hfovDeg, aspect float32) *Pinhole {

	halfH := math32.Tan(hfovDeg * math32.Pi / 180 / 2)
	halfV := halfH / aspect

	return &Pinhole{
		basis:    newBasis(position, lookAt, worldUp),
		halfTanH: halfH,
		halfTanV: halfV,
	}
}

// WithDepthOfField sets the focus distance and lens radius for a thin-lens
// camera and returns the receiver for chaining.
func (c *Pinhole) WithDepthOfField(focusDistance, lensRadius float32) *Pinhole {
	c.FocusDistance = focusDistance
	c.LensRadius = lensRadius
	return c
}

func (c *Pinhole) GenerateRay(ndcX, ndcY, lensU, lensV float32) core.Ray {

	dir := c.forward
	rightScaled := c.right
	rightScaled.MultiplyScalar(ndcX * c.halfTanH)
	upScaled := c.up
	upScaled.MultiplyScalar(ndcY * c.halfTanV)
	dir.Add(&rightScaled)
	dir.Add(&upScaled)
	dir.NormalizeOrKeep()

	if c.LensRadius <= 0 || c.FocusDistance <= 0 {
		return core.NewRay(c.position, dir)
	}

	// Thin lens: find where the sharp ray would hit the focal plane, then
	// jitter the origin over the lens disk and re-aim through that point.
	focalPoint := dir
	focalPoint.MultiplyScalar(c.FocusDistance)
	focalPoint.Add(&c.position)

	lx, ly := sampling.ConcentricDisk(lensU, lensV)
	lx *= c.LensRadius
	ly *= c.LensRadius

	origin := c.position
	rOff := c.right
	rOff.MultiplyScalar(lx)
	uOff := c.up
	uOff.MultiplyScalar(ly)
	origin.Add(&rOff)
	origin.Add(&uOff)

	newDir := focalPoint
	newDir.Sub(&origin)
	return core.NewRay(origin, newDir)
}
