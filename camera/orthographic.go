// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
)

// Orthographic is a parallel-projection camera: every ray shares the same
// direction (the camera's forward axis) and differs only in origin, offset
// across the image plane by HSize (the half-width of the visible region,
// in scene units) and the image aspect ratio.
type Orthographic struct {
	basis
	halfWidth, halfHeight float32
}

// NewOrthographic builds an Orthographic camera at position, looking
// toward lookAt, with worldUp as the up-direction hint, a half-width hsize
// in scene units, and an image aspect ratio (width/height).
func NewOrthographic(position, lookAt, worldUp math32.Vector3, hsize, aspect float32) *Orthographic {

	return &Orthographic{
		basis:      newBasis(position, lookAt, worldUp),
		halfWidth:  hsize,
		halfHeight: hsize / aspect,
	}
}

func (c *Orthographic) GenerateRay(ndcX, ndcY, lensU, lensV float32) core.Ray {

	origin := c.position
	rightScaled := c.right
	rightScaled.MultiplyScalar(ndcX * c.halfWidth)
	upScaled := c.up
	upScaled.MultiplyScalar(ndcY * c.halfHeight)
	origin.Add(&rightScaled)
	origin.Add(&upScaled)

	return core.NewRay(origin, c.forward)
}
