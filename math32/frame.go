// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// BuildOrthonormalBasis builds a right-handed orthonormal frame (tangent,
// bitangent) around the unit vector n, using the Hughes-Möller method: pick
// whichever of the X or Y axis has the larger component magnitude relative
// to n to avoid cancellation when n is nearly parallel to the chosen axis.
func BuildOrthonormalBasis(n Vector3) (tangent, bitangent Vector3) {

	var a Vector3
	if Abs(n.X) > Abs(n.Y) {
		invLen := 1 / Sqrt(n.X*n.X+n.Z*n.Z)
		a = Vector3{-n.Z * invLen, 0, n.X * invLen}
	} else {
		invLen := 1 / Sqrt(n.Y*n.Y+n.Z*n.Z)
		a = Vector3{0, n.Z * invLen, -n.Y * invLen}
	}
	tangent = a
	bitangent.CrossVectors(&n, &tangent)
	return tangent, bitangent
}

// NormalizeOrKeep normalizes v in place and returns it, unless v has zero
// (or near-zero) magnitude, in which case v is left unchanged. This is the
// renderer-wide policy for degenerate vectors (e.g. a zero interpolated
// normal) rather than producing NaNs from a divide by zero.
func (v *Vector3) NormalizeOrKeep() *Vector3 {

	lenSq := v.LengthSq()
	if lenSq < 1e-20 {
		return v
	}
	return v.MultiplyScalar(1 / Sqrt(lenSq))
}
