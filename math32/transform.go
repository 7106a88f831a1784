// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Transform is a 3x4 affine transform represented as a forward/reverse pair
// of 4x4 matrices (the bottom row is always [0 0 0 1] and never stored
// explicitly). Reverse is maintained as the algebraic inverse of Forward.
//
// Positions transform by Forward (implicit w=1, translation applies);
// Directions transform by the linear part of Forward (implicit w=0, no
// translation); normals transform by the transpose of Reverse's linear
// part, which is the correct map for vectors under non-uniform scale.
type Transform struct {
	Forward Matrix4
	Reverse Matrix4
}

// NewTransform builds a Transform from a forward matrix, computing its
// inverse. Panics if forward is singular, matching the teacher's own
// GetInverse contract (callers of affine scene transforms are expected to
// supply well-formed matrices).
func NewTransform(forward *Matrix4) Transform {

	var t Transform
	t.Forward = *forward
	if err := t.Reverse.GetInverse(forward); err != nil {
		panic("math32: Transform: " + err.Error())
	}
	return t
}

// IdentityTransform returns the identity affine transform.
func IdentityTransform() Transform {

	var t Transform
	t.Forward.Identity()
	t.Reverse.Identity()
	return t
}

// Compose returns the transform equivalent to applying t first, then other:
// forward matrices multiply left to right (other.Forward * t.Forward, in
// the sense that a point is first mapped by t then by other); the reverse
// matrices multiply in the opposite order.
func (t Transform) Compose(other Transform) Transform {

	var out Transform
	out.Forward.MultiplyMatrices(&other.Forward, &t.Forward)
	out.Reverse.MultiplyMatrices(&t.Reverse, &other.Reverse)
	return out
}

// Inverse returns the transform with forward and reverse swapped.
func (t Transform) Inverse() Transform {

	return Transform{Forward: t.Reverse, Reverse: t.Forward}
}

// TransformPosition maps a point p by the forward matrix (translation applies).
func (t Transform) TransformPosition(p Vector3) Vector3 {

	out := p
	out.ApplyMatrix4(&t.Forward)
	return out
}

// TransformPositionReverse maps a point p by the reverse matrix.
func (t Transform) TransformPositionReverse(p Vector3) Vector3 {

	out := p
	out.ApplyMatrix4(&t.Reverse)
	return out
}

// TransformDirection maps a direction d by the forward matrix's linear part
// only (no translation) and re-normalizes.
func (t Transform) TransformDirection(d Vector3) Vector3 {

	return *transformLinear(d, &t.Forward).NormalizeOrKeep()
}

// TransformDirectionReverse maps a direction d by the reverse matrix's
// linear part only and re-normalizes.
func (t Transform) TransformDirectionReverse(d Vector3) Vector3 {

	return *transformLinear(d, &t.Reverse).NormalizeOrKeep()
}

// TransformNormal maps a normal n by (Reverse)^T, the correct map for
// covectors under a possibly non-uniformly-scaled transform, and re-normalizes.
func (t Transform) TransformNormal(n Vector3) Vector3 {

	m := t.Reverse
	out := Vector3{
		X: m[0]*n.X + m[1]*n.Y + m[2]*n.Z,
		Y: m[4]*n.X + m[5]*n.Y + m[6]*n.Z,
		Z: m[8]*n.X + m[9]*n.Y + m[10]*n.Z,
	}
	return *out.NormalizeOrKeep()
}

func transformLinear(v Vector3, m *Matrix4) *Vector3 {

	out := &Vector3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
	return out
}
