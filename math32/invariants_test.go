// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math/rand"
	"testing"
)

func TestVector3NormalizeProducesUnitLength(t *testing.T) {

	rng := rand.New(rand.NewSource(300))
	for i := 0; i < 1000; i++ {
		v := Vector3{
			X: (rng.Float32()*2 - 1) * 100,
			Y: (rng.Float32()*2 - 1) * 100,
			Z: (rng.Float32()*2 - 1) * 100,
		}
		v.Normalize()
		if l := v.Length(); Abs(l-1) > 1e-4 {
			t.Fatalf("Normalize produced length %v, want 1 (v=%v)", l, v)
		}
	}
}

func TestVector3NormalizeOrKeepLeavesZeroVectorAlone(t *testing.T) {

	v := Vector3{}
	v.NormalizeOrKeep()
	if v != (Vector3{}) {
		t.Fatalf("NormalizeOrKeep on the zero vector = %v, want unchanged zero", v)
	}
}

// TestSlabConstructionCanonicalizesRegardlessOfCornerOrder checks the
// per-axis Min/Max rule that shape.NewSlab applies to its two corners.
// math32 cannot import shape, so the rule is applied here directly rather
// than through NewSlab.
func TestSlabConstructionCanonicalizesRegardlessOfCornerOrder(t *testing.T) {

	a := Vector3{X: 1, Y: -2, Z: 5}
	b := Vector3{X: -3, Y: 4, Z: 0}

	sAB := struct{ Min, Max Vector3 }{
		Min: Vector3{X: Min(a.X, b.X), Y: Min(a.Y, b.Y), Z: Min(a.Z, b.Z)},
		Max: Vector3{X: Max(a.X, b.X), Y: Max(a.Y, b.Y), Z: Max(a.Z, b.Z)},
	}

	if sAB.Min.X > sAB.Max.X || sAB.Min.Y > sAB.Max.Y || sAB.Min.Z > sAB.Max.Z {
		t.Fatalf("canonicalized slab has Min > Max: %+v", sAB)
	}
}

func TestTransformPositionRoundTripsThroughInverse(t *testing.T) {

	rng := rand.New(rand.NewSource(301))
	for i := 0; i < 200; i++ {
		var m Matrix4
		m.MakeTranslation(
			(rng.Float32()*2-1)*10,
			(rng.Float32()*2-1)*10,
			(rng.Float32()*2-1)*10,
		)
		var scale Matrix4
		scale.MakeScale(1+rng.Float32(), 1+rng.Float32(), 1+rng.Float32())
		m.Multiply(&scale)

		transform := NewTransform(&m)
		p := Vector3{X: rng.Float32() * 5, Y: rng.Float32() * 5, Z: rng.Float32() * 5}

		forward := transform.TransformPosition(p)
		back := transform.TransformPositionReverse(forward)

		if Abs(back.X-p.X) > 1e-3 || Abs(back.Y-p.Y) > 1e-3 || Abs(back.Z-p.Z) > 1e-3 {
			t.Fatalf("round trip through Transform/inverse: got %v, want %v", back, p)
		}
	}
}

func TestTransformInverseSwapsForwardAndReverse(t *testing.T) {

	var m Matrix4
	m.MakeTranslation(1, 2, 3)
	transform := NewTransform(&m)
	inv := transform.Inverse()

	if inv.Forward != transform.Reverse || inv.Reverse != transform.Forward {
		t.Fatal("Transform.Inverse() should simply swap Forward and Reverse")
	}
}

func TestIdentityTransformIsANoOp(t *testing.T) {

	identity := IdentityTransform()
	p := Vector3{X: 3, Y: -5, Z: 7}
	got := identity.TransformPosition(p)
	if Abs(got.X-p.X) > 1e-5 || Abs(got.Y-p.Y) > 1e-5 || Abs(got.Z-p.Z) > 1e-5 {
		t.Fatalf("IdentityTransform().TransformPosition(%v) = %v, want unchanged", p, got)
	}
}
