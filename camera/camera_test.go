// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/dacunni/fluxrt/math32"
)

func assertUnit(t *testing.T, name string, v math32.Vector3) {
	t.Helper()
	if l := v.Length(); math32.Abs(l-1) > 1e-4 {
		t.Fatalf("%s has length %v, want 1", name, l)
	}
}

func TestNewBasisIsOrthonormal(t *testing.T) {

	b := newBasis(
		math32.Vector3{X: 1, Y: 2, Z: 3},
		math32.Vector3{X: 5, Y: 2, Z: -1},
		math32.Vector3{X: 0, Y: 1, Z: 0},
	)

	assertUnit(t, "forward", b.forward)
	assertUnit(t, "right", b.right)
	assertUnit(t, "up", b.up)

	if d := b.forward.Dot(&b.right); math32.Abs(d) > 1e-4 {
		t.Fatalf("forward.right = %v, want 0", d)
	}
	if d := b.forward.Dot(&b.up); math32.Abs(d) > 1e-4 {
		t.Fatalf("forward.up = %v, want 0", d)
	}
	if d := b.right.Dot(&b.up); math32.Abs(d) > 1e-4 {
		t.Fatalf("right.up = %v, want 0", d)
	}
}

func TestPinholeCenterRayPointsForward(t *testing.T) {

	position := math32.Vector3{X: 0, Y: 0, Z: 0}
	lookAt := math32.Vector3{X: 0, Y: 0, Z: -1}
	up := math32.Vector3{X: 0, Y: 1, Z: 0}
	cam := NewPinhole(position, lookAt, up, 60, 1.0)

	ray := cam.GenerateRay(0, 0, 0, 0)
	dir := ray.Direction
	dir.NormalizeOrKeep()

	if math32.Abs(dir.X) > 1e-4 || math32.Abs(dir.Y) > 1e-4 || (dir.Z+1) > 1e-4 {
		t.Fatalf("center-of-image ray direction = %v, want ~(0,0,-1)", dir)
	}
}

func TestPinholeEdgeRaysDivergeFromCenter(t *testing.T) {

	cam := NewPinhole(
		math32.Vector3{X: 0, Y: 0, Z: 0},
		math32.Vector3{X: 0, Y: 0, Z: -1},
		math32.Vector3{X: 0, Y: 1, Z: 0},
		90, 1.0,
	)

	center := cam.GenerateRay(0, 0, 0, 0)
	right := cam.GenerateRay(1, 0, 0, 0)
	if right.Direction.X <= center.Direction.X {
		t.Fatalf("a ray toward ndcX=1 should aim further in +X than the center ray: center=%v right=%v", center.Direction, right.Direction)
	}
}

func TestPinholeDepthOfFieldJittersOrigin(t *testing.T) {

	cam := NewPinhole(
		math32.Vector3{X: 0, Y: 0, Z: 0},
		math32.Vector3{X: 0, Y: 0, Z: -1},
		math32.Vector3{X: 0, Y: 1, Z: 0},
		60, 1.0,
	).WithDepthOfField(5, 0.5)

	a := cam.GenerateRay(0, 0, 0, 0)
	b := cam.GenerateRay(0, 0, 1, 0)

	if a.Origin == b.Origin {
		t.Fatal("distinct lens samples produced the same ray origin; depth of field is not jittering")
	}
	// The re-aimed ray must still carry a usable (nonzero) direction.
	focalA := a.Direction
	focalA.NormalizeOrKeep()
	if focalA.Dot(&focalA) <= 0 {
		t.Fatal("degenerate direction from depth-of-field ray")
	}
}

func TestPinholeNoDepthOfFieldIgnoresLensSample(t *testing.T) {

	cam := NewPinhole(
		math32.Vector3{X: 0, Y: 0, Z: 0},
		math32.Vector3{X: 0, Y: 0, Z: -1},
		math32.Vector3{X: 0, Y: 1, Z: 0},
		60, 1.0,
	)

	a := cam.GenerateRay(0.2, 0.3, 0, 0)
	b := cam.GenerateRay(0.2, 0.3, 0.9, 0.9)
	if a.Origin != b.Origin || a.Direction != b.Direction {
		t.Fatalf("without depth of field, lens samples should be ignored: %v != %v", a, b)
	}
}

func TestOrthographicRaysAreParallel(t *testing.T) {

	cam := NewOrthographic(
		math32.Vector3{X: 0, Y: 0, Z: 0},
		math32.Vector3{X: 0, Y: 0, Z: -1},
		math32.Vector3{X: 0, Y: 1, Z: 0},
		2.0, 1.0,
	)

	a := cam.GenerateRay(-1, -1, 0, 0)
	b := cam.GenerateRay(1, 1, 0, 0)

	if a.Direction != b.Direction {
		t.Fatalf("orthographic rays should share a direction: %v != %v", a.Direction, b.Direction)
	}
	if a.Origin == b.Origin {
		t.Fatal("orthographic rays at different NDC coordinates should have different origins")
	}
}
