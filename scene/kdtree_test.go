// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math/rand"
	"testing"

	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/shape"
)

func randomTraceables(rng *rand.Rand, n int) []Traceable {

	objects := make([]Traceable, 0, n)
	for i := 0; i < n; i++ {
		center := math32.Vector3{
			X: (rng.Float32()*2 - 1) * 15,
			Y: (rng.Float32()*2 - 1) * 15,
			Z: (rng.Float32()*2 - 1) * 15,
		}
		radius := 0.3 + rng.Float32()*0.7
		sphere := shape.NewSphere(math32.Vector3{}, radius, i)

		var m math32.Matrix4
		m.MakeTranslation(center.X, center.Y, center.Z)
		objects = append(objects, NewTraceable(sphere, math32.NewTransform(&m)))
	}
	return objects
}

func bruteForceFindIntersection(objects []Traceable, ray core.Ray, minDist float32) (core.RayIntersection, int, bool) {

	best := core.RayIntersection{}
	bestIdx := -1
	found := false
	for i, o := range objects {
		if ri, ok := o.FindIntersection(ray, minDist); ok {
			if !found || ri.Distance < best.Distance {
				best, bestIdx, found = ri, i, true
			}
		}
	}
	return best, bestIdx, found
}

func bruteForceIntersects(objects []Traceable, ray core.Ray, minDist, maxDist float32) bool {

	for _, o := range objects {
		if o.Intersects(ray, minDist, maxDist) {
			return true
		}
	}
	return false
}

func TestTreeMatchesBruteForceFindIntersection(t *testing.T) {

	rng := rand.New(rand.NewSource(200))
	objects := randomTraceables(rng, 250)
	tree := BuildTree(objects)

	const numRays = 2000
	hits := 0
	for i := 0; i < numRays; i++ {
		origin := math32.Vector3{
			X: (rng.Float32()*2 - 1) * 20,
			Y: (rng.Float32()*2 - 1) * 20,
			Z: (rng.Float32()*2 - 1) * 20,
		}
		dir := math32.Vector3{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1, Z: rng.Float32()*2 - 1}
		dir.Normalize()
		ray := core.NewRay(origin, dir)

		bruteRI, bruteIdx, bruteHit := bruteForceFindIntersection(objects, ray, 1e-4)
		treeRI, treeIdx, treeHit := tree.FindIntersection(ray, 1e-4)

		if bruteHit != treeHit {
			t.Fatalf("ray %d: brute-force hit=%v, tree hit=%v", i, bruteHit, treeHit)
		}
		if !bruteHit {
			continue
		}
		hits++
		if math32.Abs(bruteRI.Distance-treeRI.Distance) > 1e-3 {
			t.Fatalf("ray %d: brute-force distance=%v (obj %d), tree distance=%v (obj %d)",
				i, bruteRI.Distance, bruteIdx, treeRI.Distance, treeIdx)
		}
	}
	if hits == 0 {
		t.Fatal("no rays hit anything; adjust the test scene/ray distribution")
	}
}

func TestTreeMatchesBruteForceIntersects(t *testing.T) {

	rng := rand.New(rand.NewSource(201))
	objects := randomTraceables(rng, 250)
	tree := BuildTree(objects)

	const numRays = 2000
	for i := 0; i < numRays; i++ {
		origin := math32.Vector3{
			X: (rng.Float32()*2 - 1) * 20,
			Y: (rng.Float32()*2 - 1) * 20,
			Z: (rng.Float32()*2 - 1) * 20,
		}
		dir := math32.Vector3{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1, Z: rng.Float32()*2 - 1}
		dir.Normalize()
		ray := core.NewRay(origin, dir)

		bruteHit := bruteForceIntersects(objects, ray, 1e-4, 1000)
		treeHit := tree.Intersects(ray, 1e-4, 1000)
		if bruteHit != treeHit {
			t.Fatalf("ray %d: brute-force Intersects=%v, tree Intersects=%v", i, bruteHit, treeHit)
		}
	}
}
