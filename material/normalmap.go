// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "github.com/dacunni/fluxrt/math32"

// PerturbFrame applies a normal map sample (already pre-scaled from [0,1]
// to [-1,1] on load) to a surface frame (normal, tangent, bitangent),
// building the perturbed normal as N*map.z + T*map.x + B*map.y, then
// restoring an orthonormal right-handed frame from it.
func (m *Material) PerturbFrame(u, v float32, normal, tangent, bitangent math32.Vector3) (math32.Vector3, math32.Vector3, math32.Vector3) {

	if m.NormalMap == nil {
		return normal, tangent, bitangent
	}
	mapDir := m.NormalMap.SampleBilinearDirection(u, v)

	n := tangent.Clone().MultiplyScalar(mapDir.X)
	n.Add(bitangent.Clone().MultiplyScalar(mapDir.Y))
	n.Add(normal.Clone().MultiplyScalar(mapDir.Z))
	n.NormalizeOrKeep()

	newTangent := bitangent.Clone().Cross(n)
	newTangent.NormalizeOrKeep()
	newBitangent := n.Clone().Cross(newTangent)
	newBitangent.NormalizeOrKeep()

	return *n, *newTangent, *newBitangent
}
