// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/dacunni/fluxrt/math32"

// Reflect returns the mirror reflection of incident direction i about unit
// normal n (n and the reflected direction point away from the surface).
func Reflect(i, n math32.Vector3) math32.Vector3 {

	out := i
	tmp := n
	tmp.MultiplyScalar(2 * i.Dot(&n))
	out.Sub(&tmp)
	return out
}

// Refract computes the refracted direction of incident direction i (unit,
// pointing toward the surface) through a boundary with unit normal n
// (pointing against i, toward the side i comes from) and relative index of
// refraction eta = iorFrom/iorTo. Returns the zero vector and ok=false on
// total internal reflection.
func Refract(i, n math32.Vector3, eta float32) (t math32.Vector3, ok bool) {

	cosI := -i.Dot(&n)
	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return math32.Vector3{}, false
	}
	cosT := math32.Sqrt(1 - sin2T)

	a := i
	a.MultiplyScalar(eta)
	b := n
	b.MultiplyScalar(eta*cosI - cosT)
	a.Add(&b)
	a.NormalizeOrKeep()
	return a, true
}

// FresnelDielectric computes the unpolarized Fresnel reflectance at a
// dielectric boundary given the cosine of the incident angle and the two
// media's indices of refraction.
func FresnelDielectric(cosI, iorFrom, iorTo float32) float32 {

	cosI = math32.Clamp(cosI, -1, 1)
	etaI, etaT := iorFrom, iorTo
	if cosI < 0 {
		etaI, etaT = etaT, etaI
		cosI = -cosI
	}

	sinT := etaI / etaT * math32.Sqrt(math32.Max(0, 1-cosI*cosI))
	if sinT >= 1 {
		return 1 // total internal reflection
	}
	cosT := math32.Sqrt(math32.Max(0, 1-sinT*sinT))

	rParl := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	rPerp := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)
	return (rParl*rParl + rPerp*rPerp) / 2
}

// SchlickApprox is the Schlick approximation to FresnelDielectric given the
// normal-incidence reflectance f0 and the cosine of the incident angle.
func SchlickApprox(f0 math32.Color, cosI float32) math32.Color {

	m := math32.Clamp(1-cosI, 0, 1)
	m2 := m * m
	weight := m2 * m2 * m // (1-cosI)^5

	one := math32.Color{R: 1, G: 1, B: 1}
	diff := one.Added(f0.Scaled(-1))
	return f0.Added(diff.Scaled(weight))
}

// Barycentric returns the barycentric coordinates (u,v,w) of point p with
// respect to triangle (a,b,c), such that p = u*a + v*b + w*c.
func Barycentric(p, a, b, c math32.Vector3) (u, v, w float32) {

	v0 := b
	v0.Sub(&a)
	v1 := c
	v1.Sub(&a)
	v2 := p
	v2.Sub(&a)

	d00 := v0.Dot(&v0)
	d01 := v0.Dot(&v1)
	d11 := v1.Dot(&v1)
	d20 := v2.Dot(&v0)
	d21 := v2.Dot(&v1)
	denom := d00*d11 - d01*d01

	vv := (d11*d20 - d01*d21) / denom
	ww := (d00*d21 - d01*d20) / denom
	uu := 1 - vv - ww
	return uu, vv, ww
}

// InterpolateVec3 linearly blends three vectors by barycentric weights (u,v,w).
func InterpolateVec3(u, v, w float32, a, b, c math32.Vector3) math32.Vector3 {

	out := a
	out.MultiplyScalar(u)
	tb := b
	tb.MultiplyScalar(v)
	out.Add(&tb)
	tc := c
	tc.MultiplyScalar(w)
	out.Add(&tc)
	return out
}

// InterpolateVec2 linearly blends three 2-vectors by barycentric weights (u,v,w).
func InterpolateVec2(u, v, w float32, a, b, c math32.Vector2) math32.Vector2 {

	return math32.Vector2{
		X: u*a.X + v*b.X + w*c.X,
		Y: u*a.Y + v*b.Y + w*c.Y,
	}
}
