// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envmap

import (
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/texture"
)

// LatLon is an environment map backed by a latitude/longitude (equirectangular)
// texture: u maps to azimuth over [0, 2pi), v maps to polar angle over
// [0, pi] measured from +Y. A 2-D CDF over the texture's luminance, weighted
// by solid-angle density (sin(theta)), supports importance sampling.
type LatLon struct {
	Tex *texture.Texture2D

	marginalCDF   []float32 // length height+1, CDF over rows
	conditionalCDF [][]float32 // [row][width+1], CDF over columns within a row
	totalLuminance float32
}

// NewLatLon builds a LatLon environment and its importance-sampling CDFs
// from tex's luminance, weighted by row solid angle.
func NewLatLon(tex *texture.Texture2D) *LatLon {

	l := &LatLon{Tex: tex}
	l.buildCDF()
	return l
}

func (l *LatLon) buildCDF() {

	h, w := l.Tex.Height, l.Tex.Width
	rowWeights := make([]float32, h)
	l.conditionalCDF = make([][]float32, h)

	for y := 0; y < h; y++ {
		theta := (float32(y) + 0.5) / float32(h) * math32.Pi
		sinTheta := math32.Sin(theta)

		cdf := make([]float32, w+1)
		var rowSum float32
		for x := 0; x < w; x++ {
			lum := l.Tex.TexelRGB(x, y).Luminance() * sinTheta
			rowSum += lum
			cdf[x+1] = rowSum
		}
		if rowSum > 0 {
			for x := range cdf {
				cdf[x] /= rowSum
			}
		}
		l.conditionalCDF[y] = cdf
		rowWeights[y] = rowSum
	}

	marginal := make([]float32, h+1)
	var total float32
	for y := 0; y < h; y++ {
		total += rowWeights[y]
		marginal[y+1] = total
	}
	if total > 0 {
		for y := range marginal {
			marginal[y] /= total
		}
	}
	l.marginalCDF = marginal
	l.totalLuminance = total
}

// directionFromUV converts equirectangular (u,v) in [0,1) to a world direction.
func directionFromUV(u, v float32) math32.Vector3 {

	phi := u * 2 * math32.Pi
	theta := v * math32.Pi
	sinTheta := math32.Sin(theta)
	return math32.Vector3{
		X: sinTheta * math32.Cos(phi),
		Y: math32.Cos(theta),
		Z: sinTheta * math32.Sin(phi),
	}
}

// uvFromDirection converts a unit world direction to equirectangular (u,v).
func uvFromDirection(d math32.Vector3) (u, v float32) {

	theta := math32.Acos(math32.Clamp(d.Y, -1, 1))
	phi := math32.Atan2(d.Z, d.X)
	if phi < 0 {
		phi += 2 * math32.Pi
	}
	return phi / (2 * math32.Pi), theta / math32.Pi
}

func (l *LatLon) SampleRay(d math32.Vector3) math32.Color {

	u, v := uvFromDirection(d)
	return l.Tex.SampleBilinearRGB(u, v)
}

func (l *LatLon) CanImportanceSample() bool {
	return l.totalLuminance > 0
}

// findInCDF returns the largest index i such that cdf[i] <= u, and the
// fractional position of u within [cdf[i], cdf[i+1]).
func findInCDF(cdf []float32, u float32) (index int, frac float32) {

	lo, hi := 0, len(cdf)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if cdf[mid] <= u {
			lo = mid
		} else {
			hi = mid
		}
	}
	span := cdf[lo+1] - cdf[lo]
	if span <= 0 {
		return lo, 0
	}
	return lo, (u - cdf[lo]) / span
}

func (l *LatLon) ImportanceSampleDirection(u1, u2 float32) (math32.Vector3, math32.Color, float32) {

	if !l.CanImportanceSample() {
		return math32.Vector3{}, math32.Color{}, 0
	}

	h := len(l.marginalCDF) - 1
	row, rowFrac := findInCDF(l.marginalCDF, u1)
	v := (float32(row) + rowFrac) / float32(h)

	cond := l.conditionalCDF[row]
	w := len(cond) - 1
	col, colFrac := findInCDF(cond, u2)
	u := (float32(col) + colFrac) / float32(w)

	dir := directionFromUV(u, v)
	radiance := l.Tex.SampleBilinearRGB(u, v)

	rowPdf := l.marginalCDF[row+1] - l.marginalCDF[row]
	colPdf := cond[col+1] - cond[col]
	pdfUV := rowPdf * colPdf * float32(h) * float32(w)

	theta := v * math32.Pi
	sinTheta := math32.Sin(theta)
	if sinTheta <= 1e-6 {
		return dir, radiance, 0
	}
	// Jacobian from the unit (u,v) square to solid angle: dOmega = sinTheta * dTheta * dPhi,
	// with dTheta = pi*dv and dPhi = 2*pi*du.
	pdfSolidAngle := pdfUV / (2 * math32.Pi * math32.Pi * sinTheta)
	return dir, radiance, pdfSolidAngle
}
