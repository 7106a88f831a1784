// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package artifacts holds the renderer's output accumulation: a running
// mean/variance buffer per pixel, the auxiliary output variables (AOVs)
// alongside it, tone mapping, and image encoding.
package artifacts

import "github.com/dacunni/fluxrt/math32"

// pixelStat is Welford's online algorithm state for one pixel's running
// mean and variance of accumulated radiance samples.
type pixelStat struct {
	mean  math32.Color
	m2    math32.Color // sum of squared deviations from the running mean
	count int
}

func (s *pixelStat) add(sample math32.Color) {

	s.count++
	n := float32(s.count)
	delta := sample.Added(s.mean.Scaled(-1))
	s.mean = s.mean.Added(delta.Scaled(1 / n))
	delta2 := sample.Added(s.mean.Scaled(-1))
	s.m2 = s.m2.Added(delta.Times(delta2))
}

// variance returns the sample variance (zero for n<2).
func (s *pixelStat) variance() math32.Color {
	if s.count < 2 {
		return math32.Color{}
	}
	return s.m2.Scaled(1 / float32(s.count-1))
}

// Buffer accumulates per-pixel radiance samples for one render, tracking a
// running mean and variance so the render driver can stop early once every
// pixel's standard error falls below a threshold.
type Buffer struct {
	Width, Height int
	pixels        []pixelStat
}

// NewBuffer allocates an empty Buffer for an image of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, pixels: make([]pixelStat, width*height)}
}

func (b *Buffer) index(x, y int) int {
	return y*b.Width + x
}

// AddSample folds one more radiance sample into pixel (x,y).
func (b *Buffer) AddSample(x, y int, sample math32.Color) {
	b.pixels[b.index(x, y)].add(sample)
}

// Mean returns the running mean radiance at pixel (x,y).
func (b *Buffer) Mean(x, y int) math32.Color {
	return b.pixels[b.index(x, y)].mean
}

// Variance returns the running sample variance at pixel (x,y).
func (b *Buffer) Variance(x, y int) math32.Color {
	return b.pixels[b.index(x, y)].variance()
}

// SampleCount returns how many samples pixel (x,y) has accumulated.
func (b *Buffer) SampleCount(x, y int) int {
	return b.pixels[b.index(x, y)].count
}

// StandardError returns the buffer-wide worst-case standard error of the
// mean (max over pixels and channels of sqrt(variance/n)), used by the
// render driver's adaptive-sampling stop condition.
func (b *Buffer) StandardError() float32 {

	var worst float32
	for i := range b.pixels {
		p := &b.pixels[i]
		if p.count < 2 {
			return math32.Infinity
		}
		v := p.variance()
		se := math32.Sqrt(math32.Max(v.R, math32.Max(v.G, v.B)) / float32(p.count))
		if se > worst {
			worst = se
		}
	}
	return worst
}
