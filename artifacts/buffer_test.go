// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifacts

import (
	"math/rand"
	"testing"

	"github.com/dacunni/fluxrt/math32"
)

func TestBufferMeanConvergesToTrueMean(t *testing.T) {

	b := NewBuffer(1, 1)
	rng := rand.New(rand.NewSource(1))

	const trueMean = 0.5
	const n = 50000
	for i := 0; i < n; i++ {
		sample := trueMean + (rng.Float32()-0.5)
		b.AddSample(0, 0, math32.Color{R: sample, G: sample, B: sample})
	}

	mean := b.Mean(0, 0)
	if math32.Abs(mean.R-trueMean) > 0.02 {
		t.Fatalf("buffer mean after %d samples = %v, want close to %v", n, mean.R, trueMean)
	}
	if b.SampleCount(0, 0) != n {
		t.Fatalf("SampleCount = %d, want %d", b.SampleCount(0, 0), n)
	}
}

func TestBufferVarianceOfConstantSamplesIsZero(t *testing.T) {

	b := NewBuffer(1, 1)
	for i := 0; i < 10; i++ {
		b.AddSample(0, 0, math32.Color{R: 1, G: 1, B: 1})
	}
	v := b.Variance(0, 0)
	if v.R != 0 || v.G != 0 || v.B != 0 {
		t.Fatalf("variance of identical samples = %v, want zero", v)
	}
}

func TestBufferVarianceBeforeTwoSamplesIsZero(t *testing.T) {

	b := NewBuffer(1, 1)
	if v := b.Variance(0, 0); v != (math32.Color{}) {
		t.Fatalf("variance with zero samples = %v, want zero", v)
	}
	b.AddSample(0, 0, math32.Color{R: 5})
	if v := b.Variance(0, 0); v != (math32.Color{}) {
		t.Fatalf("variance with one sample = %v, want zero", v)
	}
}

func TestBufferStandardErrorInfiniteUntilEveryPixelHasTwoSamples(t *testing.T) {

	b := NewBuffer(2, 1)
	b.AddSample(0, 0, math32.Color{R: 1})
	b.AddSample(0, 0, math32.Color{R: 1})
	if se := b.StandardError(); se != math32.Infinity {
		t.Fatalf("StandardError with an unsampled pixel = %v, want +Inf", se)
	}

	b.AddSample(1, 0, math32.Color{R: 1})
	b.AddSample(1, 0, math32.Color{R: 1})
	if se := b.StandardError(); se == math32.Infinity {
		t.Fatal("StandardError once every pixel has >=2 samples should be finite")
	}
}

func TestBufferStandardErrorShrinksWithMoreSamples(t *testing.T) {

	rng := rand.New(rand.NewSource(2))
	sampleNoisy := func(n int) float32 {
		b := NewBuffer(1, 1)
		for i := 0; i < n; i++ {
			v := rng.Float32()
			b.AddSample(0, 0, math32.Color{R: v, G: v, B: v})
		}
		return b.StandardError()
	}

	se10 := sampleNoisy(10)
	se1000 := sampleNoisy(1000)
	if se1000 >= se10 {
		t.Fatalf("standard error with 1000 samples (%v) should be smaller than with 10 (%v)", se1000, se10)
	}
}

func TestAOVSetFieldsNilUntilEnabled(t *testing.T) {

	a := NewAOVSet(4, 4)
	if a.Hit != nil || a.Normal != nil || a.AO != nil {
		t.Fatal("AOVSet fields should start nil before any With* call")
	}

	a.WithHit().WithAO()
	if a.Hit == nil || a.AO == nil {
		t.Fatal("WithHit/WithAO should allocate their backing slices")
	}
	if a.Normal != nil {
		t.Fatal("WithHit/WithAO should not allocate unrelated AOVs")
	}

	a.SetHit(1, 2, true)
	if !a.Hit[a.index(1, 2)] {
		t.Fatal("SetHit did not record the value at the expected index")
	}

	// Setting a disabled AOV must be a silent no-op, not a panic.
	a.SetNormal(1, 2, math32.Vector3{X: 1})
}

func TestToneMapClampsToUnitRangeAndPreservesOrdering(t *testing.T) {

	dim := ToneMap(math32.Color{R: 0.1, G: 0.1, B: 0.1})
	bright := ToneMap(math32.Color{R: 100, G: 100, B: 100})

	for _, c := range []math32.Color{dim, bright} {
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Fatalf("ToneMap produced an out-of-range channel: %v", c)
		}
	}
	if bright.R <= dim.R {
		t.Fatalf("a brighter input should tone-map to a brighter (or equal, once saturated) output: dim=%v bright=%v", dim.R, bright.R)
	}
}

func TestToneMapZeroIsZero(t *testing.T) {

	c := ToneMap(math32.Color{})
	if c != (math32.Color{}) {
		t.Fatalf("ToneMap(black) = %v, want black", c)
	}
}

func TestToneMapNegativeClampsToZero(t *testing.T) {

	c := ToneMap(math32.Color{R: -1, G: -1, B: -1})
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("ToneMap of a negative radiance = %v, want clamped to zero", c)
	}
}
