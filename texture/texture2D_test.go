// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"testing"

	"github.com/dacunni/fluxrt/math32"
)

func checkerTexture() *Texture2D {
	return NewTexture2DFromData(2, 2, 3, WrapClamp, []float32{
		1, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 1, 1,
	})
}

func TestTexelRGBSingleChannelBroadcasts(t *testing.T) {

	tex := NewTexture2DFromData(1, 1, 1, WrapClamp, []float32{0.5})
	c := tex.TexelRGB(0, 0)
	if c != (math32.Color{R: 0.5, G: 0.5, B: 0.5}) {
		t.Fatalf("single-channel TexelRGB = %v, want broadcast 0.5 across RGB", c)
	}
}

func TestTexelRGBWrapZeroOutsideBounds(t *testing.T) {

	tex := checkerTexture()
	tex.Wrap = WrapZero
	if c := tex.TexelRGB(-1, 0); c != (math32.Color{}) {
		t.Fatalf("WrapZero out-of-bounds TexelRGB = %v, want zero", c)
	}
}

func TestTexelRGBWrapClampClampsToEdge(t *testing.T) {

	tex := checkerTexture()
	tex.Wrap = WrapClamp
	edge := tex.TexelRGB(1, 1)
	beyond := tex.TexelRGB(10, 10)
	if beyond != edge {
		t.Fatalf("WrapClamp beyond the edge = %v, want clamped edge value %v", beyond, edge)
	}
}

func TestTexelRGBWrapRepeatTiles(t *testing.T) {

	tex := checkerTexture()
	tex.Wrap = WrapRepeat
	origin := tex.TexelRGB(0, 0)
	tiled := tex.TexelRGB(2, 2) // one full period away in both axes
	if tiled != origin {
		t.Fatalf("WrapRepeat one period away = %v, want equal to origin %v", tiled, origin)
	}
}

func TestTexelAlphaUsesChannelZeroWhenNoAlphaChannel(t *testing.T) {

	tex := NewTexture2DFromData(1, 1, 3, WrapClamp, []float32{0.25, 0.5, 0.75})
	if a := tex.TexelAlpha(0, 0); a != 0.25 {
		t.Fatalf("TexelAlpha on a 3-channel texture = %v, want channel 0 (0.25)", a)
	}
}

func TestTexelAlphaUsesChannelThreeForRGBA(t *testing.T) {

	tex := NewTexture2DFromData(1, 1, 4, WrapClamp, []float32{0.25, 0.5, 0.75, 0.9})
	if a := tex.TexelAlpha(0, 0); a != 0.9 {
		t.Fatalf("TexelAlpha on an RGBA texture = %v, want channel 3 (0.9)", a)
	}
}

func TestSampleBilinearRGBAtTexelCenterMatchesTexel(t *testing.T) {

	tex := checkerTexture()
	// Pixel centers are at (x+0.5)/width per SampleBilinearRGB's convention.
	u, v := 0.25, 0.25 // texel (0,0) center
	got := tex.SampleBilinearRGB(float32(u), float32(v))
	want := tex.TexelRGB(0, 0)
	if math32.Abs(got.R-want.R) > 1e-4 {
		t.Fatalf("SampleBilinearRGB at a texel center = %v, want the texel value %v", got, want)
	}
}

func TestSampleBilinearRGBInterpolatesBetweenTexels(t *testing.T) {

	tex := NewTexture2DFromData(2, 1, 3, WrapClamp, []float32{
		0, 0, 0,
		1, 1, 1,
	})
	mid := tex.SampleBilinearRGB(0.5, 0.5)
	if mid.R < 0.1 || mid.R > 0.9 {
		t.Fatalf("SampleBilinearRGB halfway between a black and white texel = %v, want an interpolated mid-gray value", mid)
	}
}

func TestSampleBilinearDirectionMapsUnitRangeToSigned(t *testing.T) {

	tex := NewTexture2DFromData(1, 1, 3, WrapClamp, []float32{1, 0, 0.5})
	d := tex.SampleBilinearDirection(0.5, 0.5)
	if math32.Abs(d.X-1) > 1e-4 || math32.Abs(d.Y-(-1)) > 1e-4 || math32.Abs(d.Z-0) > 1e-4 {
		t.Fatalf("SampleBilinearDirection(1,0,0.5) = %v, want (1,-1,0)", d)
	}
}
