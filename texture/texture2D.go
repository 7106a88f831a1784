// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture holds the renderer's float-sampled image type. Decoding
// image files (PNG/HDR/etc.) into a Texture is an external collaborator's
// job (spec §1); this package only stores and samples already-decoded
// float data.
package texture

import (
	"fmt"

	"github.com/dacunni/fluxrt/math32"
)

// Wrap describes how a Texture handles out-of-[0,1) coordinates.
type Wrap int

const (
	// WrapZero returns zero for any out-of-bounds sample.
	WrapZero Wrap = iota
	// WrapClamp clamps the coordinate to the texture edge.
	WrapClamp
	// WrapRepeat tiles the coordinate modulo 1.
	WrapRepeat
)

// Texture2D is a rectangular image of float samples, 1, 3 or 4 channels
// wide. Channel 3 of a 4-channel image is alpha; channel 0 of a 1-channel
// image doubles as either a luminance value or an alpha mask depending on
// how the material references it.
type Texture2D struct {
	Width, Height int
	Channels      int
	Wrap          Wrap
	data          []float32 // row-major, Channels floats per pixel
}

// NewTexture2D creates a texture of the given size and channel count with
// zeroed data.
func NewTexture2D(width, height, channels int, wrap Wrap) *Texture2D {

	return &Texture2D{
		Width:    width,
		Height:   height,
		Channels: channels,
		Wrap:     wrap,
		data:     make([]float32, width*height*channels),
	}
}

// NewTexture2DFromData wraps a pre-populated row-major float buffer.
// Panics if the buffer length doesn't match width*height*channels, the
// same fail-fast contract the teacher's loaders use for malformed assets.
func NewTexture2DFromData(width, height, channels int, wrap Wrap, data []float32) *Texture2D {

	if len(data) != width*height*channels {
		panic(fmt.Sprintf("texture: data length %d does not match %dx%dx%d", len(data), width, height, channels))
	}
	return &Texture2D{Width: width, Height: height, Channels: channels, Wrap: wrap, data: data}
}

// texelIndex resolves integer pixel coordinates through the wrap policy.
// The second return value is false when the policy is WrapZero and the
// coordinate falls outside the image.
func (t *Texture2D) texelIndex(x, y int) (int, int, bool) {

	switch t.Wrap {
	case WrapClamp:
		x = math32.ClampInt(x, 0, t.Width-1)
		y = math32.ClampInt(y, 0, t.Height-1)
	case WrapRepeat:
		x = ((x % t.Width) + t.Width) % t.Width
		y = ((y % t.Height) + t.Height) % t.Height
	default: // WrapZero
		if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
			return 0, 0, false
		}
	}
	return x, y, true
}

// TexelRGB returns channels 0..2 of the texel at integer coordinates (x,y),
// broadcasting a single-channel texture's value across all three.
func (t *Texture2D) TexelRGB(x, y int) math32.Color {

	x, y, ok := t.texelIndex(x, y)
	if !ok {
		return math32.Color{}
	}
	base := (y*t.Width + x) * t.Channels
	if t.Channels == 1 {
		v := t.data[base]
		return math32.Color{R: v, G: v, B: v}
	}
	return math32.Color{R: t.data[base], G: t.data[base+1], B: t.data[base+2]}
}

// TexelAlpha returns the alpha/mask channel of the texel at integer
// coordinates (x,y): channel 0 for a 1-channel mask image, channel 3 for RGBA.
func (t *Texture2D) TexelAlpha(x, y int) float32 {

	x, y, ok := t.texelIndex(x, y)
	if !ok {
		return 0
	}
	base := (y*t.Width + x) * t.Channels
	if t.Channels >= 4 {
		return t.data[base+3]
	}
	return t.data[base]
}

// SampleBilinearRGB bilinearly samples the RGB channels at texture
// coordinates (u,v) in [0,1]. Per spec, sample positions are pixel centers,
// so the lookup subtracts half a pixel from the scaled input coordinate
// before splitting into integer/fractional parts.
func (t *Texture2D) SampleBilinearRGB(u, v float32) math32.Color {

	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5
	x0, y0 := floorInt(fx), floorInt(fy)
	tx, ty := fx-float32(x0), fy-float32(y0)

	c00 := t.TexelRGB(x0, y0)
	c10 := t.TexelRGB(x0+1, y0)
	c01 := t.TexelRGB(x0, y0+1)
	c11 := t.TexelRGB(x0+1, y0+1)

	top := lerpColor(c00, c10, tx)
	bottom := lerpColor(c01, c11, tx)
	return lerpColor(top, bottom, ty)
}

// SampleBilinearAlpha bilinearly samples the alpha/mask channel at (u,v).
func (t *Texture2D) SampleBilinearAlpha(u, v float32) float32 {

	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5
	x0, y0 := floorInt(fx), floorInt(fy)
	tx, ty := fx-float32(x0), fy-float32(y0)

	a00 := t.TexelAlpha(x0, y0)
	a10 := t.TexelAlpha(x0+1, y0)
	a01 := t.TexelAlpha(x0, y0+1)
	a11 := t.TexelAlpha(x0+1, y0+1)

	top := a00 + (a10-a00)*tx
	bottom := a01 + (a11-a01)*tx
	return top + (bottom-top)*ty
}

// SampleBilinearDirection samples the RGB channels as a pre-scaled
// direction (loaded from [0,1] into [-1,1]), used for normal maps.
func (t *Texture2D) SampleBilinearDirection(u, v float32) math32.Vector3 {

	c := t.SampleBilinearRGB(u, v)
	return math32.Vector3{X: c.R*2 - 1, Y: c.G*2 - 1, Z: c.B*2 - 1}
}

func lerpColor(a, b math32.Color, t float32) math32.Color {

	return math32.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func floorInt(v float32) int {

	i := int(v)
	if v < float32(i) {
		i--
	}
	return i
}
