// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifacts

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/dacunni/fluxrt/math32"
)

// WritePNG tone maps buf's running mean and writes it as an 8-bit PNG,
// following the teacher's own image/png usage for texture round-tripping.
func WritePNG(w io.Writer, buf *Buffer) error {

	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := ToneMap(buf.Mean(x, y))
			img.SetNRGBA(x, y, color.NRGBA{
				R: to8Bit(c.R),
				G: to8Bit(c.G),
				B: to8Bit(c.B),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}

func to8Bit(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}

// WriteRadianceHDR writes buf's running mean (untonemapped, linear
// radiance) in the Radiance RGBE (.hdr) format: a minimal text header
// followed by one run-length-free scanline per row of 4-byte RGBE texels.
func WriteRadianceHDR(w io.Writer, buf *Buffer) error {

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "#?RADIANCE\n")
	fmt.Fprint(bw, "FORMAT=32-bit_rle_rgbe\n\n")
	fmt.Fprintf(bw, "-Y %d +X %d\n", buf.Height, buf.Width)

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.Mean(x, y)
			r, g, b, e := toRGBE(c)
			bw.WriteByte(r)
			bw.WriteByte(g)
			bw.WriteByte(b)
			bw.WriteByte(e)
		}
	}
	return bw.Flush()
}

// toRGBE converts a linear color to the Radiance RGBE shared-exponent
// representation: the largest channel is normalized into [128,256) mantissa
// range and a single shared exponent byte is stored alongside it.
func toRGBE(c math32.Color) (r, g, b, e byte) {

	maxChannel := math32.Max(c.R, math32.Max(c.G, c.B))
	if maxChannel < 1e-32 {
		return 0, 0, 0, 0
	}

	mantissa, exp := math32.Frexp(maxChannel)
	scale := mantissa * 256 / maxChannel

	r = clampByteFloat(c.R * scale)
	g = clampByteFloat(c.G * scale)
	b = clampByteFloat(c.B * scale)
	e = byte(exp + 128)
	return r, g, b, e
}

func clampByteFloat(v float32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
