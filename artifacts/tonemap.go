// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifacts

import "github.com/dacunni/fluxrt/math32"

// ExtendedReinholdWhitePoint is the white point used by ToneMap's extended
// Reinhard curve: luminance at or above this value maps to full white.
const ExtendedReinholdWhitePoint = 4.0

// GammaExponent is the display gamma applied after tone mapping (1/2.4,
// close to sRGB's effective exponent in its linear-light range).
const GammaExponent = 1 / 2.4

// ToneMap applies the extended Reinhard operator (compresses high dynamic
// range radiance into [0,1] while leaving values near ExtendedReinholdWhitePoint
// mapped to white) followed by gamma correction, per-channel.
func ToneMap(c math32.Color) math32.Color {

	return math32.Color{
		R: gammaCorrect(extendedReinhard(c.R)),
		G: gammaCorrect(extendedReinhard(c.G)),
		B: gammaCorrect(extendedReinhard(c.B)),
	}
}

func extendedReinhard(v float32) float32 {

	if v <= 0 {
		return 0
	}
	numer := v * (1 + v/(ExtendedReinholdWhitePoint*ExtendedReinholdWhitePoint))
	return numer / (1 + v)
}

func gammaCorrect(v float32) float32 {

	if v <= 0 {
		return 0
	}
	return math32.Clamp(math32.Pow(v, GammaExponent), 0, 1)
}
