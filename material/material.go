// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material holds the renderer's shading parameters: a Material is
// a bundle of Params (each either a constant color or a texture reference),
// evaluated at a hit's texture coordinate.
package material

import (
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/texture"
)

// NoTexture is the sentinel texture id meaning "use the constant value".
const NoTexture = -1

// DefaultMaterialID is the sentinel material id meaning "use the renderer
// default material" (spec §7: out-of-range material ids are tolerated the
// same way).
const DefaultMaterialID = -1

// Param is an RGB parameter that is either a constant or sampled from a
// texture referenced by id into the owning Scene's texture array.
type Param struct {
	Constant  math32.Color
	TextureID int
}

// ConstParam returns a constant (non-textured) Param.
func ConstParam(c math32.Color) Param {
	return Param{Constant: c, TextureID: NoTexture}
}

// TexturedParam returns a Param sampling the given texture id.
func TexturedParam(textureID int, fallback math32.Color) Param {
	return Param{Constant: fallback, TextureID: textureID}
}

// Evaluate resolves the parameter's RGB value at texture coordinate (u,v),
// given the scene's texture table.
func (p Param) Evaluate(u, v float32, textures []*texture.Texture2D) math32.Color {

	if p.TextureID == NoTexture {
		return p.Constant
	}
	if p.TextureID < 0 || p.TextureID >= len(textures) || textures[p.TextureID] == nil {
		return p.Constant
	}
	return textures[p.TextureID].SampleBilinearRGB(u, v)
}

// AlphaParam is a single-channel parameter, either a constant or sampled
// from a texture's mask/alpha channel.
type AlphaParam struct {
	Constant  float32
	TextureID int
}

// ConstAlpha returns a constant (non-textured) AlphaParam.
func ConstAlpha(a float32) AlphaParam {
	return AlphaParam{Constant: a, TextureID: NoTexture}
}

// Evaluate resolves the alpha value at texture coordinate (u,v).
func (p AlphaParam) Evaluate(u, v float32, textures []*texture.Texture2D) float32 {

	if p.TextureID == NoTexture {
		return p.Constant
	}
	if p.TextureID < 0 || p.TextureID >= len(textures) || textures[p.TextureID] == nil {
		return p.Constant
	}
	return textures[p.TextureID].SampleBilinearAlpha(u, v)
}

// InnerMedium describes the participating medium on the inside of a
// refractive surface: index of refraction and a per-channel Beer's-law
// absorption coefficient.
type InnerMedium struct {
	IOR         float32
	Attenuation math32.Color
}

// Material is a bundle of shading parameters for a surface.
type Material struct {
	Diffuse  Param
	Specular Param
	// SpecularExponent is the Phong exponent: 0 means a perfect mirror,
	// >0 means a glossy Phong lobe.
	SpecularExponent float32
	// Alpha is non-refractive opacity: 1 is fully opaque.
	Alpha AlphaParam
	// Emission is the material's self-emitted radiance.
	Emission math32.Color

	NormalMap   *texture.Texture2D // nil if absent
	IsRefractive bool
	Inner        InnerMedium
}

// DefaultMaterial is substituted whenever a material id is out of range or
// the sentinel DefaultMaterialID (spec §7). It is a neutral grey diffuse,
// matching the teacher's own "fall back to a safe default rather than
// panicking on bad data" pattern (see loader/obj.go's unknown-MTL handling).
func DefaultMaterial() Material {

	return Material{
		Diffuse:  ConstParam(math32.Color{R: 0.7, G: 0.7, B: 0.7}),
		Specular: ConstParam(math32.Color{}),
		Alpha:    ConstAlpha(1),
	}
}

// IsMirror reports whether the specular lobe is a perfect mirror
// (exponent effectively zero) rather than a glossy Phong lobe.
func (m *Material) IsMirror() bool {
	return m.SpecularExponent <= 0.01
}
