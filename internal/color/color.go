// Package color holds the logical Color type: a tagged color value in
// one of {RGB, RGBA, sRGB, sRGBA, HSL, HSLA} space with float channels
// in [0,1]. All conversions route through linear, unpremultiplied
// RGBA — the representation internal/pixel premultiplies at the
// Pixel boundary.
package color

import (
	"math"

	"github.com/inkloom/raster2d/internal/gamma"
)

// Space tags which of the six logical color spaces a Color's channels
// are expressed in.
type Space uint8

const (
	SpaceRGB Space = iota
	SpaceRGBA
	SpaceSRGB
	SpaceSRGBA
	SpaceHSL
	SpaceHSLA
)

// Color is a tagged variant over the six logical spaces. Channel
// meaning depends on Space:
//   - RGB/RGBA, sRGB/sRGBA: C0,C1,C2 = r,g,b; C3 = a
//   - HSL/HSLA: C0,C1,C2 = h (turns, [0,1) = 0..360deg), s, l; C3 = a
//
// Spaces without an alpha channel (RGB, sRGB, HSL) treat C3 as 1.
type Color struct {
	Space      Space
	C0, C1, C2 float64
	C3         float64
}

// RGB builds an opaque linear-RGB color.
func RGB(r, g, b float64) Color { return Color{Space: SpaceRGB, C0: r, C1: g, C2: b, C3: 1} }

// RGBA builds a linear-RGB color with alpha.
func RGBA(r, g, b, a float64) Color { return Color{Space: SpaceRGBA, C0: r, C1: g, C2: b, C3: a} }

// SRGB builds an opaque sRGB-encoded color.
func SRGB(r, g, b float64) Color { return Color{Space: SpaceSRGB, C0: r, C1: g, C2: b, C3: 1} }

// SRGBA builds an sRGB-encoded color with alpha.
func SRGBA(r, g, b, a float64) Color { return Color{Space: SpaceSRGBA, C0: r, C1: g, C2: b, C3: a} }

// HSL builds an opaque color from hue (turns, [0,1)), saturation, and
// lightness, all in [0,1].
func HSL(h, s, l float64) Color { return Color{Space: SpaceHSL, C0: h, C1: s, C2: l, C3: 1} }

// HSLA builds an HSL color with alpha.
func HSLA(h, s, l, a float64) Color { return Color{Space: SpaceHSLA, C0: h, C1: s, C2: l, C3: a} }

// ToLinearRGBA resolves c, whatever its native space, into
// unpremultiplied linear RGBA channels in [0,1].
func (c Color) ToLinearRGBA() (r, g, b, a float64) {
	switch c.Space {
	case SpaceRGB, SpaceRGBA:
		return c.C0, c.C1, c.C2, c.C3
	case SpaceSRGB, SpaceSRGBA:
		return gamma.SRGBToLinear(c.C0), gamma.SRGBToLinear(c.C1), gamma.SRGBToLinear(c.C2), c.C3
	case SpaceHSL, SpaceHSLA:
		r, g, b = hslToRGB(c.C0, c.C1, c.C2)
		return r, g, b, c.C3
	default:
		return 0, 0, 0, 0
	}
}

// ToSRGBA resolves c into sRGB-encoded, unpremultiplied channels —
// the representation written out at the surface encoding boundary.
func (c Color) ToSRGBA() (r, g, b, a float64) {
	lr, lg, lb, la := c.ToLinearRGBA()
	return gamma.LinearToSRGB(lr), gamma.LinearToSRGB(lg), gamma.LinearToSRGB(lb), la
}

// ToHSLA resolves c into hue (turns, [0,1))/saturation/lightness/alpha,
// the representation gradient stop interpolation uses for its hsl
// method.
func (c Color) ToHSLA() (h, s, l, a float64) {
	r, g, b, a := c.ToLinearRGBA()
	h, s, l = RGBToHSL(r, g, b)
	return h, s, l, a
}

// hslToRGB implements the standard hue/saturation/lightness hex-cone
// conversion. h is in turns ([0,1) == 0..360deg); s and l in [0,1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}

	r = hueToChannel(p, q, h+1.0/3.0)
	g = hueToChannel(p, q, h)
	b = hueToChannel(p, q, h-1.0/3.0)
	return r, g, b
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// RGBToHSL converts linear RGB channels to hue (turns)/saturation/
// lightness, the inverse of hslToRGB.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	maxV := math.Max(r, math.Max(g, b))
	minV := math.Min(r, math.Min(g, b))
	l = (maxV + minV) / 2

	if maxV == minV {
		return 0, 0, l
	}

	d := maxV - minV
	if l > 0.5 {
		s = d / (2 - maxV - minV)
	} else {
		s = d / (maxV + minV)
	}

	switch maxV {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	return h, s, l
}
