// Package pattern implements the Pattern tagged variant: a uniform
// way for the compositor to ask "what color is at (x,y)" regardless
// of whether the answer comes from a solid fill, a gradient, a masked
// surface, or a dithered wrapper around another pattern.
package pattern

import (
	"github.com/inkloom/raster2d/internal/gradient"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/inkloom/raster2d/internal/surface"
)

// Kind tags which variant a Pattern holds.
type Kind uint8

const (
	KindSolid Kind = iota
	KindGradient
	KindSurfaceMask
	KindDither
)

// Pattern is a tagged variant over the four source kinds the
// compositor can sample a pixel from.
type Pattern struct {
	kind Kind

	solid pixel.Pixel

	gradient *gradient.Gradient
	format   pixel.Format // format the gradient sample is encoded into

	mask     *surface.Surface
	maskDX   int // translation applied before reading the mask
	maskDY   int

	inner   *Pattern
	dither  DitherMode
	toDepth pixel.Format // the bit depth being dithered to
}

// Solid builds a pattern that always returns p.
func Solid(p pixel.Pixel) *Pattern {
	return &Pattern{kind: KindSolid, solid: p}
}

// FromGradient builds a pattern that samples g and encodes the result
// into format.
func FromGradient(g *gradient.Gradient, format pixel.Format) *Pattern {
	return &Pattern{kind: KindGradient, gradient: g, format: format}
}

// FromSurface builds a pattern that reads s, translated by (dx,dy)
// before sampling; out-of-bounds reads return transparent black.
func FromSurface(s *surface.Surface, dx, dy int) *Pattern {
	return &Pattern{kind: KindSurfaceMask, mask: s, maskDX: dx, maskDY: dy}
}

// Dither wraps inner, perturbing its sampled output toward toDepth
// using mode.
func Dither(inner *Pattern, mode DitherMode, toDepth pixel.Format) *Pattern {
	return &Pattern{kind: KindDither, inner: inner, dither: mode, toDepth: toDepth}
}

// At returns the pixel this pattern produces at device coordinate
// (x,y).
func (p *Pattern) At(x, y int) pixel.Pixel {
	switch p.kind {
	case KindSolid:
		return p.solid
	case KindGradient:
		c, ok := p.gradient.Sample(float64(x)+0.5, float64(y)+0.5)
		if !ok {
			return pixel.Pixel{Format: p.format}
		}
		return pixel.FromColor(c, p.format)
	case KindSurfaceMask:
		return p.mask.GetPixel(x-p.maskDX, y-p.maskDY)
	case KindDither:
		base := p.inner.At(x, y)
		return applyDither(base, x, y, p.dither, p.toDepth)
	default:
		return pixel.Pixel{}
	}
}
