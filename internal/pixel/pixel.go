// Package pixel holds the Pixel tagged variant and its bit-exact
// on-surface encoding: RGB888, RGBA8888 (premultiplied), and the
// Alpha8/Alpha4/Alpha2/Alpha1 coverage-only formats. Packing follows
// the AGG packed-pixel convention (mask-and-shift against the raw
// byte) generalized to sub-byte bit fields.
package pixel

import (
	"github.com/inkloom/raster2d/internal/color"
	"github.com/inkloom/raster2d/internal/rerr"
)

// Format tags a surface's storage layout.
type Format uint8

const (
	RGB888 Format = iota
	RGBA8888
	Alpha8
	Alpha4
	Alpha2
	Alpha1
)

// BitsPerPixel returns the storage width of one pixel in bits.
func (f Format) BitsPerPixel() int {
	switch f {
	case RGB888:
		return 24
	case RGBA8888:
		return 32
	case Alpha8:
		return 8
	case Alpha4:
		return 4
	case Alpha2:
		return 2
	case Alpha1:
		return 1
	default:
		return 0
	}
}

// HasColor reports whether the format stores R/G/B channels (as
// opposed to coverage-only Alpha*).
func (f Format) HasColor() bool {
	return f == RGB888 || f == RGBA8888
}

// HasAlpha reports whether the format stores a meaningful alpha
// channel (RGB888 is implicitly opaque).
func (f Format) HasAlpha() bool {
	return f != RGB888
}

// RowStride returns the byte stride of a row of the given pixel
// width: ceil(width*bits_per_pixel/8), no end-of-row padding beyond
// the byte boundary.
func (f Format) RowStride(width int) int {
	bits := width * f.BitsPerPixel()
	return (bits + 7) / 8
}

// Validate rejects width/height/format combinations that cannot back
// a surface (zero or negative extents).
func Validate(width, height int, f Format) error {
	if width <= 0 || height <= 0 {
		return rerr.UnsupportedPixelFormat(width, height, f.String())
	}
	return nil
}

func (f Format) String() string {
	switch f {
	case RGB888:
		return "RGB888"
	case RGBA8888:
		return "RGBA8888"
	case Alpha8:
		return "Alpha8"
	case Alpha4:
		return "Alpha4"
	case Alpha2:
		return "Alpha2"
	case Alpha1:
		return "Alpha1"
	default:
		return "unknown"
	}
}

// Pixel is a decoded pixel value: 8-bit channels regardless of the
// storage width of its Format. RGBA8888 always stores premultiplied
// channels; Alpha* formats only use A. R/G/B are meaningless for
// Alpha* formats, and A is 255 (opaque) for RGB888.
type Pixel struct {
	Format  Format
	R, G, B uint8
	A       uint8
}

// FromColor premultiplies c's linear RGBA channels and quantizes them
// to the given format's 8-bit channel domain.
func FromColor(c color.Color, f Format) Pixel {
	r, g, b, a := c.ToLinearRGBA()
	a = clamp01(a)
	r = clamp01(r) * a
	g = clamp01(g) * a
	b = clamp01(b) * a

	p := Pixel{Format: f}
	p.A = to8(a)
	switch f {
	case RGB888:
		// Implicit opaque: unpremultiply against source alpha so
		// color survives even if the caller supplied a < 1.
		if a > 0 {
			p.R, p.G, p.B = to8(r/a), to8(g/a), to8(b/a)
		}
		p.A = 255
	case RGBA8888:
		p.R, p.G, p.B = to8(r), to8(g), to8(b)
	default:
		// Alpha-only formats: A already set.
	}
	return p
}

// IsOpaque reports whether the pixel's alpha channel is fully opaque
// (always true for RGB888).
func (p Pixel) IsOpaque() bool {
	return p.Format == RGB888 || p.A == 0xFF
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	v = clamp01(v)
	return uint8(v*255.0 + 0.5)
}

// NarrowAlpha converts an 8-bit coverage value down to the given
// sub-byte alpha format's bit depth by keeping the top N bits.
func NarrowAlpha(a8 uint8, f Format) uint8 {
	switch f {
	case Alpha8:
		return a8
	case Alpha4:
		return a8 >> 4
	case Alpha2:
		return a8 >> 6
	case Alpha1:
		return a8 >> 7
	default:
		return a8
	}
}

// WidenAlpha converts a sub-byte alpha sample back up to 8 bits by
// bit replication (so 0 stays 0 and the max value stays 255).
func WidenAlpha(v uint8, f Format) uint8 {
	switch f {
	case Alpha8:
		return v
	case Alpha4:
		v &= 0x0F
		return v<<4 | v
	case Alpha2:
		v &= 0x03
		return v<<6 | v<<4 | v<<2 | v
	case Alpha1:
		if v&0x1 != 0 {
			return 0xFF
		}
		return 0
	default:
		return v
	}
}
