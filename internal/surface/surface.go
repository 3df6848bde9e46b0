// Package surface implements the Surface abstraction: a contiguous
// pixel buffer with silently-clipping reads and writes, backed by
// internal/buffer's byte rendering buffer and internal/pixel's
// bit-exact formats.
package surface

import (
	"github.com/inkloom/raster2d/internal/buffer"
	"github.com/inkloom/raster2d/internal/compositor"
	"github.com/inkloom/raster2d/internal/pixel"
)

// Surface owns a pixel buffer of a fixed width, height, and format.
type Surface struct {
	buf    *buffer.RenderingBufferU8
	data   []byte
	width  int
	height int
	format pixel.Format
}

// New allocates a zero-initialized surface. Returns
// UnsupportedPixelFormat if width or height is non-positive.
func New(width, height int, format pixel.Format) (*Surface, error) {
	if err := pixel.Validate(width, height, format); err != nil {
		return nil, err
	}
	stride := format.RowStride(width)
	data := make([]byte, stride*height)
	buf := buffer.NewRenderingBufferWithData(data, width, height, stride)
	return &Surface{buf: buf, data: data, width: width, height: height, format: format}, nil
}

func (s *Surface) Width() int           { return s.width }
func (s *Surface) Height() int          { return s.height }
func (s *Surface) Format() pixel.Format { return s.format }

// inBounds reports whether (x, y) lies within [0,w) x [0,h).
func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) rowStart(y int) int {
	return y * s.buf.StrideAbs()
}

// PutPixel writes p at (x, y); silently does nothing when (x, y) is
// out of bounds.
func (s *Surface) PutPixel(x, y int, p pixel.Pixel) {
	if !s.inBounds(x, y) {
		return
	}
	pixel.Pack(s.data, s.rowStart(y), x, s.format, p)
}

// GetPixel reads the pixel at (x, y); returns the zero pixel when out
// of bounds.
func (s *Surface) GetPixel(x, y int) pixel.Pixel {
	if !s.inBounds(x, y) {
		return pixel.Pixel{Format: s.format}
	}
	return pixel.Unpack(s.data, s.rowStart(y), x, s.format)
}

// clipRun clips the horizontal run [x, x+length) at row y to the
// surface bounds, returning the clipped start and length (length == 0
// when the run is entirely out of bounds or y is out of range).
func (s *Surface) clipRun(x, y, length int) (int, int) {
	if y < 0 || y >= s.height || length <= 0 {
		return x, 0
	}
	x0, x1 := x, x+length
	if x0 < 0 {
		x0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if x1 <= x0 {
		return x, 0
	}
	return x0, x1 - x0
}

// PaintStride fills the horizontal run [x, x+length) at row y with a
// solid pixel, clipping to the surface.
func (s *Surface) PaintStride(x, y, length int, p pixel.Pixel) {
	x0, n := s.clipRun(x, y, length)
	if n == 0 {
		return
	}
	row := s.rowStart(y)
	for i := 0; i < n; i++ {
		pixel.Pack(s.data, row, x0+i, s.format, p)
	}
}

// ClearStride writes the format's zero pixel (transparent, or black
// for RGB888) across [x, x+length) at row y, clipping to the surface.
func (s *Surface) ClearStride(x, y, length int) {
	s.PaintStride(x, y, length, pixel.Pixel{Format: s.format})
}

// CompositeStride composites a single source pixel across the run
// [x, x+length) at row y under op and opacity, clipping to the
// surface. Non-RGBA8888 surfaces composite through the RGBA8888
// algebra and re-encode.
func (s *Surface) CompositeStride(x, y, length int, src pixel.Pixel, op compositor.Operator, opacity float64) {
	x0, n := s.clipRun(x, y, length)
	if n == 0 {
		return
	}
	row := s.rowStart(y)

	for i := 0; i < n; i++ {
		dst := pixel.Unpack(s.data, row, x0+i, s.format)
		var out pixel.Pixel
		if op.RequiresFloat() {
			df := toFloatPixel(dst)
			sf := toFloatPixel(src)
			rf := compositor.CompositeFloat(df, sf, op, opacity)
			out = fromFloatPixel(rf, s.format)
		} else {
			out = compositor.CompositeInt8(asRGBA(dst), asRGBA(src), op, opacity)
			out = reencode(out, s.format)
		}
		pixel.Pack(s.data, row, x0+i, s.format, out)
	}
}

// GetStride returns a clipped mutable view over [x, x+length) at row
// y; its Len is zero when the run is fully out of bounds.
func (s *Surface) GetStride(x, y, length int) Stride {
	x0, n := s.clipRun(x, y, length)
	return Stride{surface: s, x: x0, y: y, length: n}
}

// Downsample box-filters s by integer factors scaleX, scaleY into a
// new, smaller surface of the same format. Alpha-only formats sum
// covered source alpha and divide by scaleX*scaleY, quantizing to the
// destination format's bit depth via NarrowAlpha/WidenAlpha so the
// box filter's rounding matches the format's native precision; color
// formats average each channel independently.
func (s *Surface) Downsample(scaleX, scaleY int) (*Surface, error) {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	dw := s.width / scaleX
	dh := s.height / scaleY
	if dw <= 0 {
		dw = 1
	}
	if dh <= 0 {
		dh = 1
	}

	out, err := New(dw, dh, s.format)
	if err != nil {
		return nil, err
	}

	n := scaleX * scaleY
	for dy := 0; dy < dh; dy++ {
		for dx := 0; dx < dw; dx++ {
			var sumR, sumG, sumB, sumA int
			for sy := 0; sy < scaleY; sy++ {
				for sx := 0; sx < scaleX; sx++ {
					p := s.GetPixel(dx*scaleX+sx, dy*scaleY+sy)
					if s.format.HasColor() {
						sumR += int(p.R)
						sumG += int(p.G)
						sumB += int(p.B)
					}
					sumA += int(p.A)
				}
			}
			avg := pixel.Pixel{Format: s.format}
			if s.format.HasColor() {
				avg.R = uint8(sumR / n)
				avg.G = uint8(sumG / n)
				avg.B = uint8(sumB / n)
			}
			avg.A = uint8(sumA / n)
			if s.format == pixel.RGB888 {
				avg.A = 255
			}
			out.PutPixel(dx, dy, avg)
		}
	}
	return out, nil
}

func asRGBA(p pixel.Pixel) pixel.Pixel {
	if p.Format == pixel.RGBA8888 {
		return p
	}
	out := pixel.Pixel{Format: pixel.RGBA8888, A: p.A}
	if p.Format == pixel.RGB888 {
		out.R, out.G, out.B, out.A = p.R, p.G, p.B, 255
	}
	return out
}

func reencode(p pixel.Pixel, f pixel.Format) pixel.Pixel {
	p.Format = f
	if f == pixel.RGB888 {
		p.A = 255
	}
	return p
}

func toFloatPixel(p pixel.Pixel) compositor.FloatPixel {
	const s = 1.0 / 255.0
	if p.Format == pixel.RGB888 {
		return compositor.FloatPixel{R: float64(p.R) * s, G: float64(p.G) * s, B: float64(p.B) * s, A: 1}
	}
	if !p.Format.HasColor() {
		a := float64(p.A) * s
		return compositor.FloatPixel{R: a, G: a, B: a, A: a}
	}
	return compositor.FloatPixel{R: float64(p.R) * s, G: float64(p.G) * s, B: float64(p.B) * s, A: float64(p.A) * s}
}

func fromFloatPixel(f compositor.FloatPixel, format pixel.Format) pixel.Pixel {
	to8 := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v*255.0 + 0.5)
	}
	p := pixel.Pixel{Format: format}
	p.A = to8(f.A)
	if format.HasColor() {
		p.R, p.G, p.B = to8(f.R), to8(f.G), to8(f.B)
		if format == pixel.RGB888 {
			p.A = 255
		}
	}
	return p
}
