package surface

import "github.com/inkloom/raster2d/internal/pixel"

// Stride is a clipped, mutable view over a horizontal pixel run.
// Sub-byte formats cannot be sliced directly, so Stride indexes
// through pixel.Pack/pixel.Unpack rather than exposing a raw []byte.
type Stride struct {
	surface *Surface
	x, y    int
	length  int
}

// Len reports how many pixels remain in the run after clipping.
func (s Stride) Len() int { return s.length }

// At returns the pixel at offset i within the run.
func (s Stride) At(i int) pixel.Pixel {
	return s.surface.GetPixel(s.x+i, s.y)
}

// Set writes the pixel at offset i within the run.
func (s Stride) Set(i int, p pixel.Pixel) {
	s.surface.PutPixel(s.x+i, s.y, p)
}

// Fill overwrites every pixel in the run with p.
func (s Stride) Fill(p pixel.Pixel) {
	for i := 0; i < s.length; i++ {
		s.Set(i, p)
	}
}
