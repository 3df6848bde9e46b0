package pattern

import "github.com/inkloom/raster2d/internal/pixel"

// DitherMode selects how a Dither pattern perturbs its wrapped
// pattern's output before quantizing to a narrower bit depth.
type DitherMode uint8

const (
	DitherNone DitherMode = iota
	DitherBayer8x8
	DitherBlueNoise
)

// bayer8x8 is the standard 8x8 ordered-dither threshold matrix,
// values scaled to [0,63].
var bayer8x8 = [8][8]int{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// blueNoise8x8 is a fixed low-discrepancy 8x8 tile approximating blue
// noise (no two adjacent entries share a close rank), used as a
// visually less structured alternative to the Bayer matrix.
var blueNoise8x8 = [8][8]int{
	{13, 59, 5, 48, 21, 61, 9, 44},
	{37, 25, 52, 17, 33, 29, 56, 1},
	{8, 45, 2, 62, 6, 41, 14, 53},
	{28, 20, 34, 16, 50, 24, 31, 11},
	{58, 4, 46, 39, 3, 57, 19, 63},
	{23, 51, 12, 30, 43, 15, 35, 26},
	{0, 40, 27, 55, 10, 47, 22, 60},
	{36, 18, 54, 7, 32, 38, 49, 42},
}

// applyDither adds a sub-quantization-step offset to each channel of
// px before the compositor narrows it to toDepth's bit depth, using
// the threshold matrix named by mode. DitherNone is a no-op.
func applyDither(px pixel.Pixel, x, y int, mode DitherMode, toDepth pixel.Format) pixel.Pixel {
	if mode == DitherNone {
		return px
	}
	var m *[8][8]int
	switch mode {
	case DitherBayer8x8:
		m = &bayer8x8
	case DitherBlueNoise:
		m = &blueNoise8x8
	default:
		return px
	}

	threshold := m[y&7][x&7]
	step := quantStep(toDepth)
	// Bias in [-step/2, step/2), scaled by the matrix's rank within
	// its 64-entry tile.
	bias := threshold*step/64 - step/2

	out := px
	if px.Format.HasColor() {
		out.R = ditherChannel(px.R, bias)
		out.G = ditherChannel(px.G, bias)
		out.B = ditherChannel(px.B, bias)
	}
	if px.Format.HasAlpha() {
		out.A = ditherChannel(px.A, bias)
	}
	return out
}

func ditherChannel(c uint8, bias int) uint8 {
	v := int(c) + bias
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// quantStep returns the size of one quantization step, in 8-bit
// channel units, when narrowing to f's bit depth.
func quantStep(f pixel.Format) int {
	switch f {
	case pixel.Alpha4:
		return 16
	case pixel.Alpha2:
		return 64
	case pixel.Alpha1:
		return 128
	default:
		return 1
	}
}
