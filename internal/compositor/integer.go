package compositor

import "github.com/inkloom/raster2d/internal/pixel"

// factors returns the source and destination blend factors (Fa, Fb)
// of the classic Porter-Duff algebra: result = src*Fa + dst*Fb,
// applied identically to premultiplied color and alpha channels. sa,
// da are the source/destination alpha in [0,255].
func factors(op Operator, sa, da uint16) (fa, fb float64) {
	s := float64(sa) / 255.0
	d := float64(da) / 255.0
	switch op {
	case Clear:
		return 0, 0
	case Src:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - s
	case DstOver:
		return 1 - d, 1
	case SrcIn:
		return d, 0
	case DstIn:
		return 0, s
	case SrcOut:
		return 1 - d, 0
	case DstOut:
		return 0, 1 - s
	case SrcAtop:
		return d, 1 - s
	case DstAtop:
		return 1 - d, s
	case Xor:
		return 1 - d, 1 - s
	case Plus:
		return 1, 1
	default:
		return 1, 1 - s
	}
}

// CompositeInt8 composites src over dst (both RGBA8888, premultiplied)
// under op, scaling the source's contribution by opacity in [0,1]
// first. Only operators with Operator.RequiresFloat() == false are
// exact here; callers are expected to route other operators to the
// float pipeline.
func CompositeInt8(dst, src pixel.Pixel, op Operator, opacity float64) pixel.Pixel {
	sa := uint16(clampOpacity(float64(src.A) * opacity))
	fa, fb := factors(op, sa, uint16(dst.A))

	out := pixel.Pixel{Format: pixel.RGBA8888}
	out.R = lerpChannel(scaleChannel(src.R, opacity), dst.R, fa, fb)
	out.G = lerpChannel(scaleChannel(src.G, opacity), dst.G, fa, fb)
	out.B = lerpChannel(scaleChannel(src.B, opacity), dst.B, fa, fb)
	out.A = lerpChannel(uint8(sa), dst.A, fa, fb)
	return out
}

func scaleChannel(c uint8, opacity float64) uint8 {
	return uint8(clampOpacity(float64(c) * opacity))
}

func clampOpacity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func lerpChannel(src, dst uint8, fa, fb float64) uint8 {
	v := float64(src)*fa + float64(dst)*fb
	return uint8(clampOpacity(v + 0.5))
}
