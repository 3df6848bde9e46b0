package compositor

import "math"

// FloatPixel is a linear, premultiplied RGBA sample in [0,1], the
// working representation of the float compositing pipeline.
type FloatPixel struct {
	R, G, B, A float64
}

// CompositeFloat composites src over dst under op, scaling src's
// alpha by opacity first. Handles the full operator set: the classic
// Porter-Duff subset via the same Fa/Fb algebra as the integer
// pipeline, and the W3C separable/non-separable blend modes via the
// standard "Cs(1-Da) + Cb(1-Sa) + Sa·Da·B(Cb,Cs)" formula.
func CompositeFloat(dst, src FloatPixel, op Operator, opacity float64) FloatPixel {
	src.A *= opacity
	src.R *= opacity
	src.G *= opacity
	src.B *= opacity

	if !op.RequiresFloat() {
		fa, fb := factors(op, uint16(src.A*255), uint16(dst.A*255))
		return FloatPixel{
			R: src.R*fa + dst.R*fb,
			G: src.G*fa + dst.G*fb,
			B: src.B*fa + dst.B*fb,
			A: src.A*fa + dst.A*fb,
		}
	}

	if src.A == 0 {
		return dst
	}
	if dst.A == 0 {
		return src
	}

	sr, sg, sb := src.R/src.A, src.G/src.A, src.B/src.A
	dr, dg, db := dst.R/dst.A, dst.G/dst.A, dst.B/dst.A

	var br, bg, bb float64
	if op.IsSeparable() {
		f := separableBlendFunc(op)
		br, bg, bb = f(sr, dr), f(sg, dg), f(sb, db)
	} else {
		br, bg, bb = nonSeparableBlend(op, sr, sg, sb, dr, dg, db)
	}

	invSa := 1 - src.A
	invDa := 1 - dst.A
	saDa := src.A * dst.A

	outA := src.A + dst.A*invSa
	outR := src.R*invDa + dst.R*invSa + saDa*br
	outG := src.G*invDa + dst.G*invSa + saDa*bg
	outB := src.B*invDa + dst.B*invSa + saDa*bb

	return FloatPixel{R: clamp01(outR), G: clamp01(outG), B: clamp01(outB), A: clamp01(outA)}
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

// separableBlendFunc returns B(Cb, Cs) operating on unpremultiplied
// channels, per W3C Compositing and Blending Level 1 §7.
func separableBlendFunc(op Operator) func(s, d float64) float64 {
	switch op {
	case PlusLighter:
		return func(s, d float64) float64 { return clamp01(s + d) }
	case Multiply:
		return func(s, d float64) float64 { return s * d }
	case Screen:
		return func(s, d float64) float64 { return 1 - (1-s)*(1-d) }
	case Overlay:
		return func(s, d float64) float64 { return hardLight(d, s) }
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case ColorDodge:
		return func(s, d float64) float64 {
			if d == 0 {
				return 0
			}
			if s == 1 {
				return 1
			}
			return math.Min(1, d/(1-s))
		}
	case ColorBurn:
		return func(s, d float64) float64 {
			if d == 1 {
				return 1
			}
			if s == 0 {
				return 0
			}
			return 1 - math.Min(1, (1-d)/s)
		}
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(s, d float64) float64 { return math.Abs(s - d) }
	case Exclusion:
		return func(s, d float64) float64 { return s + d - 2*s*d }
	default:
		return func(s, d float64) float64 { return s }
	}
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dx float64
	if d <= 0.25 {
		dx = ((16*d-12)*d + 4) * d
	} else {
		dx = math.Sqrt(d)
	}
	return d + (2*s-1)*(dx-d)
}

// nonSeparableBlend implements the HSL {Hue, Saturation, Color,
// Luminosity} modes via the W3C Lum/Sat/SetLum/SetSat algorithm.
func nonSeparableBlend(op Operator, sr, sg, sb, dr, dg, db float64) (r, g, b float64) {
	switch op {
	case HSLHue:
		r, g, b = setSat(sr, sg, sb, sat(dr, dg, db))
		return setLum(r, g, b, lum(dr, dg, db))
	case HSLSaturation:
		r, g, b = setSat(dr, dg, db, sat(sr, sg, sb))
		return setLum(r, g, b, lum(dr, dg, db))
	case HSLColor:
		return setLum(sr, sg, sb, lum(dr, dg, db))
	case HSLLuminosity:
		return setLum(dr, dg, db, lum(sr, sg, sb))
	default:
		return sr, sg, sb
	}
}

func lum(r, g, b float64) float64 { return 0.30*r + 0.59*g + 0.11*b }

func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := math.Min(r, math.Min(g, b))
	x := math.Max(r, math.Max(g, b))

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float64) (float64, float64, float64) {
	minP, midP, maxP := sortChannels(&r, &g, &b)
	if *maxP > *minP {
		*midP = (*midP - *minP) * s / (*maxP - *minP)
		*maxP = s
	} else {
		*midP = 0
		*maxP = 0
	}
	*minP = 0
	return r, g, b
}

func sortChannels(r, g, b *float64) (minP, midP, maxP *float64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}
