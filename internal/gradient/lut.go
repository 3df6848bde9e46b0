package gradient

import (
	"math"
	"sort"

	"github.com/inkloom/raster2d/internal/color"
)

// lutSize matches the teacher's common gradient_lut size of 256
// entries, trading a small amount of banding risk for O(1) sampling.
const lutSize = 256

// lut is the precomputed per-gradient color table; entries are stored
// as linear-light Color values (unpremultiplied, like every Color)
// regardless of the gradient's interpolation method.
type lut struct {
	entries [lutSize]color.Color
}

func (l *lut) at(t float64) color.Color {
	i := int(t*float64(lutSize-1) + 0.5)
	if i < 0 {
		i = 0
	}
	if i >= lutSize {
		i = lutSize - 1
	}
	return l.entries[i]
}

// normalizeStops clamps offsets to [0,1] and stable-sorts by offset.
// Runs of equal offsets are kept as given; buildLUT gives them zero
// width, so the color before such a run comes from its first stop and
// the color after it from its last (SVG's "duplicate offset = hard
// edge" rule).
func normalizeStops(stops []Stop) []Stop {
	if len(stops) == 0 {
		return []Stop{{Offset: 0, Color: color.RGBA(0, 0, 0, 0)}}
	}
	out := make([]Stop, len(stops))
	copy(out, stops)
	for i := range out {
		if out[i].Offset < 0 {
			out[i].Offset = 0
		}
		if out[i].Offset > 1 {
			out[i].Offset = 1
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// buildLUT fills a 256-entry table from the sorted stop list, filling
// the region before the first stop with the first color and the
// region after the last stop with the last color, and interpolating
// linearly (in index space) between stops in between — the same
// three-phase fill the teacher's GradientLUT.BuildLUT performs.
func buildLUT(stops []Stop, method Method) *lut {
	l := &lut{}
	if len(stops) == 1 {
		c := toLinear(stops[0].Color)
		for i := range l.entries {
			l.entries[i] = c
		}
		return l
	}

	start := int(math.Round(stops[0].Offset * float64(lutSize-1)))
	for i := 0; i <= start && i < lutSize; i++ {
		l.entries[i] = toLinear(stops[0].Color)
	}

	for i := 1; i < len(stops); i++ {
		end := int(math.Round(stops[i].Offset * float64(lutSize-1)))
		if end > lutSize-1 {
			end = lutSize - 1
		}
		span := end - start
		if span <= 0 {
			start = end
			continue
		}
		for j := start; j <= end; j++ {
			frac := float64(j-start) / float64(span)
			l.entries[j] = interpolate(stops[i-1].Color, stops[i].Color, frac, method)
		}
		start = end
	}

	last := toLinear(stops[len(stops)-1].Color)
	for i := start; i < lutSize; i++ {
		l.entries[i] = last
	}
	return l
}

func toLinear(c color.Color) color.Color {
	r, g, b, a := c.ToLinearRGBA()
	return color.RGBA(r, g, b, a)
}

func interpolate(c1, c2 color.Color, t float64, method Method) color.Color {
	switch method.Kind {
	case SRGB:
		r1, g1, b1, a1 := c1.ToSRGBA()
		r2, g2, b2, a2 := c2.ToSRGBA()
		s := color.SRGBA(lerp(r1, r2, t), lerp(g1, g2, t), lerp(b1, b2, t), lerp(a1, a2, t))
		return toLinear(s)
	case HSL:
		h1, s1, l1, a1 := c1.ToHSLA()
		h2, s2, l2, a2 := c2.ToHSLA()
		h := lerpHue(h1, h2, t, method.Hue)
		hc := color.HSLA(h, lerp(s1, s2, t), lerp(l1, l2, t), lerp(a1, a2, t))
		return toLinear(hc)
	default: // LinearRGB: lerp premultiplied channels, then unpremultiply
		r1, g1, b1, a1 := c1.ToLinearRGBA()
		r2, g2, b2, a2 := c2.ToLinearRGBA()
		a := lerp(a1, a2, t)
		if a == 0 {
			return color.RGBA(0, 0, 0, 0)
		}
		return color.RGBA(lerp(r1*a1, r2*a2, t)/a, lerp(g1*a1, g2*a2, t)/a, lerp(b1*a1, b2*a2, t)/a, a)
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// lerpHue interpolates hue (turns, [0,1)) per the named direction
// rule, choosing the arc to travel around the hue circle.
func lerpHue(h1, h2, t float64, dir HueDirection) float64 {
	const full = 1.0
	const half = 0.5
	diff := h2 - h1

	switch dir {
	case HueIncreasing:
		if diff < 0 {
			diff += full
		}
	case HueDecreasing:
		if diff > 0 {
			diff -= full
		}
	case HueLonger:
		if diff > 0 && diff < half {
			diff -= full
		} else if diff < 0 && diff > -half {
			diff += full
		}
	default: // HueShorter
		if diff > half {
			diff -= full
		} else if diff < -half {
			diff += full
		}
	}

	h := h1 + diff*t
	h = math.Mod(h, full)
	if h < 0 {
		h += full
	}
	return h
}
