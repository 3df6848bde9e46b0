package rasterizer

import (
	"math"
	"sort"

	"github.com/inkloom/raster2d/internal/tessellate"
)

// Span is one run of constant coverage in a scanline, the sparse
// representation both AA backends emit so the compositor only ever
// walks runs that actually contribute.
type Span struct {
	X        int
	Len      int
	Coverage float64 // 0..1
}

type crossing struct {
	x       float64
	winding int
}

// crossingsAtY finds every edge active at y and its x position there,
// sorted by x.
func crossingsAtY(poly *tessellate.Polygon, y float64) []crossing {
	var cs []crossing
	for _, e := range poly.Edges {
		if y < e.YTop || y >= e.YBot {
			continue
		}
		x := e.XNow + (y-e.YTop)*e.DxPerScanline
		cs = append(cs, crossing{x: x, winding: e.Winding})
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].x < cs[j].x })
	return cs
}

type interval struct{ x0, x1 float64 }

// intervalsFromCrossings reduces a sorted crossing list to the
// disjoint x-ranges that satisfy rule.
func intervalsFromCrossings(cs []crossing, rule FillRule) []interval {
	var out []interval
	winding := 0
	toggle := false
	inside := false
	start := 0.0
	for _, c := range cs {
		var nowInside bool
		if rule == EvenOdd {
			toggle = !toggle
			nowInside = toggle
		} else {
			winding += c.winding
			nowInside = winding != 0
		}
		if nowInside && !inside {
			start = c.x
		} else if !nowInside && inside {
			out = append(out, interval{x0: start, x1: c.x})
		}
		inside = nowInside
	}
	return out
}

// rowSpansBinary samples a single point at the vertical center of row
// y and reports which pixels' centers fall inside the polygon — the
// AANone backend.
func rowSpansBinary(poly *tessellate.Polygon, y, width int, rule FillRule) []Span {
	cs := crossingsAtY(poly, float64(y)+0.5)
	if len(cs) == 0 {
		return nil
	}
	ivs := intervalsFromCrossings(cs, rule)

	var spans []Span
	for _, iv := range ivs {
		x0 := clampInt(int(math.Ceil(iv.x0-0.5)), 0, width)
		x1 := clampInt(int(math.Ceil(iv.x1-0.5)), 0, width)
		if x1 <= x0 {
			continue
		}
		spans = append(spans, Span{X: x0, Len: x1 - x0, Coverage: 1.0})
	}
	return spans
}

// rowSpansMultisample samples subSamples evenly spaced sub-scanlines
// within row y, each with exact analytic x-coverage, and averages
// them into a sparse per-pixel coverage run list — the
// AAMultisample4x backend.
func rowSpansMultisample(poly *tessellate.Polygon, y, width, subSamples int, rule FillRule) []Span {
	acc := make([]float64, width)
	any := false

	step := 1.0 / float64(subSamples)
	for s := 0; s < subSamples; s++ {
		sy := float64(y) + (float64(s)+0.5)*step
		cs := crossingsAtY(poly, sy)
		if len(cs) == 0 {
			continue
		}
		for _, iv := range intervalsFromCrossings(cs, rule) {
			addCoverage(acc, iv.x0, iv.x1, step, width)
			any = true
		}
	}
	if !any {
		return nil
	}
	return spansFromAccumulator(acc)
}

// addCoverage distributes weight across the pixels overlapped by
// [x0,x1), splitting fractional overlap at partially-covered cells.
func addCoverage(acc []float64, x0, x1, weight float64, width int) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(width) {
		x1 = float64(width)
	}
	if x1 <= x0 {
		return
	}
	start := int(x0)
	end := int(x1)
	if start == end {
		acc[start] += (x1 - x0) * weight
		return
	}
	acc[start] += (float64(start+1) - x0) * weight
	for px := start + 1; px < end; px++ {
		acc[px] += weight
	}
	if end < width {
		acc[end] += (x1 - float64(end)) * weight
	}
}

func spansFromAccumulator(acc []float64) []Span {
	const eps = 1e-6
	var spans []Span
	i := 0
	for i < len(acc) {
		if acc[i] <= eps {
			i++
			continue
		}
		j := i + 1
		for j < len(acc) && math.Abs(acc[j]-acc[i]) < eps {
			j++
		}
		cov := acc[i]
		if cov > 1.0 {
			cov = 1.0
		}
		spans = append(spans, Span{X: i, Len: j - i, Coverage: cov})
		i = j
	}
	return spans
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

