// Package stroke expands a polyline or closed contour into the filled
// outline polygon a stroke renders as, using internal/basics'
// MathStroke for the per-join/per-cap geometry and its own walk over
// the contour to assemble the final offset polygon(s).
package stroke

import (
	"github.com/inkloom/raster2d/internal/basics"
	"github.com/inkloom/raster2d/internal/tessellate"
)

// Params mirrors spec.md's stroke-expander inputs.
type Params struct {
	Width           float64
	Cap             basics.LineCap
	Join            basics.LineJoin
	InnerJoin       basics.InnerJoin
	MiterLimit      float64
	InnerMiterLimit float64
	ApproxScale     float64
	Hairline        bool
}

// DefaultParams matches spec.md's stated default miter limit (10.0,
// not AGG's 4.0 — a deliberate departure recorded in DESIGN.md).
func DefaultParams() Params {
	return Params{
		Width:           1.0,
		Cap:             basics.ButtCap,
		Join:            basics.MiterJoin,
		InnerJoin:       basics.InnerMiter,
		MiterLimit:      10.0,
		InnerMiterLimit: 1.01,
		ApproxScale:     1.0,
	}
}

func newStroker(p Params) *basics.MathStroke {
	s := basics.NewMathStroke()
	s.SetWidth(p.Width)
	s.SetLineCap(p.Cap)
	s.SetLineJoin(p.Join)
	s.SetInnerJoin(p.InnerJoin)
	s.SetMiterLimit(p.MiterLimit)
	s.SetInnerMiterLimit(p.InnerMiterLimit)
	approx := p.ApproxScale
	if approx <= 0 {
		approx = 1.0
	}
	s.SetApproximationScale(approx)
	return s
}

// collector is a minimal basics.VertexConsumer backed by a Corner
// slice, the sink CalcCap/CalcJoin write their output vertices into.
type collector struct {
	corners []tessellate.Corner
}

func (c *collector) Add(x, y float64) {
	c.corners = append(c.corners, tessellate.Corner{X: x, Y: y})
}

func (c *collector) RemoveAll() { c.corners = c.corners[:0] }

// buildVertexDist converts a corner list into MathStroke's
// VertexDist form, with Dist holding the distance from each vertex to
// its successor (wrapping for closed contours; unset for an open
// contour's last vertex).
func buildVertexDist(corners []tessellate.Corner, closed bool) []basics.VertexDist {
	n := len(corners)
	out := make([]basics.VertexDist, n)
	for i, c := range corners {
		out[i] = basics.VertexDist{X: c.X, Y: c.Y}
	}
	for i := 0; i < n; i++ {
		var next int
		if i == n-1 {
			if !closed {
				continue
			}
			next = 0
		} else {
			next = i + 1
		}
		out[i].CalculateDistance(out[next])
	}
	return out
}

func getPrev(v []basics.VertexDist, idx int, closed bool) basics.VertexDist {
	if idx == 0 {
		if closed && len(v) > 1 {
			return v[len(v)-1]
		}
		return v[0]
	}
	return v[idx-1]
}

func getCurr(v []basics.VertexDist, idx int) basics.VertexDist { return v[idx] }

func getNext(v []basics.VertexDist, idx int, closed bool) basics.VertexDist {
	if idx >= len(v)-1 {
		if closed && len(v) > 1 {
			return v[0]
		}
		return v[len(v)-1]
	}
	return v[idx+1]
}

// Expand offsets a single contour (already flattened into straight
// segments by the tessellator) into its stroked outline. closed
// indicates whether the source subpath carried an explicit Close; for
// a closed contour, corners must NOT repeat the first point as a
// trailing duplicate (Expand strips one automatically if present).
// Returns nil (a silent no-op, per spec.md) when the contour has too
// few vertices, when the stroke width is zero, or when Hairline is set
// (hairlines are drawn directly instead of expanded).
func Expand(corners []tessellate.Corner, closed bool, p Params) []tessellate.Contour {
	if p.Hairline || p.Width == 0 {
		return nil
	}
	if closed && len(corners) >= 2 {
		first, last := corners[0], corners[len(corners)-1]
		if first.X == last.X && first.Y == last.Y {
			corners = corners[:len(corners)-1]
		}
	}

	minVertices := 2
	if closed {
		minVertices = 3
	}
	if len(corners) < minVertices {
		return nil
	}

	vd := buildVertexDist(corners, closed)
	stroker := newStroker(p)

	if !closed {
		return []tessellate.Contour{expandOpen(stroker, vd)}
	}
	outer := expandClosedForward(stroker, vd)
	inner := expandClosedReverse(stroker, vd)
	return []tessellate.Contour{outer, inner}
}

// expandOpen walks an open polyline's start cap, forward joins, end
// cap, and reverse joins into a single closed outline — the
// rasterizer then fills it with non-zero winding.
func expandOpen(stroker *basics.MathStroke, vd []basics.VertexDist) tessellate.Contour {
	var out collector
	n := len(vd)

	var c collector
	stroker.CalcCap(&c, vd[0], vd[1], vd[0].Dist)
	out.corners = append(out.corners, c.corners...)

	for i := 1; i < n-1; i++ {
		v0 := getPrev(vd, i, false)
		v1 := getCurr(vd, i)
		v2 := getNext(vd, i, false)
		stroker.CalcJoin(&c, v0, v1, v2, v0.Dist, v1.Dist)
		out.corners = append(out.corners, c.corners...)
	}

	stroker.CalcCap(&c, vd[n-1], vd[n-2], vd[n-2].Dist)
	out.corners = append(out.corners, c.corners...)

	for i := n - 2; i >= 1; i-- {
		v0 := getNext(vd, i, false)
		v1 := getCurr(vd, i)
		v2 := getPrev(vd, i, false)
		stroker.CalcJoin(&c, v0, v1, v2, v1.Dist, v2.Dist)
		out.corners = append(out.corners, c.corners...)
	}

	closeContour(&out)
	return tessellate.Contour{Corners: out.corners}
}

// expandClosedForward is the outer loop of a closed contour's stroke:
// a join at every vertex, walked forward, wound the same direction as
// the source contour.
func expandClosedForward(stroker *basics.MathStroke, vd []basics.VertexDist) tessellate.Contour {
	var out, c collector
	n := len(vd)
	for i := 0; i < n; i++ {
		v0 := getPrev(vd, i, true)
		v1 := getCurr(vd, i)
		v2 := getNext(vd, i, true)
		stroker.CalcJoin(&c, v0, v1, v2, v0.Dist, v1.Dist)
		out.corners = append(out.corners, c.corners...)
	}
	closeContour(&out)
	return tessellate.Contour{Corners: out.corners}
}

// expandClosedReverse is the inner loop: the same joins walked
// backward, producing the opposite winding so the non-zero fill rule
// treats it as a hole inside the outer loop.
func expandClosedReverse(stroker *basics.MathStroke, vd []basics.VertexDist) tessellate.Contour {
	var out, c collector
	n := len(vd)
	for i := n - 1; i >= 0; i-- {
		v0 := getNext(vd, i, true)
		v1 := getCurr(vd, i)
		v2 := getPrev(vd, i, true)
		stroker.CalcJoin(&c, v0, v1, v2, v1.Dist, v2.Dist)
		out.corners = append(out.corners, c.corners...)
	}
	closeContour(&out)
	return tessellate.Contour{Corners: out.corners}
}

func closeContour(c *collector) {
	if len(c.corners) == 0 {
		return
	}
	first := c.corners[0]
	last := c.corners[len(c.corners)-1]
	if first.X != last.X || first.Y != last.Y {
		c.corners = append(c.corners, first)
	}
}
