// Package tessellate flattens a path node stream into the Polygon
// representation the rasterizer walks: closed contours of device-space
// corners, an overall extent, and an edge index sorted by minimum y.
package tessellate

import (
	"math"
	"sort"

	"github.com/inkloom/raster2d/internal/curves"
	"github.com/inkloom/raster2d/internal/path"
)

// Corner is a single vertex of a tessellated contour, in device space.
type Corner struct {
	X, Y float64
}

// Contour is a cyclic list of corners; by construction the last
// corner always equals the first (the contour is closed) except for
// the single-point degenerate case produced by a zero-length LineTo.
type Contour struct {
	Corners []Corner
}

// Edge is a non-horizontal segment of the active-edge structure: its
// x position advances by DxPerScanline each scanline from YTop to
// YBot, and Winding is +1 or -1 per the direction the contour was
// wound.
type Edge struct {
	XNow          float64
	DxPerScanline float64
	YTop, YBot    float64
	Winding       int
}

// Polygon is the tessellation output: a set of contours plus the
// derived extent and edge index the scanline rasterizer consumes.
type Polygon struct {
	Contours []Contour

	ExtentLeft, ExtentTop, ExtentRight, ExtentBottom float64

	// Edges is sorted by YTop ascending, ready for the active-edge
	// list to consume by appending edges as y reaches their YTop.
	Edges []Edge

	// Breakpoints holds the distinct y-values at which the active
	// edge set changes (every YTop and YBot), ascending and deduped.
	Breakpoints []float64
}

// Tolerance bundles the curve-flattening parameters the tessellator
// applies to every CurveTo node.
type Tolerance struct {
	Distance float64 // default 0.1 device-space units
	Angle    float64 // radians; 0 disables the angle refinement
	Cusp     float64 // 0 disables the cusp limit
}

// DefaultTolerance matches spec's default flattening tolerance.
func DefaultTolerance() Tolerance { return Tolerance{Distance: 0.1} }

// Tessellate flattens nodes into a Polygon. Nodes are assumed already
// in device space (Context maps its user-space path with
// path.TransformNodes before calling).
func Tessellate(nodes []path.Node, tol Tolerance) *Polygon {
	p := &Polygon{ExtentLeft: math.Inf(1), ExtentTop: math.Inf(1), ExtentRight: math.Inf(-1), ExtentBottom: math.Inf(-1)}

	var cur Contour
	var curX, curY, startX, startY float64
	haveCur := false

	flush := func() {
		if len(cur.Corners) == 0 {
			return
		}
		if len(cur.Corners) == 1 {
			// Degenerate zero-length contour: keep as a single-point
			// contour (round caps still render a dot) but it
			// contributes no edges.
			p.Contours = append(p.Contours, cur)
			cur = Contour{}
			return
		}
		first := cur.Corners[0]
		last := cur.Corners[len(cur.Corners)-1]
		if first.X != last.X || first.Y != last.Y {
			cur.Corners = append(cur.Corners, first)
		}
		p.Contours = append(p.Contours, cur)
		cur = Contour{}
	}

	appendCorner := func(x, y float64) {
		cur.Corners = append(cur.Corners, Corner{X: x, Y: y})
		if x < p.ExtentLeft {
			p.ExtentLeft = x
		}
		if x > p.ExtentRight {
			p.ExtentRight = x
		}
		if y < p.ExtentTop {
			p.ExtentTop = y
		}
		if y > p.ExtentBottom {
			p.ExtentBottom = y
		}
	}

	for _, n := range nodes {
		switch n.Kind {
		case path.NodeMoveTo:
			flush()
			appendCorner(n.X, n.Y)
			curX, curY = n.X, n.Y
			startX, startY = n.X, n.Y
			haveCur = true
		case path.NodeLineTo:
			if !haveCur {
				appendCorner(n.X, n.Y)
				startX, startY = n.X, n.Y
				haveCur = true
			} else if n.X != curX || n.Y != curY {
				appendCorner(n.X, n.Y)
			}
			curX, curY = n.X, n.Y
		case path.NodeCurveTo:
			if !haveCur {
				appendCorner(curX, curY)
				startX, startY = curX, curY
				haveCur = true
			}
			pts := curves.FlattenCubic(curves.CubicParams{
				X1: curX, Y1: curY,
				X2: n.C1X, Y2: n.C1Y,
				X3: n.C2X, Y3: n.C2Y,
				X4: n.X, Y4: n.Y,
			}, tol.Distance, tol.Angle, tol.Cusp)
			for _, pt := range pts {
				appendCorner(pt.X, pt.Y)
			}
			appendCorner(n.X, n.Y)
			curX, curY = n.X, n.Y
		case path.NodeClose:
			if haveCur && (curX != startX || curY != startY) {
				appendCorner(startX, startY)
			}
			flush()
			curX, curY = startX, startY
			haveCur = false
		}
	}
	flush()

	p.buildEdges()
	return p
}

// RebuildEdges recomputes Edges/extent/Breakpoints from Contours —
// used when a Polygon's contours are assembled directly (e.g. from
// stroke expansion output) rather than via Tessellate.
func (p *Polygon) RebuildEdges() {
	p.ExtentLeft, p.ExtentTop = math.Inf(1), math.Inf(1)
	p.ExtentRight, p.ExtentBottom = math.Inf(-1), math.Inf(-1)
	p.Edges = nil
	p.Breakpoints = nil
	for _, c := range p.Contours {
		for _, corner := range c.Corners {
			if corner.X < p.ExtentLeft {
				p.ExtentLeft = corner.X
			}
			if corner.X > p.ExtentRight {
				p.ExtentRight = corner.X
			}
			if corner.Y < p.ExtentTop {
				p.ExtentTop = corner.Y
			}
			if corner.Y > p.ExtentBottom {
				p.ExtentBottom = corner.Y
			}
		}
	}
	p.buildEdges()
}

func (p *Polygon) buildEdges() {
	for _, c := range p.Contours {
		n := len(c.Corners)
		if n < 2 {
			continue
		}
		for i := 0; i < n-1; i++ {
			a, b := c.Corners[i], c.Corners[i+1]
			if a.Y == b.Y {
				continue // horizontal edges contribute zero coverage
			}
			winding := 1
			yTop, yBot := a.Y, b.Y
			xTop, xBot := a.X, b.X
			if a.Y > b.Y {
				winding = -1
				yTop, yBot = b.Y, a.Y
				xTop, xBot = b.X, a.X
			}
			dx := (xBot - xTop) / (yBot - yTop)
			p.Edges = append(p.Edges, Edge{
				XNow:          xTop,
				DxPerScanline: dx,
				YTop:          yTop,
				YBot:          yBot,
				Winding:       winding,
			})
		}
	}
	sort.Slice(p.Edges, func(i, j int) bool { return p.Edges[i].YTop < p.Edges[j].YTop })
	p.Breakpoints = computeBreakpoints(p.Edges)
}

func computeBreakpoints(edges []Edge) []float64 {
	if len(edges) == 0 {
		return nil
	}
	raw := make([]float64, 0, len(edges)*2)
	for _, e := range edges {
		raw = append(raw, e.YTop, e.YBot)
	}
	sort.Float64s(raw)
	out := raw[:0:0]
	for i, v := range raw {
		if i == 0 || v != raw[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// IsEmpty reports whether the polygon has no fillable geometry.
func (p *Polygon) IsEmpty() bool {
	return len(p.Edges) == 0
}
