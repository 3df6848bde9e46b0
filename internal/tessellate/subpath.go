package tessellate

import (
	"github.com/inkloom/raster2d/internal/curves"
	"github.com/inkloom/raster2d/internal/path"
)

// Subpath is one user subpath's flattened corner sequence plus
// whether it carried an explicit Close command — the representation
// the stroke expander needs, as opposed to Tessellate's Polygon,
// which always closes every contour for fill purposes regardless of
// whether the source subpath was actually closed.
type Subpath struct {
	Corners []Corner
	Closed  bool
}

// TessellateSubpaths flattens nodes the same way Tessellate does
// (straight segments kept as-is, curves flattened via
// internal/curves.FlattenCubic) but keeps each subpath separate and
// preserves its open/closed state instead of force-closing it.
func TessellateSubpaths(nodes []path.Node, tol Tolerance) []Subpath {
	var result []Subpath
	var cur []Corner
	var curX, curY, startX, startY float64
	haveCur := false
	closed := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		result = append(result, Subpath{Corners: cur, Closed: closed})
		cur = nil
		closed = false
	}
	appendCorner := func(x, y float64) {
		cur = append(cur, Corner{X: x, Y: y})
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
			closed = true
			flush()
			curX, curY = startX, startY
			haveCur = false
		}
	}
	flush()
	return result
}
