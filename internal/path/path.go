// Package path holds a growable stream of path nodes — the output of
// the drawing surface's move/line/curve/close calls. Nodes keep the
// coordinates they were appended with; no transform is applied on
// append.
package path

import (
	"github.com/inkloom/raster2d/internal/basics"
	"github.com/inkloom/raster2d/internal/bezierarc"
	"github.com/inkloom/raster2d/internal/rerr"
	"github.com/inkloom/raster2d/internal/transform"
)

// NodeKind tags a Node's role in the stream.
type NodeKind uint8

const (
	NodeMoveTo NodeKind = iota
	NodeLineTo
	NodeCurveTo // cubic; quadratic is encoded with C1 == C2
	NodeClose
)

// Node is one entry of the path stream. Only the fields relevant to
// Kind are meaningful: MoveTo/LineTo use only X,Y; CurveTo uses all
// six coordinates; Close uses none.
type Node struct {
	Kind     NodeKind
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// Path is a growable node stream plus the pen state needed to resolve
// relative moves and no-op closes. Coordinates appended through
// MoveTo/LineTo/CurveTo/Arc are stored as given; the Path itself
// applies no transform. Context appends user-space coordinates and
// maps the whole stream with TransformNodes at Fill/Stroke time, using
// the transform current then, so a transform change made after a node
// was appended also applies to that node.
type Path struct {
	nodes        []Node
	curX, curY   float64
	startX       float64
	startY       float64
	hasCurrent   bool
	subpathOpen  bool
}

// New returns an empty path with room for 16 nodes pre-sized.
func New() *Path {
	return &Path{nodes: make([]Node, 0, 16)}
}

// NewWithCapacity pre-sizes the node stream for hot paths that know
// their vertex count ahead of time; semantically identical to New.
func NewWithCapacity(capacity int) *Path {
	return &Path{nodes: make([]Node, 0, capacity)}
}

// Nodes returns the accumulated node stream.
func (p *Path) Nodes() []Node { return p.nodes }

// Reset empties the path, discarding pen state.
func (p *Path) Reset() {
	p.nodes = p.nodes[:0]
	p.hasCurrent = false
	p.subpathOpen = false
}

// MoveTo starts a new subpath at (x, y). A MoveTo immediately
// following another MoveTo with no intervening drawing node collapses
// onto it — the last one wins.
func (p *Path) MoveTo(x, y float64) {
	if n := len(p.nodes); n > 0 && p.nodes[n-1].Kind == NodeMoveTo {
		p.nodes[n-1].X, p.nodes[n-1].Y = x, y
	} else {
		p.nodes = append(p.nodes, Node{Kind: NodeMoveTo, X: x, Y: y})
	}
	p.curX, p.curY = x, y
	p.startX, p.startY = x, y
	p.hasCurrent = true
	p.subpathOpen = true
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.nodes = append(p.nodes, Node{Kind: NodeLineTo, X: x, Y: y})
	p.curX, p.curY = x, y
}

// CurveTo appends a cubic Bezier segment with the given control
// points, ending at (x, y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.nodes = append(p.nodes, Node{
		Kind: NodeCurveTo,
		C1X:  c1x, C1Y: c1y,
		C2X: c2x, C2Y: c2y,
		X: x, Y: y,
	})
	p.curX, p.curY = x, y
}

// RelLineTo appends a line segment relative to the current point. It
// returns InvalidPath if there is no current point.
func (p *Path) RelLineTo(dx, dy float64) error {
	if !p.hasCurrent {
		return rerr.InvalidPath("rel_line_to")
	}
	p.LineTo(p.curX+dx, p.curY+dy)
	return nil
}

// RelCurveTo appends a cubic Bezier segment whose control and end
// points are relative to the current point. It returns InvalidPath if
// there is no current point.
func (p *Path) RelCurveTo(c1dx, c1dy, c2dx, c2dy, dx, dy float64) error {
	if !p.hasCurrent {
		return rerr.InvalidPath("rel_curve_to")
	}
	ox, oy := p.curX, p.curY
	p.CurveTo(ox+c1dx, oy+c1dy, ox+c2dx, oy+c2dy, ox+dx, oy+dy)
	return nil
}

// Close returns the pen to the last MoveTo. It is a no-op if the
// current subpath is empty (no drawing node since the last MoveTo),
// and idempotent — a second consecutive Close is a no-op.
func (p *Path) Close() {
	if !p.subpathOpen {
		return
	}
	if n := len(p.nodes); n == 0 || p.nodes[n-1].Kind == NodeMoveTo {
		return
	}
	if n := len(p.nodes); n > 0 && p.nodes[n-1].Kind == NodeClose {
		return
	}
	p.nodes = append(p.nodes, Node{Kind: NodeClose})
	p.curX, p.curY = p.startX, p.startY
	p.subpathOpen = false
}

// handleRatio is the cubic-Bezier approximation constant for a single
// circular quadrant: 4/3 * tan(pi/8).
const handleRatio = 0.5522847498

// Arc appends up to four cubic segments approximating the circular
// arc centered at (cx, cy) with radius r, sweeping from theta0 to
// theta1. ccw selects sweep direction. If the path has no current
// point the arc starts with an implicit MoveTo to its first point;
// otherwise a LineTo connects the current point to the arc start.
func (p *Path) Arc(cx, cy, r, theta0, theta1 float64, ccw bool) {
	sweep := theta1 - theta0
	if ccw && sweep < 0 {
		sweep += 2 * basics.Pi
	}
	if !ccw && sweep > 0 {
		sweep -= 2 * basics.Pi
	}

	arc := bezierarc.NewBezierArcWithParams(cx, cy, r, r, theta0, sweep)
	verts := arc.Vertices()
	if len(verts) < 2 {
		return
	}

	startX, startY := verts[0], verts[1]
	if !p.hasCurrent {
		p.MoveTo(startX, startY)
	} else if p.curX != startX || p.curY != startY {
		p.LineTo(startX, startY)
	}

	for i := 2; i+6 <= len(verts); i += 6 {
		p.CurveTo(verts[i], verts[i+1], verts[i+2], verts[i+3], verts[i+4], verts[i+5])
	}
}

// TransformNodes applies m to every coordinate of nodes in place; used
// to realize a Context's transform stack onto already-built nodes
// (e.g. when re-using a cached path under a new placement).
func TransformNodes(nodes []Node, m *transform.TransAffine) {
	for i := range nodes {
		switch nodes[i].Kind {
		case NodeMoveTo, NodeLineTo:
			m.Transform(&nodes[i].X, &nodes[i].Y)
		case NodeCurveTo:
			m.Transform(&nodes[i].C1X, &nodes[i].C1Y)
			m.Transform(&nodes[i].C2X, &nodes[i].C2Y)
			m.Transform(&nodes[i].X, &nodes[i].Y)
		}
	}
}
