// Package raster2d is a pure-software 2D vector graphics library:
// path construction, polygon tessellation and rasterization under
// three antialiasing modes, Porter-Duff and W3C blend-mode
// compositing, gradients, patterns, and stroke expansion. Context is
// its single entry point — a thin coordinator that owns no
// rasterization logic of its own, delegating to the internal
// packages for every operation.
package raster2d

import (
	"github.com/inkloom/raster2d/internal/color"
	"github.com/inkloom/raster2d/internal/path"
	"github.com/inkloom/raster2d/internal/pattern"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/inkloom/raster2d/internal/rasterizer"
	"github.com/inkloom/raster2d/internal/rerr"
	"github.com/inkloom/raster2d/internal/stroke"
	"github.com/inkloom/raster2d/internal/surface"
	"github.com/inkloom/raster2d/internal/tessellate"
	"github.com/inkloom/raster2d/internal/transform"
)

// state is the saveable portion of a Context's graphics state — the
// part Save/Restore pushes and pops.
type state struct {
	transform *transform.TransAffine

	fill   *pattern.Pattern
	stroke *pattern.Pattern

	operator Operator
	opacity  float64

	fillRule FillRule
	aaMode   AAMode

	lineWidth       float64
	lineCap         LineCap
	lineJoin        LineJoin
	innerJoin       InnerJoin
	miterLimit      float64
	innerMiterLimit float64
	hairline        bool

	dashes    []float64
	dashStart float64

	tolerance tessellate.Tolerance
}

func newState() *state {
	black := pattern.Solid(pixel.FromColor(color.RGBA(0, 0, 0, 1), pixel.RGBA8888))
	return &state{
		transform:       transform.NewTransAffine(),
		fill:            black,
		stroke:          black,
		operator:        SrcOver,
		opacity:         1.0,
		fillRule:        NonZero,
		aaMode:          AAMultisample4x,
		lineWidth:       1.0,
		lineCap:         ButtCap,
		lineJoin:        MiterJoin,
		innerJoin:       InnerMiter,
		miterLimit:      10.0,
		innerMiterLimit: 1.01,
		tolerance:       tessellate.DefaultTolerance(),
	}
}

func (s *state) clone() *state {
	c := *s
	c.transform = s.transform.Copy()
	if s.dashes != nil {
		c.dashes = append([]float64(nil), s.dashes...)
	}
	return &c
}

// Context is the library's façade: it owns a target Surface, the
// current path under construction, and a stack of graphics state
// (transform, source patterns, stroke parameters, fill rule, AA mode,
// operator, opacity, dash pattern, tolerance).
type Context struct {
	surface *surface.Surface
	path    *path.Path

	st    *state
	saved []*state
}

// NewContext allocates a width x height surface in format and returns
// a Context targeting it. Returns ErrUnsupportedPixelFormat for a
// non-positive width or height.
func NewContext(width, height int, format pixel.Format) (*Context, error) {
	s, err := surface.New(width, height, format)
	if err != nil {
		return nil, err
	}
	return &Context{surface: s, path: path.New(), st: newState()}, nil
}

// Surface returns the context's target surface.
func (ctx *Context) Surface() *surface.Surface { return ctx.surface }

// Width returns the surface width in pixels.
func (ctx *Context) Width() int { return ctx.surface.Width() }

// Height returns the surface height in pixels.
func (ctx *Context) Height() int { return ctx.surface.Height() }

// Clear fills the entire surface with c under Src (replacing,
// ignoring any existing content).
func (ctx *Context) Clear(c color.Color) {
	p := pixel.FromColor(c, ctx.surface.Format())
	for y := 0; y < ctx.Height(); y++ {
		ctx.surface.PaintStride(0, y, ctx.Width(), p)
	}
}

// Save pushes a copy of the current graphics state (transform,
// sources, stroke parameters, fill rule, AA mode, operator, opacity,
// dash, tolerance). It does not affect the current path.
func (ctx *Context) Save() {
	ctx.saved = append(ctx.saved, ctx.st)
	ctx.st = ctx.st.clone()
}

// Restore pops the most recently saved graphics state. A Restore with
// no matching Save is a no-op.
func (ctx *Context) Restore() {
	if len(ctx.saved) == 0 {
		return
	}
	ctx.st = ctx.saved[len(ctx.saved)-1]
	ctx.saved = ctx.saved[:len(ctx.saved)-1]
}

// deviceNodes returns the current path's nodes transformed by the
// current CTM into device space, leaving the stored path (in user
// space) untouched.
func (ctx *Context) deviceNodes() []path.Node {
	src := ctx.path.Nodes()
	nodes := make([]path.Node, len(src))
	copy(nodes, src)
	path.TransformNodes(nodes, ctx.st.transform)
	return nodes
}

// Fill rasterizes the current path's interior under the current fill
// rule, AA mode, fill source, operator, and opacity. It does not
// clear the path afterward — callers call BeginPath explicitly,
// matching the teacher's own Fill/Stroke split.
func (ctx *Context) Fill() error {
	poly := tessellate.Tessellate(ctx.deviceNodes(), ctx.st.tolerance)
	return rasterizer.Fill(ctx.surface, poly, ctx.st.fillRule, ctx.st.aaMode, ctx.st.fill, ctx.st.operator, ctx.st.opacity)
}

// Stroke expands the current path into its stroke outline (applying
// the current dash pattern first, if any) and fills that outline
// under the current AA mode, stroke source, operator, and opacity. A
// Hairline stroke instead draws each subpath segment directly via
// DrawHairline, bypassing stroke expansion and polygon fill.
func (ctx *Context) Stroke() error {
	subpaths := tessellate.TessellateSubpaths(ctx.deviceNodes(), ctx.st.tolerance)

	if ctx.st.hairline {
		for _, sp := range subpaths {
			ctx.strokeHairline(sp)
		}
		return nil
	}

	params := stroke.Params{
		Width:           ctx.st.lineWidth,
		Cap:             ctx.st.lineCap,
		Join:            ctx.st.lineJoin,
		InnerJoin:       ctx.st.innerJoin,
		MiterLimit:      ctx.st.miterLimit,
		InnerMiterLimit: ctx.st.innerMiterLimit,
		ApproxScale:     ctx.st.transform.GetScale(),
	}

	var contours []tessellate.Contour
	for _, sp := range subpaths {
		corners := sp.Corners
		closed := sp.Closed

		if len(ctx.st.dashes) > 0 {
			dp := dashPattern(ctx.st.dashes, ctx.st.dashStart)
			for _, run := range stroke.SplitDash(corners, closed, dp) {
				contours = append(contours, stroke.Expand(run.Corners, false, params)...)
			}
			continue
		}
		contours = append(contours, stroke.Expand(corners, closed, params)...)
	}

	poly := &tessellate.Polygon{Contours: contours}
	poly.RebuildEdges()
	return rasterizer.Fill(ctx.surface, poly, NonZero, ctx.st.aaMode, ctx.st.stroke, ctx.st.operator, ctx.st.opacity)
}

func (ctx *Context) strokeHairline(sp tessellate.Subpath) {
	c := sp.Corners
	n := len(c)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		rasterizer.DrawHairline(ctx.surface, c[i].X, c[i].Y, c[i+1].X, c[i+1].Y, ctx.st.stroke, ctx.st.operator, ctx.st.opacity)
	}
	if sp.Closed {
		rasterizer.DrawHairline(ctx.surface, c[n-1].X, c[n-1].Y, c[0].X, c[0].Y, ctx.st.stroke, ctx.st.operator, ctx.st.opacity)
	}
}

func dashPattern(dashes []float64, start float64) stroke.DashPattern {
	d := dashes
	if len(d)%2 != 0 {
		d = append(append([]float64(nil), d...), d...)
	}
	return stroke.DashPattern{Dashes: d, Start: start}
}

// AllocationFailureFor wraps err as the library's allocation-failure
// kind, for callers of Context that manage their own scratch buffers
// alongside it (e.g. a caller-provided mask surface).
func AllocationFailureFor(ctx string, err error) error {
	return rerr.Allocation(ctx, err)
}
