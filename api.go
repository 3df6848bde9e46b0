package raster2d

import (
	"github.com/inkloom/raster2d/internal/color"
	"github.com/inkloom/raster2d/internal/pattern"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/inkloom/raster2d/internal/rerr"
)

// BeginPath discards the current path, starting a fresh one. Graphics
// state (transform, sources, stroke parameters) is untouched.
func (ctx *Context) BeginPath() {
	ctx.path.Reset()
}

// MoveTo starts a new subpath at (x, y), in user space.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.path.MoveTo(x, y)
}

// LineTo appends a straight segment to (x, y), in user space.
func (ctx *Context) LineTo(x, y float64) {
	ctx.path.LineTo(x, y)
}

// CurveTo appends a cubic Bezier segment with the given control
// points, in user space.
func (ctx *Context) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctx.path.CurveTo(c1x, c1y, c2x, c2y, x, y)
}

// RelLineTo appends a line segment relative to the current point.
// Returns InvalidPath if the path has no current point.
func (ctx *Context) RelLineTo(dx, dy float64) error {
	return ctx.path.RelLineTo(dx, dy)
}

// RelCurveTo appends a cubic Bezier segment whose control and end
// points are relative to the current point. Returns InvalidPath if
// the path has no current point.
func (ctx *Context) RelCurveTo(c1dx, c1dy, c2dx, c2dy, dx, dy float64) error {
	return ctx.path.RelCurveTo(c1dx, c1dy, c2dx, c2dy, dx, dy)
}

// Arc appends a circular arc to the path; see internal/path.Path.Arc.
func (ctx *Context) Arc(cx, cy, r, theta0, theta1 float64, ccw bool) {
	ctx.path.Arc(cx, cy, r, theta0, theta1, ccw)
}

// ClosePath closes the current subpath back to its start.
func (ctx *Context) ClosePath() {
	ctx.path.Close()
}

// Translate prepends a translation to the current transform.
func (ctx *Context) Translate(x, y float64) { ctx.st.transform.Translate(x, y) }

// Scale prepends a uniform scale to the current transform.
func (ctx *Context) Scale(s float64) { ctx.st.transform.Scale(s) }

// ScaleXY prepends a non-uniform scale to the current transform.
func (ctx *Context) ScaleXY(sx, sy float64) { ctx.st.transform.ScaleXY(sx, sy) }

// Rotate prepends a rotation (radians) to the current transform.
func (ctx *Context) Rotate(angle float64) { ctx.st.transform.Rotate(angle) }

// SetTransform replaces the current transform wholesale.
func (ctx *Context) SetTransform(m *TransAffine) { ctx.st.transform = m.Copy() }

// Transform returns a copy of the current transform.
func (ctx *Context) Transform() *TransAffine { return ctx.st.transform.Copy() }

// ResetTransform restores the identity transform.
func (ctx *Context) ResetTransform() { ctx.st.transform.Reset() }

// DeviceToUserDistance maps a device-space vector (dx,dy) back into
// user space, ignoring translation. Returns InvalidTransform if the
// current transform is singular.
func (ctx *Context) DeviceToUserDistance(dx, dy float64) (float64, float64, error) {
	m := ctx.st.transform
	const epsilon = 1e-14
	if !m.IsValid(epsilon) {
		return 0, 0, rerr.InvalidTransform("device_to_user_distance")
	}
	inv := m.Copy().Invert()
	rx, ry := dx, dy
	inv.Transform2x2(&rx, &ry)
	return rx, ry, nil
}

// SetSourceColor sets the fill and stroke source to a solid color.
func (ctx *Context) SetSourceColor(c color.Color) {
	p := pattern.Solid(pixel.FromColor(c, ctx.surface.Format()))
	ctx.st.fill = p
	ctx.st.stroke = p
}

// SetSource sets the fill and stroke source to an arbitrary pattern
// (solid, gradient, surface mask, or dithered wrapper).
func (ctx *Context) SetSource(p *pattern.Pattern) {
	ctx.st.fill = p
	ctx.st.stroke = p
}

// SetFillSource sets only the fill source, leaving the stroke source
// unchanged.
func (ctx *Context) SetFillSource(p *pattern.Pattern) { ctx.st.fill = p }

// SetStrokeSource sets only the stroke source, leaving the fill
// source unchanged.
func (ctx *Context) SetStrokeSource(p *pattern.Pattern) { ctx.st.stroke = p }

// SetOperator sets the compositing operator used by subsequent Fill
// and Stroke calls.
func (ctx *Context) SetOperator(op Operator) { ctx.st.operator = op }

// SetOpacity sets the global alpha multiplier, clamped to [0, 1].
func (ctx *Context) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	ctx.st.opacity = opacity
}

// SetFillRule sets the winding rule used by Fill.
func (ctx *Context) SetFillRule(rule FillRule) { ctx.st.fillRule = rule }

// SetAAMode sets the antialiasing technique used by Fill and Stroke.
func (ctx *Context) SetAAMode(mode AAMode) { ctx.st.aaMode = mode }

// SetTolerance sets the curve-flattening tolerance.
func (ctx *Context) SetTolerance(distance, angle, cusp float64) {
	ctx.st.tolerance.Distance = distance
	ctx.st.tolerance.Angle = angle
	ctx.st.tolerance.Cusp = cusp
}

// SetLineWidth sets the stroke width.
func (ctx *Context) SetLineWidth(w float64) { ctx.st.lineWidth = w }

// SetLineCap sets the stroke's endpoint cap style.
func (ctx *Context) SetLineCap(lc LineCap) { ctx.st.lineCap = lc }

// SetLineJoin sets the stroke's outer corner join style.
func (ctx *Context) SetLineJoin(join LineJoin) { ctx.st.lineJoin = join }

// SetInnerJoin sets the stroke's inner corner join style.
func (ctx *Context) SetInnerJoin(join InnerJoin) { ctx.st.innerJoin = join }

// SetMiterLimit sets the outer miter limit.
func (ctx *Context) SetMiterLimit(limit float64) { ctx.st.miterLimit = limit }

// SetInnerMiterLimit sets the inner miter limit.
func (ctx *Context) SetInnerMiterLimit(limit float64) { ctx.st.innerMiterLimit = limit }

// SetHairline enables or disables hairline stroking, which bypasses
// stroke expansion and draws each segment as a single antialiased
// line regardless of line width.
func (ctx *Context) SetHairline(hairline bool) { ctx.st.hairline = hairline }

// SetDash sets the dash pattern and starting phase. An odd-length
// dashes slice is logically doubled, matching the external interface.
// A nil or empty slice disables dashing.
func (ctx *Context) SetDash(dashes []float64, start float64) {
	ctx.st.dashes = append([]float64(nil), dashes...)
	ctx.st.dashStart = start
}
