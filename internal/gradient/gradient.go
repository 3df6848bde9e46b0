// Package gradient implements the Linear, Radial, and Conic gradient
// geometries, their stop lists, and the 256-entry color lookup table
// used to sample them without re-interpolating on every pixel.
package gradient

import (
	"math"

	"github.com/inkloom/raster2d/internal/color"
	"github.com/inkloom/raster2d/internal/transform"
)

// Spread controls how a gradient's parameter t is mapped back into
// [0,1] once it falls outside the defined range.
type Spread uint8

const (
	Pad Spread = iota
	Repeat
	Reflect
)

// apply folds t into [0,1] per the spread mode.
func (s Spread) apply(t float64) float64 {
	switch s {
	case Repeat:
		t -= math.Floor(t)
		return t
	case Reflect:
		t -= 2 * math.Floor(t/2)
		if t > 1 {
			t = 2 - t
		}
		return t
	default: // Pad
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

// HueDirection names the hue-interpolation rule for the hsl method.
type HueDirection uint8

const (
	HueShorter HueDirection = iota
	HueLonger
	HueIncreasing
	HueDecreasing
)

// Method is the stop color-space interpolation method.
type Method struct {
	Kind interpKind
	Hue  HueDirection
}

type interpKind uint8

const (
	LinearRGB interpKind = iota
	SRGB
	HSL
)

// MethodLinearRGB interpolates premultiplied linear RGBA, the default.
func MethodLinearRGB() Method { return Method{Kind: LinearRGB} }

// MethodSRGB interpolates in sRGB-encoded space.
func MethodSRGB() Method { return Method{Kind: SRGB} }

// MethodHSL interpolates in HSL using the given hue-direction rule.
func MethodHSL(dir HueDirection) Method { return Method{Kind: HSL, Hue: dir} }

// Stop is a single color stop at a normalized offset.
type Stop struct {
	Offset float64
	Color  color.Color
}

// Geometry computes the gradient's scalar parameter t at a point in
// gradient space, and reports whether the point has a defined value
// (false for degenerate radial cases such as two zero-radius circles).
type Geometry interface {
	Parameter(x, y float64) (t float64, ok bool)
}

// Linear is the two-point axis gradient: t is the point's normalized
// projection onto the segment (x0,y0)-(x1,y1).
type Linear struct {
	X0, Y0, X1, Y1 float64
}

func (g Linear) Parameter(x, y float64) (float64, bool) {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, false
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq
	return t, true
}

// Radial is the two-circle formulation (as used by CSS and SVG radial
// gradients): the start circle (C0,R0) morphs into the end circle
// (C1,R1) as t goes from 0 to 1.
type Radial struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
}

// Parameter solves the standard two-circle quadratic for the point
// (x,y): the interpolated circle centered at (cx(t),cy(t)) with radius
// r(t) passes through the point. It returns the larger root if its
// r(t) > 0, otherwise the smaller root if its r(t) > 0. t is not
// limited to [0,1]; the gradient's Spread folds it afterwards.
func (g Radial) Parameter(x, y float64) (float64, bool) {
	dx, dy, dr := g.X1-g.X0, g.Y1-g.Y0, g.R1-g.R0

	a := dx*dx + dy*dy - dr*dr
	fx, fy := x-g.X0, y-g.Y0
	b := 2 * (fx*dx + fy*dy + g.R0*dr)
	c := fx*fx + fy*fy - g.R0*g.R0

	if a == 0 {
		// Equal radii (or radii varying at exactly the rate that
		// cancels the quadratic term): degenerates to a linear
		// equation in t, producing a band pattern.
		if b == 0 {
			return 0, false
		}
		t := c / b
		if g.R0+t*dr <= 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (b + sq) / (2 * a)
	t1 := (b - sq) / (2 * a)
	if t0 < t1 {
		t0, t1 = t1, t0
	}
	if g.R0+t0*dr > 0 {
		return t0, true
	}
	if g.R0+t1*dr > 0 {
		return t1, true
	}
	return 0, false
}

// Conic is the angular (sweep) gradient: t is the fraction of a full
// turn from StartAngle (radians) to the point's bearing from Center.
type Conic struct {
	CenterX, CenterY float64
	StartAngle       float64
}

func (g Conic) Parameter(x, y float64) (float64, bool) {
	theta := math.Atan2(y-g.CenterY, x-g.CenterX) - g.StartAngle
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta / twoPi, true
}

// Gradient pairs a geometry, its stop list, interpolation method,
// spread, and an optional user-to-gradient-space transform.
type Gradient struct {
	Geometry  Geometry
	Stops     []Stop
	Method    Method
	Spread    Spread
	Transform *transform.TransAffine // nil means identity
	lut       *lut
}

// New builds a gradient and precomputes its LUT. Stops need not be
// pre-sorted; New clamps and sorts them. Stops that share an offset
// are kept and form a hard edge in the LUT.
func New(geom Geometry, stops []Stop, method Method, spread Spread, xform *transform.TransAffine) *Gradient {
	g := &Gradient{Geometry: geom, Stops: normalizeStops(stops), Method: method, Spread: spread, Transform: xform}
	g.lut = buildLUT(g.Stops, method)
	return g
}

// Sample evaluates the gradient at a device-space point, returning the
// interpolated linear-light color (a Color, so unpremultiplied). ok is false when the point
// falls in a geometry's undefined region (e.g. outside a degenerate
// radial's band, or both radial circles have zero radius).
func (g *Gradient) Sample(x, y float64) (color.Color, bool) {
	if g.Transform != nil {
		g.Transform.InverseTransform(&x, &y)
	}
	t, ok := g.Geometry.Parameter(x, y)
	if !ok {
		return color.Color{}, false
	}
	t = g.Spread.apply(t)
	return g.lut.at(t), true
}
