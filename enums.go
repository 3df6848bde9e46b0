package raster2d

import (
	"github.com/inkloom/raster2d/internal/basics"
	"github.com/inkloom/raster2d/internal/compositor"
	"github.com/inkloom/raster2d/internal/rasterizer"
	"github.com/inkloom/raster2d/internal/transform"
)

// TransAffine is the 2x3 affine matrix used for the coordinate
// transform stack.
type TransAffine = transform.TransAffine

// Operator is the closed set of Porter-Duff and W3C blend-mode
// compositing operators a Context can draw with.
type Operator = compositor.Operator

const (
	Clear         = compositor.Clear
	Src           = compositor.Src
	Dst           = compositor.Dst
	SrcOver       = compositor.SrcOver
	DstOver       = compositor.DstOver
	SrcIn         = compositor.SrcIn
	DstIn         = compositor.DstIn
	SrcOut        = compositor.SrcOut
	DstOut        = compositor.DstOut
	SrcAtop       = compositor.SrcAtop
	DstAtop       = compositor.DstAtop
	Xor           = compositor.Xor
	Plus          = compositor.Plus
	PlusLighter   = compositor.PlusLighter
	Multiply      = compositor.Multiply
	Screen        = compositor.Screen
	Overlay       = compositor.Overlay
	Darken        = compositor.Darken
	Lighten       = compositor.Lighten
	ColorDodge    = compositor.ColorDodge
	ColorBurn     = compositor.ColorBurn
	HardLight     = compositor.HardLight
	SoftLight     = compositor.SoftLight
	Difference    = compositor.Difference
	Exclusion     = compositor.Exclusion
	HSLHue        = compositor.HSLHue
	HSLSaturation = compositor.HSLSaturation
	HSLColor      = compositor.HSLColor
	HSLLuminosity = compositor.HSLLuminosity
)

// FillRule selects how a filled path's winding decides interior vs
// exterior.
type FillRule = rasterizer.FillRule

const (
	NonZero = rasterizer.NonZero
	EvenOdd = rasterizer.EvenOdd
)

// AAMode selects the antialiasing technique a Fill or Stroke uses.
type AAMode = rasterizer.AAMode

const (
	AANone          = rasterizer.AANone
	AASupersample4x = rasterizer.AASupersample4x
	AAMultisample4x = rasterizer.AAMultisample4x
)

// LineCap selects how an open subpath's endpoints are capped when
// stroked.
type LineCap = basics.LineCap

const (
	ButtCap   = basics.ButtCap
	SquareCap = basics.SquareCap
	RoundCap  = basics.RoundCap
)

// LineJoin selects how a stroke's outer corners are joined.
type LineJoin = basics.LineJoin

const (
	MiterJoin       = basics.MiterJoin
	MiterJoinRevert = basics.MiterJoinRevert
	RoundJoin       = basics.RoundJoin
	BevelJoin       = basics.BevelJoin
	MiterJoinRound  = basics.MiterJoinRound
)

// InnerJoin selects how a stroke's inner corners (the concave side of
// a turn) are joined.
type InnerJoin = basics.InnerJoin

const (
	InnerBevel = basics.InnerBevel
	InnerMiter = basics.InnerMiter
	InnerJag   = basics.InnerJag
	InnerRound = basics.InnerRound
)
