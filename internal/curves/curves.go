// Package curves flattens cubic Bezier curves into polylines using
// recursive de Casteljau subdivision to within a distance tolerance.
package curves

import (
	"math"

	"github.com/inkloom/raster2d/internal/basics"
)

// Tolerance knobs, grounded on AGG's curve subdivision constants.
const (
	CollinearityEpsilon   = 1e-30
	AngleToleranceEpsilon = 0.01
	RecursionLimit   uint = 32
)

// CubicParams is the four control points of a cubic Bezier segment.
type CubicParams struct {
	X1, Y1, X2, Y2, X3, Y3, X4, Y4 float64
}

// FlattenCubic subdivides a cubic Bezier into a polyline within
// distanceTolerance (device-space units) and returns the interior
// points; the caller supplies the start/end points separately.
//
// angleTolerance, when >= AngleToleranceEpsilon, adds a second test
// once the distance criterion is met: subdivision stops only if the
// direction change is below the given radians, so sharply turning
// sections are subdivided further. cuspLimit, when > 0, forces a stop
// at sharp cusps rather than subdividing indefinitely.
func FlattenCubic(p CubicParams, distanceTolerance, angleTolerance, cuspLimit float64) []basics.PointD {
	pts := make([]basics.PointD, 0, 16)
	distanceToleranceSquare := distanceTolerance * distanceTolerance
	pts = recursiveBezier(pts, p.X1, p.Y1, p.X2, p.Y2, p.X3, p.Y3, p.X4, p.Y4,
		0, distanceToleranceSquare, angleTolerance, cuspLimit)
	return pts
}

// recursiveBezier implements AGG's curve4_div subdivision criterion:
// collinearity first, then a distance-from-chord test, then an optional
// angle test that keeps subdividing sharply turning sections.
func recursiveBezier(pts []basics.PointD, x1, y1, x2, y2, x3, y3, x4, y4 float64,
	level uint, distanceToleranceSquare, angleTolerance, cuspLimit float64,
) []basics.PointD {
	if level > RecursionLimit {
		return pts
	}

	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x34 := (x3 + x4) / 2
	y34 := (y3 + y4) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	dx := x4 - x1
	dy := y4 - y1

	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	collinCase := 0
	if d2 > CollinearityEpsilon {
		collinCase |= 2
	}
	if d3 > CollinearityEpsilon {
		collinCase |= 1
	}

	switch collinCase {
	case 0:
		// All four points collinear (or p1 == p4): a single chord check.
		k := dx*dx + dy*dy
		if k == 0 {
			d2 = basics.CalcSqDistance(x1, y1, x2, y2)
			d3 = basics.CalcSqDistance(x4, y4, x3, y3)
		} else {
			k = 1 / k
			da1 := (x2-x1)*dx + (y2-y1)*dy
			d2 = k * da1
			da1 = (x3-x1)*dx + (y3-y1)*dy
			d3 = k * da1
			if d2 > 0 && d2 < 1 && d3 > 0 && d3 < 1 {
				return pts
			}
			d2 = chordDistSq(d2, x2, y2, x1, y1, x4, y4, dx, dy)
			d3 = chordDistSq(d3, x3, y3, x1, y1, x4, y4, dx, dy)
		}
		if d2 > d3 {
			if d2 < distanceToleranceSquare {
				return append(pts, basics.PointD{X: x2, Y: y2})
			}
		} else if d3 < distanceToleranceSquare {
			return append(pts, basics.PointD{X: x3, Y: y3})
		}

	case 1:
		// p1,p2,p4 collinear, p3 is the only bend.
		if d3*d3 <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if angleTolerance < AngleToleranceEpsilon {
				return append(pts, basics.PointD{X: x23, Y: y23})
			}
			da := math.Abs(math.Atan2(y4-y3, x4-x3) - math.Atan2(y3-y2, x3-x2))
			if da >= basics.Pi {
				da = 2*basics.Pi - da
			}
			if da < angleTolerance {
				pts = append(pts, basics.PointD{X: x2, Y: y2})
				return append(pts, basics.PointD{X: x3, Y: y3})
			}
			if cuspLimit != 0 && da > cuspLimit {
				return append(pts, basics.PointD{X: x3, Y: y3})
			}
		}

	case 2:
		// p1,p3,p4 collinear, p2 is the only bend.
		if d2*d2 <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if angleTolerance < AngleToleranceEpsilon {
				return append(pts, basics.PointD{X: x23, Y: y23})
			}
			da := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da >= basics.Pi {
				da = 2*basics.Pi - da
			}
			if da < angleTolerance {
				pts = append(pts, basics.PointD{X: x2, Y: y2})
				return append(pts, basics.PointD{X: x3, Y: y3})
			}
			if cuspLimit != 0 && da > cuspLimit {
				return append(pts, basics.PointD{X: x2, Y: y2})
			}
		}

	default:
		// General case: both d2 and d3 measure real curvature.
		if (d2+d3)*(d2+d3) <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if angleTolerance < AngleToleranceEpsilon {
				return append(pts, basics.PointD{X: x23, Y: y23})
			}
			da1 := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			da2 := math.Abs(math.Atan2(y4-y3, x4-x3) - math.Atan2(y3-y2, x3-x2))
			if da1 >= basics.Pi {
				da1 = 2*basics.Pi - da1
			}
			if da2 >= basics.Pi {
				da2 = 2*basics.Pi - da2
			}
			if da1+da2 < angleTolerance {
				pts = append(pts, basics.PointD{X: x2, Y: y2})
				return append(pts, basics.PointD{X: x3, Y: y3})
			}
			if cuspLimit != 0 {
				if da1 > cuspLimit {
					return append(pts, basics.PointD{X: x2, Y: y2})
				}
				if da2 > cuspLimit {
					return append(pts, basics.PointD{X: x3, Y: y3})
				}
			}
		}
	}

	pts = recursiveBezier(pts, x1, y1, x12, y12, x123, y123, x1234, y1234,
		level+1, distanceToleranceSquare, angleTolerance, cuspLimit)
	pts = recursiveBezier(pts, x1234, y1234, x234, y234, x34, y34, x4, y4,
		level+1, distanceToleranceSquare, angleTolerance, cuspLimit)
	return pts
}

func chordDistSq(t, px, py, x1, y1, x4, y4, dx, dy float64) float64 {
	switch {
	case t <= 0:
		return basics.CalcSqDistance(px, py, x1, y1)
	case t >= 1:
		return basics.CalcSqDistance(px, py, x4, y4)
	default:
		return basics.CalcSqDistance(px, py, x1+t*dx, y1+t*dy)
	}
}
