package rasterizer

import (
	"math"

	"github.com/inkloom/raster2d/internal/compositor"
	"github.com/inkloom/raster2d/internal/pattern"
	"github.com/inkloom/raster2d/internal/surface"
)

// DrawHairline draws a single-pixel-wide antialiased line from
// (x0,y0) to (x1,y1) using Xiaolin Wu's algorithm, bypassing stroke
// expansion and polygon fill entirely — the fast path Context uses
// when the Hairline flag is set.
func DrawHairline(dst *surface.Surface, x0, y0, x1, y1 float64, src *pattern.Pattern, op compositor.Operator, opacity float64) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	plot := func(x, y int, cov float64) {
		if cov <= 0 {
			return
		}
		px, py := x, y
		if steep {
			px, py = y, x
		}
		p := src.At(px, py)
		dst.CompositeStride(px, py, 1, p, op, opacity*cov)
	}

	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	plot(xpxl1, ypxl1, rfpart(yend)*xgap)
	plot(xpxl1, ypxl1+1, fpart(yend)*xgap)
	intery := yend + gradient

	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	plot(xpxl2, ypxl2, rfpart(yend)*xgap)
	plot(xpxl2, ypxl2+1, fpart(yend)*xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		y := int(math.Floor(intery))
		plot(x, y, rfpart(intery))
		plot(x, y+1, fpart(intery))
		intery += gradient
	}
}

func fpart(v float64) float64  { return v - math.Floor(v) }
func rfpart(v float64) float64 { return 1 - fpart(v) }
