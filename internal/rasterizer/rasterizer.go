// Package rasterizer fills a tessellated polygon into a surface under
// one of three antialiasing backends, and draws single-pixel hairline
// strokes directly without stroke expansion.
package rasterizer

import (
	"math"

	"github.com/inkloom/raster2d/internal/compositor"
	"github.com/inkloom/raster2d/internal/pattern"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/inkloom/raster2d/internal/surface"
	"github.com/inkloom/raster2d/internal/tessellate"
)

// multisampleSubSamples is the number of sub-scanlines AAMultisample4x
// samples per pixel row.
const multisampleSubSamples = 4

// supersampleFactor is the oversampling factor AASupersample4x applies
// to both axes.
const supersampleFactor = 4

// Fill rasterizes poly into dst, sourcing color from src and
// compositing each covered pixel under op at opacity (itself further
// scaled by each pixel's computed coverage). A nil or empty poly is a
// no-op.
func Fill(dst *surface.Surface, poly *tessellate.Polygon, rule FillRule, aa AAMode, src *pattern.Pattern, op compositor.Operator, opacity float64) error {
	if poly == nil || poly.IsEmpty() {
		return nil
	}

	width, height := dst.Width(), dst.Height()
	y0 := clampInt(int(math.Floor(poly.ExtentTop)), 0, height)
	y1 := clampInt(int(math.Ceil(poly.ExtentBottom)), 0, height)
	if y1 <= y0 {
		return nil
	}

	switch aa {
	case AASupersample4x:
		return fillSupersample(dst, poly, rule, src, op, opacity)
	case AAMultisample4x:
		for y := y0; y < y1; y++ {
			for _, sp := range rowSpansMultisample(poly, y, width, multisampleSubSamples, rule) {
				fillSpan(dst, src, y, sp, op, opacity)
			}
		}
	default:
		for y := y0; y < y1; y++ {
			for _, sp := range rowSpansBinary(poly, y, width, rule) {
				fillSpan(dst, src, y, sp, op, opacity)
			}
		}
	}
	return nil
}

func fillSpan(dst *surface.Surface, src *pattern.Pattern, y int, sp Span, op compositor.Operator, opacity float64) {
	for x := sp.X; x < sp.X+sp.Len; x++ {
		p := src.At(x, y)
		dst.CompositeStride(x, y, 1, p, op, opacity*sp.Coverage)
	}
}

// fillSupersample rasterizes poly at supersampleFactor times dst's
// resolution into a transparent coverage mask, box-filters the mask
// back down with Surface.Downsample, then composites each resulting
// pixel at its downsampled alpha.
func fillSupersample(dst *surface.Surface, poly *tessellate.Polygon, rule FillRule, src *pattern.Pattern, op compositor.Operator, opacity float64) error {
	scaled := scalePolygon(poly, float64(supersampleFactor))

	mask, err := surface.New(dst.Width()*supersampleFactor, dst.Height()*supersampleFactor, pixel.Alpha8)
	if err != nil {
		return err
	}

	my0 := clampInt(int(math.Floor(scaled.ExtentTop)), 0, mask.Height())
	my1 := clampInt(int(math.Ceil(scaled.ExtentBottom)), 0, mask.Height())
	opaque := pixel.Pixel{Format: pixel.Alpha8, A: 255}
	for y := my0; y < my1; y++ {
		for _, sp := range rowSpansBinary(scaled, y, mask.Width(), rule) {
			mask.PaintStride(sp.X, y, sp.Len, opaque)
		}
	}

	small, err := mask.Downsample(supersampleFactor, supersampleFactor)
	if err != nil {
		return err
	}

	for y := 0; y < small.Height(); y++ {
		for x := 0; x < small.Width(); x++ {
			cov := small.GetPixel(x, y).A
			if cov == 0 {
				continue
			}
			p := src.At(x, y)
			dst.CompositeStride(x, y, 1, p, op, opacity*float64(cov)/255.0)
		}
	}
	return nil
}

// scalePolygon produces a copy of poly's edges scaled uniformly by
// factor. DxPerScanline is unchanged: scaling x and y by the same
// factor leaves the ratio dx/dy invariant.
func scalePolygon(poly *tessellate.Polygon, factor float64) *tessellate.Polygon {
	edges := make([]tessellate.Edge, len(poly.Edges))
	for i, e := range poly.Edges {
		edges[i] = tessellate.Edge{
			XNow:          e.XNow * factor,
			DxPerScanline: e.DxPerScanline,
			YTop:          e.YTop * factor,
			YBot:          e.YBot * factor,
			Winding:       e.Winding,
		}
	}
	return &tessellate.Polygon{
		Edges:        edges,
		ExtentLeft:   poly.ExtentLeft * factor,
		ExtentTop:    poly.ExtentTop * factor,
		ExtentRight:  poly.ExtentRight * factor,
		ExtentBottom: poly.ExtentBottom * factor,
	}
}
