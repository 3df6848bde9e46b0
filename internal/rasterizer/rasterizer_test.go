package rasterizer

import (
	"testing"

	"github.com/inkloom/raster2d/internal/compositor"
	"github.com/inkloom/raster2d/internal/path"
	"github.com/inkloom/raster2d/internal/pattern"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/inkloom/raster2d/internal/surface"
	"github.com/inkloom/raster2d/internal/tessellate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square10 is a 6x6 square on a 10x10 surface. Its corners sit on
// half-pixel positions, so the pixels along its edges are half covered.
func square10() *tessellate.Polygon {
	p := path.New()
	p.MoveTo(2.5, 2.5)
	p.LineTo(8.5, 2.5)
	p.LineTo(8.5, 8.5)
	p.LineTo(2.5, 8.5)
	p.Close()
	return tessellate.Tessellate(p.Nodes(), tessellate.DefaultTolerance())
}

func redSolid() *pattern.Pattern {
	return pattern.Solid(pixel.Pixel{Format: pixel.RGBA8888, R: 255, A: 255})
}

func TestFillAANoneCoversInteriorPixel(t *testing.T) {
	s, err := surface.New(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	err = Fill(s, square10(), NonZero, AANone, redSolid(), compositor.SrcOver, 1.0)
	require.NoError(t, err)

	got := s.GetPixel(5, 5)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(255), got.A)
}

func TestFillAANoneLeavesExteriorTransparent(t *testing.T) {
	s, err := surface.New(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	err = Fill(s, square10(), NonZero, AANone, redSolid(), compositor.SrcOver, 1.0)
	require.NoError(t, err)

	got := s.GetPixel(0, 0)
	assert.Equal(t, uint8(0), got.A)
}

func TestFillMultisampleProducesPartialCoverageAtEdge(t *testing.T) {
	s, err := surface.New(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	err = Fill(s, square10(), NonZero, AAMultisample4x, redSolid(), compositor.SrcOver, 1.0)
	require.NoError(t, err)

	edge := s.GetPixel(2, 5)
	interior := s.GetPixel(5, 5)
	assert.Greater(t, interior.A, edge.A)
	assert.Greater(t, edge.A, uint8(0))
}

func TestFillSupersampleProducesPartialCoverageAtEdge(t *testing.T) {
	s, err := surface.New(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	err = Fill(s, square10(), NonZero, AASupersample4x, redSolid(), compositor.SrcOver, 1.0)
	require.NoError(t, err)

	edge := s.GetPixel(2, 5)
	interior := s.GetPixel(5, 5)
	assert.Greater(t, interior.A, edge.A)
}

func TestFillNilPolygonIsNoOp(t *testing.T) {
	s, err := surface.New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)
	assert.NoError(t, Fill(s, nil, NonZero, AANone, redSolid(), compositor.SrcOver, 1.0))
}

func TestEvenOddLeavesOverlapHole(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.Close()
	p.MoveTo(3, 3)
	p.LineTo(7, 3)
	p.LineTo(7, 7)
	p.LineTo(3, 7)
	p.Close()
	poly := tessellate.Tessellate(p.Nodes(), tessellate.DefaultTolerance())

	s, err := surface.New(10, 10, pixel.RGBA8888)
	require.NoError(t, err)
	require.NoError(t, Fill(s, poly, EvenOdd, AANone, redSolid(), compositor.SrcOver, 1.0))

	assert.Equal(t, uint8(0), s.GetPixel(5, 5).A)   // hole
	assert.Equal(t, uint8(255), s.GetPixel(1, 1).A) // outer ring
}

func TestDrawHairlineAntialiasesDiagonal(t *testing.T) {
	s, err := surface.New(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	DrawHairline(s, 0.5, 0.5, 9.5, 5.5, redSolid(), compositor.SrcOver, 1.0)

	total := uint32(0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			total += uint32(s.GetPixel(x, y).A)
		}
	}
	assert.Greater(t, total, uint32(0))
}
