package surface

import (
	"testing"

	"github.com/inkloom/raster2d/internal/compositor"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveExtent(t *testing.T) {
	_, err := New(0, 4, pixel.RGBA8888)
	assert.Error(t, err)
}

func TestPutGetPixelRoundTrips(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	p := pixel.Pixel{Format: pixel.RGBA8888, R: 10, G: 20, B: 30, A: 255}
	s.PutPixel(2, 1, p)
	assert.Equal(t, p, s.GetPixel(2, 1))
}

func TestPutPixelOutOfBoundsIsSilent(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		s.PutPixel(-1, 0, pixel.Pixel{Format: pixel.RGBA8888, A: 255})
		s.PutPixel(100, 100, pixel.Pixel{Format: pixel.RGBA8888, A: 255})
	})
	assert.Equal(t, pixel.Pixel{Format: pixel.RGBA8888}, s.GetPixel(-1, 0))
}

func TestPaintStrideClipsToBounds(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	white := pixel.Pixel{Format: pixel.RGBA8888, R: 255, G: 255, B: 255, A: 255}
	s.PaintStride(-2, 1, 6, white)

	for x := 0; x < 4; x++ {
		assert.Equal(t, white, s.GetPixel(x, 1), "x=%d", x)
	}
}

func TestPaintStrideOutOfRowIsNoop(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		s.PaintStride(0, 10, 4, pixel.Pixel{Format: pixel.RGBA8888, A: 255})
	})
}

func TestClearStrideResetsRun(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	white := pixel.Pixel{Format: pixel.RGBA8888, R: 255, G: 255, B: 255, A: 255}
	s.PaintStride(0, 0, 4, white)
	s.ClearStride(0, 0, 4)

	for x := 0; x < 4; x++ {
		assert.Equal(t, pixel.Pixel{Format: pixel.RGBA8888}, s.GetPixel(x, 0))
	}
}

func TestCompositeStrideSrcOverReplacesOpaqueDestination(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	dst := pixel.Pixel{Format: pixel.RGBA8888, R: 200, G: 100, B: 50, A: 255}
	s.PaintStride(0, 0, 4, dst)

	src := pixel.Pixel{Format: pixel.RGBA8888, R: 10, G: 20, B: 30, A: 255}
	s.CompositeStride(0, 0, 4, src, compositor.SrcOver, 1.0)

	assert.Equal(t, src, s.GetPixel(0, 0))
}

func TestCompositeStrideMultiplyRoutesThroughFloatPipeline(t *testing.T) {
	s, err := New(2, 1, pixel.RGBA8888)
	require.NoError(t, err)

	white := pixel.Pixel{Format: pixel.RGBA8888, R: 255, G: 255, B: 255, A: 255}
	s.PaintStride(0, 0, 2, white)

	black := pixel.Pixel{Format: pixel.RGBA8888, R: 0, G: 0, B: 0, A: 255}
	s.CompositeStride(0, 0, 2, black, compositor.Multiply, 1.0)

	got := s.GetPixel(0, 0)
	assert.Equal(t, uint8(0), got.R)
	assert.Equal(t, uint8(255), got.A)
}

func TestRGB888SurfaceAlwaysOpaque(t *testing.T) {
	s, err := New(2, 2, pixel.RGB888)
	require.NoError(t, err)

	s.PutPixel(0, 0, pixel.Pixel{Format: pixel.RGB888, R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, uint8(255), s.GetPixel(0, 0).A)

	src := pixel.Pixel{Format: pixel.RGBA8888, R: 9, G: 9, B: 9, A: 128}
	s.CompositeStride(0, 0, 1, src, compositor.SrcOver, 1.0)
	assert.Equal(t, uint8(255), s.GetPixel(0, 0).A)
}

func TestGetStrideClipsLength(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	st := s.GetStride(2, 0, 10)
	assert.Equal(t, 2, st.Len())

	white := pixel.Pixel{Format: pixel.RGBA8888, R: 255, G: 255, B: 255, A: 255}
	st.Fill(white)
	assert.Equal(t, white, s.GetPixel(2, 0))
	assert.Equal(t, white, s.GetPixel(3, 0))
}

func TestGetStrideFullyOutOfBoundsIsEmpty(t *testing.T) {
	s, err := New(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	st := s.GetStride(0, -1, 4)
	assert.Equal(t, 0, st.Len())
}

func TestDownsampleAveragesColorChannels(t *testing.T) {
	s, err := New(4, 2, pixel.RGBA8888)
	require.NoError(t, err)

	black := pixel.Pixel{Format: pixel.RGBA8888, A: 255}
	white := pixel.Pixel{Format: pixel.RGBA8888, R: 255, G: 255, B: 255, A: 255}
	s.PutPixel(0, 0, black)
	s.PutPixel(1, 0, white)
	s.PutPixel(0, 1, white)
	s.PutPixel(1, 1, black)

	out, err := s.Downsample(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Width())
	assert.Equal(t, 1, out.Height())
	assert.Equal(t, uint8(127), out.GetPixel(0, 0).R)
}

func TestDownsampleAlpha8SumsCoverage(t *testing.T) {
	s, err := New(2, 2, pixel.Alpha8)
	require.NoError(t, err)
	s.PutPixel(0, 0, pixel.Pixel{Format: pixel.Alpha8, A: 255})
	s.PutPixel(1, 0, pixel.Pixel{Format: pixel.Alpha8, A: 255})
	s.PutPixel(0, 1, pixel.Pixel{Format: pixel.Alpha8, A: 0})
	s.PutPixel(1, 1, pixel.Pixel{Format: pixel.Alpha8, A: 0})

	out, err := s.Downsample(2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(127), out.GetPixel(0, 0).A)
}

func TestAlpha1SurfaceRoundTripsThroughCompositeStride(t *testing.T) {
	s, err := New(9, 1, pixel.Alpha1)
	require.NoError(t, err)

	s.CompositeStride(0, 0, 9, pixel.Pixel{Format: pixel.RGBA8888, A: 255}, compositor.SrcOver, 1.0)
	for x := 0; x < 9; x++ {
		assert.Equal(t, uint8(0xFF), s.GetPixel(x, 0).A, "x=%d", x)
	}
}
