package raster2d

import (
	"testing"

	"github.com/inkloom/raster2d/internal/color"
	"github.com/inkloom/raster2d/internal/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextRejectsNonPositiveDimensions(t *testing.T) {
	_, err := NewContext(0, 10, pixel.RGBA8888)
	assert.Error(t, err)
}

func TestClearPaintsEveryPixel(t *testing.T) {
	ctx, err := NewContext(4, 4, pixel.RGB888)
	require.NoError(t, err)

	ctx.Clear(color.RGBA(1, 0, 0, 1))

	got := ctx.Surface().GetPixel(2, 2)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
}

func TestFillSolidSquareCoversInterior(t *testing.T) {
	ctx, err := NewContext(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.SetSourceColor(color.RGBA(0, 1, 0, 1))
	ctx.SetAAMode(AANone)
	ctx.MoveTo(2, 2)
	ctx.LineTo(8, 2)
	ctx.LineTo(8, 8)
	ctx.LineTo(2, 8)
	ctx.ClosePath()

	require.NoError(t, ctx.Fill())

	got := ctx.Surface().GetPixel(5, 5)
	assert.Equal(t, uint8(255), got.A)
	assert.Equal(t, uint8(0), got.R)

	outside := ctx.Surface().GetPixel(0, 0)
	assert.Equal(t, uint8(0), outside.A)
}

func TestSaveRestoreRoundTripsState(t *testing.T) {
	ctx, err := NewContext(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.SetLineWidth(1.0)
	ctx.Save()
	ctx.SetLineWidth(5.0)
	ctx.Translate(10, 10)
	assert.Equal(t, 5.0, ctx.st.lineWidth)

	ctx.Restore()
	assert.Equal(t, 1.0, ctx.st.lineWidth)
}

func TestRestoreWithNoSaveIsNoop(t *testing.T) {
	ctx, err := NewContext(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	before := ctx.st
	ctx.Restore()
	assert.Same(t, before, ctx.st)
}

func TestStrokeOpenPathProducesCoverage(t *testing.T) {
	ctx, err := NewContext(20, 20, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.SetSourceColor(color.RGBA(0, 0, 1, 1))
	ctx.SetLineWidth(4)
	ctx.SetAAMode(AANone)
	ctx.MoveTo(2, 10)
	ctx.LineTo(18, 10)

	require.NoError(t, ctx.Stroke())

	got := ctx.Surface().GetPixel(10, 10)
	assert.Equal(t, uint8(255), got.A)
}

func TestStrokeDashedPathLeavesGaps(t *testing.T) {
	ctx, err := NewContext(40, 10, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.SetSourceColor(color.RGBA(1, 1, 1, 1))
	ctx.SetLineWidth(2)
	ctx.SetAAMode(AANone)
	ctx.SetDash([]float64{5, 5}, 0)
	ctx.MoveTo(0, 5)
	ctx.LineTo(40, 5)

	require.NoError(t, ctx.Stroke())

	onDash := ctx.Surface().GetPixel(2, 5)
	inGap := ctx.Surface().GetPixel(7, 5)
	assert.Equal(t, uint8(255), onDash.A)
	assert.Equal(t, uint8(0), inGap.A)
}

func TestHairlineStrokeDrawsWithoutExpansion(t *testing.T) {
	ctx, err := NewContext(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.SetSourceColor(color.RGBA(1, 1, 1, 1))
	ctx.SetHairline(true)
	ctx.MoveTo(1, 1)
	ctx.LineTo(8, 8)

	require.NoError(t, ctx.Stroke())

	got := ctx.Surface().GetPixel(4, 4)
	assert.Greater(t, int(got.A), 0)
}

func TestDeviceToUserDistanceRoundTripsUnderScale(t *testing.T) {
	ctx, err := NewContext(10, 10, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.Scale(2.0)
	ux, uy, err := ctx.DeviceToUserDistance(4, 6)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, ux, 1e-9)
	assert.InDelta(t, 3.0, uy, 1e-9)
}

func TestBeginPathResetsCurrentPath(t *testing.T) {
	ctx, err := NewContext(4, 4, pixel.RGBA8888)
	require.NoError(t, err)

	ctx.MoveTo(1, 1)
	ctx.LineTo(2, 2)
	ctx.BeginPath()

	assert.Empty(t, ctx.path.Nodes())
}
