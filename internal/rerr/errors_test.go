package rerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestInvalidPathWrapsSentinel(t *testing.T) {
	err := InvalidPath("rel_line_to")
	assert.True(t, errors.Is(err, ErrInvalidPath))
	assert.Contains(t, err.Error(), "rel_line_to")
}

func TestInvalidTransformWrapsSentinel(t *testing.T) {
	err := InvalidTransform("device_to_user_distance")
	assert.True(t, errors.Is(err, ErrInvalidTransform))
}

func TestUnsupportedPixelFormatMessage(t *testing.T) {
	err := UnsupportedPixelFormat(-1, 4, "RGBA8888")
	assert.True(t, errors.Is(err, ErrUnsupportedPixelFormat))
	assert.Contains(t, err.Error(), "-1x4")
	assert.Contains(t, err.Error(), "RGBA8888")
}

func TestAllocationWrapsUnderlyingError(t *testing.T) {
	underlying := errors.New("out of memory")
	err := Allocation("polygon edge buffer", underlying)
	assert.True(t, errors.Is(err, underlying))
	assert.Contains(t, err.Error(), "polygon edge buffer")
}

func TestAllocationWithNilUnderlying(t *testing.T) {
	err := Allocation("mask buffer", nil)
	assert.True(t, errors.Is(err, ErrAllocation))
}
