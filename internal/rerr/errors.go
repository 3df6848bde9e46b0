// Package rerr holds the small set of error kinds that cross the
// library boundary. Everything else — degenerate geometry, empty
// polygons, out-of-bounds coordinates, NaN-producing gradients — is
// recovered locally and never surfaces an error.
package rerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel kinds. Callers compare with errors.Is; wrapped instances
// carry a stack trace via github.com/pkg/errors.
var (
	// ErrAllocation signals a scratch, polygon, or mask buffer could
	// not be grown. Always propagated, never retried.
	ErrAllocation = errors.New("raster2d: allocation failure")

	// ErrInvalidPath signals rel_line_to/rel_curve_to was called with
	// no current point.
	ErrInvalidPath = errors.New("raster2d: invalid path")

	// ErrInvalidTransform signals an operation needed the inverse of a
	// non-invertible transform.
	ErrInvalidTransform = errors.New("raster2d: invalid transform")

	// ErrUnsupportedPixelFormat signals a surface was requested with an
	// impossible width/height/format combination.
	ErrUnsupportedPixelFormat = errors.New("raster2d: unsupported pixel format")

	// ErrGlyphLookup and ErrFontLoad are forwarded verbatim from an
	// external font/glyph collaborator; the core never raises them
	// itself.
	ErrGlyphLookup = errors.New("raster2d: glyph lookup failed")
	ErrFontLoad    = errors.New("raster2d: font load failed")
)

// Allocation wraps err as an ErrAllocation, attaching ctx (e.g. the
// buffer that failed to grow) and a stack trace.
func Allocation(ctx string, err error) error {
	if err == nil {
		return errors.Wrap(ErrAllocation, ctx)
	}
	return errors.WithStack(fmt.Errorf("%w: %s: %w", ErrAllocation, ctx, err))
}

// InvalidPath reports op (e.g. "rel_line_to") as called with no
// current point.
func InvalidPath(op string) error {
	return errors.Wrapf(ErrInvalidPath, "%s requires a current point", op)
}

// InvalidTransform reports op (e.g. "device_to_user_distance") as
// called on a singular transform.
func InvalidTransform(op string) error {
	return errors.Wrapf(ErrInvalidTransform, "%s: matrix is not invertible", op)
}

// UnsupportedPixelFormat reports the offending width/height/format.
func UnsupportedPixelFormat(width, height int, format string) error {
	return errors.Wrapf(ErrUnsupportedPixelFormat, "%dx%d format %s", width, height, format)
}
