package rasterizer

// AAMode selects the antialiasing technique used to fill a polygon.
type AAMode int

const (
	// AANone samples a single point at each pixel's center: binary
	// in/out, no antialiasing.
	AANone AAMode = iota
	// AASupersample4x rasterizes into a 4x-oversized mask and
	// box-filters it down, antialiasing both axes uniformly.
	AASupersample4x
	// AAMultisample4x samples 4 sub-scanlines per row and computes
	// exact analytic x-coverage on each, trading some vertical
	// precision for a much smaller working set than supersampling.
	AAMultisample4x
)
