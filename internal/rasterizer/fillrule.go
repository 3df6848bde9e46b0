package rasterizer

// FillRule selects how a contour's accumulated winding number decides
// interior vs exterior.
type FillRule int

const (
	// NonZero treats any nonzero accumulated winding as interior.
	NonZero FillRule = iota
	// EvenOdd toggles interior/exterior at every edge crossing,
	// ignoring winding direction.
	EvenOdd
)
