// Package compositor implements the Porter-Duff and W3C blend-mode
// pixel algebra that sits between the rasterizer's coverage and a
// surface's stored pixels. It offers two pipelines: an 8-bit
// premultiplied integer pipeline for the classic Porter-Duff subset,
// and a linear-float pipeline for the full operator set including the
// separable and HSL blend modes.
package compositor

// Operator is the closed set of compositing operators.
type Operator uint8

const (
	Clear Operator = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
	Plus
	PlusLighter
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	HSLHue
	HSLSaturation
	HSLColor
	HSLLuminosity
)

// integerCapable is the subset the 8-bit premultiplied pipeline can
// evaluate exactly; everything else forces the float pipeline.
var integerCapable = map[Operator]bool{
	Clear: true, Src: true, Dst: true, SrcOver: true, DstOver: true,
	SrcIn: true, DstIn: true, SrcOut: true, DstOut: true,
	SrcAtop: true, DstAtop: true, Xor: true, Plus: true,
}

// RequiresFloat reports whether op's correct semantics need the
// linear-float pipeline regardless of the caller's requested
// precision.
func (op Operator) RequiresFloat() bool {
	return !integerCapable[op]
}

func (op Operator) IsSeparable() bool {
	switch op {
	case HSLHue, HSLSaturation, HSLColor, HSLLuminosity:
		return false
	default:
		return true
	}
}
