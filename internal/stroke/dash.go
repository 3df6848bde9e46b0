package stroke

import (
	"math"

	"github.com/inkloom/raster2d/internal/tessellate"
)

// DashPattern is an alternating on/off length sequence (even indices
// are drawn, odd indices are gaps) plus a phase offset into it.
type DashPattern struct {
	Dashes []float64
	Start  float64
}

// calcDashStart walks the dash pattern ds units in to find which dash
// bucket a starting phase offset lands in, and how far into it.
func calcDashStart(dashes []float64, ds float64) (currDash int, currDashStart float64) {
	for ds > 0 {
		if ds > dashes[currDash] {
			ds -= dashes[currDash]
			currDash++
			currDashStart = 0
			if currDash >= len(dashes) {
				currDash = 0
			}
		} else {
			currDashStart = ds
			ds = 0
		}
	}
	return currDash, currDashStart
}

// SplitDash walks a flattened contour and splits it wherever a dash
// boundary falls, preserving phase continuity across segments. Each
// "on" run becomes its own open sub-contour, ready to pass to Expand
// with closed=false. Returns nil if the pattern has fewer than one
// on/off pair or the contour has fewer than two vertices.
func SplitDash(corners []tessellate.Corner, closed bool, pattern DashPattern) []tessellate.Contour {
	if len(pattern.Dashes) < 2 || len(corners) < 2 {
		return nil
	}

	vd := buildVertexDist(corners, closed)
	n := len(vd)
	segCount := n - 1
	if closed {
		segCount = n
	}
	if segCount < 1 {
		return nil
	}

	dashes := pattern.Dashes
	currDash, currDashStart := calcDashStart(dashes, math.Abs(pattern.Start))
	on := currDash%2 == 0

	var result []tessellate.Contour
	var cur []tessellate.Corner

	emit := func(x, y float64) { cur = append(cur, tessellate.Corner{X: x, Y: y}) }
	flush := func() {
		if len(cur) >= 2 {
			result = append(result, tessellate.Contour{Corners: cur})
		}
		cur = nil
	}

	if on {
		emit(vd[0].X, vd[0].Y)
	}

	for seg := 0; seg < segCount; seg++ {
		a := vd[seg%n]
		b := vd[(seg+1)%n]
		segLen := a.Dist
		pos := 0.0

		for {
			dashRest := dashes[currDash] - currDashStart
			remaining := segLen - pos
			if remaining <= dashRest {
				currDashStart += remaining
				if on {
					emit(b.X, b.Y)
				}
				break
			}

			pos += dashRest
			t := pos / segLen
			x := a.X + (b.X-a.X)*t
			y := a.Y + (b.Y-a.Y)*t
			if on {
				emit(x, y)
				flush()
			} else {
				cur = []tessellate.Corner{{X: x, Y: y}}
			}

			currDash++
			if currDash >= len(dashes) {
				currDash = 0
			}
			currDashStart = 0
			on = currDash%2 == 0
		}
	}
	flush()
	return result
}
