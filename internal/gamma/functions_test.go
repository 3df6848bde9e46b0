package gamma

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func TestSRGBToLinearKneeContinuity(t *testing.T) {
	below := SRGBToLinear(0.04)
	above := SRGBToLinear(0.05)
	if below >= above {
		t.Errorf("SRGBToLinear should be monotonically increasing, got %f then %f", below, above)
	}
	if math.Abs(SRGBToLinear(0)-0) > testEpsilon {
		t.Errorf("SRGBToLinear(0) = %f, want 0", SRGBToLinear(0))
	}
	if math.Abs(SRGBToLinear(1)-1) > testEpsilon {
		t.Errorf("SRGBToLinear(1) = %f, want 1", SRGBToLinear(1))
	}
}

func TestLinearToSRGBKneeContinuity(t *testing.T) {
	below := LinearToSRGB(0.003)
	above := LinearToSRGB(0.004)
	if below >= above {
		t.Errorf("LinearToSRGB should be monotonically increasing, got %f then %f", below, above)
	}
	if math.Abs(LinearToSRGB(0)-0) > testEpsilon {
		t.Errorf("LinearToSRGB(0) = %f, want 0", LinearToSRGB(0))
	}
	if math.Abs(LinearToSRGB(1)-1) > testEpsilon {
		t.Errorf("LinearToSRGB(1) = %f, want 1", LinearToSRGB(1))
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0} {
		back := LinearToSRGB(SRGBToLinear(x))
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("LinearToSRGB(SRGBToLinear(%f)) = %f, want %f", x, back, x)
		}
	}
}
