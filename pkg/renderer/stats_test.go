package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats_GammaAndScale(t *testing.T) {
	var ps PixelStats
	for i := 0; i < 4; i++ {
		ps.AddSample(core.NewVec3(4, 0.25, 0))
	}

	got := ps.GetColor()
	// sqrt(4) clamps to 0.999; sqrt(0.25) = 0.5
	expected := core.NewVec3(256*0.999, 128, 0)
	if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 || got.Z != 0 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got.X >= 256 {
		t.Errorf("Channels must stay below 256, got %f", got.X)
	}
}

func TestPixelStats_NaNSamplesAreZeroed(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(math.NaN(), 1, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if ps.InvalidSamples != 1 {
		t.Errorf("Expected 1 invalid sample, got %d", ps.InvalidSamples)
	}
	got := ps.GetColor()
	if got.IsNaN() {
		t.Fatalf("NaN leaked into the pixel: %v", got)
	}
	// (0+1)/2 in red, 1 elsewhere
	if math.Abs(got.X-256*math.Sqrt(0.5)) > 1e-9 {
		t.Errorf("Expected red %f, got %f", 256*math.Sqrt(0.5), got.X)
	}
}

func TestPixelStats_Empty(t *testing.T) {
	var ps PixelStats
	if got := ps.GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected black for no samples, got %v", got)
	}
}

func TestPixelStats_NegativeClampsToZero(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(-1, 0, 0))
	if got := ps.GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected black, got %v", got)
	}
}
