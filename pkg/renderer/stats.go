package renderer

import (
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	InvalidSamples int           // Samples that came back with a NaN channel
	NumWorkers     int           // Workers that shared the rows
	Elapsed        time.Duration // Wall time from setup to the last row
}

// add folds a finished row into the totals
func (rs *RenderStats) add(row RowResult) {
	rs.TotalPixels += len(row.Pixels)
	rs.TotalSamples += row.Samples
	rs.InvalidSamples += row.InvalidSamples
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum     core.Vec3 // RGB accumulator for final result
	SampleCount    int       // Number of samples taken
	InvalidSamples int       // Samples that had a NaN channel zeroed
}

// AddSample adds a new color sample. NaN channels contribute 0.
func (ps *PixelStats) AddSample(color core.Vec3) {
	if color.IsNaN() {
		ps.InvalidSamples++
		color = core.NewVec3(zeroNaN(color.X), zeroNaN(color.Y), zeroNaN(color.Z))
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the averaged, gamma-corrected pixel scaled to [0, 256)
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	scale := 1.0 / float64(ps.SampleCount)
	return core.NewVec3(
		toDisplay(ps.ColorAccum.X*scale),
		toDisplay(ps.ColorAccum.Y*scale),
		toDisplay(ps.ColorAccum.Z*scale),
	)
}

// toDisplay applies gamma 2 and scales into [0, 256)
func toDisplay(c float64) float64 {
	return 256 * core.Clamp(math.Sqrt(c), 0.0, 0.999)
}

func zeroNaN(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}
