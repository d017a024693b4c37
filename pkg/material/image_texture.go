package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

const colorScale = 1.0 / 255.0

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Data   []uint8 // Row-major RGB triples: Data[3*(y*Width+x)+c], y=0 is the top row
}

// NewImageTexture creates a new image texture over already decoded pixel data
func NewImageTexture(width, height int, data []uint8) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Data:   data,
	}
}

// debugColor is returned when there is no pixel data to sample
var debugColor = core.NewVec3(0, 1, 1)

// Value samples the texture at given UV coordinates using nearest-neighbor filtering.
// An empty table yields a flat cyan so missing images stand out in renders.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Data) < t.Width*t.Height*3 {
		return debugColor
	}

	u = core.Clamp(u, 0, 1)
	v = 1.0 - core.Clamp(v, 0, 1) // flip V to image coordinates

	i := min(int(u*float64(t.Width)), t.Width-1)
	j := min(int(v*float64(t.Height)), t.Height-1)

	offset := 3 * (j*t.Width + i)
	return core.NewVec3(
		float64(t.Data[offset])*colorScale,
		float64(t.Data[offset+1])*colorScale,
		float64(t.Data[offset+2])*colorScale,
	)
}
