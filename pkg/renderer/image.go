package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Image is the rendered buffer. Pixels[row][col] holds gamma-corrected channels
// in [0, 256); row 0 is the top of the picture.
type Image struct {
	Width  int
	Height int
	Pixels [][]core.Vec3
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	pixels := make([][]core.Vec3, height)
	for y := range pixels {
		pixels[y] = make([]core.Vec3, width)
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// At returns the pixel at column x, row y
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y][x]
}
