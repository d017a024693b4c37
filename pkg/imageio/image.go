package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadImageTexture loads a PNG or JPEG image into an image texture
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	texture, err := DecodeImageTexture(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return texture, nil
}

// DecodeImageTexture decodes a PNG or JPEG stream into 8-bit RGB texel data.
// Alpha is dropped.
func DecodeImageTexture(r io.Reader) (*material.ImageTexture, error) {
	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	data := make([]uint8, 0, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns uint32 in [0, 65535]; the high byte is the 8-bit channel
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			data = append(data, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return material.NewImageTexture(width, height, data), nil
}
