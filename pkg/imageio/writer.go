package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Format names an output encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat accepts "ppm" or "png" in any case
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown image format %q (want ppm or png)", name)
	}
}

// channel converts a [0, 256) channel to a byte
func channel(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	if c >= 255 {
		return 255
	}
	return uint8(c)
}

// WritePPM writes img as a plain-text PPM (P3), top row first
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for _, row := range img.Pixels {
		for _, p := range row {
			fmt.Fprintf(bw, "%d %d %d\n", channel(p.X), channel(p.Y), channel(p.Z))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// ToRGBA converts the rendered buffer to an opaque image.RGBA
func ToRGBA(img *renderer.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y, row := range img.Pixels {
		for x, p := range row {
			out.SetRGBA(x, y, color.RGBA{R: channel(p.X), G: channel(p.Y), B: channel(p.Z), A: 255})
		}
	}
	return out
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	if err := png.Encode(w, ToRGBA(img)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Save writes img to filename in the given format, creating parent directories
func Save(filename string, img *renderer.Image, format Format) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	switch format {
	case FormatPNG:
		err = WritePNG(file, img)
	default:
		err = WritePPM(file, img)
	}
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return err
}
