package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliConfig holds the parsed command line
type cliConfig struct {
	SceneID      string
	Width        int
	AspectRatio  float64
	Samples      int // 0 keeps the scene's suggestion
	MaxDepth     int // 0 keeps the scene's suggestion
	Workers      int
	Seed         int64
	Format       imageio.Format
	Output       string
	EarthTexture string
	List         bool
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	var cfg cliConfig
	var format string

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.SceneID, "scene", "random-spheres", "Scene to render (see -list)")
	fs.IntVar(&cfg.Width, "width", 480, "Image width in pixels; height follows from -aspect")
	fs.Float64Var(&cfg.AspectRatio, "aspect", 16.0/9.0, "Aspect ratio, width / height")
	fs.IntVar(&cfg.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.MaxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&cfg.Workers, "workers", 0, "Worker goroutines (0 = one per CPU)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 = seed from the clock)")
	fs.StringVar(&format, "format", "png", "Output format: png or ppm")
	fs.StringVar(&cfg.Output, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&cfg.EarthTexture, "texture", scene.DefaultEarthTexture, "Image used by the earth scenes")
	fs.BoolVar(&cfg.List, "list", false, "List available scenes and exit")
	fs.Usage = func() {
		fmt.Fprintln(output, "Path Tracer")
		fmt.Fprintln(output, "Usage: pathtracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.Format, err = imageio.ParseFormat(format); err != nil {
		return cfg, err
	}
	if cfg.Width < 1 {
		return cfg, fmt.Errorf("width must be at least 1, got %d", cfg.Width)
	}
	if cfg.AspectRatio <= 0 {
		return cfg, fmt.Errorf("aspect ratio must be positive, got %g", cfg.AspectRatio)
	}
	if cfg.Output == "" {
		timestamp := time.Now().Format("20060102_150405")
		cfg.Output = filepath.Join("output", cfg.SceneID, fmt.Sprintf("render_%s.%s", timestamp, cfg.Format))
	}
	return cfg, nil
}

// renderSettings merges the scene's suggested settings with the command line overrides
func renderSettings(cfg cliConfig, suggested renderer.RenderConfig) renderer.RenderConfig {
	config := suggested
	if cfg.Samples > 0 {
		config.SamplesPerPixel = cfg.Samples
	}
	if cfg.MaxDepth > 0 {
		config.MaxDepth = cfg.MaxDepth
	}
	config.NumWorkers = cfg.Workers
	config.Seed = cfg.Seed
	return config
}

func run(cfg cliConfig, stdout io.Writer) error {
	if cfg.List {
		fmt.Fprintln(stdout, "Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "  %-18s %s\n", info.ID, info.Description)
		}
		return nil
	}

	logger := renderer.NewDefaultLogger()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := scene.Build(cfg.SceneID, scene.Options{
		Width:        cfg.Width,
		AspectRatio:  cfg.AspectRatio,
		Random:       rand.New(rand.NewSource(seed)),
		Logger:       logger,
		EarthTexture: cfg.EarthTexture,
	})
	if err != nil {
		return err
	}

	config := renderSettings(cfg, s.RenderConfig)
	config.Seed = seed
	camera := s.GetCamera()
	fmt.Fprintf(stdout, "Rendering %s at %dx%d, %d samples per pixel, max depth %d\n",
		cfg.SceneID, camera.Width(), camera.Height(), config.SamplesPerPixel, config.MaxDepth)

	img, stats, err := renderer.NewRaytracer(s, config, logger).Render()
	if err != nil {
		return err
	}

	if err := imageio.Save(cfg.Output, img, cfg.Format); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d samples over %d pixels on %d workers in %v\n",
		stats.TotalSamples, stats.TotalPixels, stats.NumWorkers, stats.Elapsed)
	fmt.Fprintf(stdout, "Render saved as %s\n", cfg.Output)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
