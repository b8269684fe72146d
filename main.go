package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/output"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// Config holds the command line settings. Zero camera values keep the scene's own.
type Config struct {
	SceneName       string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            int64
	Format          string
	OutputPath      string
	Help            bool
}

func main() {
	logger := log.New(os.Stderr, "", 0)

	config, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("Error: %v", err)
	}
	if config.Help {
		printHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, os.Stdout, logger); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}

// newFlagSet registers every command line flag against config
func newFlagSet(config *Config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&config.SceneName, "scene", "default", "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.SamplesPerPixel, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 1, "Render goroutines: 1 = sequential, 0 = one per CPU")
	fs.Int64Var(&config.Seed, "seed", renderer.DefaultRenderOptions().Seed, "Random seed")
	fs.StringVar(&config.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	fs.StringVar(&config.OutputPath, "output", "", "Output file (default: stdout for ppm, output/<scene>/render_<timestamp>.png for png)")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

// parseFlags parses command line arguments into a Config
func parseFlags(args []string, errOut io.Writer) (Config, error) {
	var config Config
	fs := newFlagSet(&config, errOut)

	if err := fs.Parse(args); err != nil {
		return config, err
	}
	if fs.NArg() > 0 {
		return config, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if config.Format != "ppm" && config.Format != "png" {
		return config, fmt.Errorf("unknown format %q: use 'ppm' or 'png'", config.Format)
	}
	return config, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Stochastic Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&Config{}, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-15s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Progress is logged to stderr, so PPM output can be redirected from stdout.")
}

// createScene builds the named scene and applies the command line camera overrides
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneName)
	if err != nil {
		return nil, err
	}

	if config.Width != 0 {
		s.CameraConfig.Width = config.Width
	}
	if config.SamplesPerPixel != 0 {
		s.CameraConfig.SamplesPerPixel = config.SamplesPerPixel
	}
	if config.MaxDepth != 0 {
		s.CameraConfig.MaxDepth = config.MaxDepth
	}

	if err := s.CameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", config.SceneName, err)
	}
	return s, nil
}

// run renders the configured scene and writes the image
func run(ctx context.Context, config Config, stdout io.Writer, logger core.Logger) error {
	s, err := createScene(config)
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(s.CameraConfig)
	options := renderer.RenderOptions{Workers: config.Workers, Seed: config.Seed}
	raytracer := renderer.NewRaytracer(camera, s.World, options, logger)

	logger.Printf("Rendering %s: %dx%d, %d objects, %d samples per pixel, max depth %d\n",
		s.Name, camera.ImageWidth(), camera.ImageHeight(), s.GetPrimitiveCount(),
		s.CameraConfig.SamplesPerPixel, s.CameraConfig.MaxDepth)

	switch config.Format {
	case "png":
		return renderPNG(ctx, raytracer, config, logger)
	default:
		return renderPPM(ctx, raytracer, config.OutputPath, stdout)
	}
}

// renderPPM streams scanlines to the output as they complete
func renderPPM(ctx context.Context, raytracer *renderer.Raytracer, path string, stdout io.Writer) error {
	if path == "" {
		return streamPPM(ctx, raytracer, stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	if err := streamPPM(ctx, raytracer, file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func streamPPM(ctx context.Context, raytracer *renderer.Raytracer, w io.Writer) error {
	if _, err := raytracer.RenderTo(ctx, output.NewPPMWriter(w)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func renderPNG(ctx context.Context, raytracer *renderer.Raytracer, config Config, logger core.Logger) error {
	frame, _, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path := config.OutputPath
	if path == "" {
		outputDir := filepath.Join("output", config.SceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		path = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	if err := output.EncodePNG(file, frame); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}
