package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Options holds the command line configuration
type Options struct {
	Scene   string
	Width   int
	Height  int
	Config  renderer.Config
	Workers int
	Seed    int64
	Output  string
	List    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, renderer.NewDefaultLogger()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (Options, error) {
	defaults := renderer.DefaultConfig()
	opts := Options{}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Scene, "scene", "default", "Built-in scene name or path to a .json scene file")
	fs.IntVar(&opts.Width, "width", scene.DefaultWidth, "Image width in pixels")
	fs.IntVar(&opts.Height, "height", scene.DefaultHeight, "Image height in pixels")
	fs.IntVar(&opts.Config.MaxTraceDepth, "depth", defaults.MaxTraceDepth, "Maximum reflection depth")
	fs.IntVar(&opts.Config.ShadowSamples, "shadows", defaults.ShadowSamples, "Shadow samples per light")
	fs.IntVar(&opts.Workers, "workers", 1, "Parallel workers (1 = single-threaded, 0 = one per CPU)")
	fs.Int64Var(&opts.Seed, "seed", renderer.DefaultSeed, "Seed for shadow sampling")
	fs.StringVar(&opts.Output, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.List, "list", false, "List built-in scenes and exit")
	fs.Usage = func() {
		fmt.Fprintln(output, "Phong Raytracer")
		fmt.Fprintln(output, "Usage: raytracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if err := opts.Config.Validate(); err != nil {
		return opts, err
	}
	if opts.Workers < 0 {
		return opts, fmt.Errorf("workers must be non-negative, got %d", opts.Workers)
	}
	return opts, nil
}

// createScene returns a built-in scene by name, or loads a JSON scene file
func createScene(name string) (*scene.Scene, error) {
	if strings.HasSuffix(name, ".json") {
		return loaders.LoadScene(name)
	}
	return scene.NewBuiltinScene(name)
}

func run(args []string, output io.Writer, logger core.Logger) error {
	opts, err := parseFlags(args, output)
	if err != nil {
		return err
	}

	if opts.List {
		for _, info := range scene.ListBuiltinScenes() {
			fmt.Fprintf(output, "  %-8s %s\n", info.ID, info.Description)
		}
		return nil
	}

	selectedScene, err := createScene(opts.Scene)
	if err != nil {
		return err
	}

	logger.Printf("Rendering scene %q at %dx%d (depth %d, %d shadow samples)\n",
		opts.Scene, opts.Width, opts.Height, opts.Config.MaxTraceDepth, opts.Config.ShadowSamples)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	var stats renderer.RenderStats
	if opts.Workers == 1 {
		raytracer := renderer.NewRaytracerWithRandom(selectedScene, opts.Config, rand.New(rand.NewSource(opts.Seed)))
		stats, err = raytracer.Render(img)
	} else {
		pool := renderer.NewWorkerPool(selectedScene, opts.Config, opts.Seed, opts.Workers, logger)
		stats, err = pool.Render(context.Background(), img)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Trace calls: %d (%.2f per pixel), shadow rays: %d\n",
		stats.TraceCalls, stats.AverageTraceCalls(), stats.ShadowRays)

	filename := opts.Output
	if filename == "" {
		sceneName := strings.TrimSuffix(filepath.Base(opts.Scene), ".json")
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}
