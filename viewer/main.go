//go:build !tinygo

package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// viewer shows the latest render in a window. Press R to render again with
// the next seed, Escape to quit.
type viewer struct {
	scene   *scene.Scene
	config  renderer.Config
	workers int
	seed    int64
	width   int
	height  int

	frame *ebiten.Image

	mu        sync.Mutex
	pending   *image.RGBA // finished render not yet uploaded
	rendering bool
}

func main() {
	sceneID := flag.String("scene", "default", "Built-in scene name")
	width := flag.Int("width", scene.DefaultWidth, "Window width in pixels")
	height := flag.Int("height", scene.DefaultHeight, "Window height in pixels")
	depth := flag.Int("depth", renderer.DefaultConfig().MaxTraceDepth, "Maximum reflection depth")
	shadows := flag.Int("shadows", renderer.DefaultConfig().ShadowSamples, "Shadow samples per light")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	seed := flag.Int64("seed", renderer.DefaultSeed, "Seed for shadow sampling")
	flag.Parse()

	selectedScene, err := scene.NewBuiltinScene(*sceneID)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	config := renderer.Config{MaxTraceDepth: *depth, ShadowSamples: *shadows}
	if err := config.Validate(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	v := &viewer{
		scene:   selectedScene,
		config:  config,
		workers: *workers,
		seed:    *seed,
		width:   *width,
		height:  *height,
	}
	v.startRender()

	ebiten.SetWindowTitle("Phong Raytracer (" + *sceneID + ")")
	ebiten.SetWindowSize(v.width, v.height)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// startRender renders into a fresh buffer in the background
func (v *viewer) startRender() {
	v.mu.Lock()
	if v.rendering {
		v.mu.Unlock()
		return
	}
	v.rendering = true
	seed := v.seed
	v.mu.Unlock()

	go func() {
		img := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
		pool := renderer.NewWorkerPool(v.scene, v.config, seed, v.workers, renderer.NewDefaultLogger())
		if _, err := pool.Render(context.Background(), img); err != nil {
			log.Printf("Render failed: %v", err)
			img = nil
		}

		v.mu.Lock()
		v.pending = img
		v.rendering = false
		v.mu.Unlock()
	}()
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.mu.Lock()
		if !v.rendering {
			v.seed++
		}
		v.mu.Unlock()
		v.startRender()
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		v.frame = ebiten.NewImage(v.width, v.height)
	}

	v.mu.Lock()
	pending := v.pending
	v.pending = nil
	v.mu.Unlock()

	// The render buffer is already row-major RGBA with row 0 at the top
	if pending != nil {
		v.frame.WritePixels(pending.Pix)
	}
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
