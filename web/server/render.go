package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.NewBuiltinScene(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	pool := renderer.NewWorkerPool(sceneObj, req.Config, req.Seed, s.workers, nil)

	// Use request context to stop rendering when the client disconnects
	stats, err := pool.Render(r.Context(), img)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Render of %q cancelled by client", req.Scene)
			return
		}
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Rendered %q %dx%d in %v", req.Scene, req.Width, req.Height, stats.Duration)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Trace-Calls", strconv.FormatInt(stats.TraceCalls, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing render response: %v", err)
	}
}
