package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestHandleHealth(t *testing.T) {
	server := httptest.NewServer(NewServer(0, 1).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestHandleScenes(t *testing.T) {
	server := httptest.NewServer(NewServer(0, 1).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(resp.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode scene list: %v", err)
	}
	if len(scenes) != len(scene.ListBuiltinScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListBuiltinScenes()), len(scenes))
	}
}

func TestHandleRender(t *testing.T) {
	server := httptest.NewServer(NewServer(0, 2).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/render?scene=default&width=24&height=18&shadows=2&depth=1")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 18 {
		t.Errorf("Unexpected size %v", img.Bounds())
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	server := httptest.NewServer(NewServer(0, 1).Handler())
	defer server.Close()

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"unknown scene", "?scene=cornell&width=8&height=8", http.StatusNotFound},
		{"width out of range", "?width=0", http.StatusBadRequest},
		{"bad depth", "?depth=abc", http.StatusBadRequest},
		{"negative depth", "?depth=-1", http.StatusBadRequest},
		{"zero shadows", "?shadows=0", http.StatusBadRequest},
		{"bad seed", "?seed=x", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/render" + tt.query)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestParseRenderRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/render?scene=mirrors&width=64&height=48&depth=5&shadows=8&seed=-3", nil)

	req, err := NewServer(0, 1).parseRenderRequest(r)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := RenderRequest{
		Scene:  "mirrors",
		Width:  64,
		Height: 48,
		Seed:   -3,
		Config: renderer.Config{MaxTraceDepth: 5, ShadowSamples: 8},
	}
	if *req != expected {
		t.Errorf("Expected %+v, got %+v", expected, *req)
	}
}
