package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:  SceneInfo{ID: "default", DisplayName: "Default", Description: "Floor, two reflective spheres and two lights"},
		build: NewDefaultScene,
	},
	"empty": {
		info:  SceneInfo{ID: "empty", DisplayName: "Empty", Description: "No primitives; renders black"},
		build: NewEmptyScene,
	},
	"mirrors": {
		info:  SceneInfo{ID: "mirrors", DisplayName: "Mirrors", Description: "Two perfect mirrors facing each other"},
		build: NewMirrorsScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// NewBuiltinScene builds the built-in scene with the given ID
func NewBuiltinScene(id string) (*Scene, error) {
	s, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", id)
	}
	return s.build(), nil
}
