package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by ByName
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtInScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Matte, mirror and glass spheres on a ground sphere",
		},
		build: NewDefaultScene,
	},
	"mirror-room": {
		info: SceneInfo{
			ID:          "mirror-room",
			DisplayName: "Mirror Room",
			Description: "Triangle prism and glass sphere in front of a mirrored wall",
		},
		build: NewMirrorRoomScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One red sphere lit by a point light",
		},
		build: NewSingleSphereScene,
	},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for name := range builtInScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, builtInScenes[name].info)
	}
	return scenes
}

// ByName builds the named built-in scene
func ByName(name string) (*Scene, error) {
	entry, ok := builtInScenes[name]
	if !ok {
		return nil, core.NewConfigError("scene", fmt.Sprintf("unknown scene %q", name), nil)
	}
	scn, err := entry.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return scn, nil
}
