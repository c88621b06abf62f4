package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. A Scene is read-only
// once built, so any number of render workers may share it without locking.
type Scene struct {
	shapes       []geometry.Shape
	lights       []lights.Light
	background   core.Color
	ambient      core.Color
	cameraConfig geometry.CameraConfig
}

// Shapes returns the primitives in insertion order. The slice must not be modified.
func (s *Scene) Shapes() []geometry.Shape { return s.shapes }

// Lights returns the lights in insertion order. The slice must not be modified.
func (s *Scene) Lights() []lights.Light { return s.lights }

// Background is the color seen by rays that hit nothing
func (s *Scene) Background() core.Color { return s.background }

// Ambient is the ambient light color; it defaults to the background
func (s *Scene) Ambient() core.Color { return s.ambient }

// CameraConfig is the camera recommended by the scene author
func (s *Scene) CameraConfig() geometry.CameraConfig { return s.cameraConfig }

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int { return len(s.shapes) }

// Builder assembles a Scene. It is not safe for concurrent use.
type Builder struct {
	shapes        []geometry.Shape
	lights        []lights.Light
	background    core.Color
	ambient       core.Color
	backgroundSet bool
	ambientSet    bool
	cameraConfig  geometry.CameraConfig
	err           error
}

// NewBuilder creates an empty scene builder with the default camera
func NewBuilder() *Builder {
	return &Builder{cameraConfig: geometry.DefaultCameraConfig()}
}

// AddPrimitive appends a shape. Insertion order decides ties between equally distant hits.
func (b *Builder) AddPrimitive(shape geometry.Shape) *Builder {
	if shape == nil {
		b.setErr(core.NewConfigError("scene.primitive", "must not be nil", nil))
		return b
	}
	b.shapes = append(b.shapes, shape)
	return b
}

// AddSphere creates and appends a sphere, recording any construction error for Build
func (b *Builder) AddSphere(center core.Vec3, radius float64, mat *material.Material) *Builder {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.AddPrimitive(sphere)
}

// AddPlane creates and appends a plane, recording any construction error for Build
func (b *Builder) AddPlane(point, normal core.Vec3, mat *material.Material) *Builder {
	plane, err := geometry.NewPlane(point, normal, mat)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.AddPrimitive(plane)
}

// AddTriangle creates and appends a triangle, recording any construction error for Build
func (b *Builder) AddTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Builder {
	triangle, err := geometry.NewTriangle(v0, v1, v2, mat)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.AddPrimitive(triangle)
}

// AddLight appends a light
func (b *Builder) AddLight(light lights.Light) *Builder {
	if light == nil {
		b.setErr(core.NewConfigError("scene.light", "must not be nil", nil))
		return b
	}
	b.lights = append(b.lights, light)
	return b
}

// AddPointLight creates and appends a point light
func (b *Builder) AddPointLight(position core.Vec3, color core.Color, intensity float64) *Builder {
	light, err := lights.NewPointLight(position, color, intensity)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.AddLight(light)
}

// AddDirectionalLight creates and appends a directional light
func (b *Builder) AddDirectionalLight(direction core.Vec3, color core.Color, intensity float64) *Builder {
	light, err := lights.NewDirectionalLight(direction, color, intensity)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.AddLight(light)
}

// SetBackground sets the color returned for rays that miss every primitive
func (b *Builder) SetBackground(color core.Color) *Builder {
	b.background = color
	b.backgroundSet = true
	return b
}

// SetAmbient sets the ambient light color independently of the background
func (b *Builder) SetAmbient(color core.Color) *Builder {
	b.ambient = color
	b.ambientSet = true
	return b
}

// SetCamera sets the scene's recommended camera
func (b *Builder) SetCamera(config geometry.CameraConfig) *Builder {
	b.cameraConfig = config
	return b
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the accumulated description and returns a frozen Scene
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.shapes) == 0 && !b.backgroundSet {
		return nil, core.NewConfigError("scene", "scene has no primitives and no background", nil)
	}
	for i, shape := range b.shapes {
		kind, _ := shape.Describe()
		// Shapes built as literals skip their constructor's checks
		if err := shape.Validate(); err != nil {
			return nil, fmt.Errorf("%s %d: %w", kind, i, err)
		}
		if err := shape.GetMaterial().Validate(); err != nil {
			return nil, fmt.Errorf("%s %d: %w", kind, i, err)
		}
	}

	ambient := b.background
	if b.ambientSet {
		ambient = b.ambient
	}

	// Copy so later builder calls cannot reach the frozen scene
	shapes := make([]geometry.Shape, len(b.shapes))
	copy(shapes, b.shapes)
	sceneLights := make([]lights.Light, len(b.lights))
	copy(sceneLights, b.lights)

	return &Scene{
		shapes:       shapes,
		lights:       sceneLights,
		background:   b.background,
		ambient:      ambient,
		cameraConfig: b.cameraConfig,
	}, nil
}
