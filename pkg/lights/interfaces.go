package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is implemented only by *PointLight and *DirectionalLight
type Light interface {
	Type() LightType

	// Illuminate returns the light arriving at point.
	// Direction is the unit vector FROM the point TO the light, Distance is +Inf
	// for lights at infinity. ok is false when the point coincides with the light.
	Illuminate(point core.Vec3) (sample LightSample, ok bool)

	light()
}

// LightSample describes the light reaching a shading point
type LightSample struct {
	Direction core.Vec3  // Unit direction toward the light
	Distance  float64    // Distance to the light along Direction
	Radiance  core.Color // Color times intensity
}
