package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity, such as the sun
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Color     core.Color
	Intensity float64
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) (*DirectionalLight, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, core.NewConfigError("light.direction", "must be non-zero", err)
	}
	if intensity < 0 {
		return nil, core.NewConfigError("light.intensity", "must be non-negative", nil)
	}
	return &DirectionalLight{Direction: unit, Color: color, Intensity: intensity}, nil
}

func (dl *DirectionalLight) Type() LightType { return LightTypeDirectional }

// Illuminate implements the Light interface
func (dl *DirectionalLight) Illuminate(point core.Vec3) (LightSample, bool) {
	return LightSample{
		Direction: dl.Direction.Negate(),
		Distance:  math.Inf(1),
		Radiance:  dl.Color.Multiply(dl.Intensity),
	}, true
}

func (dl *DirectionalLight) light() {}
