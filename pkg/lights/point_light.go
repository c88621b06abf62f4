package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits equally in all directions from a single position.
// Intensity does not fall off with distance.
type PointLight struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color, intensity float64) (*PointLight, error) {
	if intensity < 0 {
		return nil, core.NewConfigError("light.intensity", "must be non-negative", nil)
	}
	return &PointLight{Position: position, Color: color, Intensity: intensity}, nil
}

func (pl *PointLight) Type() LightType { return LightTypePoint }

// Illuminate implements the Light interface
func (pl *PointLight) Illuminate(point core.Vec3) (LightSample, bool) {
	toLight := pl.Position.Subtract(point)
	direction, err := toLight.Normalize()
	if err != nil {
		return LightSample{}, false
	}
	return LightSample{
		Direction: direction,
		Distance:  toLight.Length(),
		Radiance:  pl.Color.Multiply(pl.Intensity),
	}, true
}

func (pl *PointLight) light() {}
