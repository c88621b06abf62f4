package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light under the Whitted model.
// Materials are shared by pointer between primitives and must not be mutated
// once a scene has been built.
type Material struct {
	Color           core.Color // Diffuse color
	Ambient         float64    // Ambient coefficient, scales the scene ambient term
	Diffuse         float64    // Lambertian coefficient
	Specular        float64    // Blinn-Phong coefficient
	Shininess       float64    // Specular exponent, 0 disables the highlight
	Reflectivity    float64    // Weight of the mirror-reflected ray
	Transparency    float64    // Weight of the refracted ray
	RefractiveIndex float64    // Index of refraction (e.g., 1.5 for glass)
	Fresnel         bool       // Split the transparency weight with Schlick's approximation
}

// NewMaterial creates an opaque material with conventional Phong coefficients
func NewMaterial(color core.Color) *Material {
	return &Material{
		Color:           color,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.3,
		Shininess:       32,
		RefractiveIndex: 1.0,
	}
}

// NewMatte creates a purely diffuse material
func NewMatte(color core.Color) *Material {
	m := NewMaterial(color)
	m.Specular = 0
	m.Shininess = 0
	return m
}

// NewMirror creates a reflective material; reflectivity is clamped to [0, 1]
func NewMirror(color core.Color, reflectivity float64) *Material {
	m := NewMaterial(color)
	m.Diffuse = 0.2
	m.Specular = 0.8
	m.Shininess = 256
	m.Reflectivity = max(0, min(1, reflectivity))
	return m
}

// NewGlass creates a clear dielectric that both reflects and refracts
func NewGlass(refractiveIndex float64) *Material {
	return &Material{
		Color:           core.NewColor(1, 1, 1),
		Ambient:         0,
		Diffuse:         0,
		Specular:        0.5,
		Shininess:       128,
		Transparency:    1,
		RefractiveIndex: refractiveIndex,
		Fresnel:         true,
	}
}

// Validate reports the first invalid parameter as a configuration fault
func (m *Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
		{"reflectivity", m.Reflectivity},
		{"transparency", m.Transparency},
	}
	for _, c := range coefficients {
		if c.value < 0 || math.IsNaN(c.value) {
			return core.NewConfigError("material."+c.name, "must be a non-negative number", nil)
		}
	}
	if m.Transparency > 0 && !(m.RefractiveIndex > 0) {
		return core.NewConfigError("material.refractiveIndex", "must be positive for transparent materials", nil)
	}
	return nil
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
