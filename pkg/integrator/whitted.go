package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ShadingConfig controls recursion and self-intersection handling
type ShadingConfig struct {
	MaxDepth      int     // Maximum number of reflection/refraction bounces, 0 for direct lighting only
	ShadowEpsilon float64 // Offset along the normal for secondary ray origins
}

// DefaultShadingConfig returns the standard Whitted settings
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		MaxDepth:      5,
		ShadowEpsilon: 1e-4,
	}
}

// Validate checks the configuration before rendering starts
func (c ShadingConfig) Validate() error {
	if c.MaxDepth < 0 {
		return core.NewConfigError("shading.maxDepth", "must be non-negative", nil)
	}
	if !(c.ShadowEpsilon > 0) {
		return core.NewConfigError("shading.shadowEpsilon", "must be positive", nil)
	}
	return nil
}

// WhittedShader implements classic recursive ray tracing: ambient, Lambert
// diffuse and Blinn-Phong specular from hard-shadowed lights, plus perfect
// mirror reflection and refraction. It holds no mutable state.
type WhittedShader struct {
	config ShadingConfig
}

// NewWhittedShader creates a shader, validating the configuration
func NewWhittedShader(config ShadingConfig) (*WhittedShader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &WhittedShader{config: config}, nil
}

// Config returns the shading configuration
func (ws *WhittedShader) Config() ShadingConfig { return ws.config }

// RayColor returns the shaded color of the nearest hit, or the background on a miss
func (ws *WhittedShader) RayColor(scn *scene.Scene, ray core.Ray, depth int) core.Color {
	hit, isHit := FindNearest(scn, ray, ray.TMin, ray.TMax)
	if !isHit {
		return scn.Background()
	}
	return ws.Shade(scn, hit, ray, depth)
}

// Shade computes the color at a hit point. Terms are summed without clamping.
func (ws *WhittedShader) Shade(scn *scene.Scene, hit *material.HitRecord, ray core.Ray, depth int) core.Color {
	mat := hit.Material
	color := scn.Ambient().Multiply(mat.Ambient)
	color = color.Add(ws.directLighting(scn, hit, ray))

	if depth >= ws.config.MaxDepth {
		return color
	}

	reflectWeight := mat.Reflectivity

	if mat.Transparency > 0 {
		refracted, refractOK := ws.refractedRay(hit, ray)
		if refractOK {
			transmitted := 1.0
			if mat.Fresnel {
				cosTheta := math.Min(ray.Direction.Negate().Dot(hit.Normal), 1.0)
				transmitted = 1 - material.Reflectance(cosTheta, refractionRatio(hit))
			}
			refractWeight := mat.Transparency * transmitted
			reflectWeight += mat.Transparency * (1 - transmitted)
			color = color.Add(ws.RayColor(scn, refracted, depth+1).Multiply(refractWeight))
		} else {
			// Total internal reflection
			reflectWeight += mat.Transparency
		}
	}

	if reflectWeight > 0 {
		if reflected, ok := ws.reflectedRay(hit, ray); ok {
			color = color.Add(ws.RayColor(scn, reflected, depth+1).Multiply(reflectWeight))
		}
	}

	return color
}

// directLighting sums diffuse and specular contributions from every visible light
func (ws *WhittedShader) directLighting(scn *scene.Scene, hit *material.HitRecord, ray core.Ray) core.Color {
	mat := hit.Material
	result := core.Black
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(ws.config.ShadowEpsilon))

	for _, light := range scn.Lights() {
		sample, ok := light.Illuminate(hit.Point)
		if !ok {
			continue
		}

		cosine := hit.Normal.Dot(sample.Direction)
		if cosine <= 0 {
			// Light is behind the surface
			continue
		}

		shadowRay := core.Ray{Origin: shadowOrigin, Direction: sample.Direction, TMin: 0, TMax: sample.Distance}
		if Occluded(scn, shadowRay, shadowRay.TMin, shadowRay.TMax) {
			continue
		}

		diffuse := mat.Color.MultiplyColor(sample.Radiance).Multiply(mat.Diffuse * cosine)
		result = result.Add(diffuse)

		if mat.Shininess > 0 && mat.Specular > 0 {
			halfway, err := sample.Direction.Subtract(ray.Direction).Normalize()
			if err != nil {
				continue
			}
			highlight := math.Pow(math.Max(0, hit.Normal.Dot(halfway)), mat.Shininess)
			result = result.Add(sample.Radiance.Multiply(mat.Specular * highlight))
		}
	}

	return result
}

// reflectedRay mirrors the incoming direction about the normal
func (ws *WhittedShader) reflectedRay(hit *material.HitRecord, ray core.Ray) (core.Ray, bool) {
	origin := hit.Point.Add(hit.Normal.Multiply(ws.config.ShadowEpsilon))
	reflected, err := core.NewRay(origin, ray.Direction.Reflect(hit.Normal))
	return reflected, err == nil
}

// refractedRay bends the incoming direction through the surface. It reports
// false on total internal reflection.
func (ws *WhittedShader) refractedRay(hit *material.HitRecord, ray core.Ray) (core.Ray, bool) {
	direction, ok := ray.Direction.Refract(hit.Normal, refractionRatio(hit))
	if !ok {
		return core.Ray{}, false
	}
	// The refracted ray continues on the far side of the surface
	origin := hit.Point.Subtract(hit.Normal.Multiply(ws.config.ShadowEpsilon))
	refracted, err := core.NewRay(origin, direction)
	return refracted, err == nil
}

// refractionRatio is eta_incident / eta_transmitted, assuming the outside medium is air
func refractionRatio(hit *material.HitRecord) float64 {
	if hit.FrontFace {
		return 1.0 / hit.Material.RefractiveIndex
	}
	return hit.Material.RefractiveIndex
}
