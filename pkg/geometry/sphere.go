package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) (*Sphere, error) {
	if !(radius > 0) {
		return nil, core.NewConfigError("sphere.radius", "must be positive", nil)
	}
	if mat == nil {
		return nil, core.NewConfigError("sphere.material", "is required", nil)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// Describe implements the Shape interface
func (s *Sphere) Describe() (string, map[string]interface{}) {
	return "sphere", map[string]interface{}{
		"center": vec3Array(s.Center),
		"radius": s.Radius,
	}
}

// Validate implements the Shape interface
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return core.NewConfigError("sphere.radius", "must be positive and finite", nil)
	}
	if s.Material == nil {
		return core.NewConfigError("sphere.material", "is required", nil)
	}
	return nil
}

// GetMaterial implements the Shape interface
func (s *Sphere) GetMaterial() *material.Material { return s.Material }

func (s *Sphere) shape() {}
