package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon below which a ray is treated as parallel to a surface
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3          // A point on the plane
	Normal   core.Vec3          // Unit normal vector
	Material *material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) (*Plane, error) {
	unit, err := normal.Normalize()
	if err != nil {
		return nil, core.NewConfigError("plane.normal", "must be non-zero", err)
	}
	if mat == nil {
		return nil, core.NewConfigError("plane.material", "is required", nil)
	}
	return &Plane{
		Point:    point,
		Normal:   unit,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane: no intersection
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// Describe implements the Shape interface
func (p *Plane) Describe() (string, map[string]interface{}) {
	return "plane", map[string]interface{}{
		"point":  vec3Array(p.Point),
		"normal": vec3Array(p.Normal),
	}
}

// Validate implements the Shape interface
func (p *Plane) Validate() error {
	if !isUnit(p.Normal) {
		return core.NewConfigError("plane.normal", "must be unit length", nil)
	}
	if p.Material == nil {
		return core.NewConfigError("plane.material", "is required", nil)
	}
	return nil
}

// GetMaterial implements the Shape interface
func (p *Plane) GetMaterial() *material.Material { return p.Material }

func (p *Plane) shape() {}
