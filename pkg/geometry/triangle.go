package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3          // The three vertices
	Material   *material.Material // Material of the triangle
	normal     core.Vec3          // Cached unit normal, right-handed winding V0→V1→V2
	edge1      core.Vec3
	edge2      core.Vec3
}

// NewTriangle creates a new triangle from three vertices.
// Collinear or coincident vertices are rejected.
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) (*Triangle, error) {
	if mat == nil {
		return nil, core.NewConfigError("triangle.material", "is required", nil)
	}
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	normal, err := edge1.Cross(edge2).Normalize()
	if err != nil {
		return nil, core.NewConfigError("triangle.vertices", "triangle has zero area", err)
	}
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   normal,
		edge1:    edge1,
		edge2:    edge2,
	}, nil
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -parallelEpsilon && a < parallelEpsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * t.edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// Describe implements the Shape interface
func (t *Triangle) Describe() (string, map[string]interface{}) {
	return "triangle", map[string]interface{}{
		"v0":     vec3Array(t.V0),
		"v1":     vec3Array(t.V1),
		"v2":     vec3Array(t.V2),
		"normal": vec3Array(t.normal),
	}
}

// Validate implements the Shape interface. Triangles must come from
// NewTriangle, which caches the normal and edges.
func (t *Triangle) Validate() error {
	if !isUnit(t.normal) {
		return core.NewConfigError("triangle.vertices", "must be created with NewTriangle", nil)
	}
	if t.Material == nil {
		return core.NewConfigError("triangle.material", "is required", nil)
	}
	return nil
}

// GetMaterial implements the Shape interface
func (t *Triangle) GetMaterial() *material.Material { return t.Material }

func (t *Triangle) shape() {}
