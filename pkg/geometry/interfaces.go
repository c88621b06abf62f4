package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a renderable primitive. It is implemented only by *Sphere, *Plane
// and *Triangle, so a type switch over those three is exhaustive.
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// Describe returns the shape kind and its geometric parameters
	Describe() (kind string, properties map[string]interface{})

	// GetMaterial returns the material attached to the shape
	GetMaterial() *material.Material

	// Validate reports invalid geometry or a missing material
	Validate() error

	shape()
}

// unitLengthTolerance bounds how far a stored normal may drift from unit length
const unitLengthTolerance = 1e-9

func isUnit(v core.Vec3) bool {
	return math.Abs(v.Length()-1) <= unitLengthTolerance
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
