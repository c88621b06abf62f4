package core

import "math"

// Ray represents a half-line with a unit direction and a valid parametric interval
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray over [0, +Inf). The direction is normalized.
func NewRay(origin, direction Vec3) (Ray, error) {
	return NewRayInterval(origin, direction, 0, math.Inf(1))
}

// NewRayInterval creates a ray valid over [tMin, tMax]. The direction is normalized.
func NewRayInterval(origin, direction Vec3, tMin, tMax float64) (Ray, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: unit, TMin: tMin, TMax: tMax}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
