package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear color seen along ray. depth is the number of
	// bounces already taken; primary rays start at 0.
	RayColor(scn *scene.Scene, ray core.Ray, depth int) core.Color
}
