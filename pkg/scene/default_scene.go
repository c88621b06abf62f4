package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres (matte, mirror and glass) resting on a large ground sphere
func NewDefaultScene() (*Scene, error) {
	ground := material.NewMatte(core.NewColor(0.8, 0.8, 0.0).Multiply(0.6))
	red := material.NewMaterial(core.NewColor(0.65, 0.25, 0.2))
	silver := material.NewMirror(core.NewColor(0.8, 0.8, 0.8), 0.8)
	glass := material.NewGlass(1.5)

	return NewBuilder().
		SetCamera(geometry.CameraConfig{
			Center: core.NewVec3(0, 0.75, 2),
			LookAt: core.NewVec3(0, 0.25, -1),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40.0,
		}).
		SetBackground(core.NewColor(0.5, 0.7, 1.0)).
		SetAmbient(core.NewColor(0.25, 0.25, 0.3)).
		AddSphere(core.NewVec3(0, -100, -1), 100, ground).
		AddSphere(core.NewVec3(0, 0.5, -1), 0.5, red).
		AddSphere(core.NewVec3(-1.05, 0.5, -1), 0.5, silver).
		AddSphere(core.NewVec3(1.05, 0.5, -1), 0.5, glass).
		AddPointLight(core.NewVec3(-3, 5, 3), core.NewColor(1, 1, 1), 0.8).
		AddDirectionalLight(core.NewVec3(1, -1, -0.5), core.NewColor(1, 0.95, 0.9), 0.3).
		Build()
}

// NewMirrorRoomScene creates a floor and a mirrored back wall with a triangle
// prism and a glass sphere, so reflections of reflections are visible
func NewMirrorRoomScene() (*Scene, error) {
	floor := material.NewMatte(core.NewColor(0.7, 0.7, 0.7))
	mirror := material.NewMirror(core.NewColor(0.9, 0.9, 0.9), 0.9)
	blue := material.NewMaterial(core.NewColor(0.2, 0.3, 0.8))
	orange := material.NewMaterial(core.NewColor(0.9, 0.5, 0.1))
	glass := material.NewGlass(1.5)

	apex := core.NewVec3(-0.6, 1.2, -3.5)
	a := core.NewVec3(-1.2, 0, -3)
	b := core.NewVec3(0, 0, -3)
	c := core.NewVec3(-0.6, 0, -4)

	return NewBuilder().
		SetCamera(geometry.CameraConfig{
			Center: core.NewVec3(0, 1, 1),
			LookAt: core.NewVec3(0, 0.6, -3),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   55.0,
		}).
		SetBackground(core.NewColor(0.05, 0.05, 0.08)).
		SetAmbient(core.NewColor(0.3, 0.3, 0.3)).
		AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor).
		AddPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), mirror).
		AddTriangle(a, b, apex, blue).
		AddTriangle(b, c, apex, orange).
		AddTriangle(c, a, apex, blue).
		AddSphere(core.NewVec3(1, 0.6, -2.5), 0.6, glass).
		AddPointLight(core.NewVec3(2, 4, 0), core.NewColor(1, 1, 1), 0.9).
		Build()
}

// NewSingleSphereScene creates one red sphere lit by a single point light
func NewSingleSphereScene() (*Scene, error) {
	return NewBuilder().
		SetCamera(geometry.DefaultCameraConfig()).
		SetBackground(core.NewColor(0, 0, 0)).
		AddSphere(core.NewVec3(0, 0, -5), 1, material.NewMaterial(core.NewColor(1, 0, 0))).
		AddPointLight(core.NewVec3(5, 5, 0), core.NewColor(1, 1, 1), 1).
		Build()
}
