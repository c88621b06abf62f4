package integrator

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestRay(t *testing.T, origin, direction core.Vec3) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("Failed to create ray: %v", err)
	}
	return ray
}

func newTestShader(t *testing.T, maxDepth int) *WhittedShader {
	t.Helper()
	config := DefaultShadingConfig()
	config.MaxDepth = maxDepth
	shader, err := NewWhittedShader(config)
	if err != nil {
		t.Fatalf("Failed to create shader: %v", err)
	}
	return shader
}

func buildScene(t *testing.T, b *scene.Builder) *scene.Scene {
	t.Helper()
	scn, err := b.Build()
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	return scn
}

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance && math.Abs(a.G-b.G) <= tolerance && math.Abs(a.B-b.B) <= tolerance
}

func TestShade_ZeroLightsReturnsAmbient(t *testing.T) {
	background := core.NewColor(0.2, 0.4, 0.6)
	mat := material.NewMaterial(core.NewColor(1, 0, 0))
	scn := buildScene(t, scene.NewBuilder().
		SetBackground(background).
		AddSphere(core.NewVec3(0, 0, -5), 1, mat))

	shader := newTestShader(t, 5)
	ray := newTestRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := FindNearest(scn, ray, ray.TMin, ray.TMax)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	got := shader.Shade(scn, hit, ray, 0)
	expected := background.Multiply(mat.Ambient)
	if got != expected {
		t.Errorf("Expected exactly the ambient term %v, got %v", expected, got)
	}
}

func TestShade_OccludedLightContributesNothing(t *testing.T) {
	floor := material.NewMaterial(core.NewColor(0.8, 0.8, 0.8))
	blocker := material.NewMatte(core.NewColor(0.1, 0.1, 0.1))

	newBuilder := func() *scene.Builder {
		return scene.NewBuilder().
			SetBackground(core.Black).
			AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor).
			AddPointLight(core.NewVec3(0, 10, 0), core.NewColor(1, 1, 1), 1)
	}
	lit := buildScene(t, newBuilder())
	shadowed := buildScene(t, newBuilder().AddSphere(core.NewVec3(0, 5, 0), 1, blocker))

	shader := newTestShader(t, 0)
	ray := newTestRay(t, core.NewVec3(2, 1, 0), core.NewVec3(-2, -1, 0))

	litColor := shader.RayColor(lit, ray, 0)
	if litColor.IsBlack() {
		t.Fatalf("Expected lit floor to receive light, got %v", litColor)
	}

	shadowColor := shader.RayColor(shadowed, ray, 0)
	if shadowColor != core.Black {
		t.Errorf("Expected no contribution from occluded light, got %v", shadowColor)
	}
}

func TestShade_DirectionalLightLambert(t *testing.T) {
	mat := material.NewMatte(core.NewColor(0.5, 0.5, 0.5))
	scn := buildScene(t, scene.NewBuilder().
		SetBackground(core.Black).
		AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), mat).
		AddDirectionalLight(core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1), 1))

	shader := newTestShader(t, 0)
	ray := newTestRay(t, core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))

	got := shader.RayColor(scn, ray, 0)
	expected := core.NewColor(0.45, 0.45, 0.45)
	if !colorsClose(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestShade_LightBehindSurfaceIgnored(t *testing.T) {
	mat := material.NewMaterial(core.NewColor(1, 1, 1))
	scn := buildScene(t, scene.NewBuilder().
		SetBackground(core.Black).
		AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), mat).
		AddPointLight(core.NewVec3(0, -5, 0), core.NewColor(1, 1, 1), 1))

	shader := newTestShader(t, 0)
	ray := newTestRay(t, core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))

	if got := shader.RayColor(scn, ray, 0); got != core.Black {
		t.Errorf("Expected black for light below the floor, got %v", got)
	}
}

func TestShade_MaxDepthZeroIsDirectOnly(t *testing.T) {
	mirror := material.NewMirror(core.NewColor(0.9, 0.9, 0.9), 0.8)
	direct := *mirror
	direct.Reflectivity = 0

	newScene := func(mat *material.Material) *scene.Scene {
		return buildScene(t, scene.NewBuilder().
			SetBackground(core.NewColor(0.5, 0.7, 1.0)).
			AddSphere(core.NewVec3(0, 0, -5), 1, mat).
			AddSphere(core.NewVec3(0, 0, 2), 1, material.NewMatte(core.NewColor(1, 0, 0))).
			AddPointLight(core.NewVec3(5, 5, 0), core.NewColor(1, 1, 1), 1))
	}
	mirrorScene := newScene(mirror)
	directScene := newScene(&direct)

	ray := newTestRay(t, core.NewVec3(0.3, 0.2, 0), core.NewVec3(0, 0, -1))

	depthZero := newTestShader(t, 0).RayColor(mirrorScene, ray, 0)
	directOnly := newTestShader(t, 5).RayColor(directScene, ray, 0)
	if depthZero != directOnly {
		t.Errorf("Expected MaxDepth=0 to equal direct shading %v, got %v", directOnly, depthZero)
	}

	withReflection := newTestShader(t, 5).RayColor(mirrorScene, ray, 0)
	if withReflection == depthZero {
		t.Error("Expected reflection to change the color when MaxDepth > 0")
	}
}

func TestShade_IndexMatchedGlassIsInvisible(t *testing.T) {
	clear := &material.Material{
		Color:           core.NewColor(1, 1, 1),
		Transparency:    1,
		RefractiveIndex: 1,
	}
	background := core.NewColor(0.3, 0.6, 0.9)
	scn := buildScene(t, scene.NewBuilder().
		SetBackground(background).
		SetAmbient(core.Black).
		AddSphere(core.NewVec3(0, 0, -5), 1, clear))

	ray := newTestRay(t, core.NewVec3(0, 0.2, 0), core.NewVec3(0, 0, -1))
	got := newTestShader(t, 5).RayColor(scn, ray, 0)
	if !colorsClose(got, background, 1e-9) {
		t.Errorf("Expected background %v through index-matched sphere, got %v", background, got)
	}

	// Without enough depth to exit the sphere the transmitted light is lost
	got = newTestShader(t, 1).RayColor(scn, ray, 0)
	if got != core.Black {
		t.Errorf("Expected black with MaxDepth=1, got %v", got)
	}
}

func TestShade_TotalInternalReflection(t *testing.T) {
	newGlass := func(ior float64) *material.Material {
		return &material.Material{
			Color:           core.NewColor(1, 1, 1),
			Ambient:         1,
			Transparency:    0.5,
			RefractiveIndex: ior,
		}
	}
	newScene := func(mat *material.Material) *scene.Scene {
		return buildScene(t, scene.NewBuilder().
			SetBackground(core.NewColor(0, 0, 1)).
			SetAmbient(core.NewColor(0.2, 0.2, 0.2)).
			AddSphere(core.NewVec3(0, 0, 0), 1, mat))
	}

	// From inside the sphere at 0.9 off-axis the ray meets the surface about
	// 64 degrees from the normal, past the 41.8 degree critical angle for 1.5.
	// Every internal bounce repeats the same angle.
	ray := newTestRay(t, core.NewVec3(0, 0.9, 0), core.NewVec3(1, 0, 0))
	shader := newTestShader(t, 3)

	scn := newScene(newGlass(1.5))
	hit, isHit := FindNearest(scn, ray, ray.TMin, ray.TMax)
	if !isHit {
		t.Fatal("Expected hit from inside the sphere")
	}
	if hit.FrontFace {
		t.Fatal("Expected back-face hit from inside the sphere")
	}
	if _, ok := shader.refractedRay(hit, ray); ok {
		t.Fatal("Expected total internal reflection")
	}

	got := shader.Shade(scn, hit, ray, 0)

	reflected, ok := shader.reflectedRay(hit, ray)
	if !ok {
		t.Fatal("Expected a reflected ray")
	}
	ambient := core.NewColor(0.2, 0.2, 0.2)
	expected := ambient.Add(shader.RayColor(scn, reflected, 1).Multiply(0.5))
	if !colorsClose(got, expected, 1e-12) {
		t.Errorf("Expected full transparency weight on reflection %v, got %v", expected, got)
	}

	// Ambient plus half of each deeper bounce, three bounces deep
	want := core.NewColor(0.375, 0.375, 0.375)
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("Expected %v from trapped reflections, got %v", want, got)
	}

	// Index-matched glass lets the same ray escape to the blue background
	matched := shader.RayColor(newScene(newGlass(1.0)), ray, 0)
	if colorsClose(matched, got, 1e-3) {
		t.Errorf("Expected index-matched result to differ from total internal reflection, both %v", got)
	}
	if !colorsClose(matched, core.NewColor(0.2, 0.2, 0.7), 1e-9) {
		t.Errorf("Expected ambient plus half the background, got %v", matched)
	}
}

func TestShade_FresnelSplitsTransparency(t *testing.T) {
	glass := material.NewGlass(1.5)
	glass.Specular = 0
	background := core.NewColor(1, 1, 1)
	scn := buildScene(t, scene.NewBuilder().
		SetBackground(background).
		SetAmbient(core.Black).
		AddSphere(core.NewVec3(0, 0, -5), 1, glass))

	// Head-on: reflection and refraction both end on the white background, so
	// the split weights must sum back to one
	ray := newTestRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := newTestShader(t, 8).RayColor(scn, ray, 0)
	if got.R > 1+1e-9 || got.R < 0.9 {
		t.Errorf("Expected energy close to 1 through glass, got %v", got)
	}
}

func TestFindNearest_TieGoesToFirstInserted(t *testing.T) {
	first := material.NewMatte(core.NewColor(1, 0, 0))
	second := material.NewMatte(core.NewColor(0, 1, 0))
	scn := buildScene(t, scene.NewBuilder().
		AddSphere(core.NewVec3(0, 0, -5), 1, first).
		AddSphere(core.NewVec3(0, 0, -5), 1, second))

	ray := newTestRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := FindNearest(scn, ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.ShapeIndex != 0 || hit.Material != first {
		t.Errorf("Expected first inserted sphere to win the tie, got index %d", hit.ShapeIndex)
	}
}

func TestFindNearest_TieGroupIsMeasuredFromNearest(t *testing.T) {
	mat := material.NewMatte(core.NewColor(1, 1, 1))
	normal := core.NewVec3(0, 0, 1)
	// Inserted far to near, each 0.6e-9 apart: the middle plane ties with the
	// nearest, the first does not
	scn := buildScene(t, scene.NewBuilder().
		AddPlane(core.NewVec3(0, 0, -(1+1.2e-9)), normal, mat).
		AddPlane(core.NewVec3(0, 0, -(1+0.6e-9)), normal, mat).
		AddPlane(core.NewVec3(0, 0, -1), normal, mat))

	ray := newTestRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := FindNearest(scn, ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.ShapeIndex != 1 {
		t.Errorf("Expected the first plane within TieEpsilon of the nearest (index 1), got index %d", hit.ShapeIndex)
	}
}

func TestFindNearest_PicksClosest(t *testing.T) {
	mat := material.NewMatte(core.NewColor(1, 1, 1))
	scn := buildScene(t, scene.NewBuilder().
		AddSphere(core.NewVec3(0, 0, -10), 1, mat).
		AddPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1), mat).
		AddSphere(core.NewVec3(0, 0, -4), 1, mat))

	ray := newTestRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := FindNearest(scn, ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.ShapeIndex != 2 {
		t.Errorf("Expected nearest shape index 2, got %d", hit.ShapeIndex)
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}

	// Limit the interval so only the plane remains
	hit, isHit = FindNearest(scn, ray, 12, math.Inf(1))
	if !isHit || hit.ShapeIndex != 1 {
		t.Errorf("Expected plane hit beyond t=12, got hit=%t", isHit)
	}
}

func TestOccluded(t *testing.T) {
	mat := material.NewMatte(core.NewColor(1, 1, 1))
	scn := buildScene(t, scene.NewBuilder().AddSphere(core.NewVec3(0, 0, -5), 1, mat))

	ray := newTestRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !Occluded(scn, ray, 0, 10) {
		t.Error("Expected sphere to occlude the ray")
	}
	if Occluded(scn, ray, 0, 3.5) {
		t.Error("Expected no occlusion before the sphere")
	}
}

func TestShadingConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config ShadingConfig
	}{
		{"negative depth", ShadingConfig{MaxDepth: -1, ShadowEpsilon: 1e-4}},
		{"zero epsilon", ShadingConfig{MaxDepth: 5, ShadowEpsilon: 0}},
		{"NaN epsilon", ShadingConfig{MaxDepth: 5, ShadowEpsilon: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWhittedShader(tt.config)
			if !errors.Is(err, core.ErrConfiguration) {
				t.Errorf("Expected configuration fault, got %v", err)
			}
		})
	}

	if err := DefaultShadingConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}
