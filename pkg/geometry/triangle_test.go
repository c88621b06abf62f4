package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func newTestTriangle(t *testing.T) *Triangle {
	t.Helper()
	// Triangle in the z=0 plane, counter-clockwise seen from +Z
	triangle, err := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		newTestMaterial(),
	)
	if err != nil {
		t.Fatalf("Failed to create triangle: %v", err)
	}
	return triangle
}

func TestTriangle_Normal(t *testing.T) {
	triangle := newTestTriangle(t)

	expected := core.NewVec3(0, 0, 1)
	if triangle.GetNormal().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, triangle.GetNormal())
	}
}

func TestTriangle_Hit(t *testing.T) {
	triangle := newTestTriangle(t)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		shouldHit      bool
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from front",
			origin:         core.NewVec3(0.25, 0.25, 1),
			direction:      core.NewVec3(0, 0, -1),
			shouldHit:      true,
			expectedT:      1,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from back",
			origin:         core.NewVec3(0.25, 0.25, -2),
			direction:      core.NewVec3(0, 0, 1),
			shouldHit:      true,
			expectedT:      2,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:      "miss outside u",
			origin:    core.NewVec3(-0.1, 0.5, 1),
			direction: core.NewVec3(0, 0, -1),
		},
		{
			name:      "miss beyond hypotenuse",
			origin:    core.NewVec3(0.6, 0.6, 1),
			direction: core.NewVec3(0, 0, -1),
		},
		{
			name:      "parallel ray",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(1, 0, 0),
		},
		{
			name:      "triangle behind ray",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := newTestRay(t, tt.origin, tt.direction)
			hit, isHit := triangle.Hit(ray, 0.001, 1000.0)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestTriangle_Hit_OnEdgeAndVertex(t *testing.T) {
	triangle := newTestTriangle(t)

	for _, target := range []core.Vec3{
		core.NewVec3(0.5, 0, 0),   // edge v0-v1
		core.NewVec3(0.5, 0.5, 0), // hypotenuse
		core.NewVec3(0, 0, 0),     // vertex
	} {
		ray := newTestRay(t, target.Add(core.NewVec3(0, 0, 1)), core.NewVec3(0, 0, -1))
		if _, isHit := triangle.Hit(ray, 0.001, 1000.0); !isHit {
			t.Errorf("Expected hit on boundary point %v", target)
		}
	}
}

func TestNewTriangle_Degenerate(t *testing.T) {
	_, err := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(2, 2, 2),
		newTestMaterial(),
	)
	if err == nil {
		t.Error("Expected error for collinear vertices")
	}
}
