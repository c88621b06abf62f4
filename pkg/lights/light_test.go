package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Illuminate(t *testing.T) {
	light, err := NewPointLight(core.NewVec3(0, 10, 0), core.NewColor(1, 0.5, 0.25), 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sample, ok := light.Illuminate(core.NewVec3(0, 0, 0))
	if !ok {
		t.Fatal("Expected illumination")
	}
	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction (0,1,0), got %v", sample.Direction)
	}
	if math.Abs(sample.Distance-10) > 1e-12 {
		t.Errorf("Expected distance 10, got %f", sample.Distance)
	}
	if sample.Radiance != core.NewColor(2, 1, 0.5) {
		t.Errorf("Expected radiance (2,1,0.5), got %v", sample.Radiance)
	}

	if _, ok := light.Illuminate(light.Position); ok {
		t.Error("Expected no illumination at the light position")
	}
}

func TestDirectionalLight_Illuminate(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVec3(0, -5, 0), core.NewColor(1, 1, 1), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sample, ok := light.Illuminate(core.NewVec3(3, 4, 5))
	if !ok {
		t.Fatal("Expected illumination")
	}
	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction toward the light (0,1,0), got %v", sample.Direction)
	}
	if !math.IsInf(sample.Distance, 1) {
		t.Errorf("Expected infinite distance, got %f", sample.Distance)
	}
}

func TestNewLight_InvalidConfig(t *testing.T) {
	if _, err := NewDirectionalLight(core.NewVec3(0, 0, 0), core.NewColor(1, 1, 1), 1); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("Expected configuration fault for zero direction, got %v", err)
	}
	if _, err := NewPointLight(core.NewVec3(0, 0, 0), core.NewColor(1, 1, 1), -1); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("Expected configuration fault for negative intensity, got %v", err)
	}
}
