package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestFrameBuffer_RGBA8Layout(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Set(0, 0, core.NewColor(1, 0, 0))
	fb.Set(1, 0, core.NewColor(0, 1, 0))
	fb.Set(0, 1, core.NewColor(0, 0, 1))
	fb.Set(1, 1, core.NewColor(2, -1, 0.5)) // Clamped at output only

	expected := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 0, 128, 255,
	}
	got := fb.RGBA8(1.0)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d bytes, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Byte %d: expected %d, got %d (%v)", i, expected[i], got[i], got)
		}
	}

	// The buffer itself keeps unclamped linear values
	if fb.At(1, 1).R != 2 {
		t.Errorf("Expected unclamped value 2, got %f", fb.At(1, 1).R)
	}
}

func TestFrameBuffer_Region(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			fb.Set(x, y, core.NewColor(float64(x), float64(y), 0))
		}
	}

	region := fb.Region(image.Rect(1, 1, 3, 3))
	if len(region) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(region))
	}
	expected := []core.Color{
		core.NewColor(1, 1, 0), core.NewColor(2, 1, 0),
		core.NewColor(1, 2, 0), core.NewColor(2, 2, 0),
	}
	for i := range expected {
		if region[i] != expected[i] {
			t.Errorf("Pixel %d: expected %v, got %v", i, expected[i], region[i])
		}
	}
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		width, height, tileSize int
		expectedTiles           int
	}{
		{64, 64, 32, 4},
		{65, 64, 32, 6},
		{10, 10, 32, 1},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
		if len(tiles) != tt.expectedTiles {
			t.Errorf("%dx%d/%d: expected %d tiles, got %d", tt.width, tt.height, tt.tileSize, tt.expectedTiles, len(tiles))
		}

		area := 0
		for i, tile := range tiles {
			if tile.ID != i {
				t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
			}
			if !tile.Bounds.In(image.Rect(0, 0, tt.width, tt.height)) {
				t.Errorf("Tile %v exceeds image bounds", tile.Bounds)
			}
			area += tile.Bounds.Dx() * tile.Bounds.Dy()
		}
		if area != tt.width*tt.height {
			t.Errorf("Expected tiles to cover %d pixels, got %d", tt.width*tt.height, area)
		}
	}
}
