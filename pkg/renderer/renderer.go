package renderer

import (
	"context"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderConfig contains the image and execution settings for a render
type RenderConfig struct {
	Width      int                      // Image width in pixels
	Height     int                      // Image height in pixels
	Shading    integrator.ShadingConfig // Recursion depth and shadow epsilon
	TileSize   int                      // Size of each square tile
	NumWorkers int                      // Number of parallel workers (0 = use CPU count)
	Gamma      float64                  // Output gamma for 8-bit conversion, 1 keeps colors linear
	OnTile     func(TileUpdate)         // Optional; called once per finished tile
	Logger     core.Logger              // Optional; receives timing messages
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      400,
		Height:     225,
		Shading:    integrator.DefaultShadingConfig(),
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Gamma:      1.0,
	}
}

// Validate checks every setting before any pixel is computed
func (c RenderConfig) Validate() error {
	if c.Width <= 0 {
		return core.NewConfigError("render.width", "must be positive", nil)
	}
	if c.Height <= 0 {
		return core.NewConfigError("render.height", "must be positive", nil)
	}
	if c.TileSize <= 0 {
		return core.NewConfigError("render.tileSize", "must be positive", nil)
	}
	if c.NumWorkers < 0 {
		return core.NewConfigError("render.numWorkers", "must be non-negative", nil)
	}
	if !(c.Gamma > 0) {
		return core.NewConfigError("render.gamma", "must be positive", nil)
	}
	return c.Shading.Validate()
}

// TileUpdate contains a finished tile for streaming consumers
type TileUpdate struct {
	TileID     int
	Bounds     image.Rectangle // Pixel bounds within the full image
	Pixels     []core.Color    // Copy of the tile's linear colors, row-major
	TileNumber int             // 1-based completion order
	TotalTiles int
}

// Render traces one primary ray per pixel and returns the finished frame.
// Configuration faults, including a degenerate camera, are returned before any
// pixel is traced. A cancelled render returns ctx.Err() and no frame.
func Render(ctx context.Context, scn *scene.Scene, cameraConfig geometry.CameraConfig, config RenderConfig) (*FrameBuffer, RenderStats, error) {
	if scn == nil {
		return nil, RenderStats{}, core.NewConfigError("render.scene", "is required", nil)
	}
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, RenderStats{}, err
	}
	shader, err := integrator.NewWhittedShader(config.Shading)
	if err != nil {
		return nil, RenderStats{}, err
	}

	logger := config.Logger
	if logger == nil {
		logger = discardLogger{}
	}

	fb := NewFrameBuffer(config.Width, config.Height)
	tiles := NewTileGrid(config.Width, config.Height, config.TileSize)
	pool := NewWorkerPool(NewTileRenderer(scn, camera, shader, config.Width, config.Height), config.NumWorkers)

	logger.Printf("Rendering %dx%d (%d primitives, %d lights, depth %d) in %d tiles using %d workers...\n",
		config.Width, config.Height, scn.GetPrimitiveCount(), len(scn.Lights()),
		config.Shading.MaxDepth, len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	completed := 0
	err = pool.Run(ctx, tiles, fb, func(result TileResult) {
		completed++
		if config.OnTile == nil {
			return
		}
		config.OnTile(TileUpdate{
			TileID:     result.Tile.ID,
			Bounds:     result.Tile.Bounds,
			Pixels:     fb.Region(result.Tile.Bounds),
			TileNumber: completed,
			TotalTiles: len(tiles),
		})
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Printf("Render cancelled after %d of %d tiles\n", completed, len(tiles))
		return nil, RenderStats{}, ctxErr
	}
	if err != nil {
		return nil, RenderStats{}, err
	}
	elapsed := time.Since(startTime)

	stats := RenderStats{
		TotalPixels: config.Width * config.Height,
		TotalTiles:  len(tiles),
		NumWorkers:  pool.GetNumWorkers(),
		Duration:    elapsed,
	}
	stats.MeanLuminance, stats.StdDevLuminance, stats.BackgroundPixels = computeStats(fb, scn.Background())

	logger.Printf("Render completed in %v (%.0f pixels/s)\n", elapsed, stats.PixelsPerSecond())
	return fb, stats, nil
}

// RenderPixels renders and returns RGBA8 bytes: row-major, top-left origin,
// colors clamped to [0, 1] after gamma, alpha 255.
func RenderPixels(ctx context.Context, scn *scene.Scene, cameraConfig geometry.CameraConfig, config RenderConfig) ([]byte, error) {
	fb, _, err := Render(ctx, scn, cameraConfig, config)
	if err != nil {
		return nil, err
	}
	return fb.RGBA8(config.Gamma), nil
}
