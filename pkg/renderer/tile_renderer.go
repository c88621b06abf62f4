package renderer

import (
	"context"
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It only reads shared state, so one instance serves every worker.
type TileRenderer struct {
	scene         *scene.Scene
	camera        *geometry.Camera
	integrator    integrator.Integrator
	width, height int
}

// NewTileRenderer creates a new tile renderer for an image of the given size
func NewTileRenderer(scn *scene.Scene, camera *geometry.Camera, integratorInst integrator.Integrator, width, height int) *TileRenderer {
	return &TileRenderer{
		scene:      scn,
		camera:     camera,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderTileBounds renders one primary ray per pixel within bounds into fb.
// It stops early with ctx.Err() if the context is cancelled.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, fb *FrameBuffer) error {
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			ray := tr.camera.GetRay(i, j, tr.width, tr.height)
			fb.Set(i, j, tr.integrator.RayColor(tr.scene, ray, 0))
		}
	}
	return nil
}
