package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the viewer's command line options
type Config struct {
	SceneType  string
	Width      int
	Height     int
	MaxDepth   int
	NumWorkers int
	TileSize   int
	Gamma      float64
	Scale      int
	OutputDir  string
}

func main() {
	fs := flag.NewFlagSet("viewer", flag.ExitOnError)
	config := registerFlags(fs)
	fs.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func registerFlags(fs *flag.FlagSet) *Config {
	config := &Config{}
	fs.StringVar(&config.SceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&config.Width, "width", 400, "Image width in pixels")
	fs.IntVar(&config.Height, "height", 225, "Image height in pixels")
	fs.IntVar(&config.MaxDepth, "depth", 5, "Maximum reflection/refraction depth")
	fs.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&config.TileSize, "tile", 16, "Tile size in pixels")
	fs.Float64Var(&config.Gamma, "gamma", 2.0, "Output gamma (1 = linear)")
	fs.IntVar(&config.Scale, "scale", 2, "Window scale factor")
	fs.StringVar(&config.OutputDir, "out", "output", "Directory for snapshots saved with the S key")
	return config
}

// renderConfig converts viewer options into renderer settings
func (config Config) renderConfig() renderer.RenderConfig {
	rc := renderer.DefaultRenderConfig()
	rc.Width = config.Width
	rc.Height = config.Height
	rc.Shading.MaxDepth = config.MaxDepth
	rc.NumWorkers = config.NumWorkers
	rc.TileSize = config.TileSize
	rc.Gamma = config.Gamma
	rc.Logger = renderer.NewDefaultLogger()
	return rc
}

func run(ctx context.Context, config Config) error {
	if config.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", config.Scale)
	}

	selectedScene, err := scene.ByName(config.SceneType)
	if err != nil {
		return err
	}

	rc := config.renderConfig()
	if err := rc.Validate(); err != nil {
		return err
	}

	cnv := newCanvas(config.Width, config.Height, config.Gamma)
	rc.OnTile = cnv.applyTile

	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		_, stats, err := renderer.Render(renderCtx, selectedScene, selectedScene.CameraConfig(), rc)
		if err == nil {
			fmt.Printf("Rendered %d tiles in %v\n", stats.TotalTiles, stats.Duration.Round(time.Millisecond))
		}
		cnv.finish(err)
	}()

	return runWindow(cnv, windowOptions{
		title: "Whitted Raytracer - " + config.SceneType,
		scale: config.Scale,
		save: func() (string, error) {
			return output.SaveRender(config.OutputDir, config.SceneType, cnv.snapshot(), time.Now())
		},
	})
}
