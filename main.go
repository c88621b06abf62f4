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

// Config holds the command line options
type Config struct {
	SceneType  string
	Width      int
	Height     int
	MaxDepth   int
	NumWorkers int
	TileSize   int
	Gamma      float64
	Caption    bool
	OutputDir  string
}

func main() {
	config, help := parseFlags(os.Args[1:])
	if help {
		showHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (Config, bool) {
	fs := flag.NewFlagSet("raytracer", flag.ExitOnError)
	config, help := registerFlags(fs)
	fs.Parse(args)
	return *config, *help
}

// registerFlags defines the command line flags on fs
func registerFlags(fs *flag.FlagSet) (*Config, *bool) {
	config := &Config{}
	fs.StringVar(&config.SceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&config.Width, "width", 400, "Image width in pixels")
	fs.IntVar(&config.Height, "height", 225, "Image height in pixels")
	fs.IntVar(&config.MaxDepth, "depth", 5, "Maximum reflection/refraction depth")
	fs.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&config.TileSize, "tile", 32, "Tile size in pixels")
	fs.Float64Var(&config.Gamma, "gamma", 2.0, "Output gamma (1 = linear)")
	fs.BoolVar(&config.Caption, "caption", false, "Burn render statistics into the bottom of the image")
	fs.StringVar(&config.OutputDir, "out", "output", "Base output directory")
	help := fs.Bool("help", false, "Show help information")
	return config, help
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	registerFlags(fs)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene_type>/render_<timestamp>.png")
}

func run(ctx context.Context, config Config) error {
	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%d primitives, %d lights)...\n",
		config.SceneType, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights()))

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.Width = config.Width
	renderConfig.Height = config.Height
	renderConfig.Shading.MaxDepth = config.MaxDepth
	renderConfig.NumWorkers = config.NumWorkers
	renderConfig.TileSize = config.TileSize
	renderConfig.Gamma = config.Gamma
	renderConfig.Logger = renderer.NewDefaultLogger()

	fb, stats, err := renderer.Render(ctx, selectedScene, selectedScene.CameraConfig(), renderConfig)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Luminance: mean %.4f, std-dev %.4f (%d of %d pixels background)\n",
		stats.MeanLuminance, stats.StdDevLuminance, stats.BackgroundPixels, stats.TotalPixels)

	img := fb.ToRGBA(config.Gamma)
	if config.Caption {
		output.DrawCaption(img, fmt.Sprintf("%s %dx%d depth %d %v",
			config.SceneType, config.Width, config.Height, config.MaxDepth, stats.Duration.Round(time.Millisecond)))
	}

	filename, err := output.SaveRender(config.OutputDir, config.SceneType, img, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.ByName(sceneType)
}
