package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request parameter limits shared by the render and inspect endpoints
const (
	minImageSize    = 1
	maxImageSize    = 2000
	maxRenderDepth  = 50
	DefaultTileSize = 32
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	staticDir string
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, staticDir: "static/"}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene         string  `json:"scene"`         // Scene name (e.g., "mirror-room")
	Width         int     `json:"width"`         // Image width
	Height        int     `json:"height"`        // Image height
	MaxDepth      int     `json:"maxDepth"`      // Maximum reflection/refraction depth
	ShadowEpsilon float64 `json:"shadowEpsilon"` // Secondary ray offset
	Gamma         float64 `json:"gamma"`         // Output gamma
	TileSize      int     `json:"tileSize"`      // Tile edge length in pixels
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// shutdownTimeout bounds how long in-flight renders may take to finish on shutdown
const shutdownTimeout = 5 * time.Second

// Start starts the web server and blocks until it fails
func (s *Server) Start() error {
	return s.Run(context.Background())
}

// Run serves until ctx is cancelled, then shuts down gracefully. Cancelling
// ctx also cancels the request contexts of renders still streaming.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting web server on http://localhost%s", addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		log.Printf("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"scenes": scene.ListScenes()})
}

// parseCommonSceneParams parses the parameters shared by render and inspect requests
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()
	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 225, minImageSize, maxImageSize); err != nil {
		return err
	}
	return nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	defaults := integrator.DefaultShadingConfig()
	query := r.URL.Query()
	var err error
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", defaults.MaxDepth, 0, maxRenderDepth); err != nil {
		return nil, err
	}
	if req.ShadowEpsilon, err = parseFloatParam(query, "shadowEpsilon", defaults.ShadowEpsilon, 1e-9, 1e-1); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", 2.0, 0.1, 5.0); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", DefaultTileSize, 4, 256); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 10 {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}

	return req, nil
}

// renderConfig converts the request into renderer settings
func (req *RenderRequest) renderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.Shading.MaxDepth = req.MaxDepth
	config.Shading.ShadowEpsilon = req.ShadowEpsilon
	config.Gamma = req.Gamma
	config.TileSize = req.TileSize
	return config
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	return scene.ByName(sceneName)
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// writeJSONError writes an error response with the given status
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	shading := integrator.DefaultShadingConfig()
	camera := sceneObj.CameraConfig()
	background := sceneObj.Background()
	ambient := sceneObj.Ambient()
	response := map[string]interface{}{
		"scene":          sceneName,
		"primitiveCount": sceneObj.GetPrimitiveCount(),
		"lightCount":     len(sceneObj.Lights()),
		"background":     [3]float64{background.R, background.G, background.B},
		"ambient":        [3]float64{ambient.R, ambient.G, ambient.B},
		"camera": map[string]interface{}{
			"center": [3]float64{camera.Center.X, camera.Center.Y, camera.Center.Z},
			"lookAt": [3]float64{camera.LookAt.X, camera.LookAt.Y, camera.LookAt.Z},
			"up":     [3]float64{camera.Up.X, camera.Up.Y, camera.Up.Z},
			"vfov":   camera.VFov,
		},
		"defaults": map[string]interface{}{
			"maxDepth":      shading.MaxDepth,
			"shadowEpsilon": shading.ShadowEpsilon,
			"gamma":         2.0,
			"tileSize":      DefaultTileSize,
		},
		"limits": map[string]interface{}{
			"width": map[string]int{
				"min": minImageSize,
				"max": maxImageSize,
			},
			"height": map[string]int{
				"min": minImageSize,
				"max": maxImageSize,
			},
			"maxDepth": map[string]int{
				"min": 0,
				"max": maxRenderDepth,
			},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
