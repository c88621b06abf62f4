package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"` // Tile coordinates (not pixel coordinates)
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel offset of the tile's top-left corner
	Y          int    `json:"y"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// RenderComplete is the final statistics event for a render
type RenderComplete struct {
	ElapsedMs        int64   `json:"elapsedMs"`
	TotalPixels      int     `json:"totalPixels"`
	TotalTiles       int     `json:"totalTiles"`
	NumWorkers       int     `json:"numWorkers"`
	PrimitiveCount   int     `json:"primitiveCount"`
	MeanLuminance    float64 `json:"meanLuminance"`
	StdDevLuminance  float64 `json:"stdDevLuminance"`
	BackgroundPixels int     `json:"backgroundPixels"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "renderComplete", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams each finished tile via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine; the handler waits for it so nothing writes after return
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	// Setup console logging and streaming
	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	config := req.renderConfig()
	config.Logger = webLogger
	config.OnTile = func(update renderer.TileUpdate) {
		s.handleTileUpdate(ctx, sseEventChan, update, req)
	}

	startTime := time.Now()
	_, stats, err := renderer.Render(ctx, sceneObj, sceneObj.CameraConfig(), config)

	// Drain console messages before the event channel closes
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	s.sendEvent(ctx, sseEventChan, "renderComplete", RenderComplete{
		ElapsedMs:        time.Since(startTime).Milliseconds(),
		TotalPixels:      stats.TotalPixels,
		TotalTiles:       stats.TotalTiles,
		NumWorkers:       stats.NumWorkers,
		PrimitiveCount:   sceneObj.GetPrimitiveCount(),
		MeanLuminance:    stats.MeanLuminance,
		StdDevLuminance:  stats.StdDevLuminance,
		BackgroundPixels: stats.BackgroundPixels,
	})

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: "Rendering completed"}:
	case <-ctx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
			// Channel full, skip message to avoid blocking
		}
	}
}

// handleTileUpdate encodes a finished tile and queues it for the client
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan SSEEvent, update renderer.TileUpdate, req *RenderRequest) {
	if ctx.Err() != nil {
		return
	}

	tileData, err := s.imageToBase64PNG(tileImage(update, req.Gamma))
	if err != nil {
		log.Printf("Error encoding tile %d: %v", update.TileID, err)
		return
	}

	s.sendEvent(ctx, sseEventChan, "tile", TileUpdate{
		TileX:      update.Bounds.Min.X / req.TileSize,
		TileY:      update.Bounds.Min.Y / req.TileSize,
		X:          update.Bounds.Min.X,
		Y:          update.Bounds.Min.Y,
		ImageData:  tileData,
		TileNumber: update.TileNumber,
		TotalTiles: update.TotalTiles,
	})
}

// tileImage converts a tile's linear pixels to an 8-bit image
func tileImage(update renderer.TileUpdate, gamma float64) *image.RGBA {
	width, height := update.Bounds.Dx(), update.Bounds.Dy()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, update.Pixels[y*width+x].ToRGBA(gamma))
		}
	}
	return img
}

// sendEvent marshals payload and queues it, giving up if the client is gone
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
