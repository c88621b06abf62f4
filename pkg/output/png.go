package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"
)

// WritePNG encodes img as PNG to w
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SaveRender writes img to <baseDir>/<sceneName>/render_<timestamp>.png and
// returns the path of the written file
func SaveRender(baseDir, sceneName string, img image.Image, now time.Time) (string, error) {
	outputDir := filepath.Join(baseDir, sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := now.Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := WritePNG(file, img); err != nil {
		return "", err
	}
	return filename, file.Close()
}
