// Package capture saves rendered frames as PNG screenshots.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshot writes timestamped PNG files into an output directory.
type Screenshot struct {
	outputDir string
	prefix    string
}

// NewScreenshot creates a screenshot writer. An empty outputDir writes
// into the working directory.
func NewScreenshot(outputDir, prefix string) *Screenshot {
	return &Screenshot{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// SaveFromPixels saves raw RGBA framebuffer data as a PNG and returns the
// written filename. The rows are flipped vertically since OpenGL reads
// pixels bottom-up.
func (s *Screenshot) SaveFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.Filename()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y // Flip Y
		srcOffset := srcY * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// Filename returns the timestamped path the next save would use.
func (s *Screenshot) Filename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", s.prefix, timestamp)
	if s.outputDir != "" {
		filename = filepath.Join(s.outputDir, filename)
	}
	return filename
}
