package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// PixelReader reads back the current framebuffer as tightly packed RGBA rows,
// bottom row first.
type PixelReader interface {
	ReadPixels(width, height int) []byte
}

// ScreenshotCapture writes framebuffer captures as PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing <prefix>_<time>.png
// files into outputDir (the working directory when empty).
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// Capture reads the framebuffer through r and saves it.
func (sc *ScreenshotCapture) Capture(r PixelReader, width, height int) (string, error) {
	return sc.CaptureFromPixels(r.ReadPixels(width, height), width, height)
}

// CaptureFromPixels saves raw RGBA pixel data of width*height*4 bytes.
// Rows are flipped since OpenGL has its origin at the bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	return sc.save(img)
}

func (sc *ScreenshotCapture) save(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.filename()
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

func (sc *ScreenshotCapture) filename() string {
	name := fmt.Sprintf("%s_%s.png", sc.prefix, sc.now().Format("2006-01-02_15-04-05.000"))
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return name
}
