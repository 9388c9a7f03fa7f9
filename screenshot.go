package bough

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PixelSource exposes premultiplied RGBA pixels, as produced by a raster surface.
type PixelSource interface {
	Image() *image.RGBA
}

// ScreenshotWriter writes labeled PNG snapshots of a PixelSource into Dir.
// File names are "<stamp>_<label>.png". It implements Snapshotter.
type ScreenshotWriter struct {
	Dir    string
	Source PixelSource
	// Stamp names the files; nil uses the current time.
	Stamp func() string

	written []string
}

// Snapshot captures the source and writes it as a PNG file.
func (w *ScreenshotWriter) Snapshot(label string) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: mkdir %s: %w", w.Dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	if w.Stamp != nil {
		stamp = w.Stamp()
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := WritePNG(path, w.Source.Image()); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	w.written = append(w.written, path)
	return nil
}

// Written returns the paths of all files written so far.
func (w *ScreenshotWriter) Written() []string {
	return w.written
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := img.PixOffset(0, y)
		for x := 0; x < w; x++ {
			r, g, bl, a := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				bl = uint8(min(int(bl)*255/int(a), 255))
			}
			img.Pix[di] = r
			img.Pix[di+1] = g
			img.Pix[di+2] = bl
			img.Pix[di+3] = a
			si += 4
			di += 4
		}
	}
	return img
}

// WritePNG encodes a premultiplied image to a PNG file at the given path.
func WritePNG(path string, src *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, unpremultiply(src)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
