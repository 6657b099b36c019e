// Package export writes rendered framebuffers to disk in the format given by
// the output file extension.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"polygon-renderer/internal/bmp"
	"polygon-renderer/internal/postprocess"
	"polygon-renderer/internal/raster"
)

// Format names an output encoding.
type Format string

const (
	BMP  Format = "bmp"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// Options controls Save.
type Options struct {
	Format Format // empty = infer from the path extension
	Scale  int    // integer upscale factor, <= 1 means none
}

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case BMP, WebP, TGA:
		return Format(ext), nil
	}
	return "", fmt.Errorf("export: unknown extension %q in %s", ext, path)
}

// Save writes fb to path.
func Save(path string, fb *raster.FrameBuffer, opts Options) error {
	format := opts.Format
	if format == "" {
		var err error
		format, err = FormatFor(path)
		if err != nil {
			return err
		}
	}

	switch format {
	case BMP, WebP, TGA:
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}

	if format == BMP {
		if opts.Scale > 1 {
			fb = raster.FromNRGBA(postprocess.Upscale(raster.ToNRGBA(fb), opts.Scale))
		}
		return bmp.WriteFile(path, fb)
	}

	img := postprocess.Upscale(raster.ToNRGBA(fb), opts.Scale)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case WebP:
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("export: WebP encode %s: %w", path, err)
		}
	case TGA:
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("export: TGA encode %s: %w", path, err)
		}
	}
	return f.Close()
}
