// Package export writes rendered frames to disk and downsamples
// supersampled frames. All frame pixels here are opaque; format choice is
// by file extension.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// WriteImage encodes the frame by extension: .webp, .tga or .png.
func WriteImage(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	case ".png":
		err = png.Encode(f, img)
	default:
		return fmt.Errorf("export: unsupported extension in %s (want .webp, .tga or .png)", path)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}

// Downsample scales a supersampled frame back to the display size with
// CatmullRom filtering. Frames are fully opaque, so no alpha handling is
// needed. Already-small frames pass through.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
