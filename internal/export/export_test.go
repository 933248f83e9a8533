package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidFrame(w, h int, col color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, col)
		}
	}
	return img
}

func TestWriteImageFormats(t *testing.T) {
	frame := solidFrame(16, 16, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	dir := t.TempDir()

	for _, name := range []string{"frame.png", "frame.webp", "frame.tga", "upper.PNG"} {
		t.Run(name, func(t *testing.T) {
			// Nested path exercises directory creation.
			path := filepath.Join(dir, "out", name)
			if err := WriteImage(path, frame); err != nil {
				t.Fatalf("WriteImage: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Size() == 0 {
				t.Error("written file is empty")
			}
		})
	}
}

func TestWriteImagePNGRoundTrip(t *testing.T) {
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WriteImage(path, solidFrame(4, 4, want)); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	r, g, b, _ := decoded.At(2, 2).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("decoded pixel = (%d, %d, %d), want (%d, %d, %d)",
			r>>8, g>>8, b>>8, want.R, want.G, want.B)
	}
}

func TestWriteImageUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.gif")
	if err := WriteImage(path, solidFrame(4, 4, color.NRGBA{A: 255})); err == nil {
		t.Error("unsupported extension accepted")
	}
}

func TestDownsample(t *testing.T) {
	want := color.NRGBA{R: 90, G: 160, B: 220, A: 255}
	big := solidFrame(8, 8, want)

	small := Downsample(big, 4, 4)
	if small.Bounds().Dx() != 4 || small.Bounds().Dy() != 4 {
		t.Fatalf("downsampled size = %dx%d, want 4x4", small.Bounds().Dx(), small.Bounds().Dy())
	}
	// A constant frame stays constant under resampling.
	if got := small.NRGBAAt(2, 2); got != want {
		t.Errorf("downsampled pixel = %v, want %v", got, want)
	}

	fits := solidFrame(4, 4, want)
	if got := Downsample(fits, 4, 4); got != fits {
		t.Error("already-small frame should pass through unchanged")
	}
}
