// Package render implements the visibility pipeline (back-face culling,
// depth ordering, near-plane and screen clipping) and the scheduler that
// draws a depth-sorted scene of boxes onto an image, sequentially or across
// a worker pool with a deterministic merge.
package render

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas draws flat-colored primitives onto an NRGBA image. Coordinates
// are expected pre-clamped to the ±10000 segment bound; everything outside
// the pixel rect is skipped per pixel.
type Canvas struct {
	img  *image.NRGBA
	w, h int
}

func NewCanvas(img *image.NRGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{img: img, w: b.Dx(), h: b.Dy()}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = col.R
	p[1] = col.G
	p[2] = col.B
	p[3] = col.A
}

// DrawLine draws a 1px Bresenham line between two points.
func (c *Canvas) DrawLine(a, b image.Point, col color.NRGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		c.set(x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillPolygon fills a polygon with even-odd scanline coverage.
func (c *Canvas) FillPolygon(pts []image.Point, col color.NRGBA) {
	n := len(pts)
	if n < 3 {
		return
	}
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	if yMin < 0 {
		yMin = 0
	}
	if yMax >= c.h {
		yMax = c.h - 1
	}

	var xs []float64
	for y := yMin; y <= yMax; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%n]
			y1, y2 := float64(p1.Y), float64(p2.Y)
			if (y1 <= yc) == (y2 <= yc) {
				continue
			}
			t := (yc - y1) / (y2 - y1)
			xs = append(xs, float64(p1.X)+t*float64(p2.X-p1.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(xs[i] + 0.5)
			x1 := int(xs[i+1] + 0.5)
			if x0 < 0 {
				x0 = 0
			}
			if x1 > c.w {
				x1 = c.w
			}
			for x := x0; x < x1; x++ {
				c.set(x, y, col)
			}
		}
	}
}

// StrokePolygon draws the closed outline of a polygon.
func (c *Canvas) StrokePolygon(pts []image.Point, col color.NRGBA) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		c.DrawLine(pts[i], pts[(i+1)%n], col)
	}
}

// Label draws text with its baseline at (x, y) using the fixed 7x13 face.
func (c *Canvas) Label(x, y int, text string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
