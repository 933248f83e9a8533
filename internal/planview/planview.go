// Package planview draws the top-down floor plan: room outline, snap grid,
// furniture footprints and the camera marker. It reuses the scene geometry
// model with a flat orthographic mapping — world Y (right) runs along
// screen X and world X (forward) down screen Y.
package planview

import (
	"image"
	"image/color"
	"math"

	"room-designer/internal/camera"
	"room-designer/internal/render"
	"room-designer/internal/scene"
)

// Options sizes and colors the plan. Zero values are filled by Defaults.
type Options struct {
	Size         int
	Margin       int
	GridInterval float64
	GridMajor    int

	Background    color.NRGBA
	RoomOutline   color.NRGBA
	GridLine      color.NRGBA
	GridMajorLine color.NRGBA
	CameraColor   color.NRGBA
	ViewDirColor  color.NRGBA
	SelectedColor color.NRGBA
	LabelColor    color.NRGBA
}

// Defaults returns the stock plan-view appearance.
func Defaults() Options {
	return Options{
		Size:          400,
		Margin:        40,
		GridInterval:  50,
		GridMajor:     2,
		Background:    color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		RoomOutline:   color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		GridLine:      color.NRGBA{R: 210, G: 210, B: 210, A: 255},
		GridMajorLine: color.NRGBA{R: 170, G: 170, B: 170, A: 255},
		CameraColor:   color.NRGBA{R: 200, G: 30, B: 30, A: 255},
		ViewDirColor:  color.NRGBA{R: 30, G: 30, B: 200, A: 255},
		SelectedColor: color.NRGBA{R: 230, G: 180, B: 0, A: 255},
		LabelColor:    color.NRGBA{A: 255},
	}
}

// Draw renders the plan into a fresh image. The camera transform supplies
// the marker position and view direction; depth plays no part here.
func Draw(room *scene.Room, cam camera.Transform, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts = Defaults()
	}
	img := image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	c := render.NewCanvas(img)
	c.FillPolygon([]image.Point{
		{0, 0}, {opts.Size, 0}, {opts.Size, opts.Size}, {0, opts.Size},
	}, opts.Background)

	scaleX := float64(opts.Size-2*opts.Margin) / room.Width
	scaleY := float64(opts.Size-2*opts.Margin) / room.Depth
	scale := math.Min(scaleX, scaleY)

	toScreen := func(wx, wy float64) image.Point {
		return image.Point{
			X: opts.Margin + int(wy*scale),
			Y: opts.Margin + int(wx*scale),
		}
	}

	drawGrid(c, room, opts, toScreen)
	drawRoomOutline(c, room, opts, toScreen)
	drawFootprints(c, room, opts, toScreen)
	drawCameraMarker(c, cam, opts, toScreen)
	return img
}

func drawGrid(c *render.Canvas, room *scene.Room, opts Options, toScreen func(float64, float64) image.Point) {
	if opts.GridInterval <= 0 {
		return
	}
	count := 0
	for x := 0.0; x <= room.Depth+1e-9; x += opts.GridInterval {
		col := opts.GridLine
		if opts.GridMajor > 0 && count%opts.GridMajor == 0 {
			col = opts.GridMajorLine
		}
		c.DrawLine(toScreen(x, 0), toScreen(x, room.Width), col)
		count++
	}
	count = 0
	for y := 0.0; y <= room.Width+1e-9; y += opts.GridInterval {
		col := opts.GridLine
		if opts.GridMajor > 0 && count%opts.GridMajor == 0 {
			col = opts.GridMajorLine
		}
		c.DrawLine(toScreen(0, y), toScreen(room.Depth, y), col)
		count++
	}
}

func drawRoomOutline(c *render.Canvas, room *scene.Room, opts Options, toScreen func(float64, float64) image.Point) {
	c.StrokePolygon([]image.Point{
		toScreen(0, 0),
		toScreen(room.Depth, 0),
		toScreen(room.Depth, room.Width),
		toScreen(0, room.Width),
	}, opts.RoomOutline)
}

func drawFootprints(c *render.Canvas, room *scene.Room, opts Options, toScreen func(float64, float64) image.Point) {
	for _, f := range room.Furniture {
		outline := []image.Point{
			toScreen(f.X, f.Y),
			toScreen(f.X+f.Depth, f.Y),
			toScreen(f.X+f.Depth, f.Y+f.Width),
			toScreen(f.X, f.Y+f.Width),
		}
		edge := f.Color
		if f.Selected {
			edge = opts.SelectedColor
		}
		c.FillPolygon(outline, lighten(f.Color))
		c.StrokePolygon(outline, edge)

		center := f.FloorCenter()
		p := toScreen(center[0], center[1])
		c.Label(p.X, p.Y, f.Name, opts.LabelColor)
	}
}

func drawCameraMarker(c *render.Canvas, cam camera.Transform, opts Options, toScreen func(float64, float64) image.Point) {
	pos := cam.Position()
	p := toScreen(pos[0], pos[1])
	cross := 6
	c.DrawLine(image.Point{p.X - cross, p.Y}, image.Point{p.X + cross, p.Y}, opts.CameraColor)
	c.DrawLine(image.Point{p.X, p.Y - cross}, image.Point{p.X, p.Y + cross}, opts.CameraColor)

	// View direction: the camera's forward axis (−row 0 of R) flattened
	// onto the floor plane.
	r := cam.Rotation()
	fx, fy := -r[0], -r[1]
	l := math.Hypot(fx, fy)
	if l < 1e-9 {
		return
	}
	const reach = 40
	tip := image.Point{
		X: p.X + int(fy/l*reach),
		Y: p.Y + int(fx/l*reach),
	}
	c.DrawLine(p, tip, opts.ViewDirColor)
}

func lighten(col color.NRGBA) color.NRGBA {
	mix := func(v uint8) uint8 {
		return uint8((int(v) + 3*255) / 4)
	}
	return color.NRGBA{R: mix(col.R), G: mix(col.G), B: mix(col.B), A: 255}
}
