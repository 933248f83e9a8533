package render

import (
	"image"
	"image/color"
	"sort"

	"room-designer/internal/camera"
	"room-designer/internal/mathutil"
	"room-designer/internal/scene"
)

// ViewSide selects the back-face cull convention. Boxes carry outward
// normals in both cases; what flips is which side of the ε band survives.
type ViewSide int

const (
	// ViewOutside keeps faces whose outward normal points toward the
	// camera (furniture, seen from outside).
	ViewOutside ViewSide = iota
	// ViewInside keeps faces whose outward normal points away from the
	// camera (the room shell, seen from inside).
	ViewInside
)

const (
	// cullEpsilon keeps grazing-angle faces from flickering in and out.
	cullEpsilon = 0.01

	// clipDepth is the forward distance a segment endpoint is pulled to
	// when it crosses the camera plane.
	clipDepth = 0.1

	// coordClamp bounds projected segment endpoints so extreme
	// perspectives cannot overflow the line rasterizer.
	coordClamp = 10000
)

// VisibleFace is a surviving face annotated with its centroid depth.
type VisibleFace struct {
	Face  scene.Face
	Depth float64
}

// VisibleFaces culls back faces against the camera, drops faces behind it,
// and returns the rest sorted farthest-first (painter's algorithm; there
// is no z-buffer). The sort is stable so equal depths keep face order and
// repeated frames are identical.
func VisibleFaces(cam camera.Transform, verts [8]mathutil.Vec3, faces [6]scene.Face, side ViewSide) []VisibleFace {
	pos := cam.Position()
	out := make([]VisibleFace, 0, 6)
	for _, f := range faces {
		centroid := faceCentroid(verts, f)
		d := f.Normal.Dot(centroid.Sub(pos))
		switch side {
		case ViewOutside:
			if d >= -cullEpsilon {
				continue
			}
		case ViewInside:
			if d <= cullEpsilon {
				continue
			}
		}
		_, _, depth := cam.ProjectWithDepth(centroid)
		if depth <= 0 {
			continue
		}
		out = append(out, VisibleFace{Face: f, Depth: depth})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}

func faceCentroid(verts [8]mathutil.Vec3, f scene.Face) mathutil.Vec3 {
	var c mathutil.Vec3
	for _, i := range f.Indices {
		c = c.Add(verts[i])
	}
	return c.Scale(0.25)
}

// ClipSegment projects a world segment, clipping it against the camera
// plane. Both endpoints behind the camera discard the segment; exactly one
// behind is interpolated in world space to depth clipDepth. The returned
// points are clamped into ±coordClamp.
func ClipSegment(cam camera.Transform, a, b mathutil.Vec3) (image.Point, image.Point, bool) {
	_, _, da := cam.ProjectWithDepth(a)
	_, _, db := cam.ProjectWithDepth(b)

	switch {
	case da <= 0 && db <= 0:
		return image.Point{}, image.Point{}, false
	case da <= 0:
		s := (clipDepth - da) / (db - da)
		if s <= 0 || s >= 1 {
			return image.Point{}, image.Point{}, false
		}
		a = a.Lerp(b, s)
	case db <= 0:
		s := (clipDepth - da) / (db - da)
		if s <= 0 || s >= 1 {
			return image.Point{}, image.Point{}, false
		}
		b = a.Lerp(b, s)
	}

	ax, ay := cam.Project(a)
	bx, by := cam.Project(b)
	return clampPoint(ax, ay), clampPoint(bx, by), true
}

func clampPoint(x, y int) image.Point {
	return image.Point{X: clampInt(x), Y: clampInt(y)}
}

func clampInt(v int) int {
	if v < -coordClamp {
		return -coordClamp
	}
	if v > coordClamp {
		return coordClamp
	}
	return v
}

// projectQuad projects a face all-or-nothing: if any vertex fails the
// visibility test the whole face is skipped rather than partially drawn.
// That rule, not polygon clipping, is the chosen simplification.
func projectQuad(cam camera.Transform, verts [8]mathutil.Vec3, f scene.Face, w, h int) ([]image.Point, bool) {
	pts := make([]image.Point, 0, 4)
	for _, i := range f.Indices {
		if !cam.IsVisible(verts[i], w, h) {
			return nil, false
		}
		x, y := cam.Project(verts[i])
		pts = append(pts, image.Point{X: x, Y: y})
	}
	return pts, true
}

var (
	roomFillColor  = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	edgeColor      = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	selectedFill   = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	selectedEdge   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	selectedLabel  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	axisColorX     = color.NRGBA{R: 255, A: 255}
	axisColorY     = color.NRGBA{G: 255, A: 255}
	axisColorZ     = color.NRGBA{B: 255, A: 255}
	axisGizmoReach = 150.0
)

// drawRoom paints the room shell: culled for inside viewing, farthest
// faces first.
func drawRoom(c *Canvas, cam camera.Transform, room *scene.Room) {
	w, h := c.Size()
	verts := room.Vertices()
	for _, vf := range VisibleFaces(cam, verts, room.Faces(), ViewInside) {
		pts, ok := projectQuad(cam, verts, vf.Face, w, h)
		if !ok {
			continue
		}
		c.FillPolygon(pts, roomFillColor)
		c.StrokePolygon(pts, room.Color)
	}
}

// drawFurniture paints one box: culled for outside viewing, farthest faces
// first, with the name label above the top face center.
func drawFurniture(c *Canvas, cam camera.Transform, f *scene.Furniture) {
	w, h := c.Size()
	verts := f.Vertices()

	fill, edge, label := f.Color, edgeColor, labelColor
	if f.Selected {
		fill, edge, label = selectedFill, selectedEdge, selectedLabel
	}

	drawn := false
	for _, vf := range VisibleFaces(cam, verts, f.Faces(), ViewOutside) {
		pts, ok := projectQuad(cam, verts, vf.Face, w, h)
		if !ok {
			continue
		}
		c.FillPolygon(pts, fill)
		c.StrokePolygon(pts, edge)
		drawn = true
	}
	if !drawn || f.Name == "" {
		return
	}

	top := mathutil.Vec3{f.X + f.Depth/2, f.Y + f.Width/2, f.Z + f.Height}
	if cam.IsVisible(top, w, h) {
		x, y := cam.Project(top)
		c.Label(x, y, f.Name, label)
	}
}

// drawAxes draws the world axis gizmo at the origin (X forward red,
// Y right green, Z up blue), clipped like any scene segment.
func drawAxes(c *Canvas, cam camera.Transform) {
	origin := mathutil.Vec3{}
	ends := []struct {
		tip mathutil.Vec3
		col color.NRGBA
	}{
		{mathutil.Vec3{axisGizmoReach, 0, 0}, axisColorX},
		{mathutil.Vec3{0, axisGizmoReach, 0}, axisColorY},
		{mathutil.Vec3{0, 0, axisGizmoReach}, axisColorZ},
	}
	for _, a := range ends {
		p1, p2, ok := ClipSegment(cam, origin, a.tip)
		if !ok {
			continue
		}
		c.DrawLine(p1, p2, a.col)
	}
}
