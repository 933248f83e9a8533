// Package hittest answers pointer queries against the scene: which piece
// of furniture sits under a screen point, and where a screen point lands
// on the floor plane. Everything here is synchronous render-thread code.
package hittest

import (
	"image"
	"sort"

	"room-designer/internal/camera"
	"room-designer/internal/scene"
)

// rayFloorEpsilon rejects rays near-parallel to the floor, where the
// intersection distance blows up.
const rayFloorEpsilon = 1e-3

// ScreenToFloor intersects the viewing ray through (sx, sy) with the floor
// plane z = 0. ok is false for near-parallel rays and for intersections
// behind the camera; degeneracy is a no-result, never an error.
func ScreenToFloor(cam camera.Transform, sx, sy float64) (x, y float64, ok bool) {
	ray := cam.Unproject(sx, sy)
	if ray[2] > -rayFloorEpsilon && ray[2] < rayFloorEpsilon {
		return 0, 0, false
	}
	pos := cam.Position()
	t := -pos[2] / ray[2]
	if t <= 0 {
		return 0, 0, false
	}
	return pos[0] + t*ray[0], pos[1] + t*ray[1], true
}

// FloorOutline projects the four floor vertices of a piece of furniture.
// All four must be individually visible; otherwise the piece is not
// hittable this frame and ok is false.
func FloorOutline(cam camera.Transform, f *scene.Furniture, width, height int) ([]image.Point, bool) {
	verts := f.Vertices()
	pts := make([]image.Point, 0, 4)
	for i := 0; i < 4; i++ {
		if !cam.IsVisible(verts[i], width, height) {
			return nil, false
		}
		x, y := cam.Project(verts[i])
		pts = append(pts, image.Point{X: x, Y: y})
	}
	return pts, true
}

// PointInPolygon is the even-odd ray-casting containment test.
func PointInPolygon(px, py int, polygon []image.Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	x, y := float64(px), float64(py)
	p1 := polygon[0]
	for i := 1; i <= n; i++ {
		p2 := polygon[i%n]
		y1, y2 := float64(p1.Y), float64(p2.Y)
		x1, x2 := float64(p1.X), float64(p2.X)
		if y > min(y1, y2) && y <= max(y1, y2) && x <= max(x1, x2) {
			var xInters float64
			if y1 != y2 {
				xInters = (y-y1)*(x2-x1)/(y2-y1) + x1
			}
			if x1 == x2 || x <= xInters {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// FindTopmostHit returns the nearest piece of furniture whose projected
// floor outline contains the screen point, or nil. Pieces behind the
// camera are skipped; candidates are probed nearest-first so the nearest
// occluder wins.
func FindTopmostHit(cam camera.Transform, width, height, px, py int, furniture []*scene.Furniture) *scene.Furniture {
	type candidate struct {
		f     *scene.Furniture
		depth float64
	}
	var byDepth []candidate
	for _, f := range furniture {
		_, _, depth := cam.ProjectWithDepth(f.FloorCenter())
		if depth <= 0 {
			continue
		}
		byDepth = append(byDepth, candidate{f: f, depth: depth})
	}
	sort.SliceStable(byDepth, func(i, j int) bool { return byDepth[i].depth < byDepth[j].depth })

	for _, c := range byDepth {
		outline, ok := FloorOutline(cam, c.f, width, height)
		if !ok {
			continue
		}
		if PointInPolygon(px, py, outline) {
			return c.f
		}
	}
	return nil
}
