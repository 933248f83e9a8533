// Package scene holds the data model for the room and its furniture:
// axis-aligned boxes with derived vertices, quad faces and outward unit
// normals. Generation is deterministic from (origin, extents); there is no
// behavior here beyond geometry derivation and in-place repositioning.
package scene

import (
	"room-designer/internal/mathutil"
)

// Box is the shared shape for the room and every piece of furniture.
// Origin is one corner; extents run Width along Y, Height along Z and
// Depth along X (world axes: X forward, Y right, Z up).
type Box struct {
	X, Y, Z float64
	Width   float64
	Height  float64
	Depth   float64
}

// Face is one quad of a box: four indices into Vertices plus the outward
// unit normal. Whether a face survives culling depends on the view side
// (room interiors invert the test), not on the stored normal.
type Face struct {
	Indices [4]int
	Normal  mathutil.Vec3
}

// Vertices returns the 8 corners in fixed winding: indices 0–3 are the
// floor quad counter-clockwise from the origin (seen from above), 4–7 the
// matching top quad.
func (b Box) Vertices() [8]mathutil.Vec3 {
	x1, y1 := b.X+b.Depth, b.Y+b.Width
	z1 := b.Z + b.Height
	return [8]mathutil.Vec3{
		{b.X, b.Y, b.Z},
		{x1, b.Y, b.Z},
		{x1, y1, b.Z},
		{b.X, y1, b.Z},
		{b.X, b.Y, z1},
		{x1, b.Y, z1},
		{x1, y1, z1},
		{b.X, y1, z1},
	}
}

// Faces returns the 6 quads: bottom, top, then the four sides.
func (b Box) Faces() [6]Face {
	return [6]Face{
		{Indices: [4]int{0, 3, 2, 1}, Normal: mathutil.Vec3{0, 0, -1}},
		{Indices: [4]int{4, 5, 6, 7}, Normal: mathutil.Vec3{0, 0, 1}},
		{Indices: [4]int{0, 4, 7, 3}, Normal: mathutil.Vec3{-1, 0, 0}},
		{Indices: [4]int{1, 2, 6, 5}, Normal: mathutil.Vec3{1, 0, 0}},
		{Indices: [4]int{0, 1, 5, 4}, Normal: mathutil.Vec3{0, -1, 0}},
		{Indices: [4]int{3, 7, 6, 2}, Normal: mathutil.Vec3{0, 1, 0}},
	}
}

// Center returns the volumetric center of the box.
func (b Box) Center() mathutil.Vec3 {
	return mathutil.Vec3{b.X + b.Depth/2, b.Y + b.Width/2, b.Z + b.Height/2}
}

// FloorCenter returns the center of the bottom face. Hit-testing and pick
// ordering work on the floor footprint, so this is the depth key for both.
func (b Box) FloorCenter() mathutil.Vec3 {
	return mathutil.Vec3{b.X + b.Depth/2, b.Y + b.Width/2, b.Z}
}
