package scene

import (
	"fmt"
	"image/color"
)

// Room is a box with its origin pinned at the world origin, viewed from the
// inside: the cull keeps faces whose outward normal points away from the
// camera, so the interior of the far walls is what gets drawn.
type Room struct {
	Box
	Color     color.NRGBA
	Furniture []*Furniture
}

// NewRoom builds the room shell. Extents must be positive.
func NewRoom(width, depth, height float64, col color.NRGBA) (*Room, error) {
	if width <= 0 || depth <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: room has non-positive extents %gx%gx%g", width, depth, height)
	}
	return &Room{
		Box:   Box{Width: width, Height: height, Depth: depth},
		Color: col,
	}, nil
}

// Add appends furniture. Insertion order is irrelevant to rendering
// (drawing is depth-sorted per frame); duplicate names are tolerated.
func (r *Room) Add(f *Furniture) {
	r.Furniture = append(r.Furniture, f)
}

// ClampOrigin restricts a candidate furniture origin so the footprint stays
// inside the room floor.
func (r *Room) ClampOrigin(f *Furniture, x, y float64) (float64, float64) {
	x = clamp(x, 0, r.Depth-f.Depth)
	y = clamp(y, 0, r.Width-f.Width)
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
