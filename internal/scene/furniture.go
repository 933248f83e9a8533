package scene

import (
	"fmt"
	"image/color"
)

// Furniture is a box viewed from the outside (outward faces kept by the
// cull). Created at scene load, repositioned in place by drag operations,
// never destroyed during a session.
type Furniture struct {
	Box
	Name     string
	Color    color.NRGBA
	Selected bool
}

// NewFurniture validates the box extents up front; malformed scene data is
// rejected at build time, never mid-render.
func NewFurniture(name string, x, y, z, width, height, depth float64, col color.NRGBA) (*Furniture, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("scene: furniture %q has non-positive extents %gx%gx%g", name, width, height, depth)
	}
	return &Furniture{
		Box:   Box{X: x, Y: y, Z: z, Width: width, Height: height, Depth: depth},
		Name:  name,
		Color: col,
	}, nil
}

// MoveTo repositions the furniture on the floor plane. Z is kept; drags
// never lift furniture.
func (f *Furniture) MoveTo(x, y float64) {
	f.X = x
	f.Y = y
}
