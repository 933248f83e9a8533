package scene

import "image/color"

// FurnitureRecord is the plain-data form of one furniture piece, the shape
// the persistence layer loads at startup and exports on demand. The core
// exposes quantities only; file format is the caller's business.
type FurnitureRecord struct {
	Name   string   `json:"name"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Z      float64  `json:"z"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Depth  float64  `json:"depth"`
	Color  [3]uint8 `json:"color"`
}

// Layout is a full scene snapshot: room dimensions plus furniture records.
type Layout struct {
	RoomWidth  float64           `json:"room_width"`
	RoomDepth  float64           `json:"room_depth"`
	RoomHeight float64           `json:"room_height"`
	Furniture  []FurnitureRecord `json:"furniture"`
}

// Layout exports the current scene state.
func (r *Room) Layout() Layout {
	l := Layout{
		RoomWidth:  r.Width,
		RoomDepth:  r.Depth,
		RoomHeight: r.Height,
		Furniture:  make([]FurnitureRecord, 0, len(r.Furniture)),
	}
	for _, f := range r.Furniture {
		l.Furniture = append(l.Furniture, FurnitureRecord{
			Name:   f.Name,
			X:      f.X,
			Y:      f.Y,
			Z:      f.Z,
			Width:  f.Width,
			Height: f.Height,
			Depth:  f.Depth,
			Color:  [3]uint8{f.Color.R, f.Color.G, f.Color.B},
		})
	}
	return l
}

// Build turns a record into validated furniture.
func (rec FurnitureRecord) Build() (*Furniture, error) {
	return NewFurniture(rec.Name, rec.X, rec.Y, rec.Z, rec.Width, rec.Height, rec.Depth,
		color.NRGBA{R: rec.Color[0], G: rec.Color[1], B: rec.Color[2], A: 255})
}
