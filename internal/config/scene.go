package config

import (
	"fmt"
	"image/color"

	"room-designer/internal/scene"
)

// BuildRoom constructs the validated scene from resolved config data.
// Malformed furniture fails the whole build; bad data never reaches the
// render loop.
func (c *Config) BuildRoom() (*scene.Room, error) {
	room, err := scene.NewRoom(c.RoomWidth, c.RoomDepth, c.RoomHeight,
		color.NRGBA{R: c.RoomColor[0], G: c.RoomColor[1], B: c.RoomColor[2], A: 255})
	if err != nil {
		return nil, err
	}
	for _, rec := range c.Furniture {
		f, err := rec.Build()
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		room.Add(f)
	}
	return room, nil
}
