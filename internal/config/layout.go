package config

import (
	"encoding/json"
	"fmt"
	"os"

	"room-designer/internal/scene"
)

// SaveLayout writes the scene snapshot as indented JSON.
func SaveLayout(path string, l scene.Layout) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write layout %s: %w", path, err)
	}
	return nil
}

// LoadLayout reads a scene snapshot saved by SaveLayout. A missing file is
// not an error — there is simply no layout yet.
func LoadLayout(path string) (scene.Layout, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return scene.Layout{}, false, nil
	}
	if err != nil {
		return scene.Layout{}, false, fmt.Errorf("config: read layout %s: %w", path, err)
	}
	var l scene.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return scene.Layout{}, false, fmt.Errorf("config: parse layout %s: %w", path, err)
	}
	return l, true, nil
}
