// Package config loads the viewer's JSON configuration and the saved
// furniture layout, with CLI-flag overrides and auto-defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"room-designer/internal/render"
	"room-designer/internal/scene"
)

// Config holds window, camera, room and render settings.
type Config struct {
	// Window
	Width  int `json:"width"`
	Height int `json:"height"`

	// Camera
	FocalLength    float64    `json:"focal_length"`
	MinFocalLength float64    `json:"min_focal_length"`
	MaxFocalLength float64    `json:"max_focal_length"`
	ZoomStep       float64    `json:"zoom_step"`
	CameraPosition [3]float64 `json:"camera_position"`
	CameraRotation [3]float64 `json:"camera_rotation"` // roll, pitch, yaw in degrees
	MovementSpeed  float64    `json:"movement_speed"`
	RotationSpeed  float64    `json:"rotation_speed"`

	// Room + furniture
	RoomWidth  float64                 `json:"room_width"`
	RoomDepth  float64                 `json:"room_depth"`
	RoomHeight float64                 `json:"room_height"`
	RoomColor  [3]uint8                `json:"room_color"`
	Furniture  []scene.FurnitureRecord `json:"furniture"`

	// Precision
	PrecisionMode string  `json:"precision_mode"`
	GridSnap      bool    `json:"grid_snap"`
	GridSnapSize  float64 `json:"grid_snap_size"`
	UnitSystem    string  `json:"unit_system"`

	// Render settings
	Workers     int    `json:"workers"`
	Supersample int    `json:"supersample"`
	OutputDir   string `json:"output_dir"`

	// Persistence
	LayoutFile     string `json:"layout_file"`
	AutoSaveLayout *bool  `json:"auto_save_layout"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Workers   int
	OutputDir string
}

// Resolve fills empty fields with defaults. CLI flags take priority when
// non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}

	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.FocalLength <= 0 {
		c.FocalLength = 600
	}
	if c.MinFocalLength <= 0 {
		c.MinFocalLength = 200
	}
	if c.MaxFocalLength <= 0 {
		c.MaxFocalLength = 2000
	}
	if c.ZoomStep <= 0 {
		c.ZoomStep = 50
	}
	if c.CameraPosition == ([3]float64{}) {
		c.CameraPosition = [3]float64{0, -500, 300}
	}
	if c.CameraRotation == ([3]float64{}) {
		c.CameraRotation = [3]float64{30, 0, 90}
	}
	if c.MovementSpeed <= 0 {
		c.MovementSpeed = 10
	}
	if c.RotationSpeed <= 0 {
		c.RotationSpeed = 5
	}

	if c.RoomWidth <= 0 {
		c.RoomWidth = 1000
	}
	if c.RoomDepth <= 0 {
		c.RoomDepth = 1000
	}
	if c.RoomHeight <= 0 {
		c.RoomHeight = 300
	}
	if c.RoomColor == ([3]uint8{}) {
		c.RoomColor = [3]uint8{128, 128, 128}
	}

	if c.PrecisionMode == "" {
		c.PrecisionMode = "decimal_1"
	}
	if c.GridSnapSize <= 0 {
		c.GridSnapSize = 10
	}
	if c.UnitSystem == "" {
		c.UnitSystem = "mm"
	}

	if c.Workers <= 0 {
		c.Workers = render.DefaultWorkers()
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.LayoutFile == "" {
		c.LayoutFile = "furniture_layout.json"
	}
	if c.AutoSaveLayout == nil {
		t := true
		c.AutoSaveLayout = &t
	}
}
