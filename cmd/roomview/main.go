package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"room-designer/internal/camera"
	"room-designer/internal/config"
	"room-designer/internal/designer"
	"room-designer/internal/export"
	"room-designer/internal/perf"
	"room-designer/internal/planview"
	"room-designer/internal/precision"
	"room-designer/internal/render"
	"room-designer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Frame width (default: 1280)")
	height := flag.Int("height", 0, "Frame height (default: 720)")
	workers := flag.Int("workers", 0, "Render worker count (default: max(1, min(4, cores-1)))")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	frames := flag.Int("frames", 1, "Number of frames to render (yaw pans across frames)")
	yawStep := flag.Float64("yaw-step", 3, "Yaw degrees added per frame")
	format := flag.String("format", "webp", "Snapshot format: webp, tga or png")
	plan := flag.Bool("plan", true, "Also render the top-down floor plan")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
		OutputDir: *outputDir,
	})
	if len(cfg.Furniture) == 0 {
		cfg.Furniture = demoFurniture()
	}

	room, err := cfg.BuildRoom()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	rounder, err := precision.NewRounder(precision.Mode(cfg.PrecisionMode), cfg.GridSnap, cfg.GridSnapSize, precision.Unit(cfg.UnitSystem))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in precision settings: %v\n", err)
		os.Exit(1)
	}

	renderW := cfg.Width * cfg.Supersample
	renderH := cfg.Height * cfg.Supersample
	renderer := render.NewRenderer(cfg.Workers)
	sess, err := designer.NewSession(renderW, renderH, cfg.FocalLength*float64(cfg.Supersample), room, renderer, rounder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	if layout, found, err := config.LoadLayout(cfg.LayoutFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if found {
		sess.ApplyLayout(layout)
		fmt.Printf("Layout: restored %d records from %s\n", len(layout.Furniture), cfg.LayoutFile)
	}

	fmt.Printf("Room Designer 3D Viewer\n")
	fmt.Printf("Frame: %dx%d (x%d supersample), Workers: %d, Furniture: %d\n",
		cfg.Width, cfg.Height, cfg.Supersample, renderer.Workers(), len(room.Furniture))
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	monitor := perf.NewMonitor(60)
	st := cameraState(cfg)

	for i := 0; i < *frames; i++ {
		monitor.StartFrame()
		sess.SetCameraState(st)

		img := image.NewNRGBA(image.Rect(0, 0, renderW, renderH))
		monitor.StartSection("render")
		sess.Render(img)
		monitor.EndSection()

		out := export.Downsample(img, cfg.Width, cfg.Height)
		name := fmt.Sprintf("frame_%04d.%s", i, *format)
		if err := export.WriteImage(filepath.Join(cfg.OutputDir, name), out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		st.Yaw += *yawStep
	}

	if *plan {
		planImg := planview.Draw(room, sess.Camera(), planview.Defaults())
		name := "plan." + *format
		if err := export.WriteImage(filepath.Join(cfg.OutputDir, name), planImg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Rendered %d frame(s), avg render %.1f ms", *frames, monitor.SectionMS("render"))
	if fps := monitor.FPS(); fps > 0 {
		fmt.Printf(" (%.1f fps)", fps)
	}
	fmt.Println()

	if cfg.AutoSaveLayout != nil && *cfg.AutoSaveLayout {
		if err := config.SaveLayout(cfg.LayoutFile, sess.Layout()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Layout: saved to %s\n", cfg.LayoutFile)
		}
	}
}

func cameraState(cfg config.Config) camera.State {
	return camera.State{
		X:           cfg.CameraPosition[0],
		Y:           cfg.CameraPosition[1],
		Z:           cfg.CameraPosition[2],
		Roll:        cfg.CameraRotation[0],
		Pitch:       cfg.CameraRotation[1],
		Yaw:         cfg.CameraRotation[2],
		FocalLength: cfg.FocalLength * float64(cfg.Supersample),
	}
}

// demoFurniture is the fallback scene when no config supplies one: enough
// pieces to push the renderer into its parallel path.
func demoFurniture() []scene.FurnitureRecord {
	colors := [][3]uint8{
		{170, 110, 60}, {90, 130, 180}, {120, 160, 90}, {180, 90, 120},
		{200, 160, 60}, {100, 100, 160}, {150, 80, 60}, {60, 150, 150},
		{130, 130, 70}, {160, 120, 150}, {80, 120, 80}, {190, 140, 100},
	}
	names := []string{
		"sofa", "table", "shelf", "bed", "desk", "chair",
		"cabinet", "plant", "lamp", "dresser", "rug", "tv-stand",
	}
	var recs []scene.FurnitureRecord
	for i, name := range names {
		col, row := i%4, i/4
		recs = append(recs, scene.FurnitureRecord{
			Name:   name,
			X:      80 + float64(col)*230,
			Y:      80 + float64(row)*300,
			Width:  150,
			Height: 60 + float64(i%3)*30,
			Depth:  100,
			Color:  colors[i%len(colors)],
		})
	}
	return recs
}
