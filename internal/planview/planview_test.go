package planview

import (
	"image/color"
	"testing"

	"room-designer/internal/camera"
	"room-designer/internal/scene"
)

func planScene(t *testing.T) (*scene.Room, *scene.Furniture) {
	t.Helper()
	room, err := scene.NewRoom(1000, 1000, 300, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	sofa, err := scene.NewFurniture("sofa", 100, 100, 0, 150, 80, 100, color.NRGBA{R: 180, G: 60, B: 60, A: 255})
	if err != nil {
		t.Fatalf("NewFurniture: %v", err)
	}
	room.Add(sofa)
	return room, sofa
}

func planCamera(t *testing.T) camera.Transform {
	t.Helper()
	cam, err := camera.NewTransform(600, 600, 640, 360)
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}
	cam.SetExtrinsic(30, 0, 90, 500, 500, 300)
	return cam
}

func TestDrawUsesDefaultsForZeroOptions(t *testing.T) {
	room, _ := planScene(t)
	img := Draw(room, planCamera(t), Options{})
	want := Defaults()
	if img.Bounds().Dx() != want.Size || img.Bounds().Dy() != want.Size {
		t.Fatalf("plan size = %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), want.Size, want.Size)
	}
	if got := img.NRGBAAt(0, 0); got != want.Background {
		t.Errorf("corner pixel = %v, want background %v", got, want.Background)
	}
}

func TestDrawRoomOutlineAndMarker(t *testing.T) {
	room, _ := planScene(t)
	opts := Defaults()
	img := Draw(room, planCamera(t), opts)

	// Room corner in plan coordinates: margin 40, scale 0.32.
	if got := img.NRGBAAt(40, 40); got != opts.RoomOutline {
		t.Errorf("room corner pixel = %v, want outline %v", got, opts.RoomOutline)
	}

	// Camera at world (500, 500) lands at plan (200, 200). The view
	// direction overdraws the right arm of the cross, the left arm and
	// the vertical arm keep the marker color.
	if got := img.NRGBAAt(194, 200); got != opts.CameraColor {
		t.Errorf("cross left arm = %v, want %v", got, opts.CameraColor)
	}
	if got := img.NRGBAAt(200, 194); got != opts.CameraColor {
		t.Errorf("cross top arm = %v, want %v", got, opts.CameraColor)
	}
	// Yaw 90 means the camera looks along world +Y, plan +X.
	if got := img.NRGBAAt(240, 200); got != opts.ViewDirColor {
		t.Errorf("view direction tip = %v, want %v", got, opts.ViewDirColor)
	}
}

func TestDrawFootprint(t *testing.T) {
	room, sofa := planScene(t)
	opts := Defaults()

	img := Draw(room, planCamera(t), opts)
	if got, want := img.NRGBAAt(80, 80), lighten(sofa.Color); got != want {
		t.Errorf("footprint interior = %v, want %v", got, want)
	}
	if got := img.NRGBAAt(72, 72); got != sofa.Color {
		t.Errorf("footprint corner = %v, want edge %v", got, sofa.Color)
	}

	sofa.Selected = true
	img = Draw(room, planCamera(t), opts)
	if got := img.NRGBAAt(72, 72); got != opts.SelectedColor {
		t.Errorf("selected footprint corner = %v, want %v", got, opts.SelectedColor)
	}
}
