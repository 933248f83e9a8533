package render

import (
	"image"
	"image/color"
	"testing"

	"room-designer/internal/camera"
	"room-designer/internal/mathutil"
	"room-designer/internal/scene"
)

// overheadCamera looks straight down at (x, y) from height z.
// With R = Rz·Ry·Rx, yaw 90 followed by roll 90 turns the forward axis to
// world −Z.
func overheadCamera(t *testing.T, x, y, z float64) camera.Transform {
	t.Helper()
	cam, err := camera.NewTransform(600, 600, 640, 360)
	if err != nil {
		t.Fatal(err)
	}
	cam.SetExtrinsic(90, 0, 90, x, y, z)
	return cam
}

func TestCullSymmetryFromAbove(t *testing.T) {
	box := scene.Box{Width: 100, Height: 100, Depth: 100}
	center := box.Center()
	cam := overheadCamera(t, center[0], center[1], 500)

	visible := VisibleFaces(cam, box.Vertices(), box.Faces(), ViewOutside)

	var hasTop, hasBottom bool
	for _, vf := range visible {
		switch vf.Face.Normal {
		case mathutil.Vec3{0, 0, 1}:
			hasTop = true
		case mathutil.Vec3{0, 0, -1}:
			hasBottom = true
		}
	}
	if !hasTop {
		t.Error("top face culled when viewed from directly above")
	}
	if hasBottom {
		t.Error("bottom face kept when viewed from directly above")
	}
	// Directly above the centroid the four sides graze the view vector
	// and must not survive either.
	if len(visible) != 1 {
		t.Errorf("expected exactly the top face, got %d faces", len(visible))
	}
}

func TestRoomCullKeepsFloorFromInside(t *testing.T) {
	room, err := scene.NewRoom(1000, 1000, 300, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	if err != nil {
		t.Fatal(err)
	}
	cam := overheadCamera(t, 500, 500, 250) // inside, below the ceiling

	visible := VisibleFaces(cam, room.Vertices(), room.Faces(), ViewInside)

	var hasFloor, hasCeiling bool
	for _, vf := range visible {
		switch vf.Face.Normal {
		case mathutil.Vec3{0, 0, -1}:
			hasFloor = true
		case mathutil.Vec3{0, 0, 1}:
			hasCeiling = true
		}
	}
	if !hasFloor {
		t.Error("floor culled when looking down inside the room")
	}
	if hasCeiling {
		t.Error("ceiling kept while behind the downward-looking camera")
	}
}

func TestVisibleFacesSortedFarthestFirst(t *testing.T) {
	box := scene.Box{Width: 100, Height: 100, Depth: 100}
	cam, _ := camera.NewTransform(600, 600, 640, 360)
	cam.SetExtrinsic(30, 0, 90, 50, -400, 300)

	visible := VisibleFaces(cam, box.Vertices(), box.Faces(), ViewOutside)
	if len(visible) == 0 {
		t.Fatal("no faces visible from an oblique view")
	}
	for i := 1; i < len(visible); i++ {
		if visible[i].Depth > visible[i-1].Depth {
			t.Fatalf("faces not sorted farthest-first: %v after %v",
				visible[i].Depth, visible[i-1].Depth)
		}
	}
}

func TestClipSegmentCameraPlane(t *testing.T) {
	cam, _ := camera.NewTransform(100, 100, 100, 100)

	t.Run("both behind", func(t *testing.T) {
		if _, _, ok := ClipSegment(cam, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{2, 5, 0}); ok {
			t.Error("segment fully behind the camera not discarded")
		}
	})

	t.Run("one behind clips to near plane", func(t *testing.T) {
		a := mathutil.Vec3{-1, 0, 0} // depth +1
		b := mathutil.Vec3{1, 0, 0}  // depth -1
		p1, p2, ok := ClipSegment(cam, a, b)
		if !ok {
			t.Fatal("straddling segment discarded")
		}
		// Interpolated endpoint lands at depth 0.1, on the optical axis.
		want := image.Point{X: 100, Y: 100}
		if p1 != want || p2 != want {
			t.Errorf("clipped to %v-%v, want both at %v", p1, p2, want)
		}
		// The clipped world point must sit at positive depth.
		s := (0.1 - 1.0) / (-1.0 - 1.0)
		_, _, depth := cam.ProjectWithDepth(a.Lerp(b, s))
		if depth <= 0 {
			t.Errorf("interpolated endpoint depth %v not positive", depth)
		}
	})

	t.Run("extreme coordinates clamped", func(t *testing.T) {
		a := mathutil.Vec3{-0.001, 5, 0} // projects far off screen
		b := mathutil.Vec3{-10, 5, 0}
		p1, _, ok := ClipSegment(cam, a, b)
		if !ok {
			t.Fatal("segment discarded")
		}
		if p1.X > 10000 || p1.X < -10000 || p1.Y > 10000 || p1.Y < -10000 {
			t.Errorf("endpoint %v outside the ±10000 clamp", p1)
		}
	})
}
