package designer

import (
	"image/color"
	"math"
	"testing"

	"room-designer/internal/camera"
	"room-designer/internal/hittest"
	"room-designer/internal/mathutil"
	"room-designer/internal/precision"
	"room-designer/internal/render"
	"room-designer/internal/scene"
)

func newTestSession(t *testing.T) (*Session, *scene.Furniture) {
	t.Helper()
	room, err := scene.NewRoom(1000, 1000, 300, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	table, err := scene.NewFurniture("table", 0, 0, 0, 150, 75, 100, color.NRGBA{R: 180, G: 120, B: 60, A: 255})
	if err != nil {
		t.Fatalf("NewFurniture: %v", err)
	}
	room.Add(table)

	rounder, err := precision.NewRounder(precision.ModeInteger, true, 10, precision.UnitMM)
	if err != nil {
		t.Fatalf("NewRounder: %v", err)
	}
	sess, err := NewSession(1280, 720, 600, room, render.NewRenderer(1), rounder)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(sess.Close)
	sess.SetCameraState(camera.State{X: 0, Y: -500, Z: 300, Roll: 30, Yaw: 90})
	return sess, table
}

// tableProbe returns a screen point inside the table's projected floor
// outline.
func tableProbe(t *testing.T, sess *Session, table *scene.Furniture) (int, int) {
	t.Helper()
	outline, ok := hittest.FloorOutline(sess.Camera(), table, 1280, 720)
	if !ok {
		t.Fatal("table floor outline not visible")
	}
	var px, py int
	for _, p := range outline {
		px += p.X
		py += p.Y
	}
	return px / len(outline), py / len(outline)
}

func TestNewSessionValidation(t *testing.T) {
	if _, err := NewSession(0, 720, 600, nil, nil, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewSession(1280, 720, -1, nil, nil, nil); err == nil {
		t.Error("negative focal length accepted")
	}
}

func TestSelectAt(t *testing.T) {
	sess, table := newTestSession(t)
	px, py := tableProbe(t, sess, table)

	if got := sess.SelectAt(px, py); got != table {
		t.Fatalf("SelectAt(%d, %d) = %v, want the table", px, py, got)
	}
	if !table.Selected {
		t.Error("selected furniture not flagged")
	}
	if sess.Selected() != table {
		t.Error("session selection not recorded")
	}

	if got := sess.SelectAt(0, 0); got != nil {
		t.Errorf("SelectAt on empty space = %v, want nil", got)
	}
	if table.Selected {
		t.Error("previous selection flag not cleared")
	}
}

func TestDragFollowsFloorPoint(t *testing.T) {
	sess, table := newTestSession(t)
	px, py := tableProbe(t, sess, table)
	if sess.SelectAt(px, py) != table {
		t.Fatal("table not selected")
	}

	// Screen point under the floor location (400, 600), well inside the
	// room so no clamping applies.
	tx, ty, _ := sess.Camera().ProjectWithDepth(mathutil.Vec3{400, 600, 0})
	if !sess.DragTo(tx, ty) {
		t.Fatal("DragTo returned false for an on-floor cursor")
	}
	if math.Mod(table.X, 10) != 0 || math.Mod(table.Y, 10) != 0 {
		t.Errorf("dragged origin (%v, %v) not on the 10mm grid", table.X, table.Y)
	}
	if math.Abs(table.X-400) > 10 || math.Abs(table.Y-600) > 10 {
		t.Errorf("dragged origin (%v, %v), want near (400, 600)", table.X, table.Y)
	}
}

func TestDragClampsIntoRoom(t *testing.T) {
	sess, table := newTestSession(t)
	px, py := tableProbe(t, sess, table)
	if sess.SelectAt(px, py) != table {
		t.Fatal("table not selected")
	}

	// Bottom-center pixel: the ray lands between the camera and the room,
	// so both coordinates clamp to the near corner.
	if !sess.DragTo(640, 719) {
		t.Fatal("DragTo returned false")
	}
	if table.X != 0 || table.Y != 0 {
		t.Errorf("clamped origin = (%v, %v), want (0, 0)", table.X, table.Y)
	}
}

func TestDragRequiresSelection(t *testing.T) {
	sess, table := newTestSession(t)
	if sess.DragTo(640, 360) {
		t.Error("DragTo moved with no selection")
	}

	px, py := tableProbe(t, sess, table)
	sess.SelectAt(px, py)
	sess.Release()
	if sess.DragTo(640, 360) {
		t.Error("DragTo moved after Release")
	}
	if sess.Selected() != table {
		t.Error("Release dropped the selection")
	}
}

func TestApplyLayout(t *testing.T) {
	sess, table := newTestSession(t)
	sess.ApplyLayout(scene.Layout{Furniture: []scene.FurnitureRecord{
		{Name: "table", X: 500, Y: 700},
		{Name: "no-such-piece", X: 1, Y: 2},
	}})
	if table.X != 500 || table.Y != 700 {
		t.Errorf("restored origin = (%v, %v), want (500, 700)", table.X, table.Y)
	}

	// Out-of-range saved positions clamp to the room bounds.
	sess.ApplyLayout(scene.Layout{Furniture: []scene.FurnitureRecord{
		{Name: "table", X: 5000, Y: 5000},
	}})
	if table.X != 900 || table.Y != 850 {
		t.Errorf("clamped origin = (%v, %v), want (900, 850)", table.X, table.Y)
	}

	l := sess.Layout()
	if l.RoomWidth != 1000 || l.RoomDepth != 1000 || l.RoomHeight != 300 {
		t.Errorf("layout room = %gx%gx%g, want 1000x1000x300", l.RoomWidth, l.RoomDepth, l.RoomHeight)
	}
	if len(l.Furniture) != 1 || l.Furniture[0].Name != "table" {
		t.Fatalf("layout furniture = %+v", l.Furniture)
	}
}
