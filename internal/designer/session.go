// Package designer ties the render core together into an editing session:
// one camera, one room, one renderer, plus the selection and drag state the
// input layer manipulates between frames. The session is an explicit owned
// object scoped to the application run — there are no package globals.
package designer

import (
	"fmt"
	"image"

	"room-designer/internal/camera"
	"room-designer/internal/hittest"
	"room-designer/internal/precision"
	"room-designer/internal/render"
	"room-designer/internal/scene"
)

// Session owns the scene and camera for one editing run. All methods are
// render-thread-only; the renderer's internal pool is the only concurrency.
type Session struct {
	cam      camera.Transform
	room     *scene.Room
	renderer *render.Renderer
	rounder  *precision.Rounder

	width, height int
	selected      *scene.Furniture
	dragging      bool
}

// NewSession builds a session with the principal point at the screen
// center. The renderer is owned by the session and closed with it.
func NewSession(width, height int, focalLength float64, room *scene.Room, renderer *render.Renderer, rounder *precision.Rounder) (*Session, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("designer: invalid screen size %dx%d", width, height)
	}
	cam, err := camera.NewTransform(focalLength, focalLength, float64(width)/2, float64(height)/2)
	if err != nil {
		return nil, err
	}
	return &Session{
		cam:      cam,
		room:     room,
		renderer: renderer,
		rounder:  rounder,
		width:    width,
		height:   height,
	}, nil
}

// SetCameraState applies the input layer's per-frame camera record. This is
// a frame-boundary mutation: never call it while Render is in flight.
func (s *Session) SetCameraState(st camera.State) {
	st.Apply(&s.cam)
}

// Camera returns the current transform snapshot.
func (s *Session) Camera() camera.Transform { return s.cam }

func (s *Session) Room() *scene.Room { return s.room }

// Render draws the scene into img using the current camera snapshot.
func (s *Session) Render(img *image.NRGBA) {
	s.renderer.RenderFrame(img, s.cam, s.room)
}

// SelectAt picks the nearest furniture under a screen point, moving the
// selection flag from the previous piece. Returns the new selection, nil
// when the point hits nothing.
func (s *Session) SelectAt(px, py int) *scene.Furniture {
	hit := hittest.FindTopmostHit(s.cam, s.width, s.height, px, py, s.room.Furniture)
	if s.selected != nil {
		s.selected.Selected = false
	}
	s.selected = hit
	if hit != nil {
		hit.Selected = true
		s.dragging = true
	}
	return hit
}

// DragTo moves the selected furniture so its footprint follows the floor
// point under the cursor, clamped into the room and snapped/quantized.
// Returns false when nothing is selected or the cursor misses the floor.
func (s *Session) DragTo(px, py int) bool {
	if !s.dragging || s.selected == nil {
		return false
	}
	wx, wy, ok := hittest.ScreenToFloor(s.cam, float64(px), float64(py))
	if !ok {
		return false
	}
	x, y := s.room.ClampOrigin(s.selected, wx, wy)
	if s.rounder != nil {
		x, y = s.rounder.Process(x, y)
		x, y = s.room.ClampOrigin(s.selected, x, y)
	}
	s.selected.MoveTo(x, y)
	return true
}

// Release ends a drag; the selection itself survives until the next
// SelectAt.
func (s *Session) Release() {
	s.dragging = false
}

func (s *Session) Selected() *scene.Furniture { return s.selected }

// Layout exports the scene for the persistence layer.
func (s *Session) Layout() scene.Layout {
	return s.room.Layout()
}

// ApplyLayout restores saved furniture positions by name. Unknown names
// are ignored; positions are clamped into the room.
func (s *Session) ApplyLayout(l scene.Layout) {
	byName := make(map[string]scene.FurnitureRecord, len(l.Furniture))
	for _, rec := range l.Furniture {
		byName[rec.Name] = rec
	}
	for _, f := range s.room.Furniture {
		rec, ok := byName[f.Name]
		if !ok {
			continue
		}
		x, y := s.room.ClampOrigin(f, rec.X, rec.Y)
		f.MoveTo(x, y)
	}
}

// Close releases the renderer's worker pool, draining in-flight work.
func (s *Session) Close() {
	s.renderer.Close()
}
