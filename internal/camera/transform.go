// Package camera implements the pinhole camera model used by the room
// viewer: extrinsic pose (three Euler angles + translation), mutable
// intrinsics (focal lengths, principal point), the forward world→screen
// projection and the inverse screen→world ray.
//
// Axis conventions (right-handed): world X is forward, Y is right, Z is up.
// A world point p maps to camera space as p_cam = R·(p−t). The projection
// reads camera space as depth = −p_cam.X (positive in front of the camera),
// horizontal = p_cam.Y, vertical = −p_cam.Z.
package camera

import (
	"fmt"

	"room-designer/internal/mathutil"
)

const (
	// SentinelCoord is returned for both screen coordinates when a point
	// lies behind the camera. It matches the drawing clamp bound, so even
	// a caller that skips the depth check stays in a safe pixel range.
	SentinelCoord = -10000

	// VisibilityMargin extends the screen bounds used by IsVisible so that
	// partially off-screen polygons are not discarded before clipping.
	VisibilityMargin = 100
)

// Transform holds the camera parameters and derived rotation matrix.
// It is a plain value type: render workers receive a copy captured at
// frame start and never observe a live mutable camera. Mutations are
// frame-boundary-only and must not race with an in-flight render.
type Transform struct {
	fx, fy float64
	cx, cy float64
	r      mathutil.Mat3
	t      mathutil.Vec3
}

// NewTransform builds a camera with identity rotation and zero translation.
// Non-positive focal lengths are a construction error, not a render-time one.
func NewTransform(fx, fy, cx, cy float64) (Transform, error) {
	if fx <= 0 || fy <= 0 {
		return Transform{}, fmt.Errorf("camera: focal lengths must be positive, got fx=%g fy=%g", fx, fy)
	}
	return Transform{
		fx: fx, fy: fy,
		cx: cx, cy: cy,
		r: mathutil.Mat3Identity(),
	}, nil
}

// SetExtrinsic sets the camera pose. Angles are degrees and are not
// normalized; the rotation is composed in fixed order R = Rz(yaw)·Ry(pitch)·Rx(roll).
func (c *Transform) SetExtrinsic(roll, pitch, yaw, tx, ty, tz float64) {
	rx := mathutil.RotX(mathutil.Deg2Rad(roll))
	ry := mathutil.RotY(mathutil.Deg2Rad(pitch))
	rz := mathutil.RotZ(mathutil.Deg2Rad(yaw))
	c.r = mathutil.Mat3Mul(mathutil.Mat3Mul(rz, ry), rx)
	c.t = mathutil.Vec3{tx, ty, tz}
}

// SetFocalLength replaces both focal lengths (zoom). Range clamping is the
// caller's concern.
func (c *Transform) SetFocalLength(fx, fy float64) {
	c.fx, c.fy = fx, fy
}

// SetPrincipalPoint recenters the optical axis.
func (c *Transform) SetPrincipalPoint(cx, cy float64) {
	c.cx, c.cy = cx, cy
}

func (c Transform) Position() mathutil.Vec3 { return c.t }

func (c Transform) Rotation() mathutil.Mat3 { return c.r }

func (c Transform) FocalLength() (fx, fy float64) { return c.fx, c.fy }

func (c Transform) PrincipalPoint() (cx, cy float64) { return c.cx, c.cy }

// Project maps a world point to integer pixel coordinates by truncation
// (not rounding; downstream drawing depends on this exactly). Points with
// depth ≤ 0 are behind the camera and map to (SentinelCoord, SentinelCoord).
func (c Transform) Project(p mathutil.Vec3) (int, int) {
	sx, sy, _ := c.ProjectWithDepth(p)
	return sx, sy
}

// ProjectWithDepth is Project plus the camera-space forward distance.
// A non-positive depth means "behind the camera": the sentinel screen
// coordinates are returned alongside it so callers can skip without
// special-casing a division by near-zero.
func (c Transform) ProjectWithDepth(p mathutil.Vec3) (int, int, float64) {
	pc := c.r.MulVec3(p.Sub(c.t))
	depth := -pc[0]
	if depth <= 0 {
		return SentinelCoord, SentinelCoord, depth
	}
	sx := c.fx*pc[1]/depth + c.cx
	sy := c.fy*(-pc[2])/depth + c.cy
	return int(sx), int(sy), depth
}

// Unproject returns the world-space direction of the viewing ray through a
// screen point, at unit forward depth. R is orthonormal, so its transpose
// inverts the rotation. The result is not normalized.
func (c Transform) Unproject(sx, sy float64) mathutil.Vec3 {
	ray := mathutil.Vec3{
		-1,
		(sx - c.cx) / c.fx,
		-(sy - c.cy) / c.fy,
	}
	return c.r.Transpose().MulVec3(ray)
}

// IsVisible reports whether a world point projects in front of the camera
// and within the screen bounds extended by VisibilityMargin on every side.
func (c Transform) IsVisible(p mathutil.Vec3, width, height int) bool {
	sx, sy, depth := c.ProjectWithDepth(p)
	if depth <= 0 {
		return false
	}
	return sx >= -VisibilityMargin && sx <= width+VisibilityMargin &&
		sy >= -VisibilityMargin && sy <= height+VisibilityMargin
}
