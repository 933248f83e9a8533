package camera

// State is the per-frame camera record supplied by the input layer. The
// core never reads input devices; it only consumes this snapshot, applied
// at a frame boundary before any drawing starts.
type State struct {
	X, Y, Z          float64
	Roll, Pitch, Yaw float64
	FocalLength      float64
}

// Apply writes the state into the transform. FocalLength is used for both
// axes (square pixels); a non-positive value leaves the current zoom alone.
func (s State) Apply(c *Transform) {
	if s.FocalLength > 0 {
		c.SetFocalLength(s.FocalLength, s.FocalLength)
	}
	c.SetExtrinsic(s.Roll, s.Pitch, s.Yaw, s.X, s.Y, s.Z)
}
