package grip

import "github.com/go-gl/mathgl/mgl32"

// Overlay is the placement state of one view-level decoration. The engine
// only decides where decorations go and when they show; drawing them is the
// host's job.
type Overlay struct {
	Visible     bool
	Translation mgl32.Vec2
	Rotation    float32
	Scale       mgl32.Vec2
}

func (o *Overlay) place(t mgl32.Vec2, rotation float32) {
	o.Visible = true
	o.Translation = t
	o.Rotation = rotation
	o.Scale = mgl32.Vec2{1, 1}
}

// OverlayState holds every decoration the manipulation session drives:
// the position marker and axis cross for moves, the rotation circle with
// its clock detents and hand, the scaling square with its proportional
// cross and discretization grid, and the crop extent frame.
type OverlayState struct {
	// Plain move.
	Position      Overlay // marker at the object center
	PositionCross Overlay // axis cross shown while single-axis locked

	// Rotation.
	Rotation          Overlay // circle at the rotation center
	RotationFix       Overlay // square shown during pure (proportional) rotation
	RotationClock     Overlay // 10-degree tick marks while discretizing
	RotationClockHand Overlay // hand pointing at the live angle

	// Center scaling.
	Scaling      Overlay // square at the scaling center
	ScalingCross Overlay // cross while proportional
	ScalingGrid  Overlay // 0.1-step grid while discretizing

	// Crop: frame showing the full uncropped extent.
	Crop Overlay
}

// HideAll hides every overlay; called when a session ends.
func (s *OverlayState) HideAll() {
	for _, o := range []*Overlay{
		&s.Position, &s.PositionCross,
		&s.Rotation, &s.RotationFix, &s.RotationClock, &s.RotationClockHand,
		&s.Scaling, &s.ScalingCross, &s.ScalingGrid,
		&s.Crop,
	} {
		o.Visible = false
	}
}
