package camera

import (
	"cube-flyer/internal/geometry"
	"cube-flyer/internal/input"

	"github.com/chewxy/math32"
)

// MoveStep is the translation applied per held movement key per frame, in
// world units. Deltas are fixed per frame, not time-scaled, so flying speed
// follows the frame rate.
const MoveStep = 16

// RotationStep is the yaw/pitch change per held rotation key per frame,
// in radians.
const RotationStep = 0.05

// State is the flying camera: a world position plus yaw (rotation about the
// vertical axis) and pitch (rotation about the horizontal axis), both in
// radians. It starts at the origin with zero rotation and is owned and
// mutated by the render loop only; everything else reads it.
type State struct {
	Position geometry.Point3D
	Yaw      float32
	Pitch    float32
}

// Update applies one frame of motion from the held-key state. Rotation is
// applied first, then translation uses the updated yaw, so turning while
// moving flies along the new heading. Held keys apply independently and
// additively (diagonal speed is not normalized), and neither position nor
// angles are clamped; trig periodicity handles angle wraparound.
func (s *State) Update(in input.State) {
	if in.YawLeft {
		s.Yaw -= RotationStep
	}
	if in.YawRight {
		s.Yaw += RotationStep
	}
	if in.PitchUp {
		s.Pitch -= RotationStep
	}
	if in.PitchDown {
		s.Pitch += RotationStep
	}

	sinYaw, cosYaw := math32.Sincos(s.Yaw)
	if in.Forward {
		s.Position.X += MoveStep * sinYaw
		s.Position.Z += MoveStep * cosYaw
	}
	if in.Backward {
		s.Position.X -= MoveStep * sinYaw
		s.Position.Z -= MoveStep * cosYaw
	}
	if in.StrafeLeft {
		s.Position.X -= MoveStep * cosYaw
		s.Position.Z += MoveStep * sinYaw
	}
	if in.StrafeRight {
		s.Position.X += MoveStep * cosYaw
		s.Position.Z -= MoveStep * sinYaw
	}
	if in.Ascend {
		s.Position.Y -= MoveStep
	}
	if in.Descend {
		s.Position.Y += MoveStep
	}
}
