package projection

import (
	"cube-flyer/internal/camera"
	"cube-flyer/internal/geometry"

	"github.com/chewxy/math32"
)

// Params holds the fixed projection constants: the focal distance (a
// field-of-view proxy, larger = narrower view) and the screen center the
// projected point is offset by.
type Params struct {
	Focal   float32
	CenterX float32
	CenterY float32
}

// ScreenPoint is an integer pixel coordinate. Screen points are derived
// from the camera and a world point every frame and never stored across
// frames.
type ScreenPoint struct {
	X, Y int
}

// Project maps a world point to the screen for the given camera pose.
// Steps: translate the point into camera-relative space, rotate the (x,z)
// plane by yaw, rotate the (y,z) plane by pitch, then scale by
// k = F/(z+F) and offset by the screen center. Yaw and pitch are two
// sequential 2-component rotations, in that order; the order is part of
// the visual behavior and must not be folded into a single matrix.
//
// The function is pure and total: there is no frustum culling and the
// divide is not guarded, so a point whose rotated depth plus focal
// distance is near zero projects to a huge coordinate, and a point behind
// the camera projects inverted. That is the accepted behavior of this
// projection model, not an error condition.
func Project(p geometry.Point3D, cam camera.State, params Params) ScreenPoint {
	x := p.X - cam.Position.X
	y := p.Y - cam.Position.Y
	z := p.Z - cam.Position.Z

	sinYaw, cosYaw := math32.Sincos(cam.Yaw)
	xr := x*cosYaw - z*sinYaw
	zr := x*sinYaw + z*cosYaw

	sinPitch, cosPitch := math32.Sincos(cam.Pitch)
	yr := y*cosPitch - zr*sinPitch
	depth := y*sinPitch + zr*cosPitch

	k := params.Focal / (depth + params.Focal)
	return ScreenPoint{
		X: int(math32.Round(params.CenterX + xr*k)),
		Y: int(math32.Round(params.CenterY + yr*k)),
	}
}
