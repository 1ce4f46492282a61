package scene

import (
	"cube-flyer/internal/camera"
	"cube-flyer/internal/geometry"
	"cube-flyer/internal/input"
	"cube-flyer/internal/projection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// focalDistance is the projector's field-of-view proxy.
const focalDistance = 500

// cubeColor is the wireframe line color. Reused every frame to avoid
// per-frame color allocations.
var cubeColor = rl.NewColor(0, 128, 255, 255)

// Scene owns the camera and the fixed cube and turns them into 2D line
// segments each frame. Update applies camera motion; Draw projects and
// draws. The camera starts at the origin looking down +Z with zero yaw and
// pitch.
type Scene struct {
	Camera camera.State
	params projection.Params
	// projected is reused every frame: all 8 vertices are projected once,
	// then shared by the 12 edges.
	projected [8]projection.ScreenPoint
}

// New returns a scene projecting onto a screenW x screenH surface, with
// the screen center as the projection origin.
func New(screenW, screenH int) *Scene {
	return &Scene{
		params: projection.Params{
			Focal:   focalDistance,
			CenterX: float32(screenW) / 2,
			CenterY: float32(screenH) / 2,
		},
	}
}

// Update applies one frame of camera motion from the held-key state. Call
// after input is fully drained and before Draw.
func (s *Scene) Update(in input.State) {
	s.Camera.Update(in)
}

// Draw projects all 8 cube vertices with the current camera pose, then
// draws the 12 edges between the projected points. Each vertex is
// projected exactly once per frame; edges index into the shared array.
// Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	for i, v := range geometry.CubeVertices {
		s.projected[i] = projection.Project(v, s.Camera, s.params)
	}
	for _, e := range geometry.CubeEdges {
		a := s.projected[e[0]]
		b := s.projected[e[1]]
		rl.DrawLine(int32(a.X), int32(a.Y), int32(b.X), int32(b.Y), cubeColor)
	}
}
