package scene

import (
	"testing"

	"cube-flyer/internal/camera"
	"cube-flyer/internal/input"
)

func TestNewStartsAtOrigin(t *testing.T) {
	s := New(1280, 720)
	if s.Camera != (camera.State{}) {
		t.Errorf("camera not zeroed at startup: %+v", s.Camera)
	}
	if s.params.CenterX != 640 || s.params.CenterY != 360 {
		t.Errorf("screen center: got (%v, %v), want (640, 360)", s.params.CenterX, s.params.CenterY)
	}
	if s.params.Focal != 500 {
		t.Errorf("focal distance: got %v, want 500", s.params.Focal)
	}
}

func TestUpdateMovesCamera(t *testing.T) {
	s := New(1280, 720)
	s.Update(input.State{Forward: true})
	if s.Camera.Position.Z <= 0 {
		t.Errorf("forward did not advance along +Z: %+v", s.Camera.Position)
	}
}
