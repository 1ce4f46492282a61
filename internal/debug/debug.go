package debug

import (
	"fmt"

	"cube-flyer/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to
	// reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS counter, camera pose). All
// overlays are off by default and enabled via engine prefs.
type Debug struct {
	ShowFPS    bool
	ShowCamera bool
	frameCount uint32
	lastFps    string
	lastCam    string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays at the top-right. Call last in the draw
// loop so the text sits above the scene and console. Text is only
// recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(cam camera.State) {
	if !d.ShowFPS && !d.ShowCamera {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFps == "" {
		update = true
	}
	if d.ShowCamera && d.lastCam == "" {
		update = true
	}
	if update {
		d.lastFps = fmt.Sprintf("FPS %d", rl.GetFPS())
		d.lastCam = fmt.Sprintf("cam (%.0f, %.0f, %.0f) yaw %.2f pitch %.2f",
			cam.Position.X, cam.Position.Y, cam.Position.Z, cam.Yaw, cam.Pitch)
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS {
		w := rl.MeasureText(d.lastFps, fontSize)
		rl.DrawText(d.lastFps, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowCamera {
		w := rl.MeasureText(d.lastCam, fontSize)
		rl.DrawText(d.lastCam, screenW-w-padding, y, fontSize, rl.Green)
	}
}
