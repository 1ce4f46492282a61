package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window geometry and pacing are fixed; there is no runtime configuration
// surface.
const (
	Width     = 1280
	Height    = 720
	Title     = "3D Cube Perspective Projection"
	TargetFPS = 60
)

// Run opens the window and drives the main loop at ~60 FPS. Each frame it
// calls update (input + camera), then clears the screen to black and calls
// draw. This keeps the graphics layer separate from the scene and overlay
// content. The loop ends when the user closes the window; Run returns an
// error only when the window cannot be created.
func Run(update, draw func()) error {
	rl.InitWindow(Width, Height, Title)
	if !rl.IsWindowReady() {
		return errors.New("graphics: failed to create window")
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via window button, not ESC
	rl.SetTargetFPS(TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}
