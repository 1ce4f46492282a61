package console

import (
	"cube-flyer/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize = 20
	padding  = 8
	// Number of diagnostic lines drawn when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
)

// Reused every frame when drawing the console panel to avoid per-frame
// color allocations.
var (
	consoleBgColor   = rl.NewColor(24, 24, 24, 240)
	consoleLineColor = rl.NewColor(80, 80, 80, 255)
)

// Console is a read-only overlay showing the most recent diagnostic lines
// (key transitions, camera pose) in-window. It is shown/hidden with Tab;
// when closed nothing is drawn. It never captures movement keys.
type Console struct {
	log  *logger.Logger
	open bool
}

// New returns a closed Console reading lines from log.
func New(log *logger.Logger) *Console {
	return &Console{log: log}
}

// IsOpen returns true when the console panel is visible.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles the Tab toggle. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyTab) {
		c.open = !c.open
	}
}

// Draw draws the console panel at the top of the screen when open: the last
// maxLinesOnScreen diagnostic lines over a translucent background.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := rl.GetScreenWidth()
	panelHeight := maxLinesOnScreen*lineHeight + padding
	rl.DrawRectangle(0, 0, int32(screenW), int32(panelHeight), consoleBgColor)
	rl.DrawLine(0, int32(panelHeight), int32(screenW), int32(panelHeight), consoleLineColor)

	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, padding, int32(y), fontSize, rl.LightGray)
	}
}
