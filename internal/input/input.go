package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State holds which movement and rotation keys are currently held. It is a
// plain value rebuilt from the window's key state once per frame, before
// the camera update runs.
type State struct {
	Forward     bool // W
	Backward    bool // S
	StrafeLeft  bool // A
	StrafeRight bool // D
	Ascend      bool // Q
	Descend     bool // E
	YawLeft     bool // left arrow
	YawRight    bool // right arrow
	PitchUp     bool // up arrow
	PitchDown   bool // down arrow
}

// Any reports whether any movement or rotation key is held.
func (s State) Any() bool {
	return s.Forward || s.Backward || s.StrafeLeft || s.StrafeRight ||
		s.Ascend || s.Descend ||
		s.YawLeft || s.YawRight || s.PitchUp || s.PitchDown
}

// Poll reads the current held-key state from raylib. The key set is fixed;
// there is no remapping surface.
func Poll() State {
	return State{
		Forward:     rl.IsKeyDown(rl.KeyW),
		Backward:    rl.IsKeyDown(rl.KeyS),
		StrafeLeft:  rl.IsKeyDown(rl.KeyA),
		StrafeRight: rl.IsKeyDown(rl.KeyD),
		Ascend:      rl.IsKeyDown(rl.KeyQ),
		Descend:     rl.IsKeyDown(rl.KeyE),
		YawLeft:     rl.IsKeyDown(rl.KeyLeft),
		YawRight:    rl.IsKeyDown(rl.KeyRight),
		PitchUp:     rl.IsKeyDown(rl.KeyUp),
		PitchDown:   rl.IsKeyDown(rl.KeyDown),
	}
}

// keyNames pairs each key with its diagnostic name, in a fixed order so
// transition logs are stable when several keys change in the same frame.
var keyNames = []struct {
	name string
	get  func(State) bool
}{
	{"W", func(s State) bool { return s.Forward }},
	{"A", func(s State) bool { return s.StrafeLeft }},
	{"S", func(s State) bool { return s.Backward }},
	{"D", func(s State) bool { return s.StrafeRight }},
	{"Q", func(s State) bool { return s.Ascend }},
	{"E", func(s State) bool { return s.Descend }},
	{"LEFT", func(s State) bool { return s.YawLeft }},
	{"RIGHT", func(s State) bool { return s.YawRight }},
	{"UP", func(s State) bool { return s.PitchUp }},
	{"DOWN", func(s State) bool { return s.PitchDown }},
}

// Transitions returns one diagnostic line per key whose held state changed
// between prev and cur, e.g. "W pressed" or "LEFT released". Unchanged keys
// produce nothing.
func Transitions(prev, cur State) []string {
	var lines []string
	for _, k := range keyNames {
		was, is := k.get(prev), k.get(cur)
		if was == is {
			continue
		}
		if is {
			lines = append(lines, k.name+" pressed")
		} else {
			lines = append(lines, k.name+" released")
		}
	}
	return lines
}
