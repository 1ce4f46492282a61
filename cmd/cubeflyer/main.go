package main

import (
	"fmt"
	"os"

	"cube-flyer/internal/console"
	"cube-flyer/internal/debug"
	"cube-flyer/internal/engineconfig"
	"cube-flyer/internal/graphics"
	"cube-flyer/internal/input"
	"cube-flyer/internal/logger"
	"cube-flyer/internal/scene"
)

func main() {
	prefs, _ := engineconfig.Load()
	log := logger.New(logger.LogFilePath, os.Stdout)
	scn := scene.New(graphics.Width, graphics.Height)
	cons := console.New(log)
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowCamera = prefs.ShowCamera

	var held input.State
	update := func() {
		cur := input.Poll()
		if prefs.LogInput {
			for _, line := range input.Transitions(held, cur) {
				log.Log(line)
			}
			// One pose line per frame while any key is held, before the
			// motion for this frame is applied.
			if cur.Any() {
				c := scn.Camera
				log.Log(fmt.Sprintf("camera (%.2f, %.2f, %.2f) yaw %.2f pitch %.2f",
					c.Position.X, c.Position.Y, c.Position.Z, c.Yaw, c.Pitch))
			}
		}
		held = cur
		scn.Update(cur)
		cons.Update()
	}
	draw := func() {
		scn.Draw()
		cons.Draw()
		dbg.Draw(scn.Camera)
	}

	if err := graphics.Run(update, draw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Log("quit: window closed")
	_ = engineconfig.Save(prefs)
}
