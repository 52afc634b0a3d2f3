package main

import (
	"log"

	"mini-raster/internal/config"
	"mini-raster/internal/game"
	"mini-raster/internal/input"
	"mini-raster/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// handleInput applies this frame's key presses to the session.
func handleInput(window *glfw.Window, im *input.InputManager, session *game.Session, dt float64) {
	if im.JustPressed(input.ActionQuit) {
		window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionPause) {
		log.Printf("paused: %v", config.TogglePaused())
	}
	if im.JustPressed(input.ActionReset) {
		session.Reset()
	}
	if im.JustPressed(input.ActionToggleLineMode) {
		log.Printf("line mode: %v", session.Wireframe.ToggleMode())
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		log.Printf("Top tasks: %s", profiling.TopN(5))
	}

	session.Steer(axis(im, input.ActionOrbitLeft, input.ActionOrbitRight), axis(im, input.ActionZoomOut, input.ActionZoomIn), dt)
	im.PostUpdate()
}

func axis(im *input.InputManager, negative, positive input.Action) int {
	v := 0
	if im.IsActive(negative) {
		v--
	}
	if im.IsActive(positive) {
		v++
	}
	return v
}
