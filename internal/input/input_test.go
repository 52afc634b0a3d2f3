package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionPause) || !im.IsActive(ActionPause) {
		t.Errorf("Expected pause pressed and active")
	}

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	if im.JustPressed(ActionPause) {
		t.Errorf("Expected repeat not to count as a new press")
	}
	if !im.IsActive(ActionPause) {
		t.Errorf("Expected pause still active")
	}

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	if !im.JustReleased(ActionPause) || im.IsActive(ActionPause) {
		t.Errorf("Expected pause released")
	}
	im.PostUpdate()
	if im.JustReleased(ActionPause) {
		t.Errorf("Expected edge flags cleared by PostUpdate")
	}
}

func TestSharedBindings(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if !im.IsActive(ActionOrbitLeft) {
		t.Errorf("Expected orbit left from either key")
	}
	if im.IsActive(ActionOrbitRight) {
		t.Errorf("Expected orbit right idle")
	}
}

func TestBindings(t *testing.T) {
	im := NewInputManager()
	im.Bind(glfw.KeyQ, ActionQuit, ActionCount)

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	if !im.JustPressed(ActionQuit) {
		t.Errorf("Expected Q to quit")
	}

	im.Unbind(glfw.KeyEscape)
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyQ, glfw.Release)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if im.IsActive(ActionQuit) {
		t.Errorf("Expected unbound Escape to do nothing")
	}
	if im.IsActive(Action(-1)) || im.JustPressed(ActionCount) {
		t.Errorf("Expected out of range actions to read false")
	}
}
