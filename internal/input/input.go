// Package input maps glfw key events to viewer actions and tracks which
// actions are held, just pressed or just released in the current frame.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a viewer command, independent of the key that triggers it.
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	ActionReset
	ActionToggleLineMode
	ActionToggleProfiling
	ActionOrbitLeft
	ActionOrbitRight
	ActionZoomIn
	ActionZoomOut
	ActionCount
)

// DefaultBindings is the key map installed by NewInputManager. Arrows and
// WASD both steer the camera.
var DefaultBindings = map[glfw.Key]Action{
	glfw.KeyEscape: ActionQuit,
	glfw.KeySpace:  ActionPause,
	glfw.KeyR:      ActionReset,
	glfw.KeyL:      ActionToggleLineMode,
	glfw.KeyV:      ActionToggleProfiling,
	glfw.KeyLeft:   ActionOrbitLeft,
	glfw.KeyA:      ActionOrbitLeft,
	glfw.KeyRight:  ActionOrbitRight,
	glfw.KeyD:      ActionOrbitRight,
	glfw.KeyUp:     ActionZoomIn,
	glfw.KeyW:      ActionZoomIn,
	glfw.KeyDown:   ActionZoomOut,
	glfw.KeyS:      ActionZoomOut,
}

type actionState struct {
	down     bool
	pressed  bool // went down since the last PostUpdate
	released bool // went up since the last PostUpdate
}

// InputManager is safe to feed from the glfw callback while the frame loop
// reads it.
type InputManager struct {
	mu       sync.RWMutex
	bindings map[glfw.Key][]Action
	states   [ActionCount]actionState
}

func NewInputManager() *InputManager {
	im := &InputManager{bindings: make(map[glfw.Key][]Action)}
	for key, action := range DefaultBindings {
		im.Bind(key, action)
	}
	return im
}

// Bind adds actions to key. Out-of-range actions are ignored.
func (im *InputManager) Bind(key glfw.Key, actions ...Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, a := range actions {
		if valid(a) {
			im.bindings[key] = append(im.bindings[key], a)
		}
	}
}

// Unbind removes every action bound to key.
func (im *InputManager) Unbind(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.bindings, key)
}

// HandleKeyEvent records a glfw key event. Repeat counts as still held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	down := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	defer im.mu.Unlock()
	for _, a := range im.bindings[key] {
		st := &im.states[a]
		switch {
		case down && !st.down:
			st.pressed = true
		case !down && st.down:
			st.released = true
		}
		st.down = down
	}
}

// SetKeyCallback routes the window's key events into im.
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate ends the frame: pressed and released flags are cleared.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range im.states {
		im.states[i].pressed = false
		im.states[i].released = false
	}
}

func (im *InputManager) IsActive(a Action) bool     { return im.state(a).down }
func (im *InputManager) JustPressed(a Action) bool  { return im.state(a).pressed }
func (im *InputManager) JustReleased(a Action) bool { return im.state(a).released }

func (im *InputManager) state(a Action) actionState {
	if !valid(a) {
		return actionState{}
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.states[a]
}

func valid(a Action) bool { return a >= 0 && a < ActionCount }
