package config

import "sync"

// RuntimeSettings holds values the host may change while running
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
	paused   bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60, // default value
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetPaused returns whether scene animation is paused
func GetPaused() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.paused
}

// SetPaused pauses or resumes scene animation
func SetPaused(paused bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.paused = paused
}

// TogglePaused flips the paused flag and returns the new value
func TogglePaused() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.paused = !globalRuntimeSettings.paused
	return globalRuntimeSettings.paused
}
