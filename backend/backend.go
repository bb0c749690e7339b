// Package backend contains the host front-ends that display frames and
// collect input: a tcell terminal renderer, an optional SDL2 window and
// a headless runner for automation.
package backend

import goboy "github.com/mpavlov/goboy"

// Event is an input observation returned by a backend's Update call.
type Event struct {
	Button  goboy.Button
	Pressed bool
	Quit    bool
}

// Config holds the settings shared by all backends.
type Config struct {
	Title string
	Scale int
}

// Backend is a complete display and input platform. Update renders the
// given RGBA frame and returns whatever input happened since the last
// call.
type Backend interface {
	Init(config Config) error
	Update(frame []byte) ([]Event, error)
	Cleanup() error
}
