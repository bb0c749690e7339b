//go:build !sdl2

package backend

import "errors"

// SDL2Backend stub for builds without the sdl2 tag.
type SDL2Backend struct{}

func NewSDL2Backend() *SDL2Backend {
	return &SDL2Backend{}
}

func (s *SDL2Backend) Init(config Config) error {
	return errors.New("SDL2 backend not available, rebuild with -tags sdl2 and the SDL2 development libraries installed")
}

func (s *SDL2Backend) Update(frame []byte) ([]Event, error) {
	return nil, errors.New("SDL2 backend not available")
}

func (s *SDL2Backend) Cleanup() error {
	return nil
}
