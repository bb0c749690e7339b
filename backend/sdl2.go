//go:build sdl2

package backend

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	goboy "github.com/mpavlov/goboy"
	"github.com/mpavlov/goboy/video"
)

// SDL2Backend renders frames into a hardware accelerated window.
// Building it requires the SDL2 development libraries; default builds
// use the stub behind the sdl2 build tag instead.
type SDL2Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func NewSDL2Backend() *SDL2Backend {
	return &SDL2Backend{}
}

func (s *SDL2Backend) Init(config Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	scale := config.Scale
	if scale < 1 {
		scale = 1
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FrameWidth*scale),
		int32(video.FrameHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA32,
		sdl.TEXTUREACCESS_STREAMING,
		video.FrameWidth,
		video.FrameHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %v", err)
	}
	s.texture = texture

	return nil
}

func (s *SDL2Backend) Update(frame []byte) ([]Event, error) {
	var events []Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, Event{Quit: true})
		case *sdl.KeyboardEvent:
			if e, ok := translateKey(ev); ok {
				events = append(events, e)
			}
		}
	}

	if err := s.texture.Update(nil, frame, video.FrameWidth*4); err != nil {
		return events, err
	}
	if err := s.renderer.Clear(); err != nil {
		return events, err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return events, err
	}
	s.renderer.Present()

	return events, nil
}

func (s *SDL2Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func translateKey(ev *sdl.KeyboardEvent) (Event, bool) {
	if ev.Repeat != 0 {
		return Event{}, false
	}

	pressed := ev.Type == sdl.KEYDOWN

	var button goboy.Button
	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		return Event{Quit: true}, pressed
	case sdl.K_UP:
		button = goboy.ButtonUp
	case sdl.K_DOWN:
		button = goboy.ButtonDown
	case sdl.K_LEFT:
		button = goboy.ButtonLeft
	case sdl.K_RIGHT:
		button = goboy.ButtonRight
	case sdl.K_z:
		button = goboy.ButtonA
	case sdl.K_x:
		button = goboy.ButtonB
	case sdl.K_RETURN:
		button = goboy.ButtonStart
	case sdl.K_BACKSPACE:
		button = goboy.ButtonSelect
	default:
		return Event{}, false
	}

	return Event{Button: button, Pressed: pressed}, true
}
