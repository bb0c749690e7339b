package backend

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	goboy "github.com/mpavlov/goboy"
	"github.com/mpavlov/goboy/video"
)

// keyHoldDuration is how long a key press is considered held.
// Terminals only report presses, never releases, so a button is
// released once its last press is older than this (key repeat keeps
// refreshing it while physically held).
const keyHoldDuration = 100 * time.Millisecond

// TerminalBackend renders frames into the terminal with tcell, two
// vertical pixels per character cell.
type TerminalBackend struct {
	screen  tcell.Screen
	pressed map[goboy.Button]time.Time
	active  map[goboy.Button]bool
	quit    bool
}

func NewTerminalBackend() *TerminalBackend {
	return &TerminalBackend{
		pressed: make(map[goboy.Button]time.Time),
		active:  make(map[goboy.Button]bool),
	}
}

func (t *TerminalBackend) Init(config Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	t.screen = screen
	return nil
}

func (t *TerminalBackend) Update(frame []byte) ([]Event, error) {
	now := time.Now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.handleKey(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	events := t.collectEvents(now)
	if t.quit {
		events = append(events, Event{Quit: true})
	}

	t.drawFrame(frame)
	return events, nil
}

func (t *TerminalBackend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// handleKey records a button press timestamp; quit keys flip the quit
// flag directly.
func (t *TerminalBackend) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyUp:
		t.pressed[goboy.ButtonUp] = now
	case tcell.KeyDown:
		t.pressed[goboy.ButtonDown] = now
	case tcell.KeyLeft:
		t.pressed[goboy.ButtonLeft] = now
	case tcell.KeyRight:
		t.pressed[goboy.ButtonRight] = now
	case tcell.KeyEnter:
		t.pressed[goboy.ButtonStart] = now
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.pressed[goboy.ButtonSelect] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			t.quit = true
		case 'z':
			t.pressed[goboy.ButtonA] = now
		case 'x':
			t.pressed[goboy.ButtonB] = now
		}
	}
}

// collectEvents turns the press timestamps into press/release
// transitions: a button emits one press when first seen and one
// release once its timestamp goes stale.
func (t *TerminalBackend) collectEvents(now time.Time) []Event {
	var events []Event
	for button, last := range t.pressed {
		if now.Sub(last) > keyHoldDuration {
			delete(t.pressed, button)
			delete(t.active, button)
			events = append(events, Event{Button: button, Pressed: false})
		} else if !t.active[button] {
			t.active[button] = true
			events = append(events, Event{Button: button, Pressed: true})
		}
	}
	return events
}

// drawFrame paints the frame using the upper half block glyph, so each
// terminal cell carries two vertically stacked pixels.
func (t *TerminalBackend) drawFrame(frame []byte) {
	for y := 0; y < video.FrameHeight; y += 2 {
		for x := 0; x < video.FrameWidth; x++ {
			top := pixelColor(frame, x, y)
			bottom := pixelColor(frame, x, y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	t.screen.Show()
}

func pixelColor(frame []byte, x, y int) tcell.Color {
	i := (y*video.FrameWidth + x) * 4
	return tcell.NewRGBColor(int32(frame[i]), int32(frame[i+1]), int32(frame[i+2]))
}
