package backend

import "log/slog"

// HeadlessBackend runs a fixed number of frames with no display, for
// automated testing and batch runs.
type HeadlessBackend struct {
	maxFrames  int
	frameCount int
}

func NewHeadlessBackend(maxFrames int) *HeadlessBackend {
	return &HeadlessBackend{maxFrames: maxFrames}
}

func (h *HeadlessBackend) Init(config Config) error {
	slog.Info("running headless", "frames", h.maxFrames)
	return nil
}

func (h *HeadlessBackend) Update(frame []byte) ([]Event, error) {
	h.frameCount++

	if h.frameCount%60 == 0 {
		slog.Info("frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		slog.Info("headless run completed", "frames", h.frameCount)
		return []Event{{Quit: true}}, nil
	}
	return nil, nil
}

func (h *HeadlessBackend) Cleanup() error {
	return nil
}
