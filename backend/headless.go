package backend

import (
	"context"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/backend/snapshot"
	"github.com/gogpu/pixfx/frame"
)

// Headless runs a session without a display. Input comes from a
// frame.Input, usually a frame.Script, and frames go to a snapshot.Sink
// or are discarded.
type Headless struct {
	input frame.Input
	sink  frame.Sink
	snap  *snapshot.Sink
}

// init registers the headless backend on package import.
func init() {
	Register(BackendHeadless, func(cfg Config) (Backend, error) {
		return NewHeadless(cfg)
	})
}

// NewHeadless creates a headless backend from cfg.Input and cfg.Out.
func NewHeadless(cfg Config) (*Headless, error) {
	h := &Headless{input: cfg.Input, sink: frame.Discard}
	if h.input == nil {
		h.input = frame.InputFunc(func() pixfx.Signals { return 0 })
	}
	if cfg.Out != "" {
		s, err := snapshot.New(cfg.Out)
		if err != nil {
			return nil, err
		}
		h.snap, h.sink = s, s
	}
	return h, nil
}

// Name returns the backend identifier.
func (h *Headless) Name() string {
	return BackendHeadless
}

// Run drives d with the configured input and sink.
func (h *Headless) Run(ctx context.Context, d *frame.Driver) error {
	return d.Run(ctx, h.input, h.sink)
}

// Close writes the last frame when an output path was configured.
func (h *Headless) Close() error {
	if h.snap == nil {
		return nil
	}
	return h.snap.Close()
}
