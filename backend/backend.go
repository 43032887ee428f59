package backend

import (
	"context"
	"errors"

	"github.com/gogpu/pixfx/frame"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend runs the frame loop of a session.
type Backend interface {
	// Name returns the backend identifier (e.g., "window", "headless").
	Name() string

	// Run steps d until quit, ctx cancellation, or a presentation failure.
	Run(ctx context.Context, d *frame.Driver) error

	// Close releases backend resources, flushing any pending output.
	Close() error
}

// Config is passed to every Factory. Backends ignore fields they do not use.
type Config struct {
	// Title is the window title.
	Title string

	// Input drives headless sessions. Nil means no input until ctx ends.
	Input frame.Input

	// Out is the headless output path; see package snapshot. Empty
	// discards frames.
	Out string
}
