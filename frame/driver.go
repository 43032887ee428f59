package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/pixfx"
)

// Driver owns the framebuffer of one session and steps its Scene.
// A Driver is not safe for concurrent use.
type Driver struct {
	scene  Scene
	buf    *pixfx.PixelBuffer
	logger *slog.Logger
	now    func() time.Time
	every  int

	stats   Stats
	started time.Time
}

// NewDriver allocates the framebuffer at the scene's size.
func NewDriver(scene Scene, opts ...Option) *Driver {
	o := options{
		logger:     pixfx.Logger(),
		now:        time.Now,
		statsEvery: DefaultStatsEvery,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		scene:  scene,
		buf:    pixfx.NewPixelBuffer(scene.Size()),
		logger: o.logger,
		now:    o.now,
		every:  o.statsEvery,
	}
}

// Scene returns the driven scene.
func (d *Driver) Scene() Scene {
	return d.scene
}

// Buffer returns the framebuffer. It holds the latest completed frame
// between calls to Step.
func (d *Driver) Buffer() *pixfx.PixelBuffer {
	return d.buf
}

// Stats returns the statistics so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Step produces one frame from sig. It returns false, without touching the
// scene, when sig contains SignalQuit.
func (d *Driver) Step(sig pixfx.Signals) bool {
	if sig.Has(pixfx.SignalQuit) {
		return false
	}

	start := d.now()
	if d.stats.Frames == 0 {
		d.started = start
	}
	d.scene.Apply(sig)
	d.scene.Render(d.buf)
	end := d.now()

	d.stats.Frames++
	d.stats.Last = end.Sub(start)
	d.stats.Busy += d.stats.Last
	d.stats.Wall = end.Sub(d.started)

	if d.every > 0 && d.stats.Frames%d.every == 0 {
		d.logger.Debug("frame: stats",
			"scene", d.scene.Name(),
			"frames", d.stats.Frames,
			"fps", d.stats.FPS(),
			"avg", d.stats.AvgFrame(),
		)
	}
	return true
}

// Run loops Step and Present until in signals quit, the sink returns
// ErrStopped, or ctx is done. Cancellation is observed between frames.
func (d *Driver) Run(ctx context.Context, in Input, out Sink) error {
	w, h := d.scene.Size()
	d.logger.Info("frame: session started", "scene", d.scene.Name(), "width", w, "height", h)
	defer func() {
		d.logger.Info("frame: session stopped", "scene", d.scene.Name(), "stats", d.stats.String())
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Step(in.Poll()) {
			return nil
		}
		if err := out.Present(d.buf); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return fmt.Errorf("frame: present frame %d: %w", d.stats.Frames, err)
		}
	}
}
