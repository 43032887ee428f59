// Package window is the desktop backend: an ebiten window that is both the
// input source and the display of a frame.Driver.
//
// Importing the package registers it as backend.BackendWindow:
//
//	import _ "github.com/gogpu/pixfx/backend/window"
//
// Arrow keys (or WASD) pan, +/- zoom, Shift speeds up either, F1 toggles
// the statistics overlay and Escape quits.
package window

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/backend"
	"github.com/gogpu/pixfx/frame"
)

// TPS is the frame rate the window asks ebiten for.
const TPS = 60

func init() {
	backend.Register(backend.BackendWindow, func(cfg backend.Config) (backend.Backend, error) {
		return New(cfg), nil
	})
}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Window runs a session in a desktop window.
type Window struct {
	title string

	ctx    context.Context
	driver *frame.Driver
	rgba   []byte
	hud    bool
}

// New creates a window backend. Nothing is shown until Run.
func New(cfg backend.Config) *Window {
	title := cfg.Title
	if title == "" {
		title = "pixfx"
	}
	return &Window{title: title, hud: true}
}

// Name returns the backend identifier.
func (w *Window) Name() string {
	return backend.BackendWindow
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is done. It must be called from the main goroutine.
func (w *Window) Run(ctx context.Context, d *frame.Driver) error {
	w.ctx, w.driver = ctx, d
	width, height := d.Scene().Size()

	ebiten.SetWindowTitle(w.title + " - " + d.Scene().Name())
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(TPS)

	log := pixfx.Logger()
	log.Info("window: session started", "scene", d.Scene().Name(), "width", width, "height", height)
	err := ebiten.RunGame(w)
	log.Info("window: session stopped", "scene", d.Scene().Name(), "stats", d.Stats().String())
	if err != nil {
		return err
	}
	return ctx.Err()
}

// Close is a no-op; ebiten releases the window when RunGame returns.
func (w *Window) Close() error {
	return nil
}

// Poll samples the keyboard.
func (w *Window) Poll() pixfx.Signals {
	return signalsFrom(ebiten.IsKeyPressed)
}

// Present converts buf to the RGBA layout ebiten expects. The pixels reach
// the screen on the next Draw.
func (w *Window) Present(buf *pixfx.PixelBuffer) error {
	src := buf.Data()
	if len(w.rgba) != len(src) {
		w.rgba = make([]byte, len(src))
	}
	dst := w.rgba
	for i := 0; i+3 < len(src); i += pixfx.BytesPerPixel {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = 0xFF
	}
	return nil
}

// Update implements ebiten.Game. One tick is one frame.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		w.hud = !w.hud
	}
	if !w.driver.Step(w.Poll()) {
		return ebiten.Termination
	}
	return w.Present(w.driver.Buffer())
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if len(w.rgba) == 0 {
		return
	}
	screen.WritePixels(w.rgba)
	if !w.hud {
		return
	}

	line := w.driver.Scene().Name() + "  " + w.driver.Stats().String()
	op := &text.DrawOptions{}
	op.GeoM.Translate(9, 5)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, line, hudFace, op)
	op.GeoM.Translate(-1, -1)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, line, hudFace, op)
}

// Layout implements ebiten.Game with a fixed logical size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.driver.Scene().Size()
}
