// Command pixfx runs the Mandelbrot explorer or the alpha blending demo,
// in a window or headless.
//
//	pixfx -demo mandelbrot -kernel vec4
//	pixfx -demo blend -assets ./assets -compositor vector
//	pixfx -headless -script "in*40,right+shift*10" -out zoom.webp
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/backend"
	_ "github.com/gogpu/pixfx/backend/window"
	"github.com/gogpu/pixfx/bitmap"
	"github.com/gogpu/pixfx/composite"
	"github.com/gogpu/pixfx/fractal"
	"github.com/gogpu/pixfx/frame"
)

type config struct {
	demo       string
	kernel     string
	compositor string
	palette    string
	assets     string
	background string
	sprite     string
	headless   bool
	frames     int
	script     string
	out        string
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.demo, "demo", "mandelbrot", "demo to run: mandelbrot or blend")
	flag.StringVar(&cfg.kernel, "kernel", "vec4", "mandelbrot kernel: scalar, vec2, scalar32 or vec4")
	flag.StringVar(&cfg.compositor, "compositor", "vector", "blend compositor: scalar or vector")
	flag.StringVar(&cfg.palette, "palette", "clamp", "mandelbrot palette: clamp or wrap")
	flag.StringVar(&cfg.assets, "assets", ".", "directory holding the blend images")
	flag.StringVar(&cfg.background, "background", "Table.bmp", "blend background image")
	flag.StringVar(&cfg.sprite, "sprite", "Racket.bmp", "blend sprite image")
	flag.BoolVar(&cfg.headless, "headless", false, "run without a window")
	flag.IntVar(&cfg.frames, "frames", 60, "headless frame count when -script is empty")
	flag.StringVar(&cfg.script, "script", "", `headless input, e.g. "right*10,in+shift,quit"`)
	flag.StringVar(&cfg.out, "out", "", "headless output image (.png, .webp or .bmp)")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	pixfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("pixfx: %v", err)
	}
}

func run(ctx context.Context, cfg config) error {
	scene, err := newScene(cfg)
	if err != nil {
		return err
	}

	bcfg := backend.Config{Title: "pixfx " + pixfx.Version, Out: cfg.out}
	name := backend.BackendWindow
	if cfg.headless {
		name = backend.BackendHeadless
		bcfg.Input, err = headlessInput(cfg)
		if err != nil {
			return err
		}
	}
	b, err := backend.Get(name, bcfg)
	if err != nil {
		return err
	}

	d := frame.NewDriver(scene)
	runErr := b.Run(ctx, d)
	if err := b.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr == nil {
		pixfx.Logger().Info("pixfx: done", "backend", b.Name(), "stats", d.Stats().String())
	}
	return runErr
}

func newScene(cfg config) (frame.Scene, error) {
	switch cfg.demo {
	case "mandelbrot":
		k, err := fractal.ParseKernel(cfg.kernel)
		if err != nil {
			return nil, err
		}
		p, err := fractal.ParsePalette(cfg.palette)
		if err != nil {
			return nil, err
		}
		pixfx.Logger().Info("pixfx: mandelbrot", "kernel", k.String(), "palette", p.String())
		return fractal.NewScene(fractal.WithKernel(k), fractal.WithPalette(p)), nil

	case "blend":
		m, err := composite.ParseMode(cfg.compositor)
		if err != nil {
			return nil, err
		}
		src := bitmap.DirSource(cfg.assets)
		bg, err := src.Decode(cfg.background)
		if err != nil {
			return nil, err
		}
		sprite, err := src.Decode(cfg.sprite)
		if err != nil {
			return nil, err
		}
		pixfx.Logger().Info("pixfx: blend", "compositor", m.String(),
			"background", fmt.Sprintf("%dx%d", bg.Width, bg.Height),
			"sprite", fmt.Sprintf("%dx%d", sprite.Width, sprite.Height))
		return composite.NewScene(bg, sprite, composite.WithMode(m)), nil
	}
	return nil, fmt.Errorf("unknown demo %q (want mandelbrot or blend)", cfg.demo)
}

func headlessInput(cfg config) (frame.Input, error) {
	if strings.TrimSpace(cfg.script) != "" {
		return frame.ParseScript(cfg.script)
	}
	frames := make([]pixfx.Signals, max(cfg.frames, 0))
	return frame.NewScript(frames...), nil
}
