package fractal

import (
	"math/rand"
	"testing"

	"github.com/gogpu/pixfx"
)

func TestMapper_Map(t *testing.T) {
	m := NewMapper()
	tests := []struct {
		name string
		view ViewState
		want Rect
	}{
		{"default", DefaultView(), BaseRect},
		{"scaled", ViewState{Scale: 2}, Rect{-4, 2, -2, 2}},
		{"panned", ViewState{DX: 1, DY: -0.5, Scale: 1}, Rect{-1, 2, -1.5, 0.5}},
		{"panned and scaled", ViewState{DX: 0.5, DY: 0.5, Scale: 0.5}, Rect{-0.75, 0.75, -0.25, 0.75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Map(tt.view)
			if got != tt.want {
				t.Errorf("Map(%+v) = %+v, want %+v", tt.view, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("Map(%+v) produced invalid rect", tt.view)
			}
		})
	}
}

func TestRect_Grid(t *testing.T) {
	g := BaseRect.Grid(FrameWidth, FrameHeight)
	if g.StepX != 3.0/900 || g.StepY != 2.0/600 {
		t.Errorf("steps = (%v, %v), want (%v, %v)", g.StepX, g.StepY, 3.0/900, 2.0/600)
	}
	if g.X(0) != -2 || g.Y(0) != 1 {
		t.Errorf("pixel (0,0) = (%v, %v), want (-2, 1)", g.X(0), g.Y(0))
	}
	if got := g.X(450); !near(got, -0.5) {
		t.Errorf("X(450) = %v, want -0.5", got)
	}
	if got := g.Y(300); !near(got, 0) {
		t.Errorf("Y(300) = %v, want 0", got)
	}

	empty := BaseRect.Grid(0, 0)
	if empty.StepX != 0 || empty.StepY != 0 {
		t.Errorf("zero-size grid steps = (%v, %v), want zero", empty.StepX, empty.StepY)
	}
}

func TestMapper_PanStep(t *testing.T) {
	dx, dy := NewMapper().PanStep()
	if dx != 0.03 || dy != 0.02 {
		t.Errorf("PanStep() = (%v, %v), want (0.03, 0.02)", dx, dy)
	}
}

func TestMapper_Apply(t *testing.T) {
	m := NewMapper()
	tests := []struct {
		name   string
		sig    pixfx.Signals
		wantDX float64
		wantDY float64
		scale  float64
	}{
		{"right", pixfx.SignalRight, 0.03, 0, 1},
		{"left fast", pixfx.SignalLeft | pixfx.SignalModifier, -0.09, 0, 1},
		{"down", pixfx.SignalDown, 0, 0.02, 1},
		{"up", pixfx.SignalUp, 0, -0.02, 1},
		{"left and right cancel", pixfx.SignalLeft | pixfx.SignalRight, 0, 0, 1},
		{"zoom in", pixfx.SignalZoomIn, 0, 0, 1 / ZoomStep},
		{"zoom out fast", pixfx.SignalZoomOut | pixfx.SignalModifier, 0, 0, ZoomStep * FastZoomFactor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultView()
			m.Apply(&v, tt.sig)
			if !near(v.DX, tt.wantDX) || !near(v.DY, tt.wantDY) || !near(v.Scale, tt.scale) {
				t.Errorf("Apply(%v) = %+v, want DX=%v DY=%v Scale=%v", tt.sig, v, tt.wantDX, tt.wantDY, tt.scale)
			}
		})
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-12 && d > -1e-12
}

func TestViewState_ScaleStaysPositive(t *testing.T) {
	m := NewMapper()
	rng := rand.New(rand.NewSource(4))
	v := DefaultView()
	signals := []pixfx.Signals{
		pixfx.SignalZoomIn,
		pixfx.SignalZoomIn | pixfx.SignalModifier,
		pixfx.SignalZoomOut,
		pixfx.SignalZoomOut | pixfx.SignalModifier,
	}
	for i := 0; i < 100000; i++ {
		m.Apply(&v, signals[rng.Intn(len(signals))])
		if !(v.Scale > 0) {
			t.Fatalf("step %d: scale = %v, want > 0", i, v.Scale)
		}
	}
}

func TestViewState_ScaleClamped(t *testing.T) {
	v := DefaultView()
	for i := 0; i < 20000; i++ {
		v.ZoomIn(ZoomStep * FastZoomFactor)
	}
	if v.Scale != MinScale {
		t.Errorf("after many zoom-ins scale = %v, want %v", v.Scale, MinScale)
	}
	if ok := v.ZoomIn(ZoomStep); ok {
		t.Error("ZoomIn at MinScale reported no clamp")
	}

	for i := 0; i < 20000; i++ {
		v.ZoomOut(ZoomStep * FastZoomFactor)
	}
	if v.Scale != MaxScale {
		t.Errorf("after many zoom-outs scale = %v, want %v", v.Scale, MaxScale)
	}
	if r := NewMapper().Map(v); !r.Valid() {
		t.Errorf("rect at MaxScale invalid: %+v", r)
	}
}
