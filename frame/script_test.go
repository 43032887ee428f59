package frame

import (
	"errors"
	"testing"

	"github.com/gogpu/pixfx"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		text string
		want []pixfx.Signals
	}{
		{"", nil},
		{"right", []pixfx.Signals{pixfx.SignalRight}},
		{"right*3,quit", []pixfx.Signals{pixfx.SignalRight, pixfx.SignalRight, pixfx.SignalRight, pixfx.SignalQuit}},
		{"in+shift, none ,left", []pixfx.Signals{pixfx.SignalZoomIn | pixfx.SignalModifier, 0, pixfx.SignalLeft}},
		{"up*0,down", []pixfx.Signals{pixfx.SignalDown}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s, err := ParseScript(tt.text)
			if err != nil {
				t.Fatalf("ParseScript: %v", err)
			}
			if s.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(tt.want))
			}
			for i, w := range tt.want {
				if got := s.Poll(); got != w {
					t.Errorf("frame %d = %v, want %v", i, got, w)
				}
			}
			if got := s.Poll(); got != pixfx.SignalQuit {
				t.Errorf("after end Poll() = %v, want quit", got)
			}
		})
	}
}

func TestParseScript_Errors(t *testing.T) {
	for _, text := range []string{"jump", "right*x", "right*-1", "left+sideways"} {
		if _, err := ParseScript(text); err == nil {
			t.Errorf("ParseScript(%q): expected error", text)
		}
	}
	_, err := ParseScript("sideways")
	if !errors.Is(err, pixfx.ErrUnknownSignal) {
		t.Errorf("error = %v, want ErrUnknownSignal", err)
	}
}
