package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/pixfx"
)

// keymap lists the held keys that produce each signal. Any listed key is
// enough.
var keymap = []struct {
	sig  pixfx.Signals
	keys []ebiten.Key
}{
	{pixfx.SignalLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{pixfx.SignalRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{pixfx.SignalUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{pixfx.SignalDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{pixfx.SignalZoomIn, []ebiten.Key{ebiten.KeyNumpadAdd, ebiten.KeyEqual, ebiten.KeyPageUp}},
	{pixfx.SignalZoomOut, []ebiten.Key{ebiten.KeyNumpadSubtract, ebiten.KeyMinus, ebiten.KeyPageDown}},
	{pixfx.SignalModifier, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{pixfx.SignalQuit, []ebiten.Key{ebiten.KeyEscape}},
}

// signalsFrom samples the keyboard through pressed.
func signalsFrom(pressed func(ebiten.Key) bool) pixfx.Signals {
	var s pixfx.Signals
	for _, m := range keymap {
		for _, k := range m.keys {
			if pressed(k) {
				s |= m.sig
				break
			}
		}
	}
	return s
}
