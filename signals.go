package pixfx

import (
	"errors"
	"fmt"
	"strings"
)

// Signals is the set of discrete input signals sampled once per frame.
type Signals uint16

// Input signals. Directional signals pan, zoom signals scale the view, and
// SignalModifier multiplies the step of whatever else is held.
const (
	SignalLeft Signals = 1 << iota
	SignalRight
	SignalUp
	SignalDown
	SignalZoomIn
	SignalZoomOut
	SignalModifier
	SignalQuit
)

// ErrUnknownSignal is returned by ParseSignals for an unrecognized token.
var ErrUnknownSignal = errors.New("pixfx: unknown signal")

var signalNames = [...]struct {
	s    Signals
	name string
}{
	{SignalLeft, "left"},
	{SignalRight, "right"},
	{SignalUp, "up"},
	{SignalDown, "down"},
	{SignalZoomIn, "in"},
	{SignalZoomOut, "out"},
	{SignalModifier, "shift"},
	{SignalQuit, "quit"},
}

// Has reports whether every signal in f is set in s.
func (s Signals) Has(f Signals) bool {
	return s&f == f
}

// String returns the signals joined with "+", or "none".
func (s Signals) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, n := range signalNames {
		if s.Has(n.s) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseSignals parses the String form, e.g. "right+shift". The tokens
// "none" and "" yield an empty set.
func ParseSignals(text string) (Signals, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "none" {
		return 0, nil
	}
	var s Signals
next:
	for _, tok := range strings.Split(text, "+") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		for _, n := range signalNames {
			if n.name == tok {
				s |= n.s
				continue next
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownSignal, tok)
	}
	return s, nil
}
