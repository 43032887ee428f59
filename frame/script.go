package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/pixfx"
)

// maxRepeat bounds the "*N" suffix in ParseScript.
const maxRepeat = 1 << 20

// Script is an Input that replays a fixed list of per-frame signals and
// then reports SignalQuit forever.
type Script struct {
	frames []pixfx.Signals
	pos    int
}

// NewScript returns a script of the given frames.
func NewScript(frames ...pixfx.Signals) *Script {
	return &Script{frames: frames}
}

// ParseScript parses comma-separated frames in pixfx.ParseSignals form.
// A frame may end in "*N" to repeat it N times:
//
//	"right*10,in+shift,none,quit"
func ParseScript(text string) (*Script, error) {
	s := &Script{}
	if strings.TrimSpace(text) == "" {
		return s, nil
	}
	for _, item := range strings.Split(text, ",") {
		sigText, count := item, 1
		if i := strings.LastIndexByte(item, '*'); i >= 0 {
			n, err := strconv.Atoi(strings.TrimSpace(item[i+1:]))
			if err != nil || n < 0 || n > maxRepeat {
				return nil, fmt.Errorf("frame: bad repeat in %q", item)
			}
			sigText, count = item[:i], n
		}
		sig, err := pixfx.ParseSignals(sigText)
		if err != nil {
			return nil, fmt.Errorf("frame: script: %w", err)
		}
		for range count {
			s.frames = append(s.frames, sig)
		}
	}
	return s, nil
}

// Len returns the number of scripted frames.
func (s *Script) Len() int {
	return len(s.frames)
}

// Remaining returns how many scripted frames have not been polled.
func (s *Script) Remaining() int {
	return len(s.frames) - s.pos
}

// Poll returns the next frame's signals.
func (s *Script) Poll() pixfx.Signals {
	if s.pos >= len(s.frames) {
		return pixfx.SignalQuit
	}
	sig := s.frames[s.pos]
	s.pos++
	return sig
}
