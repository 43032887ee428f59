package frame

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats are the running frame statistics of a Driver.
type Stats struct {
	// Frames is the number of frames rendered.
	Frames int

	// Last is the time spent in Apply and Render for the latest frame.
	Last time.Duration

	// Busy is the total time spent in Apply and Render.
	Busy time.Duration

	// Wall is the time from the start of the first frame to the end of the
	// latest one, presentation included.
	Wall time.Duration
}

// FPS returns the average frames per second over Wall.
func (s Stats) FPS() float64 {
	if s.Wall <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Wall.Seconds()
}

// AvgFrame returns the mean Apply plus Render time.
func (s Stats) AvgFrame() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Busy / time.Duration(s.Frames)
}

var printer = message.NewPrinter(language.English)

// String formats the statistics for a HUD line, e.g.
// "1,200 frames  59.9 fps  last 4.1ms".
func (s Stats) String() string {
	return printer.Sprintf("%d frames  %.1f fps  last %.1fms",
		s.Frames, s.FPS(), float64(s.Last.Microseconds())/1000)
}
