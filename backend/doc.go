// Package backend selects where a session's frames go.
//
// A Backend owns the frame loop of a frame.Driver: a desktop window polls
// the keyboard and displays each frame, the headless backend replays
// scripted input and writes snapshots. Backends register a Factory from an
// init function and are chosen by name or by priority:
//
//	import _ "github.com/gogpu/pixfx/backend/ebiten"
//
//	b, err := backend.Default(backend.Config{Title: "pixfx"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//	err = b.Run(ctx, driver)
//
// # Available Backends
//
//   - "window": ebiten desktop window (registered by backend/ebiten)
//   - "headless": scripted input, optional file output (always available)
package backend
