// Package frame runs the per-frame loop shared by every demo session.
//
// One frame is strictly sequential: poll input, apply it to the scene's
// state, render the whole framebuffer, present it. The quit signal is only
// looked at between frames, and a frame in progress always completes.
//
//	d := frame.NewDriver(fractal.NewScene())
//	err := d.Run(ctx, frame.NewScript(pixfx.SignalZoomIn, pixfx.SignalQuit), sink)
package frame
