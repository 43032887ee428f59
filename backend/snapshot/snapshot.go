// Package snapshot provides a frame.Sink that writes frames to image files.
//
// The output format follows the file extension: .png, .webp (lossless, via
// nativewebp) or .bmp. A path containing a printf verb such as
// "frame-%04d.png" gets one file per presented frame; any other path gets
// only the last frame, written by Close.
package snapshot

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"

	"github.com/gogpu/pixfx"
)

// ErrUnknownFormat is returned for an output path with an unsupported extension.
var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// Format is an output encoding.
type Format uint8

const (
	FormatPNG Format = iota
	FormatWebP
	FormatBMP
)

// String returns the format's file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	case FormatBMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	case ".bmp":
		return FormatBMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Encode writes buf to w in format f. The image is written opaque.
func Encode(w io.Writer, f Format, buf *pixfx.PixelBuffer) error {
	img := buf.ToImage()
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Sink writes presented frames to disk.
type Sink struct {
	path     string
	format   Format
	perFrame bool

	frames  int
	last    *pixfx.PixelBuffer
	written []string
}

// New returns a Sink writing to path.
func New(path string) (*Sink, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &Sink{
		path:     path,
		format:   f,
		perFrame: strings.Contains(path, "%"),
	}, nil
}

// Present records buf, writing it immediately in per-frame mode.
func (s *Sink) Present(buf *pixfx.PixelBuffer) error {
	s.frames++
	if s.perFrame {
		return s.write(fmt.Sprintf(s.path, s.frames), buf)
	}
	if s.last == nil || s.last.Width() != buf.Width() || s.last.Height() != buf.Height() {
		s.last = pixfx.NewPixelBuffer(buf.Width(), buf.Height())
	}
	copy(s.last.Data(), buf.Data())
	return nil
}

// Frames returns the number of frames presented.
func (s *Sink) Frames() int {
	return s.frames
}

// Written returns the paths written so far.
func (s *Sink) Written() []string {
	return s.written
}

// Close writes the last frame when not in per-frame mode. It is a no-op
// if nothing was presented.
func (s *Sink) Close() error {
	if s.perFrame || s.last == nil {
		return nil
	}
	err := s.write(s.path, s.last)
	s.last = nil
	return err
}

func (s *Sink) write(path string, buf *pixfx.PixelBuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	if err := Encode(f, s.format, buf); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	s.written = append(s.written, path)
	pixfx.Logger().Debug("snapshot: wrote frame", "path", path, "format", s.format.String())
	return nil
}
