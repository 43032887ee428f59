package bitmap

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/composite"
)

// Source decodes named BMP files from a file system.
type Source struct {
	FS fs.FS
}

// NewSource returns a Source reading from fsys.
func NewSource(fsys fs.FS) *Source {
	return &Source{FS: fsys}
}

// DirSource returns a Source reading from the directory dir.
func DirSource(dir string) *Source {
	return NewSource(os.DirFS(dir))
}

// Decode opens and decodes name. Every failure is a *DecodeError.
func (s *Source) Decode(name string) (*composite.Image, error) {
	f, err := s.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrNotFound
		}
		return nil, &DecodeError{Name: name, Err: err}
	}
	defer f.Close()

	im, err := Decode(f)
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	pixfx.Logger().Debug("bitmap: decoded", "name", name, "width", im.Width, "height", im.Height)
	return im, nil
}
