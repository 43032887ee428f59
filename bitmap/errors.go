package bitmap

import (
	"errors"
	"fmt"
)

// Decode failures. A DecodeError wraps exactly one of these.
var (
	// ErrNotFound is returned when the named file does not exist.
	ErrNotFound = errors.New("bitmap: not found")

	// ErrTruncated is returned when the file ends before the pixel data does.
	ErrTruncated = errors.New("bitmap: truncated")

	// ErrMalformed is returned for a bad signature or inconsistent header.
	ErrMalformed = errors.New("bitmap: malformed header")

	// ErrUnsupportedDepth is returned for depths other than 24 and 32 bits.
	ErrUnsupportedDepth = errors.New("bitmap: unsupported pixel depth")

	// ErrUnsupportedCompression is returned for compressed pixel data.
	ErrUnsupportedCompression = errors.New("bitmap: unsupported compression")

	// ErrTooLarge is returned when the image exceeds MaxPixels.
	ErrTooLarge = errors.New("bitmap: image too large")
)

// DecodeError reports a failed decode of a named image.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
