package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrOutOfRange  = errors.New("offset out of range")
	ErrIsDirectory = errors.New("is a directory")
)

// IOError reports which step of loading a file failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s `%s`: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LoadFile reads length bytes starting at offset from the file at path.
// A negative length reads up to the end of the file. The returned buffer
// is always complete: a short read is an error.
func LoadFile(path string, offset, length int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if fi, err := f.Stat(); err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	} else if fi.IsDir() {
		return nil, &IOError{Op: "open", Path: path, Err: ErrIsDirectory}
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &IOError{Op: "size", Path: path, Err: err}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{Op: "seek", Path: path, Err: err}
	}

	if offset < 0 || offset > size {
		return nil, &IOError{Op: "seek", Path: path, Err: fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, offset, size)}
	}
	if length < 0 || length > size-offset {
		length = size - offset
	}

	buf := make([]byte, length)
	sr := io.NewSectionReader(f, offset, length)
	if _, err := io.ReadFull(sr, buf); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return buf, nil
}
