package utils

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	path := writeTemp(t, data)

	tests := []struct {
		name           string
		offset, length int64
		want           []byte
	}{
		{"whole", 0, -1, data},
		{"window", 2, 3, []byte{2, 3, 4}},
		{"tail", 7, -1, []byte{7, 8, 9}},
		{"clamped", 8, 100, []byte{8, 9}},
		{"at end", 10, -1, []byte{}},
		{"huge count", 1, math.MaxInt64, data[1:]},
		{"huge count at end", 10, math.MaxInt64, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(path, tt.offset, tt.length)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFile_Empty(t *testing.T) {
	got, err := LoadFile(writeTemp(t, nil), 0, -1)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty buffer, got %v", got)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	path := writeTemp(t, []byte("abc"))

	tests := []struct {
		name   string
		path   string
		offset int64
		op     string
		target error
	}{
		{"missing", filepath.Join(t.TempDir(), "nope"), 0, "open", os.ErrNotExist},
		{"directory", t.TempDir(), 0, "open", ErrIsDirectory},
		{"past end", path, 4, "seek", ErrOutOfRange},
		{"negative", path, -1, "seek", ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path, tt.offset, -1)
			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("expected *IOError, got %v", err)
			}
			if ioErr.Op != tt.op || ioErr.Path != tt.path {
				t.Fatalf("got op=%q path=%q", ioErr.Op, ioErr.Path)
			}
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v in chain, got %v", tt.target, err)
			}
		})
	}
}
