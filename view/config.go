package view

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("binary format is currently not supported")
)

// Config describes how a byte buffer is laid out. It is built once per
// invocation and never modified afterwards.
type Config struct {
	Format      Format
	BytesPerRow int
	Plain       bool
	FilePath    string

	// Text appends a column with the printable form of each row.
	Text bool
	// Charmap decodes bytes for the text column. Nil means ASCII.
	Charmap *charmap.Charmap
	// HumanSize adds a human readable size to the header.
	HumanSize bool
}

func (cfg Config) Validate() error {
	if cfg.BytesPerRow <= 0 {
		return fmt.Errorf("%w: bytes per row must be positive, got %d", ErrInvalidConfig, cfg.BytesPerRow)
	}
	switch cfg.Format {
	case Hexadecimal, Decimal:
		return nil
	case Binary:
		return ErrUnsupportedFormat
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, cfg.Format)
}
