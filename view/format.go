package view

import (
	"fmt"
	"strings"

	"github.com/cam-per/binview/utils"
)

type Format uint8

const (
	Hexadecimal Format = iota
	Decimal
	// Binary is reserved. Validate rejects it.
	Binary
)

func (f Format) String() string {
	switch f {
	case Hexadecimal:
		return "hexadecimal"
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat accepts the full names returned by String and the short
// forms hex, dec and bin.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hex", "hexadecimal":
		return Hexadecimal, nil
	case "dec", "decimal":
		return Decimal, nil
	case "bin", "binary":
		return Binary, nil
	}
	return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, name)
}

// tokenWidth is the number of columns one byte occupies, separator included.
func (f Format) tokenWidth() int {
	switch f {
	case Decimal:
		return 4
	default:
		return 3
	}
}

func (f Format) appendToken(dst []byte, b byte) []byte {
	switch f {
	case Decimal:
		dst = utils.AppendDec(dst, b)
	default:
		dst = utils.AppendHex(dst, b)
	}
	return append(dst, ' ')
}
