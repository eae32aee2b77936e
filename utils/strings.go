package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	ErrUnknownCharset = errors.New("charset: unknown or unsupported")
	ErrNotSingleByte  = errors.New("charset: not a single-byte encoding")
)

// Printable renders every byte of b as exactly one rune. Bytes that do not
// decode to a printable rune become '.'.
func Printable(b []byte, cm *charmap.Charmap) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		r := rune(c)
		if cm != nil {
			r = cm.DecodeByte(c)
		} else if c > unicode.MaxASCII {
			r = '.'
		}
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			r = '.'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// LookupCharmap resolves an IANA charset name such as "IBM866" or
// "windows-1251". An empty name means plain ASCII and yields nil.
func LookupCharmap(name string) (*charmap.Charmap, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotSingleByte, name)
	}
	return cm, nil
}
