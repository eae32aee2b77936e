package utils

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestPrintable(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		cm   *charmap.Charmap
		want string
	}{
		{"ascii", []byte("Go!"), nil, "Go!"},
		{"controls", []byte{0x00, '\n', 0x7F, 0x80, 0xFF}, nil, "....."},
		{"cp866", []byte{0x80, 'a'}, charmap.CodePage866, "Аa"},
		{"latin1", []byte{0xE9}, charmap.ISO8859_1, "é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Printable(tt.in, tt.cm); got != tt.want {
				t.Fatalf("Printable = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupCharmap(t *testing.T) {
	cm, err := LookupCharmap("")
	if err != nil || cm != nil {
		t.Fatalf("empty name: got %v, %v", cm, err)
	}

	cm, err = LookupCharmap("IBM866")
	if err != nil {
		t.Fatalf("IBM866: %v", err)
	}
	if cm != charmap.CodePage866 {
		t.Fatalf("IBM866 resolved to %v", cm)
	}

	if _, err := LookupCharmap("UTF-8"); !errors.Is(err, ErrNotSingleByte) {
		t.Fatalf("UTF-8: got %v", err)
	}
	if _, err := LookupCharmap("no-such-charset"); !errors.Is(err, ErrUnknownCharset) {
		t.Fatalf("unknown: got %v", err)
	}
}
