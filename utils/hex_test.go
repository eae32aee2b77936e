package utils

import "testing"

func TestAppendTokens(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		hex := string(AppendHex(nil, b))
		dec := string(AppendDec(nil, b))
		if len(hex) != 2 || len(dec) != 3 {
			t.Fatalf("byte %d: bad widths %q %q", i, hex, dec)
		}
	}

	if got := string(AppendHex([]byte("x"), 0xFF)); got != "xFF" {
		t.Fatalf("AppendHex = %q", got)
	}
	if got := string(AppendDec(nil, 7)); got != "007" {
		t.Fatalf("AppendDec = %q", got)
	}
	if got := string(AppendDec(nil, 200)); got != "200" {
		t.Fatalf("AppendDec = %q", got)
	}
}
