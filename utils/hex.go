package utils

const upperHex = "0123456789ABCDEF"

// AppendHex appends b as two uppercase hexadecimal digits.
func AppendHex(dst []byte, b byte) []byte {
	return append(dst, upperHex[b>>4], upperHex[b&0x0F])
}

// AppendDec appends b as three zero-padded decimal digits.
func AppendDec(dst []byte, b byte) []byte {
	return append(dst, '0'+b/100, '0'+b/10%10, '0'+b%10)
}
