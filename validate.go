package richdoc

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	return b < 0x09 || (b > 0x0D && b < 0x20) || b == 0x7F
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitize drops control runes other than line breaks and tabs. The
// input is returned unchanged when it has none.
func sanitize(src []byte) []byte {
	i := 0
	for i < len(src) && !isControlByte(src[i]) {
		i++
	}
	if i == len(src) {
		return src
	}
	out := make([]byte, 0, len(src))
	out = append(out, src[:i]...)
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if !isControlRune(r) {
			out = append(out, src[i:i+size]...)
		}
		i += size
	}
	return out
}
