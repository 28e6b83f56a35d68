package classfile

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// decodeModifiedUTF8 decodes the JVM's "modified UTF-8" text encoding:
// NUL is written as C0 80, supplementary characters as a surrogate pair
// of three-byte sequences, and four-byte forms never appear.
func decodeModifiedUTF8(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))

	var pending rune = -1 // high surrogate waiting for its pair
	flush := func() {
		if pending >= 0 {
			sb.WriteRune(pending)
			pending = -1
		}
	}

	for i := 0; i < len(b); {
		c := b[i]
		var r rune
		switch {
		case c == 0:
			return "", fmt.Errorf("%w: raw NUL byte at %d", ErrInvalidText, i)
		case c < 0x80:
			r = rune(c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 2-byte sequence at %d", ErrInvalidText, i)
			}
			r = rune(c&0x1F)<<6 | rune(b[i+1]&0x3F)
			if r != 0 && r < 0x80 {
				return "", fmt.Errorf("%w: overlong sequence at %d", ErrInvalidText, i)
			}
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 3-byte sequence at %d", ErrInvalidText, i)
			}
			r = rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			if r < 0x800 {
				return "", fmt.Errorf("%w: overlong sequence at %d", ErrInvalidText, i)
			}
			i += 3
		default:
			return "", fmt.Errorf("%w: unexpected byte 0x%02x at %d", ErrInvalidText, c, i)
		}

		switch {
		case utf16.IsSurrogate(r) && r < 0xDC00:
			flush()
			pending = r
		case utf16.IsSurrogate(r):
			if pending < 0 {
				sb.WriteRune(r) // lone low surrogate, written as U+FFFD
				continue
			}
			sb.WriteRune(utf16.DecodeRune(pending, r))
			pending = -1
		default:
			flush()
			sb.WriteRune(r)
		}
	}
	flush()
	return sb.String(), nil
}
