package yaml

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Escape sequences follow the YAML 1.2 escaped-characters table:
// https://yaml.org/spec/1.2.2/#escaped-characters

// appendSingleQuoted appends s single-quoted, doubling embedded quotes.
func appendSingleQuoted(dst, s []byte) []byte {
	dst = append(dst, '\'')

	for {
		n := bytes.IndexByte(s, '\'')
		if n < 0 {
			dst = append(dst, s...)
			break
		}

		dst = append(dst, s[:n]...)
		dst = append(dst, '\'', '\'')
		s = s[n+1:]
	}

	return append(dst, '\'')
}

// appendDoubleQuoted appends s double-quoted, escaping control bytes and
// quotes.
func appendDoubleQuoted(dst, s []byte) []byte {
	dst = append(dst, '"')

	start := 0

	for i := 0; i < len(s); i++ {
		var esc string

		switch b := s[i]; b {
		case 0x00:
			esc = `\0`
		case 0x07:
			esc = `\a`
		case 0x08:
			esc = `\b`
		case 0x09:
			esc = `\t`
		case newline:
			esc = `\n`
		case 0x0b:
			esc = `\v`
		case 0x0c:
			esc = `\f`
		case '\r':
			esc = `\r`
		case 0x1b:
			esc = `\e`
		case '"':
			esc = `\"`
		case '\\':
			esc = `\\`
		default:
			if b < 0x20 || b == 0x7f {
				dst = append(dst, s[start:i]...)
				dst = fmt.Appendf(dst, `\x%02x`, b)
				start = i + 1
			}

			continue
		}

		dst = append(dst, s[start:i]...)
		dst = append(dst, esc...)
		start = i + 1
	}

	dst = append(dst, s[start:]...)

	return append(dst, '"')
}

// unescapeSingle decodes the inner bytes of a single-quoted string, where
// the only escape is a doubled quote.
func unescapeSingle(s []byte) []byte {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		out = append(out, s[i])

		if s[i] == '\'' && i+1 < len(s) && s[i+1] == '\'' {
			i++
		}
	}

	return out
}

// unescapeDouble decodes the inner bytes of a double-quoted string.
// Unknown escapes decode to the escaped byte itself.
func unescapeDouble(s []byte) []byte {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		b := s[i]

		if b != '\\' || i+1 >= len(s) {
			out = append(out, b)
			continue
		}

		i++

		switch c := s[i]; c {
		case '0':
			out = append(out, 0x00)
		case 'a':
			out = append(out, 0x07)
		case 'b':
			out = append(out, 0x08)
		case 't':
			out = append(out, 0x09)
		case 'n':
			out = append(out, newline)
		case 'v':
			out = append(out, 0x0b)
		case 'f':
			out = append(out, 0x0c)
		case 'r':
			out = append(out, '\r')
		case 'e':
			out = append(out, 0x1b)
		case 'x':
			if v, ok := hexByte(s[i+1:], 2); ok {
				out = append(out, byte(v))
				i += 2
			} else {
				out = append(out, c)
			}
		case 'u':
			if v, ok := hexByte(s[i+1:], 4); ok {
				out = utf8.AppendRune(out, rune(v))
				i += 4
			} else {
				out = append(out, c)
			}
		default:
			out = append(out, c)
		}
	}

	return out
}

// hexByte reads exactly n hex digits from the front of s.
func hexByte(s []byte, n int) (uint32, bool) {
	if len(s) < n {
		return 0, false
	}

	var v uint32

	for _, b := range s[:n] {
		var digit uint32

		switch {
		case b >= '0' && b <= '9':
			digit = uint32(b - '0')
		case b >= 'a' && b <= 'f':
			digit = uint32(b-'a') + 10
		case b >= 'A' && b <= 'F':
			digit = uint32(b-'A') + 10
		default:
			return 0, false
		}

		v = v<<4 | digit
	}

	return v, true
}
