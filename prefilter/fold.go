package prefilter

import (
	"unicode"
	"unicode/utf8"
)

// AppendFold appends the lower-cased form of s to dst and returns the
// extended buffer.
//
// The result is byte-identical to strings.ToLower(s), which is how atoms are
// folded, but lets callers reuse a buffer across searches. Invalid UTF-8 bytes
// become utf8.RuneError, as strings.ToLower does.
func AppendFold(dst []byte, s string) []byte {
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			dst = append(dst, c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		dst = utf8.AppendRune(dst, unicode.ToLower(r))
		i += size
	}
	return dst
}
