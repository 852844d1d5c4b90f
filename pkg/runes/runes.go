package runes

import "unicode/utf8"

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAlpha reports whether r may start an identifier: an ASCII letter or '_'.
func IsAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func IsAlphaNumeric(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}

// DecodeAt returns the whole rune starting at byte offset i of s and its width
// in bytes. Offsets past the end yield (utf8.RuneError, 0); invalid encodings
// yield (utf8.RuneError, 1).
func DecodeAt(s string, i int) (rune, int) {
	if i < 0 || i >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[i:])
}
