package utils

import "strconv"

// FoldASCIIByte lowercases b if it is an ASCII uppercase letter, leaving
// every other byte (including anything at or above 0x80) untouched. This
// is the one place lexarbor folds case, so every canonicalization rule
// agrees on what "same word" means.
func FoldASCIIByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// FormatCount renders a non-negative count with thousand separators, for
// human-facing CLI output ("12,345 words" reads better than "12345
// words").
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out := s[:lead]
	for i := lead; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}
