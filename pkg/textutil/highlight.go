package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndexFold returns the byte offsets [start, end) of the first
// case-insensitive occurrence of term in s, or (-1, -1). Matching folds
// rune by rune, so offsets stay valid even where lowercasing would
// change byte lengths.
func IndexFold(s, term string) (start, end int) {
	if term == "" {
		return -1, -1
	}
	runes := []rune(term)
	for i := range s {
		if n, ok := foldPrefixLen(s[i:], runes); ok {
			return i, i + n
		}
	}
	return -1, -1
}

// foldPrefixLen reports whether s starts with term under simple case
// folding, returning the byte length of the matched prefix.
func foldPrefixLen(s string, term []rune) (int, bool) {
	offset := 0
	for _, tr := range term {
		r, size := utf8.DecodeRuneInString(s[offset:])
		if size == 0 || !runesEqualFold(r, tr) {
			return 0, false
		}
		offset += size
	}
	return offset, true
}

// runesEqualFold reports whether two runes are equal under Unicode
// simple case folding.
func runesEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Highlight wraps every case-insensitive occurrence of term in s with
// left and right markers. The original casing of each match is kept.
// An empty term returns s unchanged.
func Highlight(s, term, left, right string) string {
	if term == "" {
		return s
	}

	var b strings.Builder
	for {
		start, end := IndexFold(s, term)
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		b.WriteString(left)
		b.WriteString(s[start:end])
		b.WriteString(right)
		s = s[end:]
	}
}
