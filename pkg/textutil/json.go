// Package textutil contains small text-processing helpers: pulling
// structured JSON out of model replies, highlighting terms, and cleaning
// chat transcripts before summarization.
package textutil

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractJSON returns the first valid JSON object embedded in s. Model
// replies often wrap the payload in a ```json fence or surround it with
// prose; both are handled. ok is false when no valid object is found.
func ExtractJSON(s string) (string, bool) {
	if block, ok := fencedBlock(s); ok {
		if candidate := strings.TrimSpace(block); gjson.Valid(candidate) {
			return candidate, true
		}
	}

	for start := strings.IndexByte(s, '{'); start >= 0; {
		if end := matchBrace(s, start); end > start {
			candidate := s[start : end+1]
			if gjson.Valid(candidate) {
				return candidate, true
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return "", false
}

// fencedBlock returns the contents of the first ``` fence, tolerating an
// optional language tag on the opening line.
func fencedBlock(s string) (string, bool) {
	open := strings.Index(s, "```")
	if open < 0 {
		return "", false
	}
	rest := s[open+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Skip the language tag line (e.g. "json").
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// matchBrace returns the index of the brace closing the object opened at
// start, or -1. String literals and escapes are skipped so braces inside
// values do not confuse the depth count.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
