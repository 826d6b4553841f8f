package textutil

import "strings"

// SanitizeChatHistory prepares a chat transcript for summarization:
// system and tool messages are dropped (they carry no discussion
// content), trailing whitespace is trimmed, and runs of blank lines are
// collapsed to a single one.
func SanitizeChatHistory(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if isNonContentLine(line) {
			continue
		}
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}

	// Drop a trailing blank left by the collapse pass.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// isNonContentLine reports whether line is a system or tool message
// rather than something a participant wrote.
func isNonContentLine(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	for _, prefix := range []string{"system:", "tool:", "[system]", "[tool]"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
