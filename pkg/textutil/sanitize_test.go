package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeChatHistoryDropsSystemAndToolLines(t *testing.T) {
	input := `system: you are a forum assistant
alice: has anyone tried the new editor?
tool: fetch_thread(id=42)
bob: yes, works fine for me
[System] context refreshed
carol: same here`

	want := `alice: has anyone tried the new editor?
bob: yes, works fine for me
carol: same here`

	assert.Equal(t, want, SanitizeChatHistory(input))
}

func TestSanitizeChatHistoryCollapsesBlankRuns(t *testing.T) {
	input := "alice: hi\n\n\n\nbob: hey\t\n\n\n"
	want := "alice: hi\n\nbob: hey"
	assert.Equal(t, want, SanitizeChatHistory(input))
}

func TestSanitizeChatHistoryLeadingBlanksDropped(t *testing.T) {
	input := "\n\nalice: hi"
	assert.Equal(t, "alice: hi", SanitizeChatHistory(input))
}

func TestSanitizeChatHistoryEmpty(t *testing.T) {
	assert.Equal(t, "", SanitizeChatHistory(""))
	assert.Equal(t, "", SanitizeChatHistory("system: only meta\ntool: noise"))
}
