// Package mutedwords manages the user's muted-word list and applies it
// to post text.
package mutedwords

import (
	"strings"
	"unicode/utf8"

	"github.com/forumkit/cli/pkg/textutil"
	"github.com/samber/lo"
)

// List is an ordered muted-word list. Words are stored as entered;
// matching and deduplication are case-insensitive.
type List []string

// Add returns the list with word appended, unless an equivalent word is
// already present. Surrounding whitespace is trimmed; empty words are
// ignored.
func (l List) Add(word string) List {
	word = strings.TrimSpace(word)
	if word == "" {
		return l
	}
	if l.contains(word) {
		return l
	}
	return append(l, word)
}

// Remove returns the list without word, matched case-insensitively.
func (l List) Remove(word string) List {
	word = strings.TrimSpace(word)
	return lo.Filter(l, func(w string, _ int) bool {
		return !strings.EqualFold(w, word)
	})
}

// Matches reports whether text contains any muted word, compared
// case-insensitively.
func (l List) Matches(text string) bool {
	for _, w := range l {
		if start, _ := textutil.IndexFold(text, w); start >= 0 {
			return true
		}
	}
	return false
}

// Censor replaces every occurrence of each muted word in text with one
// asterisk per rune of the matched text.
func (l List) Censor(text string) string {
	for _, w := range l {
		text = censorWord(text, w)
	}
	return text
}

func (l List) contains(word string) bool {
	return lo.ContainsBy(l, func(w string) bool {
		return strings.EqualFold(w, word)
	})
}

func censorWord(text, word string) string {
	if word == "" {
		return text
	}

	var b strings.Builder
	for {
		start, end := textutil.IndexFold(text, word)
		if start < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:start])
		b.WriteString(strings.Repeat("*", utf8.RuneCountInString(text[start:end])))
		text = text[end:]
	}
}
