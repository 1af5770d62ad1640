package summarizer

import (
	"slices"
	"strings"
)

// Template placeholders.
const (
	PlaceholderChunk   = "{chunk}"
	PlaceholderMinutes = "{currentMinutes}"
)

type substitution struct {
	at          int
	placeholder string
	value       string
}

// BuildPrompt replaces the first {chunk} and the first {currentMinutes} in tmpl.
// Only the template is searched, so placeholder text inside the values is left alone.
func BuildPrompt(tmpl, chunk, currentMinutes string) string {
	subs := make([]substitution, 0, 2)
	for _, s := range []substitution{
		{placeholder: PlaceholderChunk, value: chunk},
		{placeholder: PlaceholderMinutes, value: currentMinutes},
	} {
		if i := strings.Index(tmpl, s.placeholder); i >= 0 {
			s.at = i
			subs = append(subs, s)
		}
	}
	slices.SortFunc(subs, func(a, b substitution) int { return a.at - b.at })

	var b strings.Builder
	prev := 0
	for _, s := range subs {
		b.WriteString(tmpl[prev:s.at])
		b.WriteString(s.value)
		prev = s.at + len(s.placeholder)
	}
	b.WriteString(tmpl[prev:])
	return b.String()
}
