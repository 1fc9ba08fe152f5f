package search

import (
	"strings"
	"unicode"

	"github.com/flowpms/flowpms-go/pkg/models"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Highlight wraps every case-insensitive, non-overlapping occurrence of the
// query in mark tags. It never fails: empty inputs and queries that do not
// occur return the text unchanged.
func Highlight(text, query string) string {
	query = strings.TrimSpace(query)
	if text == "" || query == "" {
		return text
	}

	textRunes := []rune(text)
	queryRunes := []rune(query)
	if len(queryRunes) > len(textRunes) {
		return text
	}

	var b strings.Builder
	i := 0
	for i < len(textRunes) {
		if matchesAt(textRunes, queryRunes, i) {
			b.WriteString(markOpen)
			b.WriteString(string(textRunes[i : i+len(queryRunes)]))
			b.WriteString(markClose)
			i += len(queryRunes)
			continue
		}
		b.WriteRune(textRunes[i])
		i++
	}
	return b.String()
}

func matchesAt(text, query []rune, offset int) bool {
	if offset+len(query) > len(text) {
		return false
	}
	for k, q := range query {
		if unicode.ToLower(text[offset+k]) != unicode.ToLower(q) {
			return false
		}
	}
	return true
}

// HighlightResult returns a copy of the hit with its title and description
// marked up for the query.
func HighlightResult(result models.SearchResult, query string) models.SearchResult {
	result.Title = Highlight(result.Title, query)
	result.Description = Highlight(result.Description, query)
	return result
}
