// Package strings formats identifiers for display in announcements and
// choice lists.
package strings

import "strings"

// Humanize turns a snake_case identifier into title-cased words:
// "pending_review" becomes "Pending Review".
func Humanize(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
