package usecase

import (
	"strings"
	"unicode"
)

// normalizeName lower-cases a value and upper-cases the first letter of
// each whitespace-separated word. Internal whitespace is preserved as-is:
// "JOHN  doe" becomes "John  Doe".
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			startOfWord = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
