package scoring

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, replaces every rune that is not a letter, digit or
// whitespace with a single space, collapses whitespace runs and trims the
// ends. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
