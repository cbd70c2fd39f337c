// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Flatten sanitizes s and collapses all whitespace runs to single spaces.
// Extractor adapters use it so downstream scoring sees uniform plain text.
func Flatten(s string) string {
	return strings.Join(strings.Fields(SanitizeText(s)), " ")
}
