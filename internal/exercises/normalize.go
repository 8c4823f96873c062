package exercises

import (
	"strings"
	"unicode"
)

// NormalizeName canonicalizes a free-text exercise name: lowercase,
// letters and digits only. "Bench Press", " bench press " and
// "BENCH-PRESS" all normalize to "benchpress".
func NormalizeName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
