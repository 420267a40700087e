package core

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a business name: lowercase, punctuation
// stripped, runs of whitespace collapsed to single hyphens. Non-ASCII
// letters are kept as-is ("Café São José!!" -> "café-são-josé").
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		}
	}
	return b.String()
}
