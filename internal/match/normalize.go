package match

import (
	"strings"
	"unicode"
)

// NormalizeName normalizes a mask name for fuzzy matching:
// case-folded to lower, with separators (_, -, ., spaces) removed.
// "US_Phone", "us-phone" and "usphone" all normalize to "usphone".
func NormalizeName(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
