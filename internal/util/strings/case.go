package strings

import (
	"strings"
	"unicode"
)

// ToCamelCase converts snake_case (and dash or space separated) keys to camelCase.
// A separator run is dropped and the rune after it is upper-cased; the first
// rune is lower-cased (updated_at -> updatedAt, Fallback_SEO -> fallbackSEO).
func ToCamelCase(s string) string {
	if s == "" || isNumeric(s) {
		return s
	}

	var result strings.Builder
	runes := []rune(s)
	upperNext := false
	wrote := false

	for _, r := range runes {
		if isSeparator(r) {
			// Leading separators are dropped without capitalizing
			upperNext = wrote
			continue
		}
		switch {
		case !wrote:
			result.WriteRune(unicode.ToLower(r))
		case upperNext:
			result.WriteRune(unicode.ToUpper(r))
		default:
			result.WriteRune(r)
		}
		upperNext = false
		wrote = true
	}
	return result.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
