package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxCityLength bounds free-text city input before it is sent to the provider
const MaxCityLength = 100

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCityQuery reports whether s is a usable city search term:
// valid UTF-8, non-blank, within MaxCityLength runes and free of control characters.
func IsValidCityQuery(s string) bool {
	trimmed, ok := TrimAndValidate(s)
	if !ok || !utf8.ValidString(trimmed) || utf8.RuneCountInString(trimmed) > MaxCityLength {
		return false
	}
	for _, r := range trimmed {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
