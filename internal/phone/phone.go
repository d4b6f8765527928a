// Package phone normalizes Nigerian phone numbers.
package phone

import (
	"strings"
	"unicode"
)

// CountryCode is the only supported dialing prefix.
const CountryCode = "+234"

// Normalize converts free-form input into canonical +234 form.
// It reports false when the input is not recognized; callers surface a
// validation error instead of a malformed number.
func Normalize(raw string) (string, bool) {
	cleaned := stripSpaces(raw)
	switch {
	case strings.HasPrefix(cleaned, CountryCode):
		return cleaned, true
	case strings.HasPrefix(cleaned, "0"):
		return CountryCode + cleaned[1:], true
	case isTenDigits(cleaned):
		return CountryCode + cleaned, true
	}
	return "", false
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
