package tracking

import (
	"strings"
	"unicode/utf8"
)

// MaxFieldLength bounds stored user agent and referrer strings.
const MaxFieldLength = 255

// Truncate cuts s to at most max characters. It never splits a rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// SanitizeField prepares a header value for a text column. Invalid UTF-8
// becomes U+FFFD and NUL bytes are dropped before truncating to MaxFieldLength.
func SanitizeField(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.ReplaceAll(s, "\x00", "")
	return Truncate(s, MaxFieldLength)
}

// NormalizeCountry returns a two character upper-case country code, or ""
// when code is not one.
func NormalizeCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return code
}
