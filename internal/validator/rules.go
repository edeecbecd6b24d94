package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// CountryCodeRgx matches an ISO 3166-1 alpha-2 code.
	CountryCodeRgx = regexp.MustCompile(`^[A-Z]{2}$`)

	// UsernameRgx restricts usernames to letters, digits and . _ -
	UsernameRgx = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns true if a string is greater than or equal to a minimum number of n
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Matches returns true if a string value matches a specific regexp pattern.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// AllNotBlank returns true if no value in the slice is blank.
func AllNotBlank(values []string) bool {
	for _, value := range values {
		if !NotBlank(value) {
			return false
		}
	}
	return true
}

// IsCountryCode returns true for an upper-case two letter code.
func IsCountryCode(value string) bool {
	return Matches(value, CountryCodeRgx)
}
