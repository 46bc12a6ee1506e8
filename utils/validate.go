package utils

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// local@domain.tld, case-insensitive. The legacy guest form accepted a
// dotless domain while sign-up required one; we keep the stricter rule.
var emailRe = regexp.MustCompile(`(?i)^[a-z0-9+_.-]+@[a-z0-9.-]+\.[a-z0-9-]+$`)

// HH:MM, 24h
var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidMinChars reports whether s has at least n characters. Names, places
// and addresses all use n=2; charset is not constrained, so whitespace
// counts like any other character.
func ValidMinChars(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// ValidPhone reports whether s contains at least 6 digit characters.
// Separators and country prefixes are allowed and ignored.
func ValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 6
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func ValidTime(s string) bool {
	return timeRe.MatchString(s)
}
