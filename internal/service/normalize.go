package service

import (
	"regexp"
	"strings"
	"unicode"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// normalizeName trims the input and title-cases it: the first letter after
// any non-letter is upper-cased, every other letter lower-cased, so
// "ada lovelace" and "ADA-LOVELACE" both normalize to a stable display form.
func normalizeName(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// validCourseName accepts names made of letters, digits, spaces, hyphens,
// colons and underscores, and requires at least one letter so purely numeric
// names are rejected.
func validCourseName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r) || r == ' ' || r == '-' || r == ':' || r == '_':
		default:
			return false
		}
	}
	return hasLetter
}

// validPersonName accepts letters and spaces only.
func validPersonName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

func validMobile(s string) bool {
	return mobilePattern.MatchString(s)
}
