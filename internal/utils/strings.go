package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if a string is a valid email address.
// The local part may not start or end with a dot and domain labels may not
// start or end with a dash.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// EmailDomain returns the lower-cased domain of an address, or "" if it has none
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// MaskString masks a portion of a string (useful for PII)
func MaskString(s string, start, end int, maskChar string) string {
	if start < 0 || end > len(s) || start > end {
		return s
	}
	return s[:start] + strings.Repeat(maskChar, end-start) + s[end:]
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	if len(parts[0]) <= 2 {
		return email
	}
	return MaskString(parts[0], 2, len(parts[0]), "*") + "@" + parts[1]
}
