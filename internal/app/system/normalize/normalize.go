// internal/app/system/normalize/normalize.go

// Package normalize canonicalizes user-supplied identity fields before they
// reach stores or comparisons. Every lookup and write goes through the same
// functions so "User@X.com" and "user@x.com " are always the same account.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role identifier.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AuthProvider lowercases and trims an auth provider tag.
func AuthProvider(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone trims a contact number, keeping the digits and formatting the caller
// supplied. Full phone validation is a boundary concern, not normalization.
func Phone(s string) string {
	return strings.TrimSpace(s)
}
