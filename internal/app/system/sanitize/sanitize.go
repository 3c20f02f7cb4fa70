// internal/app/system/sanitize/sanitize.go

// Package sanitize scrubs client-supplied text before it is stored.
// Profile fields and facility detail strings are plain text; any markup in
// them is stripped entirely.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text strips all HTML from s, returning plain text.
func Text(s string) string {
	return strict.Sanitize(s)
}

// TextPtr strips all HTML from the pointed-to string, leaving nil alone.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := strict.Sanitize(*s)
	return &clean
}
