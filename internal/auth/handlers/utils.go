package handlers

import (
	"net/http"
	"unicode"
)

// isAlphanumeric reports whether s consists entirely of letters and digits.
// The state value doubles as the access code and reaches a database
// predicate, so anything else is rejected before any outbound call. An empty
// string passes vacuously and dies at the approval write instead.
func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// writeOutcome answers a callback with its terminal plain-text outcome. All
// outcomes share status 200; the game reads the datastore, not this body.
func writeOutcome(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(message))
}
