// Package identifier is the single home for claim/policy reference
// extraction and validation. The classifier, the slot engine, and the
// turn validator all share these rules so an identifier accepted in one
// place is accepted everywhere.
package identifier

import (
	"regexp"
	"strings"
)

var (
	tokenRe      = regexp.MustCompile(`[A-Za-z0-9_-]+`)
	alnumRe      = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)
	candidateRe  = regexp.MustCompile(`\b[0-9A-Za-z]{1,10}\b`)
	afterClaimRe = regexp.MustCompile(`(?i)claim\s+([A-Za-z0-9]{1,10})\b`)
)

// Valid reports whether s is an acceptable claim/policy identifier:
// alphanumeric, 1-10 characters, at least one digit. The digit
// requirement keeps stray words like "status" from being captured.
func Valid(s string) bool {
	return alnumRe.MatchString(s) && hasDigit(s)
}

// FirstToken returns the first [A-Za-z0-9_-]+ token in text, or "".
// Used when a reply is expected to carry an identifier but may be
// wrapped in conversational filler ("sure, it's POL-1002").
func FirstToken(text string) string {
	return tokenRe.FindString(text)
}

// ClaimID extracts a claim identifier from free text. It prefers the
// token directly following the word "claim"; otherwise it falls back to
// the last short digit-bearing token in the utterance. Returns "" when
// nothing qualifies.
func ClaimID(text string) string {
	if m := afterClaimRe.FindStringSubmatch(text); m != nil && hasDigit(m[1]) {
		return m[1]
	}

	var last string
	for _, c := range candidateRe.FindAllString(text, -1) {
		if hasDigit(c) {
			last = c
		}
	}
	return last
}

// HasActionToken reports whether text contains any short alphanumeric
// token with at least one digit, the classifier's signal that the user
// is referencing a claim or policy.
func HasActionToken(text string) bool {
	for _, c := range candidateRe.FindAllString(text, -1) {
		if hasDigit(c) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
