// Package util resolves the short record IDs users type on the command line.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultShortIDLength is how many leading characters of a UUID are shown.
const DefaultShortIDLength = 8

// maxCandidates caps how many matches an ambiguity error lists.
const maxCandidates = 5

var (
	ErrAmbiguousID = errors.New("ambiguous ID prefix")
	ErrNotFound    = errors.New("not found")
)

// ShortID returns the first n characters of id; n <= 0 means
// DefaultShortIDLength.
//
//	ShortID("3f2b9c1e-7d4a-4b7e-9a51-0c6f2e8d1a90", 0) → "3f2b9c1e"
func ShortID(id string, n int) string {
	if n <= 0 {
		n = DefaultShortIDLength
	}
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// ResolveID finds the one id in ids that equals input or starts with it.
// Matching ignores case and surrounding space. An exact match wins even
// when it is also the prefix of other IDs. kind names the record in errors
// ("task", "suggestion").
func ResolveID(ids []string, input, kind string) (string, error) {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" {
		return "", fmt.Errorf("%s ID: %w", kind, ErrNotFound)
	}

	var matches []string
	for _, id := range ids {
		lower := strings.ToLower(id)
		if lower == prefix {
			return id, nil
		}
		if strings.HasPrefix(lower, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s with prefix %q: %w", kind, input, ErrNotFound)
	case 1:
		return matches[0], nil
	}

	shown := make([]string, 0, maxCandidates)
	for _, id := range matches[:min(len(matches), maxCandidates)] {
		shown = append(shown, ShortID(id, 0))
	}
	return "", fmt.Errorf("%w: prefix %q matches %d %ss: %s",
		ErrAmbiguousID, input, len(matches), kind, strings.Join(shown, ", "))
}
