// Package moderation rejects submitted text containing blocked terms.
//
// The check is a case-insensitive substring match against a fixed list. It
// is a heuristic, not a guarantee: no stemming, no leetspeak normalization,
// no context analysis. Anything that slips through can still be reported and
// removed by a moderator.
package moderation

import "strings"

var blockedTerms = []string{
	"groseria1",
	"groseria2",
	"insulto1",
}

// IsAcceptable reports whether text is free of blocked terms. Pure and
// deterministic; an exact block-list match is always rejected.
func IsAcceptable(text string) bool {
	t := strings.ToLower(text)
	for _, term := range blockedTerms {
		if strings.Contains(t, term) {
			return false
		}
	}
	return true
}
