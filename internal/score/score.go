// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes per-tier keyword matches and the combined
// weighted document score.
package score

import (
	"sort"
	"strings"

	"github.com/pdiddy/preprint-triage/internal/keywords"
	"github.com/pdiddy/preprint-triage/internal/textnorm"
	"github.com/pdiddy/preprint-triage/pkg/types"
)

// Match returns the stems from set that occur in the document's counts,
// sorted lexicographically, together with the tier score: the sum of the
// occurrence counts of every matching stem. Sorting makes the output
// independent of map iteration order.
func Match(set keywords.Set, counts textnorm.TokenCounts) ([]string, int) {
	var matches []string
	total := 0
	for stem := range set {
		if c, ok := counts[stem]; ok {
			total += c
			matches = append(matches, stem)
		}
	}
	sort.Strings(matches)
	return matches, total
}

// Combine folds the three tier scores into the final document score using
// the configured weights, and adds the site bounty once when the
// document's source site equals the distinguished source,
// case-insensitively.
func Combine(cfg types.ScoreConfig, high, med, low int, site string) float64 {
	s := float64(high)*cfg.HighBounty + float64(med)*cfg.MedBounty + float64(low)*cfg.LowBounty
	if cfg.BountySite != "" && strings.EqualFold(site, cfg.BountySite) {
		s += cfg.SiteBounty
	}
	return s
}

// JoinMatches builds the matched-keywords report field: high matches, then
// med, then low, each tier already sorted internally, joined with a pipe.
// Tier boundaries are never interleaved. Empty when nothing matched.
func JoinMatches(high, med, low []string) string {
	all := make([]string, 0, len(high)+len(med)+len(low))
	all = append(all, high...)
	all = append(all, med...)
	all = append(all, low...)
	return strings.Join(all, "|")
}
