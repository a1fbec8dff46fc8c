// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords loads the tier keyword files into normalized stem sets.
//
// A keyword file holds one phrase per line. Lines are trimmed, embedded
// hyphens removed to mirror document normalization, and duplicates
// collapsed; the surviving phrases are then joined into one blob and run
// through the shared normalizer. A multi-word phrase therefore degenerates
// into its individual word stems: matching is per stem, not per phrase.
// The report format depends on that granularity, so it stays as is.
package keywords

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/preprint-triage/internal/textnorm"
	"github.com/pdiddy/preprint-triage/pkg/types"
)

// Set is a membership set of normalized keyword stems. Multiplicity in the
// source file carries no meaning.
type Set map[string]struct{}

// Contains reports whether stem is in the set.
func (s Set) Contains(stem string) bool {
	_, ok := s[stem]
	return ok
}

// Load reads one keyword file and returns its stem set.
func Load(path string, norm *textnorm.Normalizer) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword file: %w", err)
	}

	phrases := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "-", ""))
		if line == "" {
			continue
		}
		phrases[line] = struct{}{}
	}

	// Sorted join so identical file content always produces the set from
	// the same blob, independent of map iteration order.
	unique := make([]string, 0, len(phrases))
	for p := range phrases {
		unique = append(unique, p)
	}
	sort.Strings(unique)

	set := make(Set)
	for _, stem := range norm.Stems(strings.Join(unique, " ")) {
		set[stem] = struct{}{}
	}
	return set, nil
}

// TierSets groups the three priority tiers. The tiers are independent; a
// stem may legally appear in more than one.
type TierSets struct {
	High Set
	Med  Set
	Low  Set
}

// LoadTiers loads all three tier files. Any unreadable file fails the
// whole load; no partial tier set is returned.
func LoadTiers(files types.KeywordFiles, norm *textnorm.Normalizer) (TierSets, error) {
	high, err := Load(files.High, norm)
	if err != nil {
		return TierSets{}, fmt.Errorf("high tier: %w", err)
	}
	med, err := Load(files.Med, norm)
	if err != nil {
		return TierSets{}, fmt.Errorf("med tier: %w", err)
	}
	low, err := Load(files.Low, norm)
	if err != nil {
		return TierSets{}, fmt.Errorf("low tier: %w", err)
	}
	return TierSets{High: high, Med: med, Low: low}, nil
}
