// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm converts raw title/abstract text into normalized word
// stems for keyword matching.
//
// The pipeline is: hyphen strip, tokenize, drop stop-words, lemmatize,
// Snowball-stem. Hyphens are removed before tokenization so a hyphenated
// term collapses into a single token ("SARS-CoV-2" becomes "SARSCoV2",
// not three tokens). Matching only works when both sides of a comparison
// go through the identical pipeline, so keyword loading reuses this
// package rather than normalizing on its own.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"
)

// Normalizer turns raw text into normalized stems. It wraps the English
// lemmatizer dictionary, which is expensive to load; construct one per
// process and pass it to everything that normalizes text.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// New loads the English lemmatizer dictionary and returns a ready
// Normalizer.
func New() (*Normalizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading lemmatizer dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lem}, nil
}

// Stems normalizes text into a flat sequence of stems. Order carries no
// meaning; callers aggregate into counts or sets.
func (n *Normalizer) Stems(text string) []string {
	text = strings.ReplaceAll(text, "-", "")

	var stems []string
	for _, tok := range tokenize(text) {
		low := strings.ToLower(tok)
		if isStopword(low) {
			continue
		}
		lemma := strings.ToLower(strings.TrimSpace(n.lemmatizer.Lemma(low)))
		if lemma == "" {
			continue
		}
		stems = append(stems, english.Stem(lemma, false))
	}
	return stems
}

// TokenCounts is a document's stem multiset: stem to occurrence count
// across its title and abstract.
type TokenCounts map[string]int

// Counts normalizes text and aggregates the stems into a count map.
func (n *Normalizer) Counts(text string) TokenCounts {
	counts := make(TokenCounts)
	for _, s := range n.Stems(text) {
		counts[s]++
	}
	return counts
}

// tokenize splits text on anything that is not a letter or digit, which
// both finds word boundaries and discards pure-punctuation tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
