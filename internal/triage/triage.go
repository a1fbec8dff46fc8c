// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package triage runs the scoring pipeline over a dataset and writes the
// report files.
package triage

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/preprint-triage/internal/authors"
	"github.com/pdiddy/preprint-triage/internal/keywords"
	"github.com/pdiddy/preprint-triage/internal/score"
	"github.com/pdiddy/preprint-triage/internal/textnorm"
	"github.com/pdiddy/preprint-triage/pkg/types"
)

// Runner holds the loaded services and configuration for one triage pass.
// The keyword sets are loaded once and shared across all documents.
type Runner struct {
	Norm  *textnorm.Normalizer
	Tiers keywords.TierSets
	Score types.ScoreConfig

	// Progress receives the run banner and per-document score lines.
	// These are observability output, not part of the report; nil
	// silences them.
	Progress io.Writer
}

// Result is the outcome of one pass over a dataset.
type Result struct {
	Rows    []types.OutputRow
	Skipped int
}

// Run processes every document in dataset order and returns one output
// row per document that has authors. Documents with no authors are a
// defined skip, not an error. Row order matches input order.
func (r *Runner) Run(ds *types.Dataset) Result {
	w := r.Progress
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, "Triaging: %d preprint articles from BioRxiv and MedRxiv\n", len(ds.Rels))

	var res Result
	for _, doc := range ds.Rels {
		if doc.NumAuthors == 0 {
			res.Skipped++
			continue
		}
		row := r.processOne(doc)
		fmt.Fprintf(w, "Document Score: %s\n", types.FormatScore(row.Score))
		res.Rows = append(res.Rows, row)
	}
	return res
}

// processOne builds the output row for a single document. The token
// multiset is built once and shared by all three tier scorings.
func (r *Runner) processOne(doc types.Document) types.OutputRow {
	counts := r.Norm.Counts(doc.Title + " " + doc.Abstract)

	highMatches, high := score.Match(r.Tiers.High, counts)
	medMatches, med := score.Match(r.Tiers.Med, counts)
	lowMatches, low := score.Match(r.Tiers.Low, counts)

	cleaned := authors.CleanAll(doc.Authors)

	return types.OutputRow{
		DOI:         doc.DOI,
		AuthorShort: authors.ShortCitation(cleaned, doc.Date),
		Title:       doc.Title,
		Abstract:    doc.Abstract,
		Authors:     strings.Join(cleaned, "|"),
		Date:        doc.Date,
		Site:        doc.Site,
		Link:        doc.Link,
		Score:       score.Combine(r.Score, high, med, low, doc.Site),
		Matches:     score.JoinMatches(highMatches, medMatches, lowMatches),
	}
}
