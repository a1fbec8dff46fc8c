// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// OutputRow is one line of the triage report: the document fields plus the
// derived score, matched keywords, and author strings. Rows are emitted in
// dataset order.
type OutputRow struct {
	DOI         string
	AuthorShort string
	Title       string
	Abstract    string
	Authors     string
	Date        string
	Site        string
	Link        string
	Score       float64
	Matches     string
}

// Record returns the row in report column order.
func (r OutputRow) Record() []string {
	return []string{
		r.DOI,
		r.AuthorShort,
		r.Title,
		r.Abstract,
		r.Authors,
		r.Date,
		r.Site,
		r.Link,
		FormatScore(r.Score),
		r.Matches,
	}
}

// FormatScore renders a score without a trailing ".0" on whole values, so
// integer weight configurations produce integer-looking report cells.
func FormatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
