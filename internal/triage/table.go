// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package triage

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/preprint-triage/pkg/types"
)

// FormatTop writes the n highest-scoring rows as a human-readable table, a
// quick look at what a run surfaced. Ties keep input order. The report CSV
// is the data contract; this is console output only.
func FormatTop(rows []types.OutputRow, n int, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No documents triaged.")
		return
	}

	top := make([]types.OutputRow, len(rows))
	copy(top, rows)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})
	if n > 0 && len(top) > n {
		top = top[:n]
	}

	fmt.Fprintf(w, "%-5s  %-7s  %-60s  %-22s  %s\n",
		"Rank", "Score", "Title", "Author", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 105))

	for i, row := range top {
		title := row.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-5d  %-7s  %-60s  %-22s  %s\n",
			i+1, types.FormatScore(row.Score), title, truncate(row.AuthorShort, 22), row.Site)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
