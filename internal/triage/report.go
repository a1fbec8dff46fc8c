// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package triage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/preprint-triage/pkg/types"
)

// reportHeader is the fixed column set of the triage CSV. Curation tooling
// downstream keys on these names; do not reorder.
var reportHeader = []string{
	"DOI",
	"AUTHOR_SHORT",
	"TITLE",
	"ABSTRACT",
	"AUTHORS",
	"DATE",
	"SOURCE",
	"LINK",
	"DOC_SCORE",
	"MATCHING_KEYWORDS",
}

// WriteCSV writes the report: the header row, then one row per document in
// input order. The parent directory is created if needed.
func WriteCSV(path string, rows []types.OutputRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			f.Close()
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing report: %w", err)
	}
	return f.Close()
}
