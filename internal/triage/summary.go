// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package triage

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Summary is the on-disk record of one triage run, written beside the CSV
// so a curator can see what a report was produced from without opening it.
type Summary struct {
	Generated time.Time `yaml:"generated"`

	// DataFile is the cached dataset the run read.
	DataFile string `yaml:"data_file"`

	// Documents counts the records in the dataset, Rows the report lines
	// written, and Skipped the zero-author records excluded.
	Documents int `yaml:"documents"`
	Rows      int `yaml:"rows"`
	Skipped   int `yaml:"skipped"`

	// TopScore and TopDOI identify the highest-scoring document; ties
	// keep the earlier record.
	TopScore float64 `yaml:"top_score"`
	TopDOI   string  `yaml:"top_doi,omitempty"`
}

// BuildSummary assembles the run summary from a completed result.
func BuildSummary(dataFile string, res Result) Summary {
	s := Summary{
		Generated: time.Now().UTC(),
		DataFile:  dataFile,
		Documents: len(res.Rows) + res.Skipped,
		Rows:      len(res.Rows),
		Skipped:   res.Skipped,
	}
	for _, row := range res.Rows {
		if row.Score > s.TopScore || s.TopDOI == "" {
			s.TopScore = row.Score
			s.TopDOI = row.DOI
		}
	}
	return s
}

// WriteSummary saves the summary as YAML.
func WriteSummary(path string, s Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
