package types

import "time"

// HTTPConfig holds the HTTP settings for the one-time dataset fetch.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the fetch
	// (e.g. "preprint-triage/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for downloading and caching the source dataset.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SourceURL is the collection endpoint returning the preprint JSON.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// DataFile is the path of the cached dataset JSON.
	DataFile string `json:"data_file" yaml:"data_file"`
}

// KeywordFiles points at the three tier keyword files, one phrase per line.
type KeywordFiles struct {
	High string `json:"high_file" yaml:"high_file"`
	Med  string `json:"med_file" yaml:"med_file"`
	Low  string `json:"low_file" yaml:"low_file"`
}

// ScoreConfig holds the externally configured scoring weights. None of the
// scoring code hardcodes these.
type ScoreConfig struct {
	// HighBounty, MedBounty, and LowBounty multiply the per-tier match
	// counts.
	HighBounty float64 `json:"high_bounty" yaml:"high_bounty"`
	MedBounty  float64 `json:"med_bounty" yaml:"med_bounty"`
	LowBounty  float64 `json:"low_bounty" yaml:"low_bounty"`

	// SiteBounty is a flat bonus added once when a document's source site
	// equals BountySite, compared case-insensitively.
	SiteBounty float64 `json:"site_bounty" yaml:"site_bounty"`

	// BountySite is the distinguished source name (e.g. "biorxiv").
	BountySite string `json:"bounty_site" yaml:"bounty_site"`
}

// TriageConfig groups all settings for one triage run.
type TriageConfig struct {
	Fetch    FetchConfig  `json:"fetch" yaml:"fetch"`
	Keywords KeywordFiles `json:"keywords" yaml:"keywords"`
	Score    ScoreConfig  `json:"score" yaml:"score"`

	// OutputFile is the path of the CSV report.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// SummaryFile is the path of the YAML run summary written beside the
	// report.
	SummaryFile string `json:"summary_file" yaml:"summary_file"`
}
