// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/preprint-triage/pkg/types"
)

// setConfigDefaults registers every config key so a run works out of the
// box; the config file and PREPRINT_TRIAGE_* env vars override.
func setConfigDefaults() {
	viper.SetDefault("data.download_path", "data")
	viper.SetDefault("data.data_file", "preprints.json")
	viper.SetDefault("data.output_file", "triage_results.csv")
	viper.SetDefault("data.summary_file", "triage_summary.yaml")
	viper.SetDefault("data.source_url", "https://connect.biorxiv.org/relate/collection_json.php?grp=181")

	viper.SetDefault("http.timeout", 60*time.Second)
	viper.SetDefault("http.user_agent", "preprint-triage/0.1")

	viper.SetDefault("keywords.high_file", filepath.Join("config", "keywords_high.txt"))
	viper.SetDefault("keywords.med_file", filepath.Join("config", "keywords_med.txt"))
	viper.SetDefault("keywords.low_file", filepath.Join("config", "keywords_low.txt"))

	viper.SetDefault("score.high_bounty", 10.0)
	viper.SetDefault("score.med_bounty", 3.0)
	viper.SetDefault("score.low_bounty", 1.0)
	viper.SetDefault("score.site_bounty", 10.0)
	viper.SetDefault("score.bounty_site", "biorxiv")
}

// loadConfig assembles the run configuration from viper. Data files live
// under the download path.
func loadConfig() types.TriageConfig {
	downloadPath := viper.GetString("data.download_path")

	return types.TriageConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.user_agent"),
			},
			SourceURL: viper.GetString("data.source_url"),
			DataFile:  filepath.Join(downloadPath, viper.GetString("data.data_file")),
		},
		Keywords: types.KeywordFiles{
			High: viper.GetString("keywords.high_file"),
			Med:  viper.GetString("keywords.med_file"),
			Low:  viper.GetString("keywords.low_file"),
		},
		Score: types.ScoreConfig{
			HighBounty: viper.GetFloat64("score.high_bounty"),
			MedBounty:  viper.GetFloat64("score.med_bounty"),
			LowBounty:  viper.GetFloat64("score.low_bounty"),
			SiteBounty: viper.GetFloat64("score.site_bounty"),
			BountySite: viper.GetString("score.bounty_site"),
		},
		OutputFile:  filepath.Join(downloadPath, viper.GetString("data.output_file")),
		SummaryFile: filepath.Join(downloadPath, viper.GetString("data.summary_file")),
	}
}
