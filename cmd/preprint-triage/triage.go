// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/preprint-triage/internal/dataset"
	"github.com/pdiddy/preprint-triage/internal/keywords"
	"github.com/pdiddy/preprint-triage/internal/textnorm"
	"github.com/pdiddy/preprint-triage/internal/triage"
)

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Score the cached dataset and write the CSV report",
	Long: `Triage loads the three keyword tier files, normalizes every document's
title and abstract, scores each document against the tiers, and writes one
CSV row per document with authors. With --download the dataset is fetched
fresh before processing; otherwise the previously cached file is used.`,
	RunE: runTriage,
}

func init() {
	triageCmd.Flags().BoolP("download", "d", false, "download the dataset JSON before processing")
	triageCmd.Flags().Int("top", 0, "print the N highest-scoring documents after the run")

	rootCmd.AddCommand(triageCmd)
}

func runTriage(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	download, _ := cmd.Flags().GetBool("download")
	if download {
		client := &http.Client{Timeout: cfg.Fetch.Timeout}
		if err := dataset.Download(cmd.Context(), client, cfg.Fetch); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Downloaded dataset to %s\n", cfg.Fetch.DataFile)
	}

	ds, err := dataset.Load(cfg.Fetch.DataFile)
	if err != nil {
		return err
	}

	norm, err := textnorm.New()
	if err != nil {
		return err
	}
	tiers, err := keywords.LoadTiers(cfg.Keywords, norm)
	if err != nil {
		return err
	}

	runner := &triage.Runner{
		Norm:     norm,
		Tiers:    tiers,
		Score:    cfg.Score,
		Progress: os.Stdout,
	}
	res := runner.Run(ds)

	if err := triage.WriteCSV(cfg.OutputFile, res.Rows); err != nil {
		return err
	}
	if err := triage.WriteSummary(cfg.SummaryFile, triage.BuildSummary(cfg.Fetch.DataFile, res)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d rows to %s (%d skipped)\n", len(res.Rows), cfg.OutputFile, res.Skipped)

	if top, _ := cmd.Flags().GetInt("top"); top > 0 {
		triage.FormatTop(res.Rows, top, os.Stdout)
	}
	return nil
}
