package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/preprint-triage/internal/dataset"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the preprint collection JSON",
	Long: `Fetch performs a single GET against the collection endpoint and caches
the raw JSON for later triage runs. Any non-success response aborts; there
are no retries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		client := &http.Client{Timeout: cfg.Fetch.Timeout}
		if err := dataset.Download(cmd.Context(), client, cfg.Fetch); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Downloaded dataset to %s\n", cfg.Fetch.DataFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
