// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset downloads the preprint collection JSON and reads the
// on-disk cache of it.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/preprint-triage/pkg/types"
)

// Fetch performs the one-shot dataset download. A non-200 response or a
// body that is not valid JSON is an error; there are no retries. The raw
// body is returned untouched so the cache file holds exactly what the
// server sent.
func Fetch(ctx context.Context, client *http.Client, cfg types.FetchConfig) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset fetch returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading dataset body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("dataset response is not valid JSON")
	}
	return body, nil
}

// Download fetches the dataset and writes it to the cache file, creating
// the parent directory if needed. Nothing is written on a failed fetch.
func Download(ctx context.Context, client *http.Client, cfg types.FetchConfig) error {
	body, err := Fetch(ctx, client, cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(cfg.DataFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.DataFile, body, 0o644); err != nil {
		return fmt.Errorf("writing dataset cache: %w", err)
	}
	return nil
}

// Load reads and decodes the cached dataset file.
func Load(path string) (*types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset JSON: %w", err)
	}
	return &ds, nil
}
