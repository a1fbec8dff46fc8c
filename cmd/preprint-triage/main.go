// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the preprint-triage CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the preprint-triage CLI.
var rootCmd = &cobra.Command{
	Use:   "preprint-triage",
	Short: "Score preprints against curated keyword tiers",
	Long: `preprint-triage scores newly published preprints from the BioRxiv/MedRxiv
COVID-19 collection against three curated keyword tiers and writes a CSV
report of candidates worth manual curation.

The triage subcommand runs the full pipeline over the cached dataset;
fetch downloads a fresh copy of the collection JSON.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./preprint-triage.yaml or ~/.config/preprint-triage/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("preprint-triage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "preprint-triage"))
		}
	}

	viper.SetEnvPrefix("PREPRINT_TRIAGE")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
