/*
Copyright 2025 The AlaudaDevops Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd provides command line interface for the pr-leadtime application
package cmd

import (
	"os"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/internal/version"
	"github.com/spf13/cobra"

	// Import platform implementations to register them
	_ "github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/platforms/github"
)

// statsOption is the global instance of StatsOption
var statsOption *StatsOption

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pr-leadtime",
	Short: "Average ready-to-merge time for GitHub Pull Requests",
	Long: `pr-leadtime searches an organization or repository for merged pull
requests and reports the average time each spent between "ready for review"
and "merged".

A pull request that started as a draft is counted from the moment it was
marked ready for review; one that never was a draft is counted from its
creation.

Example usage:
  # Average over your own PRs merged in the last week
  pr-leadtime --org my-org --token $TOKEN

  # Specific users and an explicit date range
  pr-leadtime --org my-org --users alice,bob --since 2025-01-01 --until 2025-02-01 --token $TOKEN

  # Single repository, JSON export
  pr-leadtime --org my-org --repo my-repo --output-format json --output-file result.json --token $TOKEN

  # Everyone in the organization over the last month
  pr-leadtime --org my-org --all-authors --period 1mo --token $TOKEN`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Handle --version flag
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			versionInfo := version.Get()

			if outputFormat == "json" {
				return printVersionJSON(versionInfo)
			}
			return printVersionText(versionInfo)
		}
		return statsOption.Run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
