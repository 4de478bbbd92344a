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

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/config"
	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/export"
	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/period"
	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// StatsOption option for the pr-leadtime root command
type StatsOption struct {
	*logrus.Logger
	Config *config.Config

	// String field for CLI parsing (will be converted to Config)
	usersStr string
}

// NewStatsOption creates a new StatsOption instance
func NewStatsOption() *StatsOption {
	return &StatsOption{
		Logger: logrus.New(),
		Config: config.NewDefaultConfig(),
	}
}

// AddFlags add flags to options
func (s *StatsOption) AddFlags(flags *pflag.FlagSet) {
	// Platform and authentication configuration
	flags.StringVar(&s.Config.Platform, "platform", s.Config.Platform, "Git platform (github)")
	flags.StringVar(&s.Config.Token, "token", "", "Git platform API token (falls back to GITHUB_TOKEN)")
	flags.StringVar(&s.Config.BaseURL, "base-url", "", "API base URL (optional, defaults per platform)")

	// Search scope
	flags.StringVar(&s.Config.Org, "org", "", "Organization to search")
	flags.StringVar(&s.Config.Repo, "repo", "", "Repository to search (name or owner/name, optional)")
	flags.StringVar(&s.usersStr, "users", "", "Author usernames (comma-separated, defaults to the authenticated user)")
	flags.BoolVar(&s.Config.AllAuthors, "all-authors", false, "Include pull requests from all authors")

	// Date range
	flags.StringVar(&s.Config.Period, "period", s.Config.Period, `Relative period, e.g. "2d", "1w", "3mo", "1y"`)
	flags.StringVar(&s.Config.Since, "since", "", "Start date (YYYY-MM-DD), overrides --period")
	flags.StringVar(&s.Config.Until, "until", "", "End date (YYYY-MM-DD), inclusive")

	// Output configuration
	flags.StringVar(&s.Config.Output, "output-format", s.Config.Output, "Result format (text|json|csv)")
	flags.StringVar(&s.Config.OutputFile, "output-file", "", "Write the result to a file instead of stdout")

	// Debug and logging flags
	flags.BoolVar(&s.Config.Progress, "progress", false, "Log progress for each processed pull request")
	flags.BoolVar(&s.Config.Verbose, "verbose", false, "Enable verbose logging (debug level logs)")
}

// Run executes the stats pipeline
func (s *StatsOption) Run(cmd *cobra.Command, args []string) error {
	// Initialize and validate configuration
	if err := s.initialize(); err != nil {
		return err
	}

	since, until, err := s.resolveDateRange()
	if err != nil {
		return err
	}

	provider, err := git.CreateProvider(s.Logger, &git.Config{
		Platform: s.Config.Platform,
		Token:    s.Config.Token,
		BaseURL:  s.Config.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create platform provider: %w", err)
	}

	users, err := s.resolveUsers(provider)
	if err != nil {
		return err
	}

	s.Infof("Searching merged pull requests since %s", since.Format("2006-01-02"))

	finder := stats.NewFinder(s.Logger, provider)
	refs, err := finder.Find(stats.FindOptions{
		Org:   s.Config.Org,
		Repo:  s.Config.Repo,
		Users: users,
		Since: since,
		Until: until,
	})
	if err != nil {
		return fmt.Errorf("pull request search failed: %w", err)
	}

	aggregator := stats.NewAggregator(s.Logger, provider, s.Config.Progress)
	result, err := aggregator.Aggregate(refs)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	return s.writeResult(result)
}

// readAllFromViper reads all configuration values from viper.
// This includes environment variables with PR_LEADTIME prefix.
func (s *StatsOption) readAllFromViper() {
	if err := viper.Unmarshal(s.Config); err != nil {
		// Log warning but continue - this shouldn't prevent the application from running
		s.Warnf("Failed to unmarshal config from viper: %v", err)
	}

	// Clean up string values by trimming whitespace and newlines
	s.Config.Platform = strings.TrimSpace(s.Config.Platform)
	s.Config.Token = strings.TrimSpace(s.Config.Token)
	s.Config.BaseURL = strings.TrimSpace(s.Config.BaseURL)
	s.Config.Org = strings.TrimSpace(s.Config.Org)
	s.Config.Repo = strings.TrimSpace(s.Config.Repo)
	s.Config.Period = strings.TrimSpace(s.Config.Period)
	s.Config.Since = strings.TrimSpace(s.Config.Since)
	s.Config.Until = strings.TrimSpace(s.Config.Until)
	s.Config.Output = strings.TrimSpace(s.Config.Output)
	s.Config.OutputFile = strings.TrimSpace(s.Config.OutputFile)

	if s.usersStr == "" {
		s.usersStr = strings.TrimSpace(viper.GetString("users"))
	}
}

// parseStringFields converts string CLI fields to proper types in config
func (s *StatsOption) parseStringFields() {
	if s.usersStr != "" {
		users := strings.Split(s.usersStr, ",")
		parsed := make([]string, 0, len(users))
		for _, user := range users {
			if user = strings.TrimSpace(user); user != "" {
				parsed = append(parsed, user)
			}
		}
		s.Config.Users = parsed
	}
}

// initialize initializes and validates the StatsOption configuration
func (s *StatsOption) initialize() error {
	// Read all values from viper (which includes environment variables)
	s.readAllFromViper()

	// Parse string fields into config
	s.parseStringFields()

	// An explicit --token wins; the conventional environment variable is the fallback
	if s.Config.Token == "" {
		s.Config.Token = strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	}

	// Set log level based on verbose flag
	if s.Config.Verbose {
		s.SetLevel(logrus.DebugLevel)
		s.Debug("Verbose logging enabled")
	} else {
		s.SetLevel(logrus.InfoLevel)
	}

	// Validate configuration
	if err := s.Config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if s.Config.Verbose {
		s.Debugf("Resolved config: %s", s.Config.DebugString())
	}

	return nil
}

// resolveDateRange resolves the since/until instants from the configuration.
// An explicit since date takes precedence over the relative period.
func (s *StatsOption) resolveDateRange() (since, until time.Time, err error) {
	if s.Config.Since != "" {
		since, err = period.ParseDate(s.Config.Since)
	} else {
		since, err = period.Parse(s.Config.Period)
	}
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if s.Config.Until != "" {
		until, err = period.ParseDate(s.Config.Until)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return since, until, nil
}

// resolveUsers resolves the effective author set. An empty --users defaults
// to the authenticated user unless --all-authors disables author filtering.
func (s *StatsOption) resolveUsers(provider git.Provider) ([]string, error) {
	if s.Config.AllAuthors {
		return nil, nil
	}
	if len(s.Config.Users) > 0 {
		return s.Config.Users, nil
	}

	login, err := provider.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authenticated user: %w", err)
	}
	s.Infof("No users given, defaulting to authenticated user %q", login)
	return []string{login}, nil
}

// writeResult renders the result to stdout or the configured output file
func (s *StatsOption) writeResult(result *stats.Result) error {
	var out io.Writer = os.Stdout
	if s.Config.OutputFile != "" {
		file, err := os.Create(s.Config.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	return export.Write(out, s.Config.Output, result)
}
