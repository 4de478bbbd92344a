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

package git

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// PullRequestRef identifies a candidate pull request returned by search.
// It carries just enough to fetch the full record later.
type PullRequestRef struct {
	URL    string // API URL for the pull request detail fetch
	Author string // Author login as reported by search
}

// PullRequest is the full pull request record fetched on demand per reference
type PullRequest struct {
	Owner     string     // Repository owner login
	Repo      string     // Repository name
	Number    int        // Pull request number
	URL       string     // API URL of the pull request
	CreatedAt time.Time  // Creation instant
	MergedAt  *time.Time // Merge instant; nil means not merged
}

// Merged reports whether the pull request has been merged
func (p *PullRequest) Merged() bool {
	return p != nil && p.MergedAt != nil
}

// TimelineEvent is a single entry of a pull request's event timeline
type TimelineEvent struct {
	Event     string    // Event kind, e.g. "ready_for_review"
	CreatedAt time.Time // Event instant
}

// QueryabilityError wraps a failure of the author queryability probe that is
// not the documented "user cannot be searched" rejection. The original cause
// rides along; it is never silently treated as "not queryable".
type QueryabilityError struct {
	Username string
	Err      error
}

func (e *QueryabilityError) Error() string {
	return fmt.Sprintf("queryability check failed for %q: %v", e.Username, e.Err)
}

func (e *QueryabilityError) Unwrap() error {
	return e.Err
}

// Provider defines the interface that all git platform clients must implement
type Provider interface {
	// CurrentUser returns the login of the authenticated user
	CurrentUser() (string, error)

	// IsAuthorSearchable reports whether the platform's search API accepts
	// an author filter for the given username. It returns (false, nil) only
	// for the platform's documented "user cannot be searched" rejection;
	// any other failure returns a *QueryabilityError.
	IsAuthorSearchable(username string) (bool, error)

	// SearchMergedPRs runs one page of a pull request search and returns
	// the references on that page
	SearchMergedPRs(query string, page, perPage int) ([]PullRequestRef, error)

	// GetPullRequest fetches the full pull request record behind a
	// reference URL
	GetPullRequest(url string) (*PullRequest, error)

	// ListTimeline returns the chronologically ordered event timeline of a
	// pull request
	ListTimeline(owner, repo string, number int) ([]TimelineEvent, error)
}

// Config holds the configuration for creating a platform provider
type Config struct {
	Platform string // Platform name, e.g. "github"
	Token    string // API token
	BaseURL  string // API base URL (empty means the platform default)
}

// ProviderFactory defines the interface for creating platform-specific providers
type ProviderFactory interface {
	// CreateProvider creates a new provider for the specified platform
	CreateProvider(logger *logrus.Logger, config *Config) (Provider, error)
}
