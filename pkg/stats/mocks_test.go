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

package stats

import (
	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
)

// MockProvider is a mock implementation of git.Provider for testing
type MockProvider struct {
	CurrentUserFunc        func() (string, error)
	IsAuthorSearchableFunc func(username string) (bool, error)
	SearchMergedPRsFunc    func(query string, page, perPage int) ([]git.PullRequestRef, error)
	GetPullRequestFunc     func(url string) (*git.PullRequest, error)
	ListTimelineFunc       func(owner, repo string, number int) ([]git.TimelineEvent, error)

	// Recorded calls for assertions
	SearchQueries []string
	SearchPages   []int
}

// CurrentUser mocks the CurrentUser method
func (m *MockProvider) CurrentUser() (string, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc()
	}
	return "test-user", nil
}

// IsAuthorSearchable mocks the IsAuthorSearchable method
func (m *MockProvider) IsAuthorSearchable(username string) (bool, error) {
	if m.IsAuthorSearchableFunc != nil {
		return m.IsAuthorSearchableFunc(username)
	}
	return true, nil
}

// SearchMergedPRs mocks the SearchMergedPRs method
func (m *MockProvider) SearchMergedPRs(query string, page, perPage int) ([]git.PullRequestRef, error) {
	m.SearchQueries = append(m.SearchQueries, query)
	m.SearchPages = append(m.SearchPages, page)
	if m.SearchMergedPRsFunc != nil {
		return m.SearchMergedPRsFunc(query, page, perPage)
	}
	return nil, nil
}

// GetPullRequest mocks the GetPullRequest method
func (m *MockProvider) GetPullRequest(url string) (*git.PullRequest, error) {
	if m.GetPullRequestFunc != nil {
		return m.GetPullRequestFunc(url)
	}
	return nil, nil
}

// ListTimeline mocks the ListTimeline method
func (m *MockProvider) ListTimeline(owner, repo string, number int) ([]git.TimelineEvent, error) {
	if m.ListTimelineFunc != nil {
		return m.ListTimelineFunc(owner, repo, number)
	}
	return nil, nil
}
