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

package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
	"github.com/google/go-github/v68/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Client implements the Provider interface for GitHub
type Client struct {
	*logrus.Logger
	client *github.Client  // GitHub API client
	ctx    context.Context // Request context
}

// Factory implements ProviderFactory for GitHub
type Factory struct{}

func init() {
	git.RegisterFactory("github", &Factory{})
}

// createGitHubClient creates a GitHub client with the specified token
func createGitHubClient(ctx context.Context, token, baseURL string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	// Set custom base URL if provided
	if baseURL != "" && baseURL != "https://api.github.com" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to set GitHub enterprise URL: %w", err)
		}
	}

	return client, nil
}

// CreateProvider creates a new GitHub provider
func (f *Factory) CreateProvider(logger *logrus.Logger, config *git.Config) (git.Provider, error) {
	ctx := context.Background()

	client, err := createGitHubClient(ctx, config.Token, config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &Client{
		Logger: logger,
		client: client,
		ctx:    ctx,
	}, nil
}

// CurrentUser returns the login of the authenticated user
func (c *Client) CurrentUser() (string, error) {
	user, _, err := c.client.Users.Get(c.ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// unsearchableUserMessage is the documented fragment GitHub returns when a
// user's privacy settings exclude them from search results
const unsearchableUserMessage = "cannot be searched"

// IsAuthorSearchable probes the search API with a minimal author-scoped
// query. GitHub rejects searches for some accounts (privacy settings, bot
// accounts) with a 422 whose message says the users cannot be searched; that
// rejection maps to (false, nil). Every other failure is wrapped into a
// *git.QueryabilityError so it cannot be mistaken for "not searchable".
func (c *Client) IsAuthorSearchable(username string) (bool, error) {
	query := fmt.Sprintf("type:pr author:%s", username)
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}

	c.Debugf("probing author searchability query=%q", query)

	_, _, err := c.client.Search.Issues(c.ctx, query, opts)
	if err == nil {
		return true, nil
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) &&
		errResp.Response != nil &&
		errResp.Response.StatusCode == http.StatusUnprocessableEntity &&
		containsUnsearchableMessage(errResp) {
		c.Debugf("author %q is not searchable: %v", username, err)
		return false, nil
	}

	return false, &git.QueryabilityError{Username: username, Err: err}
}

func containsUnsearchableMessage(errResp *github.ErrorResponse) bool {
	if strings.Contains(errResp.Message, unsearchableUserMessage) {
		return true
	}
	for _, e := range errResp.Errors {
		if strings.Contains(e.Message, unsearchableUserMessage) {
			return true
		}
	}
	return false
}

// SearchMergedPRs runs one page of an issue search restricted to pull
// requests and returns the references on that page
func (c *Client) SearchMergedPRs(query string, page, perPage int) ([]git.PullRequestRef, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{
			PerPage: perPage,
			Page:    page,
		},
	}

	c.Debugf("searching pull requests query=%q page=%d per_page=%d", query, page, perPage)

	result, _, err := c.client.Search.Issues(c.ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("pull request search failed: %w", err)
	}

	refs := make([]git.PullRequestRef, 0, len(result.Issues))
	for _, issue := range result.Issues {
		refs = append(refs, git.PullRequestRef{
			URL:    issue.GetPullRequestLinks().GetURL(),
			Author: issue.GetUser().GetLogin(),
		})
	}

	return refs, nil
}

// GetPullRequest fetches the full pull request record behind a reference URL
func (c *Client) GetPullRequest(refURL string) (*git.PullRequest, error) {
	owner, repo, number, err := parsePullURL(refURL)
	if err != nil {
		return nil, err
	}

	pr, _, err := c.client.PullRequests.Get(c.ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR %s/%s#%d: %w", owner, repo, number, err)
	}

	detail := &git.PullRequest{
		Owner:     owner,
		Repo:      repo,
		Number:    pr.GetNumber(),
		URL:       pr.GetURL(),
		CreatedAt: pr.GetCreatedAt().Time,
	}
	if pr.MergedAt != nil {
		merged := pr.MergedAt.Time
		detail.MergedAt = &merged
	}

	return detail, nil
}

// timelinePerPage is the page size for timeline listing
const timelinePerPage = 100

// ListTimeline returns the chronologically ordered event timeline of a pull
// request, paginating until a short or empty page
func (c *Client) ListTimeline(owner, repo string, number int) ([]git.TimelineEvent, error) {
	var allEvents []git.TimelineEvent

	opts := &github.ListOptions{PerPage: timelinePerPage, Page: 1}
	for {
		events, resp, err := c.client.Issues.ListIssueTimeline(c.ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list timeline for %s/%s#%d: %w", owner, repo, number, err)
		}

		for _, event := range events {
			allEvents = append(allEvents, git.TimelineEvent{
				Event:     event.GetEvent(),
				CreatedAt: event.GetCreatedAt().Time,
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allEvents, nil
}

// parsePullURL extracts owner, repo and number from a pull request API URL
// of the form https://api.github.com/repos/{owner}/{repo}/pulls/{number}
func parsePullURL(refURL string) (owner, repo string, number int, err error) {
	parsed, err := url.Parse(refURL)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid pull request URL %q: %w", refURL, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	// Enterprise URLs carry an /api/v3 prefix before /repos
	for len(segments) > 0 && segments[0] != "repos" {
		segments = segments[1:]
	}
	if len(segments) != 5 || segments[3] != "pulls" {
		return "", "", 0, fmt.Errorf("invalid pull request URL %q: expected .../repos/{owner}/{repo}/pulls/{number}", refURL)
	}

	number, err = strconv.Atoi(segments[4])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid pull request number in URL %q: %w", refURL, err)
	}

	return segments[1], segments[2], number, nil
}
