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
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
	"github.com/sirupsen/logrus"
)

// searchPageSize is the fixed page size for pull request searches
const searchPageSize = 100

// FindOptions bound a pull request search
type FindOptions struct {
	Org   string    // Organization to search (used when Repo is empty or bare)
	Repo  string    // Optional repository, bare name or owner/name form
	Users []string  // Author usernames; empty means no author filter
	Since time.Time // Merge date lower bound, inclusive
	Until time.Time // Optional merge date upper bound, inclusive; zero means open-ended
}

// Finder discovers merged pull requests through the platform's search API
type Finder struct {
	*logrus.Logger
	provider git.Provider
}

// NewFinder creates a new Finder backed by the given provider
func NewFinder(logger *logrus.Logger, provider git.Provider) *Finder {
	return &Finder{
		Logger:   logger,
		provider: provider,
	}
}

// Find returns references to all merged pull requests matching the options.
// When every requested author is searchable, the author filter is embedded
// in the remote query; when any is not, the author clause is omitted and the
// full result set is post-filtered by case-insensitive login match. Either
// way, every returned reference's author is a member of the requested set
// when the set is non-empty.
func (f *Finder) Find(opts FindOptions) ([]git.PullRequestRef, error) {
	allSearchable := true
	if len(opts.Users) > 0 {
		var err error
		allSearchable, err = f.allAuthorsSearchable(opts.Users)
		if err != nil {
			return nil, err
		}
	}

	query, err := buildQuery(opts, allSearchable)
	if err != nil {
		return nil, err
	}

	refs, err := f.fetchAllPages(query)
	if err != nil {
		return nil, err
	}

	if !allSearchable {
		f.Debugf("post-filtering %d results by author set %v", len(refs), opts.Users)
		refs = filterByAuthors(refs, opts.Users)
	}

	f.Infof("Found %d merged pull requests", len(refs))
	return refs, nil
}

// allAuthorsSearchable probes every username concurrently and gathers the
// results before proceeding. This is the pipeline's only point of
// concurrency; a probe failure from any username propagates.
func (f *Finder) allAuthorsSearchable(users []string) (bool, error) {
	searchable := make([]bool, len(users))
	errs := make([]error, len(users))

	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		go func(i int, user string) {
			defer wg.Done()
			searchable[i], errs[i] = f.provider.IsAuthorSearchable(user)
		}(i, user)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return false, fmt.Errorf("failed to check author %q: %w", users[i], err)
		}
	}

	for i, ok := range searchable {
		if !ok {
			f.Infof("Author %q is not searchable, falling back to post-filtering", users[i])
			return false, nil
		}
	}
	return true, nil
}

// fetchAllPages advances the page number until a page comes back empty or
// shorter than the page size
func (f *Finder) fetchAllPages(query string) ([]git.PullRequestRef, error) {
	var all []git.PullRequestRef

	for page := 1; ; page++ {
		refs, err := f.provider.SearchMergedPRs(query, page, searchPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, refs...)

		if len(refs) < searchPageSize {
			break
		}
	}

	return all, nil
}

// buildQuery assembles the search query from the options
func buildQuery(opts FindOptions, includeAuthors bool) (string, error) {
	parts := []string{"type:pr", "is:merged"}

	if opts.Until.IsZero() {
		parts = append(parts, fmt.Sprintf("merged:>=%s", opts.Since.Format("2006-01-02")))
	} else {
		parts = append(parts, fmt.Sprintf("merged:%s..%s",
			opts.Since.Format("2006-01-02"), opts.Until.Format("2006-01-02")))
	}

	if opts.Repo != "" {
		owner, name, err := git.SplitRepoArg(opts.Org, opts.Repo)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("repo:%s/%s", owner, name))
	} else {
		parts = append(parts, fmt.Sprintf("org:%s", opts.Org))
	}

	if includeAuthors && len(opts.Users) > 0 {
		clauses := make([]string, 0, len(opts.Users))
		for _, user := range opts.Users {
			clauses = append(clauses, fmt.Sprintf("author:%s", user))
		}
		if len(clauses) == 1 {
			parts = append(parts, clauses[0])
		} else {
			parts = append(parts, fmt.Sprintf("(%s)", strings.Join(clauses, " OR ")))
		}
	}

	return strings.Join(parts, " "), nil
}

// filterByAuthors keeps only references whose author matches the username
// set, case-insensitively
func filterByAuthors(refs []git.PullRequestRef, users []string) []git.PullRequestRef {
	filtered := make([]git.PullRequestRef, 0, len(refs))
	for _, ref := range refs {
		for _, user := range users {
			if strings.EqualFold(ref.Author, user) {
				filtered = append(filtered, ref)
				break
			}
		}
	}
	return filtered
}
