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

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
	"github.com/sirupsen/logrus"
)

// Aggregator computes ready-to-merge durations for found pull requests
type Aggregator struct {
	*logrus.Logger
	provider git.Provider
	progress bool // Emit one info line per processed pull request
}

// NewAggregator creates a new Aggregator backed by the given provider
func NewAggregator(logger *logrus.Logger, provider git.Provider, progress bool) *Aggregator {
	return &Aggregator{
		Logger:   logger,
		provider: provider,
		progress: progress,
	}
}

// Aggregate fetches the full record for each reference strictly in order,
// skips unmerged items without affecting the count, and accumulates signed
// ready-to-merge durations in hours. A fetch failure for any single item
// aborts the whole run; whatever was accumulated is discarded.
func (a *Aggregator) Aggregate(refs []git.PullRequestRef) (*Result, error) {
	result := &Result{}

	for i, ref := range refs {
		detail, err := a.provider.GetPullRequest(ref.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pull request %s: %w", ref.URL, err)
		}

		if !detail.Merged() {
			a.Debugf("skipping unmerged pull request %s", ref.URL)
			continue
		}

		events, err := a.provider.ListTimeline(detail.Owner, detail.Repo, detail.Number)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch timeline for %s: %w", ref.URL, err)
		}

		readyAt := ResolveReadyTime(events, detail.CreatedAt)
		mergedAt := *detail.MergedAt
		duration := mergedAt.Sub(readyAt).Hours()

		result.Records = append(result.Records, DurationRecord{
			URL:           ref.URL,
			ReadyAt:       readyAt,
			MergedAt:      mergedAt,
			DurationHours: duration,
		})
		result.TotalDurationHours += duration
		result.Count++

		if a.progress {
			a.Infof("[%d/%d] %s: %.2f hours", i+1, len(refs), ref.URL, duration)
		}
	}

	return result, nil
}
