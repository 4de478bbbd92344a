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

// Package stats implements the pull request discovery and duration
// aggregation pipeline: finding merged pull requests, resolving when each
// became ready for review, and averaging the ready-to-merge durations.
package stats

import "time"

// DurationRecord is the computed result for a single merged pull request.
// DurationHours retains full floating point precision; rounding to two
// decimals happens only at presentation time. The value may be negative when
// the merge instant precedes the resolved ready instant; it is passed
// through unmodified.
type DurationRecord struct {
	URL           string    // API URL of the pull request
	ReadyAt       time.Time // Instant the PR became ready for review
	MergedAt      time.Time // Merge instant
	DurationHours float64   // MergedAt minus ReadyAt, in hours
}

// Result accumulates the duration records of one aggregation run
type Result struct {
	TotalDurationHours float64          // Sum of all record durations
	Count              int              // Number of merged, successfully resolved PRs
	Records            []DurationRecord // One record per counted PR
}

// AverageHours returns the average duration and whether it is defined.
// With a zero count there is no average; callers must not divide.
func (r *Result) AverageHours() (float64, bool) {
	if r.Count == 0 {
		return 0, false
	}
	return r.TotalDurationHours / float64(r.Count), true
}
