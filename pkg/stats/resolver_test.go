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
	"testing"
	"time"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
	"github.com/stretchr/testify/assert"
)

func TestResolveReadyTime(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	firstReady := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	secondReady := time.Date(2025, 3, 4, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		events   []git.TimelineEvent
		expected time.Time
	}{
		{
			name:     "no events falls back to creation instant",
			events:   nil,
			expected: createdAt,
		},
		{
			name: "no ready event falls back to creation instant",
			events: []git.TimelineEvent{
				{Event: "labeled", CreatedAt: createdAt.Add(time.Hour)},
				{Event: "review_requested", CreatedAt: createdAt.Add(2 * time.Hour)},
			},
			expected: createdAt,
		},
		{
			name: "single ready event returns its timestamp",
			events: []git.TimelineEvent{
				{Event: "labeled", CreatedAt: createdAt.Add(time.Hour)},
				{Event: "ready_for_review", CreatedAt: firstReady},
			},
			expected: firstReady,
		},
		{
			name: "draft toggled twice returns the first ready timestamp",
			events: []git.TimelineEvent{
				{Event: "ready_for_review", CreatedAt: firstReady},
				{Event: "convert_to_draft", CreatedAt: firstReady.Add(time.Hour)},
				{Event: "ready_for_review", CreatedAt: secondReady},
			},
			expected: firstReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveReadyTime(tt.events, createdAt)
			assert.Equal(t, tt.expected, got)
		})
	}
}
