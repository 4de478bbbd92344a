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
	"time"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
)

// readyForReviewEvent is the timeline event kind emitted when a draft pull
// request is marked ready for review
const readyForReviewEvent = "ready_for_review"

// ResolveReadyTime returns the instant a pull request became ready for
// review. Timelines are chronologically ordered, so when a PR was toggled
// back to draft and re-marked ready more than once, the first occurrence is
// authoritative. A PR that was never a draft has no such event and falls
// back to its creation instant.
func ResolveReadyTime(events []git.TimelineEvent, createdAt time.Time) time.Time {
	for _, event := range events {
		if event.Event == readyForReviewEvent {
			return event.CreatedAt
		}
	}
	return createdAt
}
