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
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/git"
	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/period"
)

func TestParseStringFields(t *testing.T) {
	tests := []struct {
		name     string
		usersStr string
		want     []string
	}{
		{
			name:     "single user",
			usersStr: "alice",
			want:     []string{"alice"},
		},
		{
			name:     "multiple users",
			usersStr: "alice,bob,carol",
			want:     []string{"alice", "bob", "carol"},
		},
		{
			name:     "whitespace around names is trimmed",
			usersStr: " alice , bob ",
			want:     []string{"alice", "bob"},
		},
		{
			name:     "empty entries are dropped",
			usersStr: "alice,,bob,",
			want:     []string{"alice", "bob"},
		},
		{
			name:     "empty string leaves users unset",
			usersStr: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option := NewStatsOption()
			option.usersStr = tt.usersStr

			option.parseStringFields()

			if !reflect.DeepEqual(option.Config.Users, tt.want) {
				t.Errorf("parseStringFields() users = %v, want %v", option.Config.Users, tt.want)
			}
		})
	}
}

func TestResolveDateRange(t *testing.T) {
	t.Run("since date overrides period", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.Period = "1w"
		option.Config.Since = "2025-01-15"

		since, until, err := option.resolveDateRange()
		if err != nil {
			t.Fatalf("resolveDateRange() unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !since.Equal(want) {
			t.Errorf("resolveDateRange() since = %v, want %v", since, want)
		}
		if !until.IsZero() {
			t.Errorf("resolveDateRange() until = %v, want zero", until)
		}
	})

	t.Run("period resolves to an instant before now", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.Period = "2d"

		since, _, err := option.resolveDateRange()
		if err != nil {
			t.Fatalf("resolveDateRange() unexpected error: %v", err)
		}
		if !since.Before(time.Now()) {
			t.Error("resolveDateRange() since is not before now")
		}
	})

	t.Run("until date is parsed when given", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.Since = "2025-01-01"
		option.Config.Until = "2025-02-01"

		_, until, err := option.resolveDateRange()
		if err != nil {
			t.Fatalf("resolveDateRange() unexpected error: %v", err)
		}
		want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		if !until.Equal(want) {
			t.Errorf("resolveDateRange() until = %v, want %v", until, want)
		}
	})

	t.Run("invalid period fails", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.Period = "two-weeks"

		_, _, err := option.resolveDateRange()
		if !errors.Is(err, period.ErrInvalidPeriodFormat) {
			t.Errorf("resolveDateRange() error = %v, want ErrInvalidPeriodFormat", err)
		}
	})

	t.Run("invalid until date fails", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.Since = "2025-01-01"
		option.Config.Until = "not-a-date"

		_, _, err := option.resolveDateRange()
		if !errors.Is(err, period.ErrInvalidDateFormat) {
			t.Errorf("resolveDateRange() error = %v, want ErrInvalidDateFormat", err)
		}
	})
}

// fakeProvider implements git.Provider for option tests
type fakeProvider struct {
	login    string
	loginErr error
}

func (f *fakeProvider) CurrentUser() (string, error) { return f.login, f.loginErr }
func (f *fakeProvider) IsAuthorSearchable(string) (bool, error) {
	return true, nil
}
func (f *fakeProvider) SearchMergedPRs(string, int, int) ([]git.PullRequestRef, error) {
	return nil, nil
}
func (f *fakeProvider) GetPullRequest(string) (*git.PullRequest, error) {
	return nil, nil
}
func (f *fakeProvider) ListTimeline(string, string, int) ([]git.TimelineEvent, error) {
	return nil, nil
}

func TestResolveUsers(t *testing.T) {
	t.Run("explicit users are passed through", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.Users = []string{"alice", "bob"}

		users, err := option.resolveUsers(&fakeProvider{login: "me"})
		if err != nil {
			t.Fatalf("resolveUsers() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(users, []string{"alice", "bob"}) {
			t.Errorf("resolveUsers() = %v, want explicit users", users)
		}
	})

	t.Run("empty users default to the authenticated user", func(t *testing.T) {
		option := NewStatsOption()

		users, err := option.resolveUsers(&fakeProvider{login: "me"})
		if err != nil {
			t.Fatalf("resolveUsers() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(users, []string{"me"}) {
			t.Errorf("resolveUsers() = %v, want [me]", users)
		}
	})

	t.Run("all-authors disables author filtering", func(t *testing.T) {
		option := NewStatsOption()
		option.Config.AllAuthors = true

		users, err := option.resolveUsers(&fakeProvider{login: "me"})
		if err != nil {
			t.Fatalf("resolveUsers() unexpected error: %v", err)
		}
		if users != nil {
			t.Errorf("resolveUsers() = %v, want nil", users)
		}
	})

	t.Run("authenticated user lookup failure propagates", func(t *testing.T) {
		option := NewStatsOption()

		_, err := option.resolveUsers(&fakeProvider{loginErr: errors.New("boom")})
		if err == nil {
			t.Error("resolveUsers() error = nil, wantErr true")
		}
	})
}
