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
	"strings"
)

// SplitRepoArg resolves a repository argument that is either a bare name
// (scoped to the given organization) or the "owner/repo" form.
func SplitRepoArg(org, repo string) (owner, name string, err error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return "", "", fmt.Errorf("repository argument is empty")
	}

	if strings.Contains(repo, "/") {
		parts := strings.SplitN(repo, "/", 2)
		if parts[0] == "" || parts[1] == "" || strings.Contains(parts[1], "/") {
			return "", "", fmt.Errorf("invalid repository %q: expected name or owner/name", repo)
		}
		return parts[0], parts[1], nil
	}

	if org == "" {
		return "", "", fmt.Errorf("repository %q has no owner and no organization is set", repo)
	}
	return org, repo, nil
}
