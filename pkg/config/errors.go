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

package config

import "errors"

// Validation errors returned by Config.Validate
var (
	// ErrMissingPlatform indicates the platform is not specified
	ErrMissingPlatform = errors.New("platform is required")
	// ErrMissingToken indicates the API token is not specified
	ErrMissingToken = errors.New("token is required (use --token or GITHUB_TOKEN)")
	// ErrMissingOrg indicates neither an organization nor an owner-qualified repository is specified
	ErrMissingOrg = errors.New("organization is required unless --repo is given as owner/name")
	// ErrMissingDateRange indicates neither a period nor a since date is specified
	ErrMissingDateRange = errors.New("a period or a since date is required")
)
