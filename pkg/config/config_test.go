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

package config_test

import (
	"strings"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("NewDefaultConfig", func() {
		It("should return a new config with default values", func() {
			cfg := config.NewDefaultConfig()

			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Platform).To(Equal("github"))
			Expect(cfg.Period).To(Equal("1w"))
			Expect(cfg.Output).To(Equal("text"))
		})
	})

	Describe("Validate", func() {
		DescribeTable("should validate configuration correctly",
			func(cfg *config.Config, expectedError error) {
				err := cfg.Validate()

				if expectedError == nil {
					Expect(err).To(BeNil())
				} else {
					Expect(err).To(Equal(expectedError))
				}
			},
			Entry("valid configuration", &config.Config{
				Platform: "github",
				Token:    "test-token",
				Org:      "test-org",
				Period:   "1w",
			}, nil),
			Entry("valid with owner-qualified repo and no org", &config.Config{
				Platform: "github",
				Token:    "test-token",
				Repo:     "octo/widgets",
				Period:   "1w",
			}, nil),
			Entry("valid with since instead of period", &config.Config{
				Platform: "github",
				Token:    "test-token",
				Org:      "test-org",
				Since:    "2025-01-01",
			}, nil),
			Entry("missing platform", &config.Config{
				Token:  "test-token",
				Org:    "test-org",
				Period: "1w",
			}, config.ErrMissingPlatform),
			Entry("missing token", &config.Config{
				Platform: "github",
				Org:      "test-org",
				Period:   "1w",
			}, config.ErrMissingToken),
			Entry("missing org with bare repo", &config.Config{
				Platform: "github",
				Token:    "test-token",
				Repo:     "widgets",
				Period:   "1w",
			}, config.ErrMissingOrg),
			Entry("missing date range", &config.Config{
				Platform: "github",
				Token:    "test-token",
				Org:      "test-org",
			}, config.ErrMissingDateRange),
		)
	})

	Describe("DebugString", func() {
		It("should redact the token", func() {
			cfg := &config.Config{
				Platform: "github",
				Token:    "super-secret",
				Org:      "test-org",
			}

			out := cfg.DebugString()
			Expect(out).NotTo(ContainSubstring("super-secret"))
			Expect(out).To(ContainSubstring("[REDACTED]"))
			Expect(strings.Contains(out, "test-org")).To(BeTrue())
		})
	})
})
