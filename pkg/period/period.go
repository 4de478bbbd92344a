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

// Package period parses relative period expressions and ISO calendar dates
// into absolute instants used to bound pull request searches.
package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidPeriodFormat indicates a period expression that does not
	// parse to a positive, non-zero duration
	ErrInvalidPeriodFormat = errors.New("invalid period format")
	// ErrInvalidDateFormat indicates a date string that cannot be parsed
	// into a valid calendar date
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Fixed-length unit approximations. Month and year are deliberately not
// calendar-aware; callers accept this imprecision.
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// Match pattern: positive number followed by a unit (d, w, mo, y)
var periodRegexp = regexp.MustCompile(`^(\d+)(d|w|mo|y)$`)

// Parse converts a relative period expression such as "2d", "1w", "3mo" or
// "1y" into the instant that far before now. Units are case-insensitive.
func Parse(expr string) (time.Time, error) {
	return parseAt(expr, time.Now())
}

// parseAt is the testable core of Parse with an injected "now".
func parseAt(expr string, now time.Time) (time.Time, error) {
	matches := periodRegexp.FindStringSubmatch(strings.ToLower(strings.TrimSpace(expr)))
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriodFormat, expr)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount <= 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriodFormat, expr)
	}

	var unit time.Duration
	switch matches[2] {
	case "d":
		unit = day
	case "w":
		unit = week
	case "mo":
		unit = month
	case "y":
		unit = year
	}

	return now.Add(-time.Duration(amount) * unit), nil
}

// ParseDate converts a "YYYY-MM-DD" string into the corresponding UTC
// start-of-day instant.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return t, nil
}
