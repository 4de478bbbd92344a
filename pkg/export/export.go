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

// Package export renders aggregation results as text, JSON or CSV
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/AlaudaDevops/toolbox/pr-leadtime/pkg/stats"
)

// ErrUnsupportedFormat indicates an export format this package does not know
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Supported export formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// prData is the JSON shape of a single duration record
type prData struct {
	URL           string `json:"url"`
	ReadyDate     string `json:"readyDate"`
	MergedDate    string `json:"mergedDate"`
	DurationHours string `json:"durationHours"`
}

// document is the JSON shape of a full result
type document struct {
	TotalDurationHours float64  `json:"totalDurationHours"`
	Count              int      `json:"count"`
	PRDataList         []prData `json:"prDataList"`
}

// Write renders the result in the requested format
func Write(w io.Writer, format string, result *stats.Result) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		return writeText(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeCSV(w, result)
	default:
		return fmt.Errorf("%w: %q (supported: text, json, csv)", ErrUnsupportedFormat, format)
	}
}

// formatHours renders a duration with two decimal digits. The full precision
// value stays internal; rounding is presentation only.
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}

func writeText(w io.Writer, result *stats.Result) error {
	average, ok := result.AverageHours()
	if !ok {
		_, err := fmt.Fprintln(w, "No merged pull requests found.")
		return err
	}

	_, err := fmt.Fprintf(w, "Average ready-to-merge time: %s hours over %d pull requests\n",
		formatHours(average), result.Count)
	return err
}

func writeJSON(w io.Writer, result *stats.Result) error {
	doc := document{
		TotalDurationHours: result.TotalDurationHours,
		Count:              result.Count,
		PRDataList:         make([]prData, 0, len(result.Records)),
	}
	for _, record := range result.Records {
		doc.PRDataList = append(doc.PRDataList, prData{
			URL:           record.URL,
			ReadyDate:     record.ReadyAt.Format(time.RFC3339),
			MergedDate:    record.MergedAt.Format(time.RFC3339),
			DurationHours: formatHours(record.DurationHours),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func writeCSV(w io.Writer, result *stats.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"url", "ready_date", "merged_date", "duration_hours"}); err != nil {
		return err
	}
	for _, record := range result.Records {
		row := []string{
			record.URL,
			record.ReadyAt.Format(time.RFC3339),
			record.MergedAt.Format(time.RFC3339),
			formatHours(record.DurationHours),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
