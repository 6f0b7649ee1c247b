// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// phaseStats collects the durations of one phase over all iterations.
type phaseStats struct {
	name  string
	total time.Duration
	hist  *hdrhistogram.Histogram
}

func newPhaseStats(name string) *phaseStats {
	return &phaseStats{
		name: name,
		hist: hdrhistogram.New(1, int64((10 * time.Minute).Microseconds()), 3),
	}
}

func (s *phaseStats) record(d time.Duration) {
	s.total += d
	micros := d.Microseconds()
	if micros <= 0 {
		micros = 1
	}
	if err := s.hist.RecordValue(micros); err != nil {
		_ = s.hist.RecordValue(s.hist.HighestTrackableValue())
	}
}

// PhaseSummary is the distribution of one phase's durations.
type PhaseSummary struct {
	Phase string        `json:"phase"`
	Runs  int64         `json:"runs"`
	Total time.Duration `json:"total"`
	Avg   time.Duration `json:"avg"`
	P50   time.Duration `json:"p50"`
	P95   time.Duration `json:"p95"`
	P99   time.Duration `json:"p99"`
	Max   time.Duration `json:"max"`
}

func (s *phaseStats) snapshot() PhaseSummary {
	summary := PhaseSummary{
		Phase: s.name,
		Runs:  s.hist.TotalCount(),
		Total: s.total,
	}
	if summary.Runs > 0 {
		summary.Avg = s.total / time.Duration(summary.Runs)
		summary.P50 = s.quantile(50)
		summary.P95 = s.quantile(95)
		summary.P99 = s.quantile(99)
		summary.Max = time.Duration(max(s.hist.Max(), 1)) * time.Microsecond
	}
	return summary
}

// quantile reads the histogram in microseconds, at least 1µs.
func (s *phaseStats) quantile(q float64) time.Duration {
	return time.Duration(max(s.hist.ValueAtQuantile(q), 1)) * time.Microsecond
}

// shortDuration formats d with three significant digits.
func shortDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	unit := time.Duration(1)
	for d/unit >= 1000 {
		unit *= 10
	}
	return d.Round(unit).String()
}

// PrintSummary writes one row per phase.
func PrintSummary(out io.Writer, summaries []PhaseSummary) {
	fmt.Fprintf(out, "%-10s %-6s %-12s %s\n", "Phase", "Runs", "Avg", "p50/p95/p99/max")
	for _, s := range summaries {
		latencies := []string{shortDuration(s.P50), shortDuration(s.P95), shortDuration(s.P99), shortDuration(s.Max)}
		fmt.Fprintf(out, "%-10s %-6d %-12s %s\n", s.Phase, s.Runs, shortDuration(s.Avg), strings.Join(latencies, "/"))
	}
}
