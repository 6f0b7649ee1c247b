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

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewStatistics creates a statistics for one phase of the run identified by runID.
func NewStatistics(runID, phase string) *Statistics {
	return &Statistics{
		runID:          runID,
		phase:          phase,
		metricDuration: PhaseDurationHistogram.WithLabelValues(runID, phase),
		metricErrCnt:   PhaseErrorCounter.WithLabelValues(runID, phase),
	}
}

// Statistics maintains the metrics of a benchmark phase.
type Statistics struct {
	runID string
	phase string

	// metricDuration records each successful phase execution time.
	metricDuration prometheus.Observer
	// metricErrCnt records the aborted phase executions.
	metricErrCnt prometheus.Counter
}

// RecordPhaseExecution times executor and records its duration when it succeeds.
func (s *Statistics) RecordPhaseExecution(executor func() error) (time.Duration, error) {
	start := time.Now()
	if err := executor(); err != nil {
		s.metricErrCnt.Inc()
		return 0, err
	}
	elapsed := time.Since(start)
	s.metricDuration.Observe(elapsed.Seconds())
	return elapsed, nil
}

// Close releases the series of this run and phase only.
func (s *Statistics) Close() {
	PhaseDurationHistogram.DeleteLabelValues(s.runID, s.phase)
	PhaseErrorCounter.DeleteLabelValues(s.runID, s.phase)
}
