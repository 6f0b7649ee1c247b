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
	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PhaseDurationHistogram records the wall-clock duration of every timed phase.
	PhaseDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "persons_bench",
			Subsystem: "phase",
			Name:      "duration_seconds",
			Help:      "Bucketed histogram of benchmark phase duration",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2.0, 24), // 10us ~ 84s
		}, []string{"run", "phase"})

	// PhaseErrorCounter counts phases aborted by an error.
	PhaseErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "persons_bench",
			Subsystem: "phase",
			Name:      "error_count",
			Help:      "The number of benchmark phases aborted by an error",
		}, []string{"run", "phase"})

	// LoadedRecordsGauge is the number of records decoded from the sample file.
	LoadedRecordsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "persons_bench",
			Subsystem: "loader",
			Name:      "records",
			Help:      "The number of records loaded from the sample file",
		})
)

// InitMetrics registers all benchmark metrics into registry.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(PhaseDurationHistogram)
	registry.MustRegister(PhaseErrorCounter)
	registry.MustRegister(LoadedRecordsGauge)
}

// WriteToTextfile dumps every metric gathered by registry into path using the
// text exposition format.
func WriteToTextfile(path string, registry *prometheus.Registry) error {
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return errors.WrapError(errors.ErrWriteReport, err, path)
	}
	return nil
}
