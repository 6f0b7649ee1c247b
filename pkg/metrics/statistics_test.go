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
	"os"
	"path/filepath"
	"testing"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// durationSampleCount reads the sample count of one duration series without
// going through a registry.
func durationSampleCount(t *testing.T, runID, phase string) uint64 {
	t.Helper()
	observer, err := PhaseDurationHistogram.GetMetricWithLabelValues(runID, phase)
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, observer.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestRecordPhaseExecution(t *testing.T) {
	t.Parallel()

	stats := NewStatistics("test-record", "integer")
	defer stats.Close()

	elapsed, err := stats.RecordPhaseExecution(func() error { return nil })
	require.NoError(t, err)
	require.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
	require.Equal(t, uint64(1), durationSampleCount(t, "test-record", "integer"))
	require.Equal(t, 0.0, testutil.ToFloat64(PhaseErrorCounter.WithLabelValues("test-record", "integer")))

	failure := errors.ErrEmptyDataset.GenWithStackByArgs("test")
	elapsed, err = stats.RecordPhaseExecution(func() error { return failure })
	require.Equal(t, failure, err)
	require.Zero(t, elapsed)
	require.Equal(t, uint64(1), durationSampleCount(t, "test-record", "integer"))
	require.Equal(t, 1.0, testutil.ToFloat64(PhaseErrorCounter.WithLabelValues("test-record", "integer")))
}

func TestCloseKeepsOtherRuns(t *testing.T) {
	t.Parallel()

	kept := NewStatistics("test-close-kept", "float")
	defer kept.Close()
	closed := NewStatistics("test-close-closed", "float")

	for i := 0; i < 3; i++ {
		_, err := kept.RecordPhaseExecution(func() error { return nil })
		require.NoError(t, err)
		_, err = closed.RecordPhaseExecution(func() error { return nil })
		require.NoError(t, err)
	}
	closed.Close()

	require.Equal(t, uint64(3), durationSampleCount(t, "test-close-kept", "float"))
	// the closed series is gone, reading it creates an empty one
	require.Equal(t, uint64(0), durationSampleCount(t, "test-close-closed", "float"))
	PhaseDurationHistogram.DeleteLabelValues("test-close-closed", "float")
}

func TestWriteToTextfile(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	InitMetrics(registry)

	stats := NewStatistics("test-textfile", "string")
	defer stats.Close()
	_, err := stats.RecordPhaseExecution(func() error { return nil })
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, WriteToTextfile(path, registry))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), `persons_bench_phase_duration_seconds_count{phase="string",run="test-textfile"} 1`)
	require.Contains(t, string(content), "persons_bench_loader_records")

	err = WriteToTextfile(filepath.Join(t.TempDir(), "missing", "bench.prom"), registry)
	require.True(t, errors.Is(err, errors.ErrWriteReport))
}
