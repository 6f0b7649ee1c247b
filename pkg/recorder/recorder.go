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

package recorder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jtrefon/languages-benchmark/pkg/bench"
	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Report describes one benchmark run.
type Report struct {
	RunID        string                  `json:"run-id"`
	StartedAt    time.Time               `json:"started-at"`
	Samples      string                  `json:"samples"`
	Codec        string                  `json:"codec"`
	Records      int                     `json:"records"`
	LoadDuration time.Duration           `json:"load-duration"`
	Iterations   []bench.IterationResult `json:"iterations"`
	Summaries    []bench.PhaseSummary    `json:"summaries"`
}

// NewReport creates a report with a fresh run id.
func NewReport(samples, codec string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Samples:   samples,
		Codec:     codec,
	}
}

// SetResult copies the phase timings of result into the report.
func (r *Report) SetResult(result bench.Result) {
	r.Iterations = result.Iterations
	r.Summaries = result.Summaries
}

// Recorder persists reports.
type Recorder struct {
	path string
}

// NewRecorder creates a Recorder writing to path, creating its directory.
func NewRecorder(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.WrapError(errors.ErrWriteReport, err, path)
	}
	return &Recorder{path: path}, nil
}

// Record writes report as indented JSON, replacing any previous report.
func (r *Recorder) Record(report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.WrapError(errors.ErrWriteReport, err, r.path)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.WrapError(errors.ErrWriteReport, err, r.path)
	}
	log.Info("benchmark report recorded",
		zap.String("runID", report.RunID),
		zap.String("path", r.path))
	return nil
}
