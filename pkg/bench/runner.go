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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/jtrefon/languages-benchmark/pkg/metrics"
	"github.com/jtrefon/languages-benchmark/pkg/person"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Phase names, in execution order.
const (
	PhaseString  = "string"
	PhaseInteger = "integer"
	PhaseFloat   = "float"
)

var phaseOrder = []string{PhaseString, PhaseInteger, PhaseFloat}

var phaseTitles = map[string]string{
	PhaseString:  "String operations",
	PhaseInteger: "Integer operations",
	PhaseFloat:   "Float operations",
}

// IterationResult is the duration of every phase in one pass.
type IterationResult struct {
	String  time.Duration `json:"string"`
	Integer time.Duration `json:"integer"`
	Float   time.Duration `json:"float"`
}

// Result is the outcome of Runner.Run.
type Result struct {
	Iterations []IterationResult `json:"iterations"`
	Summaries  []PhaseSummary    `json:"summaries"`
}

// Runner executes the timed phases over an in-memory record sequence.
// The sequence is only read, never modified.
type Runner struct {
	out        io.Writer
	iterations int

	stats map[string]*metrics.Statistics
	hists map[string]*phaseStats

	// the last computed values, kept so the work is observable
	lastString  StringResult
	lastInteger IntegerResult
	lastFloat   FloatResult
}

// NewRunner creates a Runner printing timing lines to out and repeating the
// phases iterations times. Its metrics are labelled with runID.
func NewRunner(runID string, out io.Writer, iterations int) *Runner {
	if out == nil {
		out = os.Stdout
	}
	if iterations < 1 {
		iterations = 1
	}
	r := &Runner{
		out:        out,
		iterations: iterations,
		stats:      make(map[string]*metrics.Statistics, len(phaseOrder)),
		hists:      make(map[string]*phaseStats, len(phaseOrder)),
	}
	for _, phase := range phaseOrder {
		r.stats[phase] = metrics.NewStatistics(runID, phase)
		r.hists[phase] = newPhaseStats(phase)
	}
	return r
}

// RunStringPhase times StringOperations.
func (r *Runner) RunStringPhase(persons []person.Person) time.Duration {
	// StringOperations cannot fail.
	elapsed, _ := r.runPhase(PhaseString, func() error {
		r.lastString = StringOperations(persons)
		return nil
	})
	return elapsed
}

// RunIntegerPhase times IntegerOperations.
func (r *Runner) RunIntegerPhase(persons []person.Person) (time.Duration, error) {
	return r.runPhase(PhaseInteger, func() error {
		result, err := IntegerOperations(persons)
		if err != nil {
			return err
		}
		r.lastInteger = result
		return nil
	})
}

// RunFloatPhase times FloatOperations.
func (r *Runner) RunFloatPhase(persons []person.Person) (time.Duration, error) {
	return r.runPhase(PhaseFloat, func() error {
		result, err := FloatOperations(persons)
		if err != nil {
			return err
		}
		r.lastFloat = result
		return nil
	})
}

func (r *Runner) runPhase(phase string, executor func() error) (time.Duration, error) {
	elapsed, err := r.stats[phase].RecordPhaseExecution(executor)
	if err != nil {
		log.Error("benchmark phase failed", zap.String("phase", phase), zap.Error(err))
		return 0, errors.Trace(err)
	}
	r.hists[phase].record(elapsed)
	fmt.Fprintf(r.out, "%s took %f seconds\n", phaseTitles[phase], elapsed.Seconds())
	return elapsed, nil
}

// Run executes String, Integer and Float phases in this order, iterations
// times. The first failing phase aborts the run.
func (r *Runner) Run(ctx context.Context, persons []person.Person) (Result, error) {
	var (
		result Result
		err    error
	)
	for i := 0; i < r.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		var iteration IterationResult
		iteration.String = r.RunStringPhase(persons)
		if iteration.Integer, err = r.RunIntegerPhase(persons); err != nil {
			return result, err
		}
		if iteration.Float, err = r.RunFloatPhase(persons); err != nil {
			return result, err
		}
		result.Iterations = append(result.Iterations, iteration)
		log.Debug("benchmark iteration finished",
			zap.Int("iteration", i+1),
			zap.Duration("string", iteration.String),
			zap.Duration("integer", iteration.Integer),
			zap.Duration("float", iteration.Float))
	}

	result.Summaries = r.Summaries()
	if r.iterations > 1 {
		fmt.Fprintln(r.out, "\nSummary:")
		PrintSummary(r.out, result.Summaries)
	}
	return result, nil
}

// Summaries returns the duration distribution of every phase so far.
func (r *Runner) Summaries() []PhaseSummary {
	summaries := make([]PhaseSummary, 0, len(phaseOrder))
	for _, phase := range phaseOrder {
		summaries = append(summaries, r.hists[phase].snapshot())
	}
	return summaries
}

// Close releases the metrics series of the runner. Other runners keep theirs.
func (r *Runner) Close() {
	for _, stats := range r.stats {
		stats.Close()
	}
}
