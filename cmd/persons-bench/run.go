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

package main

import (
	"context"
	"io"

	"github.com/jtrefon/languages-benchmark/pkg/bench"
	"github.com/jtrefon/languages-benchmark/pkg/config"
	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/jtrefon/languages-benchmark/pkg/logutil"
	"github.com/jtrefon/languages-benchmark/pkg/metrics"
	"github.com/jtrefon/languages-benchmark/pkg/person"
	"github.com/jtrefon/languages-benchmark/pkg/recorder"
	"github.com/pingcap/log"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	FlagConfig      = "config"
	FlagSamples     = "samples"
	FlagCodec       = "codec"
	FlagIterations  = "iterations"
	FlagLogLevel    = "log-level"
	FlagLogFile     = "log-file"
	FlagReport      = "report"
	FlagMetricsFile = "metrics-file"
	FlagProfile     = "profile"
	FlagProfileDir  = "profile-dir"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	flagCfg := config.NewDefaultConfig()

	cmd := &cobra.Command{
		Use:   "persons-bench",
		Short: "Time string, integer and float operations over a list of persons",
		Long: "Load person records from a JSON file and time string, integer and float " +
			"aggregate operations over them, printing the elapsed time of every phase",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, cfgPath, flagCfg)
			if err != nil {
				return &ExitError{Code: ExitCodeInvalidConfig, Err: err}
			}
			if err := logutil.InitLogger(&logutil.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
				return &ExitError{Code: ExitCodeInvalidConfig, Err: err}
			}
			return runBench(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgPath, FlagConfig, "c", "", "configuration file path")
	flags.StringVarP(&flagCfg.Samples, FlagSamples, "s", flagCfg.Samples, "sample file, .zst, .gz and .lz4 are decompressed")
	flags.StringVar(&flagCfg.Codec, FlagCodec, flagCfg.Codec, "JSON codec used to decode the samples: json or go-json")
	flags.IntVarP(&flagCfg.Iterations, FlagIterations, "n", flagCfg.Iterations, "how many times every phase runs")
	flags.StringVar(&flagCfg.Report, FlagReport, "", "write a JSON report of the run to this path")
	flags.StringVar(&flagCfg.MetricsFile, FlagMetricsFile, "", "write prometheus metrics of the run to this path")
	flags.StringVar(&flagCfg.Profile, FlagProfile, "", "record a profile around the phases: cpu or mem")
	flags.StringVar(&flagCfg.ProfileDir, FlagProfileDir, flagCfg.ProfileDir, "directory of the recorded profile")
	cmd.PersistentFlags().StringVar(&flagCfg.LogLevel, FlagLogLevel, flagCfg.LogLevel, "log level: debug, info, warn, error or fatal")
	cmd.PersistentFlags().StringVar(&flagCfg.LogFile, FlagLogFile, "", "log file path, logs go to stderr when empty")
	return cmd
}

// resolveConfig loads the config file, if any, then applies the flags set on
// the command line on top of it.
func resolveConfig(cmd *cobra.Command, cfgPath string, flagCfg *config.Config) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = config.LoadConfig(cfgPath); err != nil {
			return nil, errors.Trace(err)
		}
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		apply func()
	}{
		{FlagSamples, func() { cfg.Samples = flagCfg.Samples }},
		{FlagCodec, func() { cfg.Codec = flagCfg.Codec }},
		{FlagIterations, func() { cfg.Iterations = flagCfg.Iterations }},
		{FlagLogLevel, func() { cfg.LogLevel = flagCfg.LogLevel }},
		{FlagLogFile, func() { cfg.LogFile = flagCfg.LogFile }},
		{FlagReport, func() { cfg.Report = flagCfg.Report }},
		{FlagMetricsFile, func() { cfg.MetricsFile = flagCfg.MetricsFile }},
		{FlagProfile, func() { cfg.Profile = flagCfg.Profile }},
		{FlagProfileDir, func() { cfg.ProfileDir = flagCfg.ProfileDir }},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			o.apply()
		}
	}

	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// runBench loads the samples then runs the phases. Nothing runs when the load
// fails.
func runBench(ctx context.Context, cfg *config.Config, out io.Writer) error {
	registry := prometheus.NewRegistry()
	metrics.InitMetrics(registry)

	codec, err := person.CodecByName(cfg.Codec)
	if err != nil {
		return &ExitError{Code: ExitCodeInvalidConfig, Err: err}
	}
	report := recorder.NewReport(cfg.Samples, cfg.Codec)
	log.Info("benchmark started",
		zap.String("runID", report.RunID),
		zap.String("samples", cfg.Samples),
		zap.String("codec", cfg.Codec),
		zap.Int("iterations", cfg.Iterations))

	persons, loadElapsed, err := person.NewLoader(codec, out).Load(cfg.Samples)
	if err != nil {
		log.Error("load samples failed", zap.String("samples", cfg.Samples), zap.Error(err))
		return &ExitError{Code: ExitCodeLoadFailed, Err: err}
	}
	metrics.LoadedRecordsGauge.Set(float64(len(persons)))
	report.Records = len(persons)
	report.LoadDuration = loadElapsed

	runner := bench.NewRunner(report.RunID, out, cfg.Iterations)
	defer runner.Close()

	stopProfile := startProfile(cfg)
	result, err := runner.Run(ctx, persons)
	stopProfile()
	if err != nil {
		return &ExitError{Code: ExitCodePhaseFailed, Err: err}
	}
	report.SetResult(result)

	if cfg.Report != "" {
		r, err := recorder.NewRecorder(cfg.Report)
		if err != nil {
			return errors.Trace(err)
		}
		if err := r.Record(report); err != nil {
			return errors.Trace(err)
		}
	}
	if cfg.MetricsFile != "" {
		if err := metrics.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			return errors.Trace(err)
		}
	}
	log.Info("benchmark finished", zap.String("runID", report.RunID))
	return nil
}

func startProfile(cfg *config.Config) func() {
	var mode func(*profile.Profile)
	switch cfg.Profile {
	case config.ProfileCPU:
		mode = profile.CPUProfile
	case config.ProfileMem:
		mode = profile.MemProfile
	default:
		return func() {}
	}
	p := profile.Start(mode, profile.ProfilePath(cfg.ProfileDir), profile.NoShutdownHook, profile.Quiet)
	log.Info("profiling enabled", zap.String("mode", cfg.Profile), zap.String("dir", cfg.ProfileDir))
	return p.Stop
}
