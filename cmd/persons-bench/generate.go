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
	"time"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/jtrefon/languages-benchmark/pkg/logutil"
	"github.com/jtrefon/languages-benchmark/pkg/person"
	"github.com/spf13/cobra"
)

const (
	FlagCount  = "count"
	FlagOutput = "output"
	FlagSeed   = "seed"
)

type generateOptions struct {
	count  int
	output string
	seed   uint64
	codec  string

	// seedSet is false when --seed is not given, a seed is then taken from the clock.
	seedSet bool
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate a sample file of random persons",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			logLevel, err := flags.GetString(FlagLogLevel)
			if err != nil {
				return &ExitError{Code: ExitCodeInvalidConfig, Err: errors.Trace(err)}
			}
			logFile, err := flags.GetString(FlagLogFile)
			if err != nil {
				return &ExitError{Code: ExitCodeInvalidConfig, Err: errors.Trace(err)}
			}
			if err := logutil.InitLogger(&logutil.Config{Level: logLevel, File: logFile}); err != nil {
				return &ExitError{Code: ExitCodeInvalidConfig, Err: err}
			}
			o.seedSet = flags.Changed(FlagSeed)
			return o.run()
		},
	}
	cmd.Flags().IntVarP(&o.count, FlagCount, "n", 1000, "number of persons to generate")
	cmd.Flags().StringVarP(&o.output, FlagOutput, "o", person.DefaultSamplesPath, "output file, .zst, .gz and .lz4 are compressed")
	cmd.Flags().Uint64Var(&o.seed, FlagSeed, 0, "random seed, a seed is taken from the clock when not set")
	cmd.Flags().StringVar(&o.codec, FlagCodec, person.CodecJSON, "JSON codec used to encode the samples: json or go-json")
	return cmd
}

func (o *generateOptions) run() error {
	codec, err := person.CodecByName(o.codec)
	if err != nil {
		return &ExitError{Code: ExitCodeInvalidConfig, Err: err}
	}
	seed := o.seed
	if !o.seedSet {
		seed = uint64(time.Now().UnixNano())
	}
	return person.WriteSamples(o.output, o.count, seed, codec)
}
