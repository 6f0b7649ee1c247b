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

package logutil

import (
	"os"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the logging part of the benchmark configuration.
type Config struct {
	Level string
	File  string
}

// InitLogger replaces the global logger. Without a file the logs go to stderr,
// stdout is reserved for the timing lines.
func InitLogger(cfg *Config) error {
	logCfg := &log.Config{
		Level: cfg.Level,
		File: log.FileLogConfig{
			Filename: cfg.File,
		},
	}

	var (
		lg    *zap.Logger
		props *log.ZapProperties
		err   error
	)
	if cfg.File != "" {
		lg, props, err = log.InitLogger(logCfg)
	} else {
		stderr := zapcore.AddSync(os.Stderr)
		lg, props, err = log.InitLoggerWithWriteSyncer(logCfg, stderr, stderr)
	}
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(lg, props)
	return nil
}
