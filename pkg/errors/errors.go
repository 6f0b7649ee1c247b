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

package errors

import (
	"github.com/pingcap/errors"
)

// errors
var (
	// load errors
	ErrLoadSamples = errors.Normalize(
		"failed to load samples from %s",
		errors.RFCCodeText("BENCH:ErrLoadSamples"),
	)
	ErrDecodeSamples = errors.Normalize(
		"failed to decode samples from %s",
		errors.RFCCodeText("BENCH:ErrDecodeSamples"),
	)
	ErrUnknownCodec = errors.Normalize(
		"unknown codec %s",
		errors.RFCCodeText("BENCH:ErrUnknownCodec"),
	)

	// benchmark errors
	ErrEmptyDataset = errors.Normalize(
		"%s requires at least one record",
		errors.RFCCodeText("BENCH:ErrEmptyDataset"),
	)

	// config errors
	ErrInvalidConfig = errors.Normalize(
		"invalid config: %s",
		errors.RFCCodeText("BENCH:ErrInvalidConfig"),
	)

	// output errors
	ErrWriteReport = errors.Normalize(
		"failed to write %s",
		errors.RFCCodeText("BENCH:ErrWriteReport"),
	)
	ErrGenerateSamples = errors.Normalize(
		"failed to generate samples into %s",
		errors.RFCCodeText("BENCH:ErrGenerateSamples"),
	)
)
