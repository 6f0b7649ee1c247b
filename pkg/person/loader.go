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

package person

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// DefaultSamplesPath is the sample file looked up in the working directory.
const DefaultSamplesPath = "samples.json"

// Loader reads sample files into memory and reports how long it took.
type Loader struct {
	codec Codec
	out   io.Writer
}

// NewLoader creates a Loader decoding with codec and printing the timing line
// to out.
func NewLoader(codec Codec, out io.Writer) *Loader {
	if codec == nil {
		codec = JSON{}
	}
	if out == nil {
		out = os.Stdout
	}
	return &Loader{codec: codec, out: out}
}

// Load reads path and decodes it as a JSON array of persons, in file order.
// The timing line is written only when the load succeeds.
func (l *Loader) Load(path string) ([]Person, time.Duration, error) {
	start := time.Now()

	data, err := readFile(path)
	if err != nil {
		return nil, 0, errors.WrapError(errors.ErrLoadSamples, err, path)
	}

	var persons []Person
	if err := l.codec.Unmarshal(data, &persons); err != nil {
		return nil, 0, errors.WrapError(errors.ErrDecodeSamples, err, path)
	}

	elapsed := time.Since(start)
	fmt.Fprintf(l.out, "File loading took %f seconds\n", elapsed.Seconds())
	log.Info("samples loaded",
		zap.String("path", path),
		zap.String("codec", l.codec.Name()),
		zap.Int("records", len(persons)),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", elapsed))
	return persons, elapsed, nil
}
