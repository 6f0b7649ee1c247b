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
	"io"
	"os"
	"strings"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	suffixZstd = ".zst"
	suffixGzip = ".gz"
	suffixLz4  = ".lz4"
)

// readFile returns the whole content of path, decompressed according to its
// suffix.
func readFile(path string) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, suffixZstd):
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer f.Close()
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer dec.Close()
		data, err := io.ReadAll(dec)
		return data, errors.Trace(err)
	case strings.HasSuffix(path, suffixGzip):
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer f.Close()
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer gz.Close()
		data, err := io.ReadAll(gz)
		return data, errors.Trace(err)
	case strings.HasSuffix(path, suffixLz4):
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer f.Close()
		data, err := io.ReadAll(lz4.NewReader(f))
		return data, errors.Trace(err)
	default:
		data, err := os.ReadFile(path)
		return data, errors.Trace(err)
	}
}

// writeFile stores data into path, compressed according to its suffix.
func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Trace(err)
	}

	var w io.WriteCloser
	switch {
	case strings.HasSuffix(path, suffixZstd):
		w, err = zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return errors.Trace(err)
		}
	case strings.HasSuffix(path, suffixGzip):
		w = gzip.NewWriter(f)
	case strings.HasSuffix(path, suffixLz4):
		w = lz4.NewWriter(f)
	}

	if w == nil {
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return errors.Trace(err)
		}
		return errors.Trace(f.Close())
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		_ = f.Close()
		return errors.Trace(err)
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return errors.Trace(err)
	}
	return errors.Trace(f.Close())
}
