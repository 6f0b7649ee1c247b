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
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	persons := NewGenerator(42).Generate(500)
	require.Len(t, persons, 500)
	for i, p := range persons {
		require.Equal(t, i+1, p.ID)
		require.NotEmpty(t, p.Name)
		require.NotEmpty(t, p.City)
		require.GreaterOrEqual(t, p.Age, minAge)
		require.LessOrEqual(t, p.Age, maxAge)
		require.GreaterOrEqual(t, p.Height, minHeight)
		require.LessOrEqual(t, p.Height, maxHeight)
		require.GreaterOrEqual(t, p.Weight, minWeight)
		require.LessOrEqual(t, p.Weight, maxWeight)
		_, err := time.Parse(bornLayout, p.Born)
		require.NoError(t, err)
	}

	require.Equal(t, persons, NewGenerator(42).Generate(500))
	require.NotEqual(t, persons, NewGenerator(7).Generate(500))
}

func TestWriteSamples(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"samples.json", "samples.json.zst", "samples.json.gz", "samples.json.lz4"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteSamples(path, 64, 1, GoJSON{}))

			persons, _, err := NewLoader(JSON{}, &bytes.Buffer{}).Load(path)
			require.NoError(t, err)
			require.Equal(t, NewGenerator(1).Generate(64), persons)
		})
	}
}

func TestWriteSamplesInvalidCount(t *testing.T) {
	t.Parallel()

	err := WriteSamples(filepath.Join(t.TempDir(), "samples.json"), 0, 1, nil)
	require.True(t, errors.Is(err, errors.ErrGenerateSamples))
}
