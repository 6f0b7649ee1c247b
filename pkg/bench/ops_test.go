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
	"testing"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/jtrefon/languages-benchmark/pkg/person"
	"github.com/stretchr/testify/require"
)

func newPersons(names []string, cities []string, ages []int, heights, weights []float64) []person.Person {
	persons := make([]person.Person, len(names))
	for i := range persons {
		persons[i] = person.Person{ID: i + 1, Name: names[i], Born: "01/01/2000"}
		if cities != nil {
			persons[i].City = cities[i]
		}
		if ages != nil {
			persons[i].Age = ages[i]
		}
		if heights != nil {
			persons[i].Height = heights[i]
		}
		if weights != nil {
			persons[i].Weight = weights[i]
		}
	}
	return persons
}

func TestStringOperations(t *testing.T) {
	t.Parallel()

	persons := newPersons(
		[]string{"Alice", "Bob", "", "José"},
		[]string{"New York", "new york", "Newport", "Boston"},
		nil, nil, nil)
	result := StringOperations(persons)

	require.Equal(t, "Alice Bob  José", result.ConcatenatedNames)
	require.Equal(t, 2, result.NewCityCount)
	require.Equal(t, []string{"ecilA", "boB", "", "ésoJ"}, result.ReversedNames)
}

func TestStringOperationsJoin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		names    []string
		expected string
	}{
		{[]string{"Alice", "Bob"}, "Alice Bob"},
		{[]string{"Alice"}, "Alice"},
		{nil, ""},
	}
	for _, tc := range cases {
		result := StringOperations(newPersons(tc.names, nil, nil, nil, nil))
		require.Equal(t, tc.expected, result.ConcatenatedNames)
		require.Len(t, result.ReversedNames, len(tc.names))
	}
}

func TestReverseString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ecilA", ReverseString("Alice"))
	require.Equal(t, "", ReverseString(""))
	require.Equal(t, "a", ReverseString("a"))
	require.Equal(t, "ëoZ", ReverseString("Zoë"))
}

func TestIntegerOperations(t *testing.T) {
	t.Parallel()

	ages := []int{19, 20, 25, 30, 31, 64, 18}
	names := make([]string, len(ages))
	result, err := IntegerOperations(newPersons(names, nil, ages, nil, nil))
	require.NoError(t, err)

	sum := 0
	for _, age := range ages {
		sum += age
	}
	require.Equal(t, sum, result.TotalAge)
	require.Equal(t, 64, result.MaxAge)
	require.Equal(t, 18, result.MinAge)
	// 20 and 30 are inclusive bounds.
	require.Equal(t, 3, result.AgeRangeCount)
}

func TestIntegerOperationsSingleRecord(t *testing.T) {
	t.Parallel()

	result, err := IntegerOperations(newPersons([]string{"Alice"}, nil, []int{42}, nil, nil))
	require.NoError(t, err)
	require.Equal(t, IntegerResult{TotalAge: 42, MaxAge: 42, MinAge: 42}, result)
}

func TestFloatOperations(t *testing.T) {
	t.Parallel()

	heights := []float64{1.5, 1.6, 1.7}
	weights := []float64{60, 90, 75}
	result, err := FloatOperations(newPersons(make([]string, 3), nil, nil, heights, weights))
	require.NoError(t, err)

	require.InDelta(t, 4.8, result.TotalHeight, 1e-9)
	require.InDelta(t, 225.0, result.TotalWeight, 1e-9)
	require.InDelta(t, 1.6, result.AvgHeight, 1e-9)
	require.InDelta(t, 75.0, result.AvgWeight, 1e-9)
	require.Equal(t, 1.7, result.MaxHeight)
	require.Equal(t, 1.5, result.MinHeight)
	require.Equal(t, 90.0, result.MaxWeight)
	require.Equal(t, 60.0, result.MinWeight)

	require.Len(t, result.ScaledHeights, len(heights))
	require.Len(t, result.ScaledWeights, len(weights))
	for i := range heights {
		require.InDelta(t, heights[i]*1.1, result.ScaledHeights[i], 1e-9)
		require.InDelta(t, weights[i]*1.1, result.ScaledWeights[i], 1e-9)
	}
}

func TestEmptyDataset(t *testing.T) {
	t.Parallel()

	_, err := IntegerOperations(nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrEmptyDataset))

	_, err = FloatOperations([]person.Person{})
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrEmptyDataset))

	// the string phase is well defined on an empty input
	result := StringOperations(nil)
	require.Empty(t, result.ConcatenatedNames)
	require.Zero(t, result.NewCityCount)
	require.Empty(t, result.ReversedNames)
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	t.Parallel()

	persons := newPersons(
		[]string{"Alice", "Bob"},
		[]string{"New York", "Boston"},
		[]int{20, 40},
		[]float64{1.5, 1.9},
		[]float64{55, 80})
	snapshot := append([]person.Person(nil), persons...)

	StringOperations(persons)
	_, err := IntegerOperations(persons)
	require.NoError(t, err)
	_, err = FloatOperations(persons)
	require.NoError(t, err)
	require.Equal(t, snapshot, persons)
}
