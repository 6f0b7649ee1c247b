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
	"strings"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/jtrefon/languages-benchmark/pkg/person"
)

const (
	citySubstring = "New"
	ageRangeLow   = 20
	ageRangeHigh  = 30
	scaleFactor   = 1.1
)

// StringResult holds what the string phase computes.
type StringResult struct {
	ConcatenatedNames string
	NewCityCount      int
	ReversedNames     []string
}

// IntegerResult holds what the integer phase computes.
type IntegerResult struct {
	TotalAge      int
	MaxAge        int
	MinAge        int
	AgeRangeCount int
}

// FloatResult holds what the float phase computes.
type FloatResult struct {
	TotalHeight   float64
	TotalWeight   float64
	AvgHeight     float64
	AvgWeight     float64
	MaxHeight     float64
	MinHeight     float64
	MaxWeight     float64
	MinWeight     float64
	ScaledHeights []float64
	ScaledWeights []float64
}

// StringOperations joins the names with a space, counts the cities containing
// "New" and reverses every name.
func StringOperations(persons []person.Person) StringResult {
	var result StringResult

	var names strings.Builder
	for i, p := range persons {
		if i > 0 {
			names.WriteByte(' ')
		}
		names.WriteString(p.Name)
	}
	result.ConcatenatedNames = names.String()

	for _, p := range persons {
		if strings.Contains(p.City, citySubstring) {
			result.NewCityCount++
		}
	}

	result.ReversedNames = make([]string, 0, len(persons))
	for _, p := range persons {
		result.ReversedNames = append(result.ReversedNames, ReverseString(p.Name))
	}
	return result
}

// ReverseString reverses s rune by rune.
func ReverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IntegerOperations sums the ages, finds their extrema and counts the ages
// within [20, 30]. It fails on an empty input.
func IntegerOperations(persons []person.Person) (IntegerResult, error) {
	var result IntegerResult

	for _, p := range persons {
		result.TotalAge += p.Age
	}

	if len(persons) == 0 {
		return IntegerResult{}, errors.ErrEmptyDataset.GenWithStackByArgs("max/min age")
	}
	result.MaxAge, result.MinAge = persons[0].Age, persons[0].Age
	for _, p := range persons[1:] {
		if p.Age > result.MaxAge {
			result.MaxAge = p.Age
		}
		if p.Age < result.MinAge {
			result.MinAge = p.Age
		}
	}

	for _, p := range persons {
		if p.Age >= ageRangeLow && p.Age <= ageRangeHigh {
			result.AgeRangeCount++
		}
	}
	return result, nil
}

// FloatOperations averages heights and weights, finds their extrema and scales
// them by 1.1. It fails on an empty input.
func FloatOperations(persons []person.Person) (FloatResult, error) {
	var result FloatResult

	if len(persons) == 0 {
		return FloatResult{}, errors.ErrEmptyDataset.GenWithStackByArgs("average height/weight")
	}
	for _, p := range persons {
		result.TotalHeight += p.Height
		result.TotalWeight += p.Weight
	}
	count := float64(len(persons))
	result.AvgHeight = result.TotalHeight / count
	result.AvgWeight = result.TotalWeight / count

	first := persons[0]
	result.MaxHeight, result.MinHeight = first.Height, first.Height
	result.MaxWeight, result.MinWeight = first.Weight, first.Weight
	for _, p := range persons[1:] {
		if p.Height > result.MaxHeight {
			result.MaxHeight = p.Height
		}
		if p.Height < result.MinHeight {
			result.MinHeight = p.Height
		}
		if p.Weight > result.MaxWeight {
			result.MaxWeight = p.Weight
		}
		if p.Weight < result.MinWeight {
			result.MinWeight = p.Weight
		}
	}

	result.ScaledHeights = make([]float64, 0, len(persons))
	result.ScaledWeights = make([]float64, 0, len(persons))
	for _, p := range persons {
		result.ScaledHeights = append(result.ScaledHeights, p.Height*scaleFactor)
		result.ScaledWeights = append(result.ScaledWeights, p.Weight*scaleFactor)
	}
	return result, nil
}
