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
	"math"
	"math/rand/v2"
	"time"

	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const (
	minAge    = 18
	maxAge    = 80
	minHeight = 1.5
	maxHeight = 2.0
	minWeight = 50.0
	maxWeight = 100.0

	bornLayout = "02/01/2006"
)

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Zoë", "José",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	cities = []string{
		"New York", "Newport", "New Orleans", "Port Andrewberg", "Lake Jennifer",
		"South Michael", "East Newton", "Springfield", "Riverside", "Georgetown",
		"Franklin", "Clinton", "Salem", "new haven", "Fairview", "Madison",
	}
	// born is derived from age, relative to a fixed date.
	bornReference = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Generator produces random persons shaped like the sample file.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns n persons with ids 1..n.
func (g *Generator) Generate(n int) []Person {
	persons := make([]Person, 0, n)
	for i := 1; i <= n; i++ {
		persons = append(persons, g.next(i))
	}
	return persons
}

func (g *Generator) next(id int) Person {
	age := minAge + g.rng.IntN(maxAge-minAge+1)
	born := bornReference.AddDate(-age, 0, -g.rng.IntN(365))
	return Person{
		ID:     id,
		Name:   firstNames[g.rng.IntN(len(firstNames))] + " " + lastNames[g.rng.IntN(len(lastNames))],
		Age:    age,
		City:   cities[g.rng.IntN(len(cities))],
		Born:   born.Format(bornLayout),
		Height: round(minHeight+g.rng.Float64()*(maxHeight-minHeight), 5),
		Weight: round(minWeight+g.rng.Float64()*(maxWeight-minWeight), 3),
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// WriteSamples generates n persons and writes them to path as an indented
// JSON array. The path suffix selects the compression, see Loader.
func WriteSamples(path string, n int, seed uint64, codec Codec) error {
	if n < 1 {
		return errors.ErrGenerateSamples.GenWithStackByArgs(
			fmt.Sprintf("%s: sample count must be positive, got %d", path, n))
	}
	if codec == nil {
		codec = JSON{}
	}
	persons := NewGenerator(seed).Generate(n)
	data, err := codec.MarshalIndent(persons, "", "    ")
	if err != nil {
		return errors.WrapError(errors.ErrGenerateSamples, err, path)
	}
	if err := writeFile(path, data); err != nil {
		return errors.WrapError(errors.ErrGenerateSamples, err, path)
	}
	log.Info("samples generated",
		zap.String("path", path),
		zap.Int("records", n),
		zap.Uint64("seed", seed),
		zap.Int("bytes", len(data)))
	return nil
}
