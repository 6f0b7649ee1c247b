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

// Person is one record of the sample file.
// Born is kept as the raw text of the file, it is never parsed as a date.
type Person struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	City   string  `json:"city"`
	Born   string  `json:"born"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}
