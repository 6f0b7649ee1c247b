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
	"encoding/json"

	gojson "github.com/goccy/go-json"
	"github.com/jtrefon/languages-benchmark/pkg/errors"
)

const (
	// CodecJSON decodes samples with encoding/json.
	CodecJSON = "json"
	// CodecGoJSON decodes samples with github.com/goccy/go-json.
	CodecGoJSON = "go-json"
)

// Codec encodes and decodes sample files.
type Codec interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// CodecByName returns a built-in codec by its name.
func CodecByName(name string) (Codec, error) {
	switch name {
	case CodecJSON:
		return JSON{}, nil
	case CodecGoJSON:
		return GoJSON{}, nil
	default:
		return nil, errors.ErrUnknownCodec.GenWithStackByArgs(name)
	}
}

// JSON is the standard library codec.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return CodecJSON }

// GoJSON is a codec backed by github.com/goccy/go-json.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return CodecGoJSON }
