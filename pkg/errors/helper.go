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

// Re-exported so callers only need to import this package.
var (
	Trace    = errors.Trace
	Annotate = errors.Annotate
	New      = errors.New
	Errorf   = errors.Errorf
)

// WrapError generates a new error based on given `*errors.Error`, wraps the err
// as cause error.
// If given `err` is nil, returns a nil error, which is the same as `errors.Wrap`.
func WrapError(rfcError *errors.Error, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return rfcError.Wrap(err).GenWithStackByArgs(args...)
}

// RFCCode returns the RFC code of the first normalized error found in the
// chain of err.
func RFCCode(err error) (errors.RFCErrorCode, bool) {
	for ; err != nil; err = unwrapOnce(err) {
		if rfcErr, ok := err.(*errors.Error); ok {
			return rfcErr.RFCCode(), true
		}
	}
	return "", false
}

// Is reports whether any error in the chain of err, including the causes of
// normalized errors, was normalized from target.
func Is(err error, target *errors.Error) bool {
	for ; err != nil; err = unwrapOnce(err) {
		if rfcErr, ok := err.(*errors.Error); ok && rfcErr.ID() == target.ID() {
			return true
		}
	}
	return false
}

func unwrapOnce(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case interface{ Cause() error }:
		return e.Cause()
	default:
		return nil
	}
}
