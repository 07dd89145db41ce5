// Copyright 2026 The Quell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"time"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrConvertingToType is returned when a value cannot be coerced to the
// requested type.
var ErrConvertingToType = errors.NewKind("value %v can't be converted to %s")

// Type represents a semantic column type. Types are strict: a resolved
// expression always has exactly one of them.
type Type interface {
	// Name returns the type name, lowercase.
	Name() string
	// Convert coerces the given value to the underlying representation of
	// the type. Nil converts to nil for every type.
	Convert(v interface{}) (interface{}, error)
	// Compare compares two converted values. It returns -1, 0 or 1.
	Compare(a, b interface{}) (int, error)
}

var (
	// Null represents the type of NULL literals.
	Null nullT
	// Boolean is a boolean type.
	Boolean booleanT
	// Int64 is a 64-bit integer type.
	Int64 int64T
	// Float64 is a 64-bit floating point type.
	Float64 float64T
	// Text is a string type.
	Text textT
	// Timestamp is a date and time type.
	Timestamp timestampT
)

type nullT struct{}

func (t nullT) Name() string { return "null" }

func (t nullT) Convert(v interface{}) (interface{}, error) {
	if v != nil {
		return nil, ErrConvertingToType.New(v, t.Name())
	}
	return nil, nil
}

func (t nullT) Compare(a, b interface{}) (int, error) { return 0, nil }

type booleanT struct{}

func (t booleanT) Name() string { return "boolean" }

func (t booleanT) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, ErrConvertingToType.New(v, t.Name())
	}
	return b, nil
}

func (t booleanT) Compare(a, b interface{}) (int, error) {
	av, bv := a.(bool), b.(bool)
	switch {
	case av == bv:
		return 0, nil
	case av:
		return 1, nil
	default:
		return -1, nil
	}
}

type int64T struct{}

func (t int64T) Name() string { return "bigint" }

func (t int64T) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return nil, ErrConvertingToType.New(v, t.Name())
	}
	return i, nil
}

func (t int64T) Compare(a, b interface{}) (int, error) {
	av, bv := a.(int64), b.(int64)
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

type float64T struct{}

func (t float64T) Name() string { return "double" }

func (t float64T) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, ErrConvertingToType.New(v, t.Name())
	}
	return f, nil
}

func (t float64T) Compare(a, b interface{}) (int, error) {
	av, bv := a.(float64), b.(float64)
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

type textT struct{}

func (t textT) Name() string { return "text" }

func (t textT) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrConvertingToType.New(v, t.Name())
	}
	return s, nil
}

func (t textT) Compare(a, b interface{}) (int, error) {
	av, bv := a.(string), b.(string)
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

type timestampT struct{}

func (t timestampT) Name() string { return "timestamp" }

func (t timestampT) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	ts, err := cast.ToTimeE(v)
	if err != nil {
		return nil, ErrConvertingToType.New(v, t.Name())
	}
	return ts.UTC(), nil
}

func (t timestampT) Compare(a, b interface{}) (int, error) {
	av, bv := a.(time.Time), b.(time.Time)
	switch {
	case av.Before(bv):
		return -1, nil
	case av.After(bv):
		return 1, nil
	default:
		return 0, nil
	}
}

// IsNumber checks if t is a number type.
func IsNumber(t Type) bool {
	return t == Int64 || t == Float64
}
