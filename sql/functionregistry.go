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

import "strings"

// Function is a builder for expressions representing a call to a registered
// function.
type Function interface {
	// FunctionName returns the name the function is registered under.
	FunctionName() string
	// Build returns an expression for the call with the given arguments.
	Build(args ...Expression) (Expression, error)
}

// Function1 is a function with 1 argument.
type Function1 struct {
	Name string
	Fn   func(e Expression) Expression
}

// Function2 is a function with 2 arguments.
type Function2 struct {
	Name string
	Fn   func(e1, e2 Expression) Expression
}

// FunctionN is a function with variable number of arguments.
type FunctionN struct {
	Name string
	Fn   func(args ...Expression) (Expression, error)
}

// Build implements the Function interface.
func (fn Function1) Build(args ...Expression) (Expression, error) {
	if len(args) != 1 {
		return nil, ErrInvalidArgumentNumber.New(fn.Name, 1, len(args))
	}
	return fn.Fn(args[0]), nil
}

// Build implements the Function interface.
func (fn Function2) Build(args ...Expression) (Expression, error) {
	if len(args) != 2 {
		return nil, ErrInvalidArgumentNumber.New(fn.Name, 2, len(args))
	}
	return fn.Fn(args[0], args[1]), nil
}

// Build implements the Function interface.
func (fn FunctionN) Build(args ...Expression) (Expression, error) {
	return fn.Fn(args...)
}

// FunctionName implements the Function interface.
func (fn Function1) FunctionName() string { return fn.Name }

// FunctionName implements the Function interface.
func (fn Function2) FunctionName() string { return fn.Name }

// FunctionName implements the Function interface.
func (fn FunctionN) FunctionName() string { return fn.Name }

// FunctionRegistry is used to register functions. Lookup is case
// insensitive.
type FunctionRegistry map[string]Function

// NewFunctionRegistry creates a new FunctionRegistry.
func NewFunctionRegistry() FunctionRegistry {
	return make(FunctionRegistry)
}

// RegisterFunction registers a function with the given name.
func (r FunctionRegistry) RegisterFunction(fn Function) {
	r[strings.ToLower(fn.FunctionName())] = fn
}

// RegisterFunctions registers a list of functions.
func (r FunctionRegistry) RegisterFunctions(fns ...Function) {
	for _, fn := range fns {
		r.RegisterFunction(fn)
	}
}

// Function returns the function with the name given, or ErrFunctionNotFound
// if it cannot be found.
func (r FunctionRegistry) Function(name string) (Function, error) {
	if len(r) == 0 {
		return nil, ErrFunctionNotFound.New(name)
	}

	if fn, ok := r[strings.ToLower(name)]; ok {
		return fn, nil
	}

	return nil, ErrFunctionNotFound.New(name)
}
