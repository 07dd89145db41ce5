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

package analyzer

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/quelldb/quell/sql"
)

const debugAnalyzerKey = "QUELL_DEBUG_ANALYZER"

const maxAnalysisIterations = 1000

// ErrMaxAnalysisIters is thrown when the analysis iterations are exceeded
var ErrMaxAnalysisIters = errors.NewKind("exceeded max analysis iterations (%d)")

// Builder provides an easy way to generate Analyzers with custom rules and
// options.
type Builder struct {
	preAnalyzeRules     []Rule
	postAnalyzeRules    []Rule
	preValidationRules  []Rule
	postValidationRules []Rule
	catalog             *sql.Catalog
	debug               bool
}

// NewBuilder creates a new Builder from a specific catalog.
func NewBuilder(c *sql.Catalog) *Builder {
	return &Builder{catalog: c}
}

// WithDebug activates debug on the Analyzer.
func (ab *Builder) WithDebug() *Builder {
	ab.debug = true
	return ab
}

// AddPreAnalyzeRule adds a new rule to the analyzer before the standard
// analyzer rules.
func (ab *Builder) AddPreAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.preAnalyzeRules = append(ab.preAnalyzeRules, Rule{name, fn})
	return ab
}

// AddPostAnalyzeRule adds a new rule to the analyzer after the standard
// analyzer rules.
func (ab *Builder) AddPostAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.postAnalyzeRules = append(ab.postAnalyzeRules, Rule{name, fn})
	return ab
}

// AddPreValidationRule adds a new rule to the analyzer before the standard
// validation rules.
func (ab *Builder) AddPreValidationRule(name string, fn RuleFunc) *Builder {
	ab.preValidationRules = append(ab.preValidationRules, Rule{name, fn})
	return ab
}

// AddPostValidationRule adds a new rule to the analyzer after the standard
// validation rules.
func (ab *Builder) AddPostValidationRule(name string, fn RuleFunc) *Builder {
	ab.postValidationRules = append(ab.postValidationRules, Rule{name, fn})
	return ab
}

// Build creates a new Analyzer from the builder.
func (ab *Builder) Build() *Analyzer {
	_, debug := os.LookupEnv(debugAnalyzerKey)
	return &Analyzer{
		Debug:   debug || ab.debug,
		Catalog: ab.catalog,
		Batches: []*Batch{
			{
				Desc:       "pre-analyzer",
				Iterations: maxAnalysisIterations,
				Rules:      ab.preAnalyzeRules,
			},
			{
				Desc:       "default-rules",
				Iterations: maxAnalysisIterations,
				Rules:      DefaultRules,
			},
			{
				Desc:       "post-analyzer",
				Iterations: maxAnalysisIterations,
				Rules:      ab.postAnalyzeRules,
			},
			{
				Desc:       "pre-validation",
				Iterations: 1,
				Rules:      ab.preValidationRules,
			},
			{
				Desc:       "validation",
				Iterations: 1,
				Rules:      ValidationRules,
			},
			{
				Desc:       "post-validation",
				Iterations: 1,
				Rules:      ab.postValidationRules,
			},
		},
	}
}

// Analyzer analyzes nodes of the execution plan and applies rules and
// validations to them until a fixed point is reached.
type Analyzer struct {
	// Debug enables analyzer debug logging.
	Debug bool
	// Batches of rules to apply, in order.
	Batches []*Batch
	// Catalog of databases and registered functions.
	Catalog *sql.Catalog
}

// NewDefault creates a default Analyzer instance with all default Rules and
// configuration.
func NewDefault(c *sql.Catalog) *Analyzer {
	return NewBuilder(c).Build()
}

// Log prints an INFO message through the standard logrus logger (stderr by
// default) with the given message and args if the analyzer is in debug mode.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a != nil && a.Debug {
		logrus.Infof(msg, args...)
	}
}

// Analyze the node and all its children.
func (a *Analyzer) Analyze(ctx *sql.Context, n sql.Node) (sql.Node, error) {
	span, ctx := ctx.Span("analyze")
	defer span.Finish()

	prev := n
	var err error
	for _, batch := range a.Batches {
		prev, err = batch.Eval(ctx, a, prev)
		if err != nil {
			return nil, err
		}
	}

	return prev, nil
}

// AnalyzeAll analyzes the given plans concurrently. The analyzer shares no
// mutable state between invocations, so disjoint plans can be analyzed in
// parallel; results keep the input order.
func (a *Analyzer) AnalyzeAll(ctx *sql.Context, nodes ...sql.Node) ([]sql.Node, error) {
	results := make([]sql.Node, len(nodes))

	var g errgroup.Group
	for i, n := range nodes {
		i, n := i, n
		g.Go(func() error {
			analyzed, err := a.Analyze(ctx, n)
			if err != nil {
				return err
			}
			results[i] = analyzed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
