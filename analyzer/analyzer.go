// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"reflect"
	"strconv"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/observerguard/internal/run"
	"fillmore-labs.com/observerguard/internal/verify"
)

// Rule selects which check an analyzer performs.
type Rule = verify.Rule

// The available rules.
const (
	// MissingUnobserve reports observe calls without any unobserve or disconnect on the same observer.
	MissingUnobserve = verify.MissingUnobserve
	// MatchingTarget reports observe calls whose target is never unobserved.
	MatchingTarget = verify.MatchingTarget
)

// Public API constants for the observerguard analyzers.
const (
	url = "https://pkg.go.dev/fillmore-labs.com/observerguard/analyzer"
)

// names are the analyzer names per rule. Analyzer names must be identifiers;
// the rule identifier is carried as diagnostic category.
var names = [...]string{
	verify.MissingUnobserve: "nomissingunobserve",
	verify.MatchingTarget:   "matchingunobservetarget",
}

// analyzerName returns the analyzer name of a rule. Unknown rules get a
// numbered name, so the analyzer stays valid but reports nothing.
func analyzerName(rule Rule) string {
	if int(rule) < len(names) {
		return names[rule]
	}

	return "observerguard" + strconv.Itoa(int(rule))
}

// New creates a new instance of an observerguard analyzer for the given rule.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [NoMissingUnobserveOrDisconnect] and [MatchingUnobserveTarget]
// variables are typically sufficient.
func New(rule Rule, opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions(rule)
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       analyzerName(rule),
		Doc:        rule.String() + ": " + rule.Description(),
		URL:        url,
		Run:        r.Run,
		ResultType: reflect.TypeFor[*run.Result](),
	}

	registerFlags(r, &a.Flags)

	return a
}

var (
	// NoMissingUnobserveOrDisconnect is a pre-configured *[analysis.Analyzer] for the
	// no-missing-unobserve-or-disconnect rule.
	NoMissingUnobserveOrDisconnect = New(MissingUnobserve)

	// MatchingUnobserveTarget is a pre-configured *[analysis.Analyzer] for the
	// matching-unobserve-target rule.
	MatchingUnobserveTarget = New(MatchingTarget)
)

// Analyzers returns fresh analyzers for all rules.
func Analyzers(opts ...Option) []*analysis.Analyzer {
	as := make([]*analysis.Analyzer, 0, len(verify.Rules))
	for _, rule := range verify.Rules {
		as = append(as, New(rule, opts...))
	}

	return as
}

// RuleOf returns the rule checked by an analyzer created with [New].
func RuleOf(a *analysis.Analyzer) (Rule, bool) {
	for rule, name := range names {
		if a != nil && a.Name == name {
			return Rule(rule), true
		}
	}

	return 0, false
}
