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
package analyzer_test

import (
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/observerguard/analyzer"
)

const panel = `class Panel extends React.Component {
  componentDidMount() {
    this.ro = new ResizeObserver(() => {});
    this.ro.observe(this.header.current);
    this.ro.observe(this.body.current); // nolint:matching-unobserve-target
  }

  componentWillUnmount() {
    this.ro.unobserve(this.header.current);
  }
}
`

const metrics = `export function track(report) {
  const po = new PerformanceObserver(report);
  const handle = po;
  po.observe({ type: "longtask" });
  return () => handle.disconnect();
}
`

const generated = `// Code generated by bundler. DO NOT EDIT.

const mo = new MutationObserver(() => {});
mo.observe(document.body);
`

type diagnostic struct {
	line     int
	category string
	message  string
}

func runAnalyzer(t *testing.T, a *analysis.Analyzer, files map[string]string) []diagnostic {
	t.Helper()

	dir := t.TempDir()

	names := make([]string, 0, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}

		names = append(names, path)
	}

	slices.Sort(names)

	var diagnostics []diagnostic

	fset := token.NewFileSet()
	pass := &analysis.Pass{
		Analyzer:   a,
		Fset:       fset,
		OtherFiles: names,
		ReadFile:   os.ReadFile,
		ResultOf:   make(map[*analysis.Analyzer]any),
		Report: func(d analysis.Diagnostic) {
			diagnostics = append(diagnostics, diagnostic{
				line:     fset.Position(d.Pos).Line,
				category: d.Category,
				message:  d.Message,
			})
		},
	}

	if _, err := a.Run(pass); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	return diagnostics
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    Rule
		options Option
		want    []diagnostic
	}{
		{
			name: "Missing",
			rule: MissingUnobserve,
			want: []diagnostic{
				{4, "no-missing-unobserve-or-disconnect", "po does not have a corresponding unobserve or disconnect"},
			},
		},
		{
			name:    "MissingObserverTypes",
			rule:    MissingUnobserve,
			options: WithObserverTypes("PerformanceObserver"),
			want:    nil,
		},
		{
			name:    "MissingGenerated",
			rule:    MissingUnobserve,
			options: Options{WithGenerated(true), WithObserverTypes("PerformanceObserver"), nil},
			want: []diagnostic{
				{4, "no-missing-unobserve-or-disconnect", "mo does not have a corresponding unobserve or disconnect"},
			},
		},
		{
			name: "Target",
			rule: MatchingTarget,
			want: nil,
		},
		{
			name:    "TargetNoLintIgnored",
			rule:    MatchingTarget,
			options: WithNoLint(false),
			want: []diagnostic{
				{5, "matching-unobserve-target", "there isn't an unobserve invoke for this.ro with target this.body"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.rule, tt.options)

			got := runAnalyzer(t, a, map[string]string{
				"generated.js": generated,
				"metrics.mjs":  metrics,
				"panel.jsx":    panel,
				"README.md":    "# docs\n",
			})
			if !slices.Equal(got, tt.want) {
				t.Errorf("Diagnostics = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzers(t *testing.T) {
	t.Parallel()

	as := Analyzers()
	if err := analysis.Validate(as); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if got, want := len(as), 2; got != want {
		t.Fatalf("Got %d analyzers, want %d", got, want)
	}

	for _, a := range append(as, NoMissingUnobserveOrDisconnect, MatchingUnobserveTarget) {
		rule, ok := RuleOf(a)
		if !ok {
			t.Errorf("RuleOf(%s) failed", a.Name)
			continue
		}

		if New(rule).Name != a.Name {
			t.Errorf("Rule %s maps to analyzer %s", rule, a.Name)
		}
	}

	if got, want := NoMissingUnobserveOrDisconnect.Name, "nomissingunobserve"; got != want {
		t.Errorf("Got analyzer name %q, want %q", got, want)
	}

	if got, want := MatchingUnobserveTarget.Name, "matchingunobservetarget"; got != want {
		t.Errorf("Got analyzer name %q, want %q", got, want)
	}

	if _, ok := RuleOf(&analysis.Analyzer{Name: "other"}); ok {
		t.Error("RuleOf succeeded on a foreign analyzer")
	}
}

func TestUnknownRule(t *testing.T) {
	t.Parallel()

	a := New(Rule(9))

	if got, want := a.Name, "observerguard9"; got != want {
		t.Errorf("Got analyzer name %q, want %q", got, want)
	}

	if err := analysis.Validate([]*analysis.Analyzer{a}); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	if _, ok := RuleOf(a); ok {
		t.Error("RuleOf succeeded on an unknown rule")
	}

	if got := runAnalyzer(t, a, map[string]string{"panel.jsx": panel}); len(got) != 0 {
		t.Errorf("Got diagnostics %v, want none", got)
	}
}
