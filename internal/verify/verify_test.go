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

package verify_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/observerguard/internal/collect"
	"fillmore-labs.com/observerguard/internal/identity"
	"fillmore-labs.com/observerguard/internal/ledger"
	"fillmore-labs.com/observerguard/internal/testsource"
	. "fillmore-labs.com/observerguard/internal/verify"
)

func messages(findings []Finding) []string {
	result := make([]string, 0, len(findings))
	for _, f := range findings {
		result = append(result, f.Message())
	}

	return result
}

func at(start uint32) ledger.Invocation {
	return ledger.Invocation{Loc: ledger.Location{Start: start, End: start + 1}}
}

func TestVerifyState(t *testing.T) {
	t.Parallel()

	type call struct {
		kind             ledger.Kind
		receiver, target identity.Identity
	}

	observe := func(r, t identity.Identity) call { return call{ledger.Observe, r, t} }
	unobserve := func(r, t identity.Identity) call { return call{ledger.Unobserve, r, t} }
	disconnect := func(r identity.Identity) call { return call{ledger.Disconnect, r, ledger.DisconnectKey} }

	type alias struct {
		name string
		to   identity.Identity
	}

	tests := []struct {
		name         string
		calls        []call
		aliases      []alias
		wantMissing  []string
		wantMatching []string
	}{
		{
			name:  "no_observe",
			calls: []call{unobserve("this.ro", "this.a")},
		},
		{
			name:  "missing",
			calls: []call{observe("this.ro", "this.a"), observe("this.ro", "this.b")},
			wantMissing: []string{
				"this.ro does not have a corresponding unobserve or disconnect",
				"this.ro does not have a corresponding unobserve or disconnect",
			},
		},
		{
			name:  "partial_unobserve",
			calls: []call{observe("this.ro", "this.a"), observe("this.ro", "this.b"), unobserve("this.ro", "this.a")},
			wantMatching: []string{
				"there isn't an unobserve invoke for this.ro with target this.b",
			},
		},
		{
			name:  "disconnect",
			calls: []call{observe("this.ro", "this.a"), observe("this.ro", "this.b"), disconnect("this.ro")},
		},
		{
			name:  "disconnect_and_unobserve",
			calls: []call{observe("ro", "a"), observe("ro", "b"), disconnect("ro"), unobserve("ro", "b")},
			wantMatching: []string{
				"there isn't an unobserve invoke for ro with target a",
			},
		},
		{
			name:    "alias_unobserve",
			calls:   []call{observe("temp", "this.a"), unobserve("this.x", "this.a")},
			aliases: []alias{{"temp", "this.x"}},
		},
		{
			name:    "alias_disconnect",
			calls:   []call{observe("temp", "this.a"), disconnect("this.x")},
			aliases: []alias{{"temp", "this.x"}},
		},
		{
			name:    "alias_missing",
			calls:   []call{observe("temp", "this.a")},
			aliases: []alias{{"temp", "this.x"}},
			wantMissing: []string{
				"this.x does not have a corresponding unobserve or disconnect",
			},
		},
		{
			name:    "alias_mismatch",
			calls:   []call{observe("temp", "this.a"), unobserve("this.x", "this.b")},
			aliases: []alias{{"temp", "this.x"}},
			wantMatching: []string{
				"there isn't an unobserve invoke for this.x with target this.a",
			},
		},
		{
			name:    "direct_wins_over_alias",
			calls:   []call{observe("temp", "a"), unobserve("temp", "b"), unobserve("this.x", "a")},
			aliases: []alias{{"temp", "this.x"}},
			wantMatching: []string{
				"there isn't an unobserve invoke for temp with target a",
			},
		},
		{
			name:    "one_hop_only",
			calls:   []call{observe("temp", "a"), unobserve("this.y", "a")},
			aliases: []alias{{"temp", "this.x"}, {"this.x", "this.y"}},
			wantMissing: []string{
				"this.x does not have a corresponding unobserve or disconnect",
			},
		},
		{
			name:  "unresolved_target_never_matches",
			calls: []call{observe("ro", ledger.UnresolvedTarget), unobserve("ro", ledger.UnresolvedTarget)},
			wantMatching: []string{
				"there isn't an unobserve invoke for ro with target <unresolved>",
			},
		},
		{
			name:  "other_receiver",
			calls: []call{observe("this.a", "x"), unobserve("this.b", "x")},
			wantMissing: []string{
				"this.a does not have a corresponding unobserve or disconnect",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := ledger.New()
			for i, c := range tt.calls {
				s.Methods.Record(c.kind, c.receiver, c.target, at(uint32(i)))
			}

			for _, a := range tt.aliases {
				s.Declarations.Record(a.name, ledger.Location{})
				s.Aliases.Record(a.name, a.to, ledger.Location{})
			}

			if got := messages(Verify(s, MissingUnobserve)); !slices.Equal(got, tt.wantMissing) {
				t.Errorf("MissingUnobserve = %q, want %q", got, tt.wantMissing)
			}

			if got := messages(Verify(s, MatchingTarget)); !slices.Equal(got, tt.wantMatching) {
				t.Errorf("MatchingTarget = %q, want %q", got, tt.wantMatching)
			}
		})
	}
}

func TestVerifyNil(t *testing.T) {
	t.Parallel()

	if got := Verify(nil, MissingUnobserve); got != nil {
		t.Errorf("Verify(nil) = %v, want nil", got)
	}
}

func verifySource(t *testing.T, src string, rule Rule) []Finding {
	t.Helper()

	root, source := testsource.Parse(t, src)

	s, err := collect.New().Collect(context.Background(), root, source)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	return Verify(s, rule)
}

const component = `
class MyComponent extends React.Component {
  componentDidMount() {
    this.ro = new ResizeObserver(fn);
    this.ro.observe(this.a);
    this.ro.observe(this.b);
  }

  componentWillUnmount() {
    %s
  }

  render() {
    return <div ref={this.a}><span ref={this.b} /></div>;
  }
}
`

func source(teardown string) string {
	return strings.Replace(component, "%s", teardown, 1)
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		src          string
		wantMissing  []string
		wantMatching []string
	}{
		{
			name: "partial_unobserve",
			src:  source("this.ro.unobserve(this.a);"),
			wantMatching: []string{
				"there isn't an unobserve invoke for this.ro with target this.b",
			},
		},
		{
			name: "empty_teardown",
			src:  source(""),
			wantMissing: []string{
				"this.ro does not have a corresponding unobserve or disconnect",
				"this.ro does not have a corresponding unobserve or disconnect",
			},
		},
		{
			name: "disconnect",
			src:  source("if (this.ro) { this.ro.disconnect(); }"),
		},
		{
			name: "alias",
			src: `
class MyComponent extends React.Component {
  componentDidMount() {
    const temp = new IntersectionObserver((entries) => {});
    temp.observe(this.a);
    this.x = temp
  }

  componentWillUnmount() {
    this.x.unobserve(this.a);
  }
}
`,
		},
		{
			name: "alias_empty_teardown",
			src: `
class MyComponent extends React.Component {
  componentDidMount() {
    const temp = new IntersectionObserver((entries) => {});
    temp.observe(this.intersectionElement.current);
    this.intersectionObserver = temp
  }

  componentWillUnmount() {
    if (this.intersectionObserver) {
    }
  }
}
`,
			wantMissing: []string{
				"this.intersectionObserver does not have a corresponding unobserve or disconnect",
			},
		},
		{
			name: "unobserve_before_observe",
			src: `
function teardown() { ro.unobserve(el); }
function setup() { ro.observe(el); ro.observe(other); }
`,
			wantMatching: []string{
				"there isn't an unobserve invoke for ro with target other",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := messages(verifySource(t, tt.src, MissingUnobserve)); !slices.Equal(got, tt.wantMissing) {
				t.Errorf("MissingUnobserve = %q, want %q", got, tt.wantMissing)
			}

			if got := messages(verifySource(t, tt.src, MatchingTarget)); !slices.Equal(got, tt.wantMatching) {
				t.Errorf("MatchingTarget = %q, want %q", got, tt.wantMatching)
			}
		})
	}
}

func TestFindingLocation(t *testing.T) {
	t.Parallel()

	const src = "ro.unobserve(a);\nro.observe(a);\nro.observe(b);\n"

	findings := verifySource(t, src, MatchingTarget)
	if len(findings) != 1 {
		t.Fatalf("Got %d findings, want 1", len(findings))
	}

	start := uint32(len("ro.unobserve(a);\nro.observe(a);\n"))
	if got := findings[0].Loc; got.Start != start || got.End != start+uint32(len("ro.observe(b)")) {
		t.Errorf("Finding location = %+v, want start %d", got, start)
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	root, source := testsource.Parse(t, source("this.ro.unobserve(this.c);"))

	s, err := collect.New().Collect(context.Background(), root, source)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	first := Verify(s, MatchingTarget)
	if len(first) != 2 {
		t.Fatalf("Got %d findings, want 2", len(first))
	}

	for range 5 {
		if again := Verify(s, MatchingTarget); !slices.Equal(again, first) {
			t.Fatalf("Verify = %v, want %v", again, first)
		}
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	for _, r := range Rules {
		got, err := ParseRule(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRule(%q) = %v, %v, want %v", r, got, err, r)
		}

		if r.Description() == "" {
			t.Errorf("Rule %v has no description", r)
		}
	}

	if _, err := ParseRule("no-such-rule"); err == nil {
		t.Error("ParseRule accepted an unknown rule")
	}
}
