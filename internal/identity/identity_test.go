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

package identity_test

import (
	"testing"

	. "fillmore-labs.com/observerguard/internal/identity"
	"fillmore-labs.com/observerguard/internal/testsource"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		kind   string
		text   string
		want   Identity
		wantOK bool
	}{
		{"identifier", "el;", "identifier", "el", "el", true},
		{"this_field", "this.ro;", "member_expression", "this.ro", "this.ro", true},
		{"nested_this", "this.ref.current;", "member_expression", "this.ref.current", "this.ref", true},
		{"nested_local", "a.b.c;", "member_expression", "a.b.c", "a", true},
		{"private_field", "class C { #ro; m() { this.#ro; } }", "member_expression", "this.#ro", "this.#ro", true},
		{"optional_chain", "this.ro?.current;", "member_expression", "this.ro?.current", "this.ro", true},
		{"bare_this", "this;", "this", "", "", false},
		{"call", "foo();", "call_expression", "foo()", "", false},
		{"subscript", "this[key];", "subscript_expression", "this[key]", "", false},
		{"computed_object", "this[key].current;", "member_expression", "this[key].current", "", false},
		{"call_object", "getRef().current;", "member_expression", "getRef().current", "", false},
		{"parenthesized", "(el);", "parenthesized_expression", "(el)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, src := testsource.Parse(t, tt.src)
			n := testsource.Find(t, root, src, tt.kind, tt.text)

			got, ok := Resolve(n, src)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%q) = %q, %t, want %q, %t", tt.text, got, ok, tt.want, tt.wantOK)
			}

			if ok && !got.Valid() {
				t.Errorf("Resolved identity %q is not valid", got)
			}
		})
	}
}

func TestResolveNil(t *testing.T) {
	t.Parallel()

	if got, ok := Resolve(nil, nil); ok || got.Valid() {
		t.Errorf("Resolve(nil) = %q, %t, want unresolvable", got, ok)
	}
}

func TestReceiver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		callee string
		want   Identity
		wantOK bool
	}{
		{"field", "this.ro.observe(el);", "this.ro.observe", "this.ro", true},
		{"local", "temp.observe(el);", "temp.observe", "temp", true},
		{"deep_field", "this.state.ro.disconnect();", "this.state.ro.disconnect", "this.state", true},
		{"this", "this.observe(el);", "this.observe", "", false},
		{"call_result", "getObserver().observe(el);", "getObserver().observe", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, src := testsource.Parse(t, tt.src)
			callee := testsource.Find(t, root, src, "member_expression", tt.callee)

			got, ok := Receiver(callee, src)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Receiver(%q) = %q, %t, want %q, %t", tt.callee, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
